package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/terraincognita07/eczema-tracker/internal/models"
	"github.com/terraincognita07/eczema-tracker/internal/photos"
)

// memoryDocumentRepo round-trips through JSON so tests observe the same
// shape the file backend persists.
type memoryDocumentRepo struct {
	raw     []byte
	loadErr error
	saveErr error
	saves   int
}

func (repo *memoryDocumentRepo) Load() (models.Document, error) {
	if repo.loadErr != nil {
		return models.Document{}, repo.loadErr
	}
	if repo.raw == nil {
		return models.EmptyDocument(), nil
	}
	doc := models.Document{}
	if err := json.Unmarshal(repo.raw, &doc); err != nil {
		return models.Document{}, err
	}
	doc.Normalize()
	return doc, nil
}

func (repo *memoryDocumentRepo) Save(doc models.Document) error {
	if repo.saveErr != nil {
		return repo.saveErr
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	repo.raw = raw
	repo.saves++
	return nil
}

type memoryPhotoStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	putErr    error
	deleteErr error
}

func newMemoryPhotoStore() *memoryPhotoStore {
	return &memoryPhotoStore{objects: map[string][]byte{}}
}

func (store *memoryPhotoStore) Put(_ context.Context, name string, data []byte, _ string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.putErr != nil {
		return store.putErr
	}
	store.objects[name] = append([]byte{}, data...)
	return nil
}

func (store *memoryPhotoStore) Get(_ context.Context, name string) ([]byte, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	data, ok := store.objects[name]
	if !ok {
		return nil, photos.ErrNotFound
	}
	return data, nil
}

func (store *memoryPhotoStore) Delete(_ context.Context, name string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.deleteErr != nil {
		return store.deleteErr
	}
	if _, ok := store.objects[name]; !ok {
		return photos.ErrNotFound
	}
	delete(store.objects, name)
	return nil
}

var errStubFailure = errors.New("stub failure")

func fixedClock(value time.Time) func() time.Time {
	return func() time.Time { return value }
}

func intPtr(value int) *int {
	return &value
}

func timestampPtr(value time.Time) *string {
	return models.FormatTimestamp(value)
}

func stringPtr(value string) *string {
	return &value
}

func newTestJournal(t *testing.T) (*JournalService, *memoryDocumentRepo, *memoryPhotoStore) {
	t.Helper()
	repo := &memoryDocumentRepo{}
	store := newMemoryPhotoStore()
	return NewJournalService(repo, store), repo, store
}
