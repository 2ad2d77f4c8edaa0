package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/terraincognita07/eczema-tracker/internal/models"
	"github.com/terraincognita07/eczema-tracker/internal/photos"
)

var (
	ErrInvalidDay         = errors.New("invalid day")
	ErrEmptyPhoto         = errors.New("empty photo")
	ErrDocumentSaveFailed = errors.New("save document failed")
	ErrPhotoWriteFailed   = errors.New("write photo failed")
)

type DocumentRepository interface {
	Load() (models.Document, error)
	Save(doc models.Document) error
}

type PhotoStore interface {
	Put(ctx context.Context, name string, data []byte, contentType string) error
	Get(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
}

// JournalService owns every read-modify-write of the journal document. All
// document access is serialized through mu; photo binaries are written
// before the lock is taken.
type JournalService struct {
	documents DocumentRepository
	photos    PhotoStore
	now       func() time.Time

	mu              sync.Mutex
	lastPhotoMillis int64
}

func NewJournalService(documents DocumentRepository, photoStore PhotoStore) *JournalService {
	return &JournalService{
		documents: documents,
		photos:    photoStore,
		now:       time.Now,
	}
}

func (service *JournalService) WithClock(now func() time.Time) *JournalService {
	if now != nil {
		service.now = now
	}
	return service
}

// LoadDocument never fails: an unreadable or corrupt document is replaced by
// an empty one and the event is logged.
func (service *JournalService) LoadDocument() models.Document {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.loadLocked()
}

func (service *JournalService) SaveDocument(doc models.Document) error {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.saveLocked(doc)
}

func (service *JournalService) SetStartDate(date string) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	doc := service.loadLocked()
	doc.StartDate = &date
	return service.saveLocked(doc)
}

func (service *JournalService) GetDay(day int) (models.DayEntry, bool, error) {
	if !models.IsProtocolDay(day) {
		return models.DayEntry{}, false, ErrInvalidDay
	}

	doc := service.LoadDocument()
	entry, found := doc.Days[models.DayKey(day)]
	return entry, found, nil
}

func (service *JournalService) PutDay(day int, entry models.DayEntry) error {
	if !models.IsProtocolDay(day) {
		return ErrInvalidDay
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	doc := service.loadLocked()
	doc.Days[models.DayKey(day)] = entry
	return service.saveLocked(doc)
}

// AddPhoto stores the binary under a generated name and appends that name to
// the day's photo list, creating a photos-only entry when the day is absent.
// When the listing cannot be saved the binary is removed again.
func (service *JournalService) AddPhoto(ctx context.Context, day int, data []byte, ext string, contentType string) (string, error) {
	if !models.IsProtocolDay(day) {
		return "", ErrInvalidDay
	}
	if len(data) == 0 {
		return "", ErrEmptyPhoto
	}

	filename := PhotoFilename(day, service.nextPhotoMillis(), ext)
	if err := service.photos.Put(ctx, filename, data, contentType); err != nil {
		log.Errorf("store photo %s: %v", filename, err)
		return "", fmt.Errorf("%w: %v", ErrPhotoWriteFailed, err)
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	doc := service.loadLocked()
	key := models.DayKey(day)
	entry := doc.Days[key]
	entry.Photos = append(entry.Photos, filename)
	doc.Days[key] = entry
	if err := service.saveLocked(doc); err != nil {
		if removeErr := service.photos.Delete(ctx, filename); removeErr != nil {
			log.Warnf("remove unlisted photo %s: %v", filename, removeErr)
		}
		return "", err
	}
	return filename, nil
}

// DeletePhoto removes the binary and the listing. Binary removal failures
// are logged and never fail the call; a missing listing is a no-op.
func (service *JournalService) DeletePhoto(ctx context.Context, day int, filename string) error {
	if !models.IsProtocolDay(day) {
		return ErrInvalidDay
	}
	if err := ValidatePhotoFilename(filename); err != nil {
		return err
	}

	if err := service.photos.Delete(ctx, filename); err != nil {
		if errors.Is(err, photos.ErrNotFound) {
			log.Debugf("photo %s already absent", filename)
		} else {
			log.Warnf("remove photo %s: %v", filename, err)
		}
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	doc := service.loadLocked()
	key := models.DayKey(day)
	entry, found := doc.Days[key]
	if !found || !entry.HasPhoto(filename) {
		return nil
	}
	entry.Photos = RemoveString(entry.Photos, filename)
	doc.Days[key] = entry
	return service.saveLocked(doc)
}

func (service *JournalService) ReadPhoto(ctx context.Context, filename string) ([]byte, error) {
	if err := ValidatePhotoFilename(filename); err != nil {
		return nil, err
	}
	return service.photos.Get(ctx, filename)
}

func (service *JournalService) nextPhotoMillis() int64 {
	service.mu.Lock()
	defer service.mu.Unlock()

	millis := service.now().UnixMilli()
	if millis <= service.lastPhotoMillis {
		millis = service.lastPhotoMillis + 1
	}
	service.lastPhotoMillis = millis
	return millis
}

func (service *JournalService) loadLocked() models.Document {
	doc, err := service.documents.Load()
	if err != nil {
		log.Warnf("journal document unreadable, continuing with an empty document: %v", err)
		return models.EmptyDocument()
	}
	doc.Normalize()
	return doc
}

func (service *JournalService) saveLocked(doc models.Document) error {
	if err := service.documents.Save(doc); err != nil {
		log.Errorf("save journal document: %v", err)
		return fmt.Errorf("%w: %v", ErrDocumentSaveFailed, err)
	}
	return nil
}
