package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/terraincognita07/eczema-tracker/internal/models"
)

// JSONDocumentRepository keeps the whole journal in one pretty-printed JSON
// file. Every Load re-reads the file and every Save rewrites it.
type JSONDocumentRepository struct {
	path string
}

func NewJSONDocumentRepository(path string) *JSONDocumentRepository {
	return &JSONDocumentRepository{path: path}
}

func (repo *JSONDocumentRepository) Path() string {
	return repo.path
}

// Init creates the data directory and seeds an empty document when the file
// does not exist yet. An existing file is left untouched, even if corrupt.
func (repo *JSONDocumentRepository) Init() error {
	if err := os.MkdirAll(filepath.Dir(repo.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if _, err := os.Stat(repo.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat data file: %w", err)
	}
	return repo.Save(models.EmptyDocument())
}

func (repo *JSONDocumentRepository) Load() (models.Document, error) {
	raw, err := os.ReadFile(repo.path)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	doc := models.Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrDocumentCorrupt, err)
	}
	doc.Normalize()
	return doc, nil
}

func (repo *JSONDocumentRepository) Save(doc models.Document) error {
	doc.Normalize()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}

	dir := filepath.Dir(repo.path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(repo.path), uuid.NewString()))
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmpPath, repo.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
