package db

import (
	"fmt"

	"github.com/terraincognita07/eczema-tracker/internal/models"
	"gorm.io/gorm"
)

const protocolStateRowID = 1

// SQLiteDocumentRepository stores the same document shape as the JSON file:
// one protocol_state row and one day_entries row per logged day.
type SQLiteDocumentRepository struct {
	database *gorm.DB
}

func NewSQLiteDocumentRepository(database *gorm.DB) *SQLiteDocumentRepository {
	return &SQLiteDocumentRepository{database: database}
}

func (repo *SQLiteDocumentRepository) Init() error {
	state := models.ProtocolState{ID: protocolStateRowID}
	if err := repo.database.Where("id = ?", protocolStateRowID).FirstOrCreate(&state).Error; err != nil {
		return fmt.Errorf("seed protocol state: %w", err)
	}
	return nil
}

func (repo *SQLiteDocumentRepository) Load() (models.Document, error) {
	states := make([]models.ProtocolState, 0, 1)
	if err := repo.database.Where("id = ?", protocolStateRowID).Limit(1).Find(&states).Error; err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	records := make([]models.DayRecord, 0)
	if err := repo.database.Order("day_key ASC").Find(&records).Error; err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrDocumentCorrupt, err)
	}

	doc := models.EmptyDocument()
	if len(states) == 1 {
		doc.StartDate = states[0].StartDate
	}
	for _, record := range records {
		doc.Days[record.DayKey] = record.Entry
	}
	return doc, nil
}

func (repo *SQLiteDocumentRepository) Save(doc models.Document) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		state := models.ProtocolState{ID: protocolStateRowID, StartDate: doc.StartDate}
		if err := tx.Save(&state).Error; err != nil {
			return fmt.Errorf("save protocol state: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.DayRecord{}).Error; err != nil {
			return fmt.Errorf("clear day entries: %w", err)
		}
		for key, entry := range doc.Days {
			record := models.DayRecord{DayKey: key, Entry: entry}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("save day %s: %w", key, err)
			}
		}
		return nil
	})
}
