package models

import "time"

// ProtocolState is the single-row table backing Document.StartDate in the
// sqlite backend.
type ProtocolState struct {
	ID        uint    `gorm:"primaryKey"`
	StartDate *string `gorm:"column:start_date"`
	UpdatedAt time.Time
}

func (ProtocolState) TableName() string {
	return "protocol_state"
}

type DayRecord struct {
	DayKey    string   `gorm:"primaryKey;column:day_key"`
	Entry     DayEntry `gorm:"serializer:json;not null"`
	UpdatedAt time.Time
}

func (DayRecord) TableName() string {
	return "day_entries"
}
