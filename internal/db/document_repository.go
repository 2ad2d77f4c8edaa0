package db

import "errors"

var (
	ErrDocumentUnreadable = errors.New("document unreadable")
	ErrDocumentCorrupt    = errors.New("document corrupt")
)
