package db_models

import "time"

// SessionToken is one slot of the local credential store.
type SessionToken struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
