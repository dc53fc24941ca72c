package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"accessitrip/internal/models/db_models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTokenStore keeps the credential in a local database so it survives
// restarts. With a cipher set the value is sealed at rest.
type GormTokenStore struct {
	db     *gorm.DB
	cipher *TokenCipher
}

func NewGormTokenStore(db *gorm.DB, cipher *TokenCipher) *GormTokenStore {
	return &GormTokenStore{db: db, cipher: cipher}
}

func (s *GormTokenStore) SaveToken(ctx context.Context, token string) error {
	value := token
	if s.cipher != nil {
		sealed, err := s.cipher.Seal(token)
		if err != nil {
			return err
		}
		value = sealed
	}

	row := &db_models.SessionToken{Key: TokenKey, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

func (s *GormTokenStore) Token(ctx context.Context) (string, error) {
	var row db_models.SessionToken
	err := s.db.WithContext(ctx).Where(&db_models.SessionToken{Key: TokenKey}).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load session token: %w", err)
	}

	if s.cipher == nil {
		return row.Value, nil
	}
	return s.cipher.Open(row.Value)
}

func (s *GormTokenStore) ClearToken(ctx context.Context) error {
	err := s.db.WithContext(ctx).Where(&db_models.SessionToken{Key: TokenKey}).Delete(&db_models.SessionToken{}).Error
	if err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}
