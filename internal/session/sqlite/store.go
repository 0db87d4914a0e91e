package sqlite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Rohit242003/timesheet-dashboard/internal/session"
)

const (
	keyToken = "token"
	keyRole  = "role"
	keyID    = "id"
	keyName  = "name"
)

var credentialKeys = []string{keyToken, keyRole, keyID, keyName}

type credentialItem struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (credentialItem) TableName() string {
	return "credential_items"
}

// Store keeps the credential in a flat key/value table under the user's
// state directory, surviving restarts.
type Store struct {
	db *gorm.DB
}

func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	if err := db.AutoMigrate(&credentialItem{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state store: %w", err)
	}

	return &Store{db: db}, nil
}

// Set writes all four fields in one transaction, replacing whatever was
// there before.
func (s *Store) Set(cred session.Credential) error {
	items := []credentialItem{
		{Key: keyToken, Value: cred.Token},
		{Key: keyRole, Value: string(cred.Role)},
		{Key: keyID, Value: strconv.FormatInt(cred.UserID, 10)},
		{Key: keyName, Value: cred.DisplayName},
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("key IN ?", credentialKeys).Delete(&credentialItem{}).Error; err != nil {
			return err
		}
		return tx.Create(&items).Error
	})
}

// Clear removes all four fields in one transaction.
func (s *Store) Clear() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("key IN ?", credentialKeys).Delete(&credentialItem{}).Error
	})
}

// Get returns the stored credential. Any missing or unparseable field folds
// the whole result to the zero Credential: partial states read as logged out.
func (s *Store) Get() (session.Credential, error) {
	var items []credentialItem
	if err := s.db.Where("key IN ?", credentialKeys).Find(&items).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.Credential{}, nil
		}
		return session.Credential{}, fmt.Errorf("failed to read state store: %w", err)
	}

	values := make(map[string]string, len(items))
	for _, item := range items {
		values[item.Key] = item.Value
	}

	for _, key := range credentialKeys {
		if values[key] == "" {
			return session.Credential{}, nil
		}
	}

	userID, err := strconv.ParseInt(values[keyID], 10, 64)
	if err != nil {
		return session.Credential{}, nil
	}

	return session.Credential{
		Token:       values[keyToken],
		Role:        session.Role(values[keyRole]),
		UserID:      userID,
		DisplayName: values[keyName],
	}, nil
}
