package observation

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vjjan91/diurnal-Acoustics/internal/errors"
	"github.com/vjjan91/diurnal-Acoustics/internal/logging"
)

// Store persists detection events to a SQLite database for downstream
// consumers that prefer SQL over the CSV artifact.
type Store struct {
	DB *gorm.DB
}

// OpenStore opens (or creates) the SQLite database at path and migrates the
// events table.
func OpenStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.New(err).
				Component("observation").
				Category(errors.CategoryDatabase).
				FileContext(path).
				Build()
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.New(err).
			Component("observation").
			Category(errors.CategoryDatabase).
			FileContext(path).
			Build()
	}

	if err := db.AutoMigrate(&Event{}); err != nil {
		return nil, errors.New(err).
			Component("observation").
			Category(errors.CategoryDatabase).
			FileContext(path).
			Build()
	}

	return &Store{DB: db}, nil
}

// SaveEvents inserts all events in batches within one transaction.
func (s *Store) SaveEvents(events []Event) error {
	if s.DB == nil {
		return errors.Newf("database connection is not initialized").
			Component("observation").
			Category(errors.CategoryDatabase).
			Build()
	}
	if len(events) == 0 {
		return nil
	}

	if err := s.DB.CreateInBatches(events, 500).Error; err != nil {
		return errors.New(err).
			Component("observation").
			Category(errors.CategoryDatabase).
			Build()
	}

	logging.ForService("observation").Debug("events saved to database", "events", len(events))
	return nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
