// Package store records benchmark runs in a local sqlite database so
// variants can be compared across invocations.
package store

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rskv-p/trie/bench"
)

//---------------------
// Model
//---------------------

// Run is one recorded benchmark invocation.
type Run struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	Variant   string
	WordFile  string
	QueryFile string
	Words     int
	Queries   int

	BuildMs float64
	QueryMs float64
	HeapMB  float64
}

// FromReport converts a benchmark report into a history row.
func FromReport(r *bench.Report, wordFile, queryFile string) *Run {
	return &Run{
		Variant:   r.Variant.String(),
		WordFile:  wordFile,
		QueryFile: queryFile,
		Words:     r.Words,
		Queries:   r.Queries,
		BuildMs:   float64(r.Build.Microseconds()) / 1e3,
		QueryMs:   float64(r.Query.Microseconds()) / 1e3,
		HeapMB:    r.HeapMB(),
	}
}

//---------------------
// Store
//---------------------

type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite file at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open history db %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Store{db: db}, nil
}

// Save appends a run to the history.
func (s *Store) Save(run *Run) error {
	if err := s.db.Create(run).Error; err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// Recent returns up to n runs, newest first.
func (s *Store) Recent(n int) ([]Run, error) {
	var runs []Run
	if err := s.db.Order("id desc").Limit(n).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
