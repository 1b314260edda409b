package tester

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/emrgen/glossary/internal/config"
	"github.com/emrgen/glossary/internal/model"
	"github.com/emrgen/glossary/internal/queue"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func Setup() {
	_ = os.Setenv("ENV", "test")
	logrus.SetLevel(logrus.WarnLevel)
}

// TestDB opens a migrated sqlite database private to t. It is removed with t's temp dir.
func TestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := config.OpenDb(config.DatabaseConfig{
		Driver: config.DriverSqlite,
		DSN:    filepath.Join(t.TempDir(), "glossary.db"),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := model.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// Recorder is a queue.Publisher that keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	Events []queue.Event
}

func (r *Recorder) Publish(_ context.Context, event queue.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
	return nil
}

func (r *Recorder) Close() error {
	return nil
}

// Kinds returns the recorded event kinds in publish order.
func (r *Recorder) Kinds() []queue.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]queue.EventKind, 0, len(r.Events))
	for _, event := range r.Events {
		kinds = append(kinds, event.Kind)
	}
	return kinds
}
