// Package jobs holds cron jobs that need store access. They register through
// cron.Register from init, so entrypoints blank-import this package.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gorm.io/gorm"

	"foundry.GO/config"
	"foundry.GO/cron"
	"foundry.GO/model/repository/search"
	"foundry.GO/service/export"
)

func init() {
	cron.Register("export:nightly", "0 2 * * *", func(args ...string) {
		if err := RunNightlyExport(context.Background()); err != nil {
			log.Printf("export:nightly failed: %v", err)
		}
	})
}

// The scheduler fires this job for the life of the process, so the store
// handle is opened once and reused. Opening per invocation would strand a
// connection pool every night.
var (
	jobDBOnce sync.Once
	jobDB     *gorm.DB
	jobDBErr  error
)

func jobStore() (*gorm.DB, error) {
	jobDBOnce.Do(func() {
		jobDB, jobDBErr = config.NewDB()
	})
	return jobDB, jobDBErr
}

// RunNightlyExport writes yesterday's casting runs as CSV into the export
// directory. A day with no runs is not an error; nothing is written.
func RunNightlyExport(ctx context.Context) error {
	db, err := jobStore()
	if err != nil {
		return err
	}
	return NightlyExport(ctx, db, time.Now())
}

// NightlyExport is the DB-injected body of the job, split out for tests.
func NightlyExport(ctx context.Context, db *gorm.DB, now time.Time) error {
	day := now.AddDate(0, 0, -1).Format("2006-01-02")
	filters := map[string]string{"dateFrom": day, "dateTo": day}

	results, err := search.NewSearchRepository(db).Search(ctx, search.KindCastingRuns, "", filters)
	if err != nil {
		return err
	}
	rows, err := toMaps(results)
	if err != nil {
		return err
	}

	csv, err := export.CSV(search.KindCastingRuns, rows)
	if err != nil {
		if errors.Is(err, export.ErrNoResults) {
			log.Printf("export:nightly: no casting runs for %s", day)
			return nil
		}
		return err
	}

	config.LoadAppConfig()
	dir := config.AppConfig.ExportDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "casting-runs-"+day+".csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		return err
	}
	log.Printf("export:nightly: wrote %d rows to %s", len(rows), path)
	return nil
}

func toMaps(results interface{}) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(results)
	if err != nil {
		return nil, err
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
