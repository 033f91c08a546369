package jobs

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	foundry "foundry.GO/model/entity/foundry"
	"foundry.GO/model/repository/search"
)

func exportTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&foundry.AlloyType{},
		&foundry.WorkOrder{},
		&foundry.HeatNumber{},
		&foundry.MoldSpecification{},
		&foundry.SpinnerEquipment{},
		&foundry.CastingRun{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestNightlyExport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXPORT_DIR", dir)

	// Pin the shared repository to an unrelated empty store first; the job
	// must still run against the handle it is given.
	search.GetSearchRepository(exportTestDB(t))

	db := exportTestDB(t)
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	midnight := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.Local)

	wo := foundry.WorkOrder{
		ID: "24-08-100", WorkOrderNumber: "WO-2024-100", CustomerID: "1001",
		PartSpecification: "Bearing sleeve", QuantityOrdered: 2, OrderDate: midnight,
	}
	if err := db.Create(&wo).Error; err != nil {
		t.Fatalf("seed work order: %v", err)
	}
	heat := foundry.HeatNumber{HeatNumber: "240", AlloyID: "CA-15", BatchSizeKg: 100, MeltDate: midnight}
	if err := db.Create(&heat).Error; err != nil {
		t.Fatalf("seed heat: %v", err)
	}
	run := foundry.CastingRun{
		WorkOrderID: wo.ID, HeatID: heat.ID, MoldID: 1, SpinnerID: "SP001",
		ShiftNumber: 1, OperatorID: "OP001", CastingDate: midnight, RpmSetting: 650,
	}
	if err := db.Create(&run).Error; err != nil {
		t.Fatalf("seed run: %v", err)
	}

	if err := NightlyExport(context.Background(), db, now); err != nil {
		t.Fatalf("NightlyExport: %v", err)
	}

	path := filepath.Join(dir, "casting-runs-"+yesterday.Format("2006-01-02")+".csv")
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export file: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d csv rows, want header + 1", len(records))
	}
}

func TestNightlyExport_NoRuns(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXPORT_DIR", dir)

	db := exportTestDB(t)
	now := time.Now().AddDate(0, 0, -30)

	if err := NightlyExport(context.Background(), db, now); err != nil {
		t.Fatalf("NightlyExport on empty day: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("empty day wrote %d files", len(entries))
	}
}
