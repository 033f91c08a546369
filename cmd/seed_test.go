package cmd

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	foundry "foundry.GO/model/entity/foundry"
)

func TestSeed_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := Seed(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	var alloys, heats, runs int64
	db.Model(&foundry.AlloyType{}).Count(&alloys)
	db.Model(&foundry.HeatNumber{}).Count(&heats)
	db.Model(&foundry.CastingRun{}).Count(&runs)
	if alloys != 3 {
		t.Errorf("alloys = %d, want 3", alloys)
	}
	if heats == 0 || runs == 0 {
		t.Fatalf("seed left no production history (heats %d, runs %d)", heats, runs)
	}

	if err := Seed(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	var alloys2, heats2, runs2 int64
	db.Model(&foundry.AlloyType{}).Count(&alloys2)
	db.Model(&foundry.HeatNumber{}).Count(&heats2)
	db.Model(&foundry.CastingRun{}).Count(&runs2)
	if alloys2 != alloys || heats2 != heats || runs2 != runs {
		t.Errorf("re-seed changed counts: alloys %d->%d, heats %d->%d, runs %d->%d",
			alloys, alloys2, heats, heats2, runs, runs2)
	}
}
