package apitest

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"foundry.GO/api"
	_ "foundry.GO/api/dashboard"
	_ "foundry.GO/api/graphql"
	_ "foundry.GO/api/records"
	_ "foundry.GO/api/search"
	_ "foundry.GO/custom"
	foundry "foundry.GO/model/entity/foundry"
)

// One server and one database for the whole package: the route modules pin
// their repositories to the first DB handle they see, so every test goes
// through the same wiring the server uses.
var (
	harnessOnce sync.Once
	harnessErr  error
	harnessEcho *echo.Echo
	harnessDB   *gorm.DB
)

func apiServer(t *testing.T) *echo.Echo {
	t.Helper()
	harnessOnce.Do(buildHarness)
	if harnessErr != nil {
		t.Fatalf("harness: %v", harnessErr)
	}
	return harnessEcho
}

func buildHarness() {
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("foundry_api_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(tmpFile), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		harnessErr = err
		return
	}
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	if err := db.AutoMigrate(
		&foundry.AlloyType{},
		&foundry.SpinnerEquipment{},
		&foundry.MoldSpecification{},
		&foundry.WorkOrder{},
		&foundry.HeatNumber{},
		&foundry.CastingRun{},
		&foundry.QualityInspection{},
		&foundry.MaintenanceRecord{},
		&foundry.DefectRecord{},
	); err != nil {
		harnessErr = err
		return
	}
	if err := seedFixture(db); err != nil {
		harnessErr = err
		return
	}

	e := echo.New()
	api.ApplyRoutes(e, db)
	apiGroup := e.Group("/api")
	api.ApplyModules(apiGroup, db)

	harnessDB = db
	harnessEcho = e
}

func fixtureDay(d int) time.Time {
	return time.Date(2024, 7, d, 0, 0, 0, 0, time.Local)
}

func fixtureStr(s string) *string { return &s }
func fixtureInt(n int) *int       { return &n }

// seedFixture loads a small stable production history. Tests that create
// records use identifiers outside the WO-2024-* / 227-228 ranges.
func seedFixture(db *gorm.DB) error {
	alloys := []foundry.AlloyType{
		{ID: "CA-15", AlloyName: "Cast Austenitic Steel - Standard"},
		{ID: "CA-40", AlloyName: "Cast Austenitic Steel - Higher Carbon"},
	}
	if err := db.Create(&alloys).Error; err != nil {
		return err
	}
	spinner := foundry.SpinnerEquipment{
		ID: "SP001", EquipmentModel: "CentrifugalMaster 2000",
		InstallationDate: time.Date(2020, 3, 15, 0, 0, 0, 0, time.Local),
		ServiceIntervalHours: 2000, Status: "Active",
	}
	if err := db.Create(&spinner).Error; err != nil {
		return err
	}
	mold := foundry.MoldSpecification{MoldType: "Cylindrical", CastingSize: "6x12 inches", Status: "Active"}
	if err := db.Create(&mold).Error; err != nil {
		return err
	}
	workOrders := []foundry.WorkOrder{
		{
			ID: "24-07-001", WorkOrderNumber: "WO-2024-001", CustomerID: "1001",
			PartSpecification: "Marine propeller hub", QuantityOrdered: 5,
			OrderDate: fixtureDay(15), PriorityLevel: "High", Status: "In Progress",
		},
		{
			ID: "24-07-002", WorkOrderNumber: "WO-2024-002", CustomerID: "1002",
			PartSpecification: "Industrial valve body", QuantityOrdered: 10,
			OrderDate: fixtureDay(16), PriorityLevel: "Medium", Status: "Scheduled",
		},
	}
	if err := db.Create(&workOrders).Error; err != nil {
		return err
	}
	heats := []foundry.HeatNumber{
		{HeatNumber: "227", AlloyID: "CA-15", BatchSizeKg: 450.75, MeltDate: fixtureDay(20), FurnaceID: "F001", Status: "Approved"},
		{HeatNumber: "228", AlloyID: "CA-40", BatchSizeKg: 380.25, MeltDate: fixtureDay(21), FurnaceID: "F002", Status: "Approved"},
	}
	if err := db.Create(&heats).Error; err != nil {
		return err
	}
	runs := []foundry.CastingRun{
		{
			WorkOrderID: "24-07-001", HeatID: heats[0].ID, MoldID: mold.ID, SpinnerID: "SP001",
			ShiftNumber: 1, OperatorID: "OP001", CastingDate: fixtureDay(20),
			RpmSetting: 650, ActualRpm: fixtureInt(648), Status: "Completed", Notes: fixtureStr("Good pour"),
		},
		{
			WorkOrderID: "24-07-001", HeatID: heats[0].ID, MoldID: mold.ID, SpinnerID: "SP001",
			ShiftNumber: 1, OperatorID: "OP001", CastingDate: fixtureDay(20),
			RpmSetting: 650, ActualRpm: fixtureInt(652), Status: "Completed",
		},
		{
			WorkOrderID: "24-07-002", HeatID: heats[1].ID, MoldID: mold.ID, SpinnerID: "SP001",
			ShiftNumber: 2, OperatorID: "OP002", CastingDate: fixtureDay(21),
			RpmSetting: 700, ActualRpm: fixtureInt(698), Status: "Completed",
		},
	}
	if err := db.Create(&runs).Error; err != nil {
		return err
	}
	inspections := []foundry.QualityInspection{
		{
			CastingRunID: runs[0].ID, InspectorID: "QA001", InspectionDate: fixtureDay(20),
			InspectionType: "Visual & Dimensional", OverallRating: fixtureInt(1), PassFailStatus: "Pass",
		},
		{
			CastingRunID: runs[2].ID, InspectorID: "QA002", InspectionDate: fixtureDay(21),
			InspectionType: "Visual & NDT", OverallRating: fixtureInt(2), PassFailStatus: "Pass",
		},
	}
	if err := db.Create(&inspections).Error; err != nil {
		return err
	}
	defect := foundry.DefectRecord{
		InspectionID: inspections[1].ID, CastingRunID: runs[2].ID,
		DefectType: "Porosity", DefectSeverity: "Minor", Status: "Resolved",
	}
	if err := db.Create(&defect).Error; err != nil {
		return err
	}
	maintenance := foundry.MaintenanceRecord{
		SpinnerID: "SP001", MaintenanceDate: fixtureDay(15),
		MaintenanceType: "Routine Inspection", TechnicianID: "TECH001",
		MaintenancePerformed: "Lubrication check",
	}
	return db.Create(&maintenance).Error
}
