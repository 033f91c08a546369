package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foundry.GO/config"
	"foundry.GO/model/entity"
	foundry "foundry.GO/model/entity/foundry"
)

var seedCmd = &cobra.Command{
	Use:   "db:seed",
	Short: "Migrate the schema and load the reference and demo data set",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}
		if err := Seed(db); err != nil {
			fmt.Printf("Seeding failed: %v\n", err)
			return
		}
		fmt.Println("Seeding completed.")
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func jsonDoc(v interface{}) datatypes.JSON {
	raw, _ := json.Marshal(v)
	return datatypes.JSON(raw)
}

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

// Seed migrates the schema and loads the alloy grades, equipment fleet and a
// small demo production history. Keyed rows are upserted, generated rows are
// only inserted into an empty table, so re-running is safe.
func Seed(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.ApiToken{},
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
		return err
	}

	upsert := db.Clauses(clause.OnConflict{DoNothing: true})

	alloys := []foundry.AlloyType{
		{
			ID:                 "CA-15",
			AlloyName:          "Cast Austenitic Steel - Standard",
			AlloySpecification: "ASTM A743 Grade CA-15",
			ChemicalComposition: jsonDoc(map[string]string{
				"Carbon": "0.15%", "Chromium": "11.5-14%", "Nickel": "0.5%",
				"Manganese": "1.0%", "Silicon": "1.5%",
			}),
			MechanicalProperties: jsonDoc(map[string]string{
				"TensileStrength": "70,000 PSI", "YieldStrength": "30,000 PSI",
				"Elongation": "22%", "Hardness": "217 HB",
			}),
			MeltingTemperatureRange: "1450-1500°C",
			PouringTemperatureRange: "1480-1520°C",
			QualityStandards:        "ASTM A743, ASME SA-743",
		},
		{
			ID:                 "CA-40",
			AlloyName:          "Cast Austenitic Steel - Higher Carbon",
			AlloySpecification: "ASTM A743 Grade CA-40",
			ChemicalComposition: jsonDoc(map[string]string{
				"Carbon": "0.40%", "Chromium": "11.5-14%", "Nickel": "0.5%",
				"Manganese": "1.0%", "Silicon": "1.5%",
			}),
			MechanicalProperties: jsonDoc(map[string]string{
				"TensileStrength": "75,000 PSI", "YieldStrength": "35,000 PSI",
				"Elongation": "18%", "Hardness": "241 HB",
			}),
			MeltingTemperatureRange: "1450-1500°C",
			PouringTemperatureRange: "1480-1520°C",
			QualityStandards:        "ASTM A743, ASME SA-743",
		},
		{
			ID:                 "CA-6NM",
			AlloyName:          "Cast Austenitic Steel - Ni-Mo Enhanced",
			AlloySpecification: "ASTM A743 Grade CA-6NM",
			ChemicalComposition: jsonDoc(map[string]string{
				"Carbon": "0.06%", "Chromium": "18-21%", "Nickel": "8.5-10.5%",
				"Molybdenum": "2-3%", "Manganese": "1.0%", "Silicon": "1.0%",
			}),
			MechanicalProperties: jsonDoc(map[string]string{
				"TensileStrength": "80,000 PSI", "YieldStrength": "40,000 PSI",
				"Elongation": "35%", "Hardness": "217 HB",
			}),
			MeltingTemperatureRange: "1450-1500°C",
			PouringTemperatureRange: "1480-1520°C",
			QualityStandards:        "ASTM A743, ASME SA-743, NACE MR0175",
		},
	}
	if err := upsert.Create(&alloys).Error; err != nil {
		return err
	}

	spinners := []foundry.SpinnerEquipment{
		{
			ID: "SP001", EquipmentModel: "CentrifugalMaster 2000", SerialNumber: "CM2000-001",
			InstallationDate: date(2020, 3, 15), RatedRpmMax: 800, RatedCapacityKg: 500,
			CurrentCondition: "Good", LastMajorService: datePtr(2024, 1, 15),
			ServiceIntervalHours: 2000, TotalOperatingHours: 8500, Status: "Active",
		},
		{
			ID: "SP002", EquipmentModel: "CentrifugalMaster 2000", SerialNumber: "CM2000-002",
			InstallationDate: date(2020, 3, 20), RatedRpmMax: 800, RatedCapacityKg: 500,
			CurrentCondition: "Fair", LastMajorService: datePtr(2024, 2, 10),
			ServiceIntervalHours: 2000, TotalOperatingHours: 8200, Status: "Active",
		},
		{
			ID: "SP003", EquipmentModel: "CentrifugalMaster 1500", SerialNumber: "CM1500-001",
			InstallationDate: date(2019, 11, 10), RatedRpmMax: 600, RatedCapacityKg: 300,
			CurrentCondition: "Excellent", LastMajorService: datePtr(2024, 3, 1),
			ServiceIntervalHours: 1800, TotalOperatingHours: 9200, Status: "Active",
		},
	}
	if err := upsert.Create(&spinners).Error; err != nil {
		return err
	}

	workOrders := []foundry.WorkOrder{
		{
			ID: "24-07-001", WorkOrderNumber: "WO-2024-001", CustomerID: "1001",
			PartSpecification: "Marine propeller hub - 12\" diameter, CA-15 steel",
			QuantityOrdered:   5, OrderDate: date(2024, 7, 15), DueDate: datePtr(2024, 8, 15),
			PriorityLevel: "High", Status: "In Progress",
		},
		{
			ID: "24-07-002", WorkOrderNumber: "WO-2024-002", CustomerID: "1002",
			PartSpecification: "Industrial valve body - 8\" pipe connection, CA-40 steel",
			QuantityOrdered:   10, OrderDate: date(2024, 7, 16), DueDate: datePtr(2024, 8, 20),
			PriorityLevel: "Medium", Status: "In Progress",
		},
		{
			ID: "24-07-003", WorkOrderNumber: "WO-2024-003", CustomerID: "1003",
			PartSpecification: "Pump impeller - 10\" diameter, CA-6NM steel for marine application",
			QuantityOrdered:   3, OrderDate: date(2024, 7, 17), DueDate: datePtr(2024, 9, 1),
			PriorityLevel: "Low", Status: "Scheduled",
		},
	}
	if err := upsert.Create(&workOrders).Error; err != nil {
		return err
	}

	// Generated-key tables are seeded only once.
	var heatCount int64
	if err := db.Model(&foundry.HeatNumber{}).Count(&heatCount).Error; err != nil {
		return err
	}
	if heatCount > 0 {
		return nil
	}

	molds := []foundry.MoldSpecification{
		{MoldType: "Cylindrical", CastingSize: "6x12 inches", MoldMaterial: "Steel", Status: "Active"},
		{MoldType: "Cylindrical", CastingSize: "8x16 inches", MoldMaterial: "Steel", Status: "Active"},
		{MoldType: "Conical", CastingSize: "10x20 inches", MoldMaterial: "Steel", Status: "Active"},
	}
	if err := db.Create(&molds).Error; err != nil {
		return err
	}

	heats := []foundry.HeatNumber{
		{
			HeatNumber: "227", AlloyID: "CA-15", BatchSizeKg: 450.75, MeltDate: date(2024, 7, 20),
			FurnaceID: "F001", QualityCertification: "QC-2024-227", Status: "Approved",
		},
		{
			HeatNumber: "228", AlloyID: "CA-40", BatchSizeKg: 380.25, MeltDate: date(2024, 7, 21),
			FurnaceID: "F002", QualityCertification: "QC-2024-228", Status: "Approved",
		},
		{
			HeatNumber: "229", AlloyID: "CA-6NM", BatchSizeKg: 320.50, MeltDate: date(2024, 7, 22),
			FurnaceID: "F001", QualityCertification: "QC-2024-229", Status: "Approved",
		},
	}
	if err := db.Create(&heats).Error; err != nil {
		return err
	}

	runs := []foundry.CastingRun{
		{
			WorkOrderID: "24-07-001", HeatID: heats[0].ID, MoldID: molds[0].ID, SpinnerID: "SP001",
			ShiftNumber: 1, OperatorID: "OP001", CastingDate: date(2024, 7, 20),
			RpmSetting: 650, ActualRpm: intPtr(648), PourTemperature: floatPtr(1495.5),
			AmbientTemperature: floatPtr(22.5), CastingWeightKg: floatPtr(23.75),
			CycleTimeMinutes: intPtr(45), PackageInfo: strPtr("Batch A-001"),
			OperationalGravity: strPtr("7.850"), Status: "Completed",
			Notes: strPtr("Good pour, smooth operation"),
		},
		{
			WorkOrderID: "24-07-001", HeatID: heats[0].ID, MoldID: molds[0].ID, SpinnerID: "SP001",
			ShiftNumber: 1, OperatorID: "OP001", CastingDate: date(2024, 7, 20),
			RpmSetting: 650, ActualRpm: intPtr(652), PourTemperature: floatPtr(1492),
			AmbientTemperature: floatPtr(23), CastingWeightKg: floatPtr(24.10),
			CycleTimeMinutes: intPtr(43), PackageInfo: strPtr("Batch A-002"),
			OperationalGravity: strPtr("7.845"), Status: "Completed",
			Notes: strPtr("Excellent quality"),
		},
		{
			WorkOrderID: "24-07-002", HeatID: heats[1].ID, MoldID: molds[1].ID, SpinnerID: "SP002",
			ShiftNumber: 2, OperatorID: "OP002", CastingDate: date(2024, 7, 21),
			RpmSetting: 700, ActualRpm: intPtr(698), PourTemperature: floatPtr(1500),
			AmbientTemperature: floatPtr(24.5), CastingWeightKg: floatPtr(42.30),
			CycleTimeMinutes: intPtr(50), PackageInfo: strPtr("Batch B-001"),
			OperationalGravity: strPtr("7.820"), Status: "Completed",
			Notes: strPtr("Minor porosity noted"),
		},
		{
			WorkOrderID: "24-07-003", HeatID: heats[2].ID, MoldID: molds[2].ID, SpinnerID: "SP003",
			ShiftNumber: 3, OperatorID: "OP003", CastingDate: date(2024, 7, 22),
			RpmSetting: 550, ActualRpm: intPtr(548), PourTemperature: floatPtr(1490),
			AmbientTemperature: floatPtr(25), CastingWeightKg: floatPtr(68.75),
			CycleTimeMinutes: intPtr(60), PackageInfo: strPtr("Batch C-001"),
			OperationalGravity: strPtr("8.100"), Status: "Completed",
			Notes: strPtr("Perfect casting"),
		},
	}
	if err := db.Create(&runs).Error; err != nil {
		return err
	}

	inspections := []foundry.QualityInspection{
		{
			CastingRunID: runs[0].ID, InspectorID: "QA001", InspectionDate: date(2024, 7, 20),
			InspectionType: "Visual & Dimensional", OverallRating: intPtr(1),
			SurfaceQualityRating: intPtr(1), InternalQualityRating: intPtr(1),
			PassFailStatus: "Pass", CorrectiveActions: strPtr("None required"),
			Notes: strPtr("Excellent quality casting"),
		},
		{
			CastingRunID: runs[1].ID, InspectorID: "QA001", InspectionDate: date(2024, 7, 20),
			InspectionType: "Visual & Dimensional", OverallRating: intPtr(1),
			SurfaceQualityRating: intPtr(1), InternalQualityRating: intPtr(1),
			PassFailStatus: "Pass", CorrectiveActions: strPtr("None required"),
			Notes: strPtr("Superior finish quality"),
		},
		{
			CastingRunID: runs[2].ID, InspectorID: "QA002", InspectionDate: date(2024, 7, 21),
			InspectionType: "Visual & NDT", OverallRating: intPtr(2),
			SurfaceQualityRating: intPtr(2), InternalQualityRating: intPtr(2),
			PassFailStatus: "Pass", CorrectiveActions: strPtr("Monitor temperature control"),
			Notes: strPtr("Acceptable with minor defects"),
		},
		{
			CastingRunID: runs[3].ID, InspectorID: "QA003", InspectionDate: date(2024, 7, 22),
			InspectionType: "Full Inspection", OverallRating: intPtr(1),
			SurfaceQualityRating: intPtr(1), InternalQualityRating: intPtr(1),
			PassFailStatus: "Pass", CorrectiveActions: strPtr("None required"),
			Notes: strPtr("Outstanding quality - reference standard"),
		},
	}
	if err := db.Create(&inspections).Error; err != nil {
		return err
	}

	defect := foundry.DefectRecord{
		InspectionID: inspections[2].ID, CastingRunID: runs[2].ID,
		DefectType: "Porosity", DefectSeverity: "Minor",
		DefectLocation:    strPtr("Internal wall section"),
		DefectDescription: strPtr("Small scattered porosity detected during ultrasonic testing"),
		ProbableCause:     strPtr("Slightly low pouring temperature caused incomplete fill"),
		CorrectiveAction:  strPtr("Increased pour temperature by 5°C for subsequent castings"),
		CostImpact:        floatPtr(25.50), Status: "Resolved",
	}
	if err := db.Create(&defect).Error; err != nil {
		return err
	}

	maintenance := []foundry.MaintenanceRecord{
		{
			SpinnerID: "SP001", MaintenanceDate: date(2024, 7, 15), MaintenanceType: "Routine Inspection",
			TechnicianID:         "TECH001",
			MaintenancePerformed: "Visual inspection, lubrication check, belt tension adjustment",
			CurrentRpm:           intPtr(650), TargetRpm: intPtr(650),
			VibrationLevel: floatPtr(2.1), TemperatureReading: floatPtr(45.5),
			Cost: floatPtr(125), ConditionAfterService: strPtr("Good"),
			Notes: strPtr("All systems operating within normal parameters"),
		},
		{
			SpinnerID: "SP002", MaintenanceDate: date(2024, 7, 10), MaintenanceType: "Bearing Replacement",
			TechnicianID:         "TECH002",
			MaintenancePerformed: "Replaced main shaft bearings, realigned drive system",
			CurrentRpm:           intPtr(700), TargetRpm: intPtr(700),
			VibrationLevel: floatPtr(1.8), TemperatureReading: floatPtr(42),
			Cost:          floatPtr(850), ConditionAfterService: strPtr("Excellent"),
			PartsReplaced: jsonDoc([]string{"Main bearing set BRG-2000-MS"}),
			Notes:         strPtr("Vibration reduced significantly after bearing replacement"),
		},
		{
			SpinnerID: "SP003", MaintenanceDate: date(2024, 7, 5), MaintenanceType: "Preventive Maintenance",
			TechnicianID:         "TECH001",
			MaintenancePerformed: "Complete lubrication service, filter replacement, safety system check",
			CurrentRpm:           intPtr(550), TargetRpm: intPtr(550),
			VibrationLevel: floatPtr(1.5), TemperatureReading: floatPtr(38.5),
			Cost:          floatPtr(200), ConditionAfterService: strPtr("Excellent"),
			PartsReplaced: jsonDoc([]string{"Oil filter FLT-1500-OIL x2"}),
			Notes:         strPtr("Equipment in excellent condition, no issues found"),
		},
	}
	return db.Create(&maintenance).Error
}
