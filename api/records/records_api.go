package records

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"foundry.GO/api"
	foundry "foundry.GO/model/entity/foundry"
	recordsRepo "foundry.GO/model/repository/records"
)

func init() {
	api.RegisterModule(RegisterRecordsRoutes)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDatePtr(s string) *time.Time {
	if t, ok := parseDate(s); ok {
		return &t
	}
	return nil
}

func marshalParts(parts []string) datatypes.JSON {
	if len(parts) == 0 {
		return nil
	}
	raw, err := json.Marshal(parts)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

func storeError(c echo.Context, msg string) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": msg})
}

// RegisterRecordsRoutes wires the data-entry endpoints under /api/data-entry.
// These are the external-collaborator store operations: thin create/read
// glue, validation belongs to the entry forms.
func RegisterRecordsRoutes(apiGroup *echo.Group, db *gorm.DB) {
	repo := recordsRepo.GetRecordsRepository(db)
	g := apiGroup.Group("/data-entry")

	g.POST("/work-order", func(c echo.Context) error {
		var body struct {
			ID                string `json:"id"`
			WorkOrderNumber   string `json:"workOrderNumber"`
			CustomerID        string `json:"customerId"`
			PartSpecification string `json:"partSpecification"`
			QuantityOrdered   int    `json:"quantityOrdered"`
			OrderDate         string `json:"orderDate"`
			DueDate           string `json:"dueDate"`
			PriorityLevel     string `json:"priorityLevel"`
			Status            string `json:"status"`
		}
		if err := c.Bind(&body); err != nil {
			return badRequest(c, err.Error())
		}
		orderDate, ok := parseDate(body.OrderDate)
		if !ok {
			return badRequest(c, "orderDate is required")
		}
		wo := &foundry.WorkOrder{
			ID:                body.ID,
			WorkOrderNumber:   body.WorkOrderNumber,
			CustomerID:        body.CustomerID,
			PartSpecification: body.PartSpecification,
			QuantityOrdered:   body.QuantityOrdered,
			OrderDate:         orderDate,
			DueDate:           parseDatePtr(body.DueDate),
			PriorityLevel:     body.PriorityLevel,
			Status:            body.Status,
		}
		if err := repo.CreateWorkOrder(c.Request().Context(), wo); err != nil {
			return storeError(c, "Failed to create work order")
		}
		return c.JSON(http.StatusCreated, wo)
	})

	g.POST("/heat-number", func(c echo.Context) error {
		var body struct {
			HeatNumber           string  `json:"heatNumber"`
			AlloyID              string  `json:"alloyId"`
			BatchSizeKg          float64 `json:"batchSizeKg"`
			MeltDate             string  `json:"meltDate"`
			FurnaceID            string  `json:"furnaceId"`
			QualityCertification string  `json:"qualityCertification"`
			Status               string  `json:"status"`
		}
		if err := c.Bind(&body); err != nil {
			return badRequest(c, err.Error())
		}
		meltDate, ok := parseDate(body.MeltDate)
		if !ok {
			return badRequest(c, "meltDate is required")
		}
		h := &foundry.HeatNumber{
			HeatNumber:           body.HeatNumber,
			AlloyID:              body.AlloyID,
			BatchSizeKg:          body.BatchSizeKg,
			MeltDate:             meltDate,
			FurnaceID:            body.FurnaceID,
			QualityCertification: body.QualityCertification,
			Status:               body.Status,
		}
		if err := repo.CreateHeatNumber(c.Request().Context(), h); err != nil {
			return storeError(c, "Failed to create heat number")
		}
		return c.JSON(http.StatusCreated, h)
	})

	g.POST("/casting-run", func(c echo.Context) error {
		var body struct {
			WorkOrderID        string   `json:"workOrderId"`
			HeatID             uint     `json:"heatId"`
			MoldID             uint     `json:"moldId"`
			SpinnerID          string   `json:"spinnerId"`
			ShiftNumber        int      `json:"shiftNumber"`
			OperatorID         string   `json:"operatorId"`
			CastingDate        string   `json:"castingDate"`
			RpmSetting         int      `json:"rpmSetting"`
			ActualRpm          *int     `json:"actualRpm"`
			PourTemperature    *float64 `json:"pourTemperature"`
			AmbientTemperature *float64 `json:"ambientTemperature"`
			CastingWeightKg    *float64 `json:"castingWeightKg"`
			CycleTimeMinutes   *int     `json:"cycleTimeMinutes"`
			PackageInfo        *string  `json:"packageInfo"`
			OperationalGravity *string  `json:"operationalGravity"`
			Status             string   `json:"status"`
			Notes              *string  `json:"notes"`
		}
		if err := c.Bind(&body); err != nil {
			return badRequest(c, err.Error())
		}
		castingDate, ok := parseDate(body.CastingDate)
		if !ok {
			return badRequest(c, "castingDate is required")
		}
		run := &foundry.CastingRun{
			WorkOrderID:        body.WorkOrderID,
			HeatID:             body.HeatID,
			MoldID:             body.MoldID,
			SpinnerID:          body.SpinnerID,
			ShiftNumber:        body.ShiftNumber,
			OperatorID:         body.OperatorID,
			CastingDate:        castingDate,
			RpmSetting:         body.RpmSetting,
			ActualRpm:          body.ActualRpm,
			PourTemperature:    body.PourTemperature,
			AmbientTemperature: body.AmbientTemperature,
			CastingWeightKg:    body.CastingWeightKg,
			CycleTimeMinutes:   body.CycleTimeMinutes,
			PackageInfo:        body.PackageInfo,
			OperationalGravity: body.OperationalGravity,
			Status:             body.Status,
			Notes:              body.Notes,
		}
		if err := repo.CreateCastingRun(c.Request().Context(), run); err != nil {
			return storeError(c, "Failed to create casting run")
		}
		return c.JSON(http.StatusCreated, run)
	})

	g.POST("/quality-inspection", func(c echo.Context) error {
		var body struct {
			CastingRunID          uint    `json:"castingRunId"`
			InspectorID           string  `json:"inspectorId"`
			InspectionDate        string  `json:"inspectionDate"`
			InspectionType        string  `json:"inspectionType"`
			OverallRating         *int    `json:"overallRating"`
			SurfaceQualityRating  *int    `json:"surfaceQualityRating"`
			InternalQualityRating *int    `json:"internalQualityRating"`
			PassFailStatus        string  `json:"passFailStatus"`
			CorrectiveActions     *string `json:"correctiveActions"`
			Notes                 *string `json:"notes"`
		}
		if err := c.Bind(&body); err != nil {
			return badRequest(c, err.Error())
		}
		inspectionDate, ok := parseDate(body.InspectionDate)
		if !ok {
			return badRequest(c, "inspectionDate is required")
		}
		insp := &foundry.QualityInspection{
			CastingRunID:          body.CastingRunID,
			InspectorID:           body.InspectorID,
			InspectionDate:        inspectionDate,
			InspectionType:        body.InspectionType,
			OverallRating:         body.OverallRating,
			SurfaceQualityRating:  body.SurfaceQualityRating,
			InternalQualityRating: body.InternalQualityRating,
			PassFailStatus:        body.PassFailStatus,
			CorrectiveActions:     body.CorrectiveActions,
			Notes:                 body.Notes,
		}
		if err := repo.CreateQualityInspection(c.Request().Context(), insp); err != nil {
			return storeError(c, "Failed to create quality inspection")
		}
		return c.JSON(http.StatusCreated, insp)
	})

	g.POST("/maintenance-record", func(c echo.Context) error {
		var body struct {
			SpinnerID             string   `json:"spinnerId"`
			MaintenanceDate       string   `json:"maintenanceDate"`
			MaintenanceType       string   `json:"maintenanceType"`
			TechnicianID          string   `json:"technicianId"`
			MaintenancePerformed  string   `json:"maintenancePerformed"`
			CurrentRpm            *int     `json:"currentRpm"`
			TargetRpm             *int     `json:"targetRpm"`
			VibrationLevel        *float64 `json:"vibrationLevel"`
			TemperatureReading    *float64 `json:"temperatureReading"`
			Cost                  *float64 `json:"cost"`
			ConditionAfterService *string  `json:"conditionAfterService"`
			PartsReplaced         []string `json:"partsReplaced"`
			Notes                 *string  `json:"notes"`
		}
		if err := c.Bind(&body); err != nil {
			return badRequest(c, err.Error())
		}
		maintenanceDate, ok := parseDate(body.MaintenanceDate)
		if !ok {
			return badRequest(c, "maintenanceDate is required")
		}
		rec := &foundry.MaintenanceRecord{
			SpinnerID:             body.SpinnerID,
			MaintenanceDate:       maintenanceDate,
			MaintenanceType:       body.MaintenanceType,
			TechnicianID:          body.TechnicianID,
			MaintenancePerformed:  body.MaintenancePerformed,
			CurrentRpm:            body.CurrentRpm,
			TargetRpm:             body.TargetRpm,
			VibrationLevel:        body.VibrationLevel,
			TemperatureReading:    body.TemperatureReading,
			Cost:                  body.Cost,
			ConditionAfterService: body.ConditionAfterService,
			PartsReplaced:         marshalParts(body.PartsReplaced),
			Notes:                 body.Notes,
		}
		if err := repo.CreateMaintenanceRecord(c.Request().Context(), rec); err != nil {
			return storeError(c, "Failed to create maintenance record")
		}
		return c.JSON(http.StatusCreated, rec)
	})

	g.POST("/defect-record", func(c echo.Context) error {
		var body struct {
			InspectionID      uint     `json:"inspectionId"`
			CastingRunID      uint     `json:"castingRunId"`
			DefectType        string   `json:"defectType"`
			DefectSeverity    string   `json:"defectSeverity"`
			DefectLocation    *string  `json:"defectLocation"`
			DefectDescription *string  `json:"defectDescription"`
			ProbableCause     *string  `json:"probableCause"`
			CorrectiveAction  *string  `json:"correctiveAction"`
			CostImpact        *float64 `json:"costImpact"`
			Status            string   `json:"status"`
		}
		if err := c.Bind(&body); err != nil {
			return badRequest(c, err.Error())
		}
		d := &foundry.DefectRecord{
			InspectionID:      body.InspectionID,
			CastingRunID:      body.CastingRunID,
			DefectType:        body.DefectType,
			DefectSeverity:    body.DefectSeverity,
			DefectLocation:    body.DefectLocation,
			DefectDescription: body.DefectDescription,
			ProbableCause:     body.ProbableCause,
			CorrectiveAction:  body.CorrectiveAction,
			CostImpact:        body.CostImpact,
			Status:            body.Status,
		}
		if err := repo.CreateDefectRecord(c.Request().Context(), d); err != nil {
			return storeError(c, "Failed to create defect record")
		}
		return c.JSON(http.StatusCreated, d)
	})

	g.GET("/alloy-types", func(c echo.Context) error {
		alloys, err := repo.AlloyTypes(c.Request().Context())
		if err != nil {
			return storeError(c, "Failed to fetch alloy types")
		}
		return c.JSON(http.StatusOK, alloys)
	})

	g.GET("/spinner-equipment", func(c echo.Context) error {
		spinners, err := repo.SpinnerEquipment(c.Request().Context())
		if err != nil {
			return storeError(c, "Failed to fetch spinner equipment")
		}
		return c.JSON(http.StatusOK, spinners)
	})

	g.GET("/casting-run-options", func(c echo.Context) error {
		opts, err := repo.CastingRunOptions(c.Request().Context())
		if err != nil {
			return storeError(c, "Failed to fetch form options")
		}
		return c.JSON(http.StatusOK, opts)
	})

	g.GET("/casting-runs", func(c echo.Context) error {
		runs, err := repo.RecentCastingRuns(c.Request().Context(), 10)
		if err != nil {
			return storeError(c, "Failed to fetch casting runs")
		}
		return c.JSON(http.StatusOK, runs)
	})

	g.GET("/next-heat-number", func(c echo.Context) error {
		next, err := repo.NextHeatNumber(c.Request().Context())
		if err != nil {
			return storeError(c, "Failed to generate next heat number")
		}
		return c.JSON(http.StatusOK, echo.Map{"nextHeatNumber": next})
	})
}
