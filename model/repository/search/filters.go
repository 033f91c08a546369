package search

import (
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"
)

// Kind identifies one of the six searchable record kinds.
type Kind string

const (
	KindCastingRuns        Kind = "casting-runs"
	KindQualityInspections Kind = "quality-inspections"
	KindMaintenanceRecords Kind = "maintenance-records"
	KindDefectRecords      Kind = "defect-records"
	KindHeatNumbers        Kind = "heat-numbers"
	KindWorkOrders         Kind = "work-orders"
)

// ParseKind maps a wire search type onto a Kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	switch k {
	case KindCastingRuns, KindQualityInspections, KindMaintenanceRecords,
		KindDefectRecords, KindHeatNumbers, KindWorkOrders:
		return k, true
	}
	return "", false
}

// FilterAll is the picker sentinel meaning "no constraint".
const FilterAll = "all"

// Scope is a compiled predicate: a pure chain of conditions on a query.
// Compilation never touches the store; execution happens in the dispatcher.
type Scope func(*gorm.DB) *gorm.DB

// Per-kind filter structs. Keys match the query screen's filter bag.

type CastingRunFilters struct {
	WorkOrderID string `mapstructure:"workOrderId"`
	HeatNumber  string `mapstructure:"heatNumber"`
	OperatorID  string `mapstructure:"operatorId"`
	DateFrom    string `mapstructure:"dateFrom"`
	DateTo      string `mapstructure:"dateTo"`
	RpmMin      string `mapstructure:"rpmMin"`
	RpmMax      string `mapstructure:"rpmMax"`
}

type QualityInspectionFilters struct {
	InspectorID    string `mapstructure:"inspectorId"`
	QualityRating  string `mapstructure:"qualityRating"`
	PassFailStatus string `mapstructure:"passFailStatus"`
	DateFrom       string `mapstructure:"dateFrom"`
	DateTo         string `mapstructure:"dateTo"`
}

type MaintenanceRecordFilters struct {
	EquipmentID     string `mapstructure:"equipmentId"`
	MaintenanceType string `mapstructure:"maintenanceType"`
	TechnicianID    string `mapstructure:"technicianId"`
	DateFrom        string `mapstructure:"dateFrom"`
	DateTo          string `mapstructure:"dateTo"`
}

type DefectRecordFilters struct {
	DefectType     string `mapstructure:"defectType"`
	DefectSeverity string `mapstructure:"defectSeverity"`
}

type HeatNumberFilters struct {
	AlloyType string `mapstructure:"alloyType"`
	DateFrom  string `mapstructure:"dateFrom"`
	DateTo    string `mapstructure:"dateTo"`
}

type WorkOrderFilters struct {
	PriorityLevel string `mapstructure:"priorityLevel"`
	Status        string `mapstructure:"status"`
	DateFrom      string `mapstructure:"dateFrom"`
	DateTo        string `mapstructure:"dateTo"`
}

// stripSentinels drops "all"/empty entries before decoding, so a sentinel
// value can never reach predicate construction.
func stripSentinels(filters map[string]string) map[string]string {
	out := make(map[string]string, len(filters))
	for k, v := range filters {
		if v == "" || strings.EqualFold(v, FilterAll) {
			continue
		}
		out[k] = v
	}
	return out
}

func decodeFilters(filters map[string]string, target interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: target})
	if err != nil {
		return err
	}
	return dec.Decode(stripSentinels(filters))
}

// parseIntBound parses a numeric filter value. A failed parse means the
// bound is absent, never a zero bound.
func parseIntBound(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseDateBound accepts "2006-01-02" (the query screen format) or RFC3339,
// interpreted in server-local time.
func parseDateBound(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(time.Local), true
	}
	return time.Time{}, false
}

func contains(s string) string {
	return "%" + s + "%"
}

// dateRange applies inclusive calendar bounds: dateTo covers the whole
// named day (upper bound is next midnight, exclusive).
func dateRange(q *gorm.DB, column, from, to string) *gorm.DB {
	if t, ok := parseDateBound(from); ok {
		q = q.Where(column+" >= ?", t)
	}
	if t, ok := parseDateBound(to); ok {
		q = q.Where(column+" < ?", t.AddDate(0, 0, 1))
	}
	return q
}

func compileCastingRuns(term string, f CastingRunFilters) Scope {
	return func(q *gorm.DB) *gorm.DB {
		if term != "" {
			like := contains(term)
			q = q.Select("casting_run.*").
				Joins("LEFT JOIN work_order ON work_order.id = casting_run.work_order_id").
				Where("work_order.work_order_number LIKE ? OR casting_run.operator_id LIKE ? OR casting_run.notes LIKE ? OR casting_run.package_info LIKE ?",
					like, like, like, like)
		}
		if f.WorkOrderID != "" {
			q = q.Where("casting_run.work_order_id = ?", f.WorkOrderID)
		}
		if f.HeatNumber != "" {
			q = q.Select("casting_run.*").
				Joins("LEFT JOIN heat_number ON heat_number.id = casting_run.heat_id").
				Where("heat_number.heat_number = ?", f.HeatNumber)
		}
		if f.OperatorID != "" {
			q = q.Where("casting_run.operator_id LIKE ?", contains(f.OperatorID))
		}
		q = dateRange(q, "casting_run.casting_date", f.DateFrom, f.DateTo)
		if v, ok := parseIntBound(f.RpmMin); ok {
			q = q.Where("casting_run.actual_rpm >= ?", v)
		}
		if v, ok := parseIntBound(f.RpmMax); ok {
			q = q.Where("casting_run.actual_rpm <= ?", v)
		}
		return q
	}
}

func compileQualityInspections(term string, f QualityInspectionFilters) Scope {
	return func(q *gorm.DB) *gorm.DB {
		if term != "" {
			like := contains(term)
			q = q.Where("inspector_id LIKE ? OR notes LIKE ? OR corrective_actions LIKE ?", like, like, like)
		}
		if f.InspectorID != "" {
			q = q.Where("inspector_id LIKE ?", contains(f.InspectorID))
		}
		if v, ok := parseIntBound(f.QualityRating); ok {
			q = q.Where("overall_rating = ?", v)
		}
		if f.PassFailStatus != "" {
			q = q.Where("pass_fail_status = ?", f.PassFailStatus)
		}
		return dateRange(q, "inspection_date", f.DateFrom, f.DateTo)
	}
}

func compileMaintenanceRecords(term string, f MaintenanceRecordFilters) Scope {
	return func(q *gorm.DB) *gorm.DB {
		if term != "" {
			like := contains(term)
			q = q.Where("technician_id LIKE ? OR maintenance_performed LIKE ? OR notes LIKE ?", like, like, like)
		}
		if f.EquipmentID != "" {
			q = q.Where("spinner_id = ?", f.EquipmentID)
		}
		if f.MaintenanceType != "" {
			q = q.Where("maintenance_type = ?", f.MaintenanceType)
		}
		if f.TechnicianID != "" {
			q = q.Where("technician_id LIKE ?", contains(f.TechnicianID))
		}
		return dateRange(q, "maintenance_date", f.DateFrom, f.DateTo)
	}
}

func compileDefectRecords(term string, f DefectRecordFilters) Scope {
	return func(q *gorm.DB) *gorm.DB {
		if term != "" {
			like := contains(term)
			q = q.Where("defect_type LIKE ? OR defect_description LIKE ? OR probable_cause LIKE ? OR corrective_action LIKE ?",
				like, like, like, like)
		}
		if f.DefectType != "" {
			q = q.Where("defect_type = ?", f.DefectType)
		}
		if f.DefectSeverity != "" {
			q = q.Where("defect_severity = ?", f.DefectSeverity)
		}
		return q
	}
}

func compileHeatNumbers(term string, f HeatNumberFilters) Scope {
	return func(q *gorm.DB) *gorm.DB {
		if term != "" {
			like := contains(term)
			q = q.Where("heat_number LIKE ? OR furnace_id LIKE ? OR quality_certification LIKE ?", like, like, like)
		}
		if f.AlloyType != "" {
			q = q.Where("alloy_id = ?", f.AlloyType)
		}
		return dateRange(q, "melt_date", f.DateFrom, f.DateTo)
	}
}

func compileWorkOrders(term string, f WorkOrderFilters) Scope {
	return func(q *gorm.DB) *gorm.DB {
		if term != "" {
			like := contains(term)
			q = q.Where("work_order_number LIKE ? OR part_specification LIKE ?", like, like)
		}
		if f.PriorityLevel != "" {
			q = q.Where("priority_level = ?", f.PriorityLevel)
		}
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		return dateRange(q, "order_date", f.DateFrom, f.DateTo)
	}
}
