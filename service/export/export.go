package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	search "foundry.GO/model/repository/search"
)

// ErrNoResults is returned for an empty export request; the API maps both
// errors here and search.ErrUnknownKind to a 400.
var ErrNoResults = errors.New("no results to export")

// column pairs a header label with a deterministic scalar extractor.
type column struct {
	Header string
	Value  func(rec map[string]interface{}) string
}

// field walks a nested result map; missing hops fall back to "".
func field(rec map[string]interface{}, path ...string) string {
	var cur interface{} = rec
	for _, key := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return ""
		}
		cur, ok = m[key]
		if !ok {
			return ""
		}
	}
	return scalar(cur)
}

func scalar(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// renderDate normalizes a JSON date value to the locale-stable 2006-01-02
// form. Unparseable values pass through unchanged.
func renderDate(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

func col(header string, path ...string) column {
	return column{Header: header, Value: func(rec map[string]interface{}) string {
		return field(rec, path...)
	}}
}

func dateCol(header string, path ...string) column {
	return column{Header: header, Value: func(rec map[string]interface{}) string {
		return renderDate(field(rec, path...))
	}}
}

// exportRegistry holds the ordered column schema per kind, built once.
var exportRegistry = map[search.Kind][]column{
	search.KindCastingRuns: {
		col("Casting Run ID", "id"),
		col("Work Order", "workOrder", "workOrderNumber"),
		col("Heat Number", "heatNumber", "heatNumber"),
		col("Alloy Type", "heatNumber", "alloyType", "alloyName"),
		dateCol("Casting Date", "castingDate"),
		col("Operator ID", "operatorId"),
		col("RPM Setting", "rpmSetting"),
		col("Actual RPM", "actualRpm"),
		col("Pour Temperature", "pourTemperature"),
		col("Casting Weight (kg)", "castingWeightKg"),
		col("Status", "status"),
		col("Notes", "notes"),
	},
	search.KindQualityInspections: {
		col("Inspection ID", "id"),
		col("Work Order", "castingRun", "workOrder", "workOrderNumber"),
		dateCol("Inspection Date", "inspectionDate"),
		col("Inspector ID", "inspectorId"),
		col("Inspection Type", "inspectionType"),
		col("Overall Rating", "overallRating"),
		col("Surface Rating", "surfaceQualityRating"),
		col("Internal Rating", "internalQualityRating"),
		col("Pass/Fail Status", "passFailStatus"),
		col("Corrective Actions", "correctiveActions"),
		col("Notes", "notes"),
	},
	search.KindMaintenanceRecords: {
		col("Maintenance ID", "id"),
		col("Equipment ID", "spinnerId"),
		col("Equipment Model", "spinnerEquipment", "equipmentModel"),
		dateCol("Maintenance Date", "maintenanceDate"),
		col("Maintenance Type", "maintenanceType"),
		col("Technician ID", "technicianId"),
		col("Current RPM", "currentRpm"),
		col("Target RPM", "targetRpm"),
		col("Vibration Level", "vibrationLevel"),
		col("Temperature Reading", "temperatureReading"),
		col("Cost", "cost"),
		col("Condition After Service", "conditionAfterService"),
		col("Notes", "notes"),
	},
	search.KindDefectRecords: {
		col("Defect ID", "id"),
		col("Work Order", "castingRun", "workOrder", "workOrderNumber"),
		col("Heat Number", "castingRun", "heatNumber", "heatNumber"),
		col("Defect Type", "defectType"),
		col("Severity", "defectSeverity"),
		col("Location", "defectLocation"),
		col("Description", "defectDescription"),
		col("Probable Cause", "probableCause"),
		col("Corrective Action", "correctiveAction"),
		col("Cost Impact", "costImpact"),
		col("Status", "status"),
	},
	search.KindHeatNumbers: {
		col("Heat ID", "id"),
		col("Heat Number", "heatNumber"),
		col("Alloy Type", "alloyType", "alloyName"),
		col("Batch Size (kg)", "batchSizeKg"),
		dateCol("Melt Date", "meltDate"),
		col("Furnace ID", "furnaceId"),
		col("Quality Certification", "qualityCertification"),
		col("Status", "status"),
	},
	search.KindWorkOrders: {
		col("Work Order ID", "id"),
		col("Work Order Number", "workOrderNumber"),
		col("Customer ID", "customerId"),
		col("Part Specification", "partSpecification"),
		col("Quantity Ordered", "quantityOrdered"),
		dateCol("Order Date", "orderDate"),
		dateCol("Due Date", "dueDate"),
		col("Priority Level", "priorityLevel"),
		col("Status", "status"),
	},
}

// CSV serializes results for kind: header row, then one row per record in
// the order given. Quoting follows encoding/csv, so embedded commas, quotes
// and newlines survive a spreadsheet-correct parse.
func CSV(kind search.Kind, results []map[string]interface{}) (string, error) {
	cols, ok := exportRegistry[kind]
	if !ok {
		return "", search.ErrUnknownKind
	}
	if len(results) == 0 {
		return "", ErrNoResults
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	if err := w.Write(headers); err != nil {
		return "", err
	}
	row := make([]string, len(cols))
	for _, rec := range results {
		for i, c := range cols {
			row[i] = c.Value(rec)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Filename is the attachment name for a kind's export.
func Filename(kind search.Kind) string {
	return fmt.Sprintf("foundry-%s-export.csv", kind)
}
