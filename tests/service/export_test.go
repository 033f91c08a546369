package servicetest

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	searchRepo "foundry.GO/model/repository/search"
	exportService "foundry.GO/service/export"
)

func parseCSV(t *testing.T, data string) [][]string {
	t.Helper()
	rows, err := csv.NewReader(strings.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return rows
}

func TestCSV_CastingRuns_ColumnsAndNesting(t *testing.T) {
	results := []map[string]interface{}{
		{
			"id": float64(1),
			"workOrder": map[string]interface{}{
				"workOrderNumber": "WO-2024-001",
			},
			"heatNumber": map[string]interface{}{
				"heatNumber": "227",
				"alloyType": map[string]interface{}{
					"alloyName": "Cast Austenitic Steel - Standard",
				},
			},
			"castingDate":     "2024-07-20T00:00:00Z",
			"operatorId":      "OP001",
			"rpmSetting":      float64(650),
			"actualRpm":       float64(648),
			"pourTemperature": float64(1495.5),
			"castingWeightKg": float64(23.75),
			"status":          "Completed",
			"notes":           "Good pour, smooth operation",
		},
	}

	out, err := exportService.CSV(searchRepo.KindCastingRuns, results)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	rows := parseCSV(t, out)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	header := rows[0]
	if len(header) != 12 {
		t.Fatalf("columns = %d, want 12", len(header))
	}
	if header[0] != "Casting Run ID" || header[11] != "Notes" {
		t.Errorf("header = %v", header)
	}
	row := rows[1]
	if row[1] != "WO-2024-001" {
		t.Errorf("work order = %q", row[1])
	}
	if row[3] != "Cast Austenitic Steel - Standard" {
		t.Errorf("alloy = %q", row[3])
	}
	if row[4] != "2024-07-20" {
		t.Errorf("casting date = %q, want 2024-07-20", row[4])
	}
	if row[8] != "1495.5" {
		t.Errorf("pour temperature = %q, want 1495.5", row[8])
	}
}

func TestCSV_QuotingSurvivesRoundTrip(t *testing.T) {
	results := []map[string]interface{}{
		{
			"id":                float64(7),
			"defectType":        "Crack, minor",
			"defectSeverity":    "Low",
			"defectDescription": "Said to be \"cosmetic\"\nsecond line",
			"status":            "Open",
		},
	}

	out, err := exportService.CSV(searchRepo.KindDefectRecords, results)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	rows := parseCSV(t, out)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	row := rows[1]
	if len(row) != 11 {
		t.Fatalf("columns = %d, want 11 (embedded comma must not split)", len(row))
	}
	if row[3] != "Crack, minor" {
		t.Errorf("defect type = %q, want the comma preserved", row[3])
	}
	if row[6] != "Said to be \"cosmetic\"\nsecond line" {
		t.Errorf("description = %q, want quotes and newline preserved", row[6])
	}
}

func TestCSV_MissingFieldsRenderEmpty(t *testing.T) {
	results := []map[string]interface{}{
		{"id": float64(3), "heatNumber": "230", "status": "Available"},
	}
	out, err := exportService.CSV(searchRepo.KindHeatNumbers, results)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	rows := parseCSV(t, out)
	row := rows[1]
	if row[1] != "230" {
		t.Errorf("heat number = %q", row[1])
	}
	// alloyType relation absent: empty cell, not an error
	if row[2] != "" {
		t.Errorf("alloy = %q, want empty", row[2])
	}
	if row[4] != "" {
		t.Errorf("melt date = %q, want empty", row[4])
	}
}

func TestCSV_RowOrderPreserved(t *testing.T) {
	results := []map[string]interface{}{
		{"id": float64(2), "workOrderNumber": "WO-B"},
		{"id": float64(1), "workOrderNumber": "WO-A"},
	}
	out, err := exportService.CSV(searchRepo.KindWorkOrders, results)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	rows := parseCSV(t, out)
	if rows[1][1] != "WO-B" || rows[2][1] != "WO-A" {
		t.Errorf("rows reordered: %v", rows[1:])
	}
}

func TestCSV_NoResults(t *testing.T) {
	_, err := exportService.CSV(searchRepo.KindCastingRuns, nil)
	if !errors.Is(err, exportService.ErrNoResults) {
		t.Errorf("err = %v, want ErrNoResults", err)
	}
}

func TestCSV_UnknownKind(t *testing.T) {
	_, err := exportService.CSV(searchRepo.Kind("widgets"), []map[string]interface{}{{"id": 1.0}})
	if !errors.Is(err, searchRepo.ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestFilename(t *testing.T) {
	if got := exportService.Filename(searchRepo.KindCastingRuns); got != "foundry-casting-runs-export.csv" {
		t.Errorf("Filename = %q", got)
	}
}
