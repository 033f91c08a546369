package apitest

import (
	"encoding/json"
	"net/http"
	"testing"
)

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func queryGraphQL(t *testing.T, query string) gqlResponse {
	t.Helper()
	rec := postJSON(t, "/graphql", map[string]string{"query": query})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp gqlResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v\nbody: %s", err, rec.Body.String())
	}
	return resp
}

func TestGraphQL_Search(t *testing.T) {
	resp := queryGraphQL(t, `{ search(type: "casting-runs", term: "WO-2024-001") { count records } }`)
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	var data struct {
		Search struct {
			Count   int32  `json:"count"`
			Records string `json:"records"`
		} `json:"search"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Search.Count != 2 {
		t.Errorf("count = %d, want 2", data.Search.Count)
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(data.Search.Records), &rows); err != nil {
		t.Fatalf("records is not a JSON array: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("records carries %d rows, want 2", len(rows))
	}
}

func TestGraphQL_SearchWithFilters(t *testing.T) {
	resp := queryGraphQL(t, `{ search(type: "casting-runs", filters: "{\"rpmMin\": \"660\"}") { count } }`)
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	var data struct {
		Search struct {
			Count int32 `json:"count"`
		} `json:"search"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Search.Count != 1 {
		t.Errorf("count = %d, want 1", data.Search.Count)
	}
}

func TestGraphQL_SearchUnknownType(t *testing.T) {
	resp := queryGraphQL(t, `{ search(type: "purchase-orders") { count } }`)
	if len(resp.Errors) == 0 {
		t.Fatal("want error for unknown search type")
	}
}

func TestGraphQL_DashboardStats(t *testing.T) {
	resp := queryGraphQL(t, `{ dashboardStats {
		totalCastingRuns
		totalDefects
		productionTrends { date castings }
		qualityDistribution { rating count percentage }
		equipmentStatus { id name status lastMaintenance }
	} }`)
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	var data struct {
		DashboardStats struct {
			TotalCastingRuns int32 `json:"totalCastingRuns"`
			TotalDefects     int32 `json:"totalDefects"`
			ProductionTrends []struct {
				Date string `json:"date"`
			} `json:"productionTrends"`
			QualityDistribution []struct {
				Rating string `json:"rating"`
			} `json:"qualityDistribution"`
			EquipmentStatus []struct {
				ID string `json:"id"`
			} `json:"equipmentStatus"`
		} `json:"dashboardStats"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	s := data.DashboardStats
	if s.TotalCastingRuns < 3 {
		t.Errorf("totalCastingRuns = %d", s.TotalCastingRuns)
	}
	if len(s.ProductionTrends) != 7 {
		t.Errorf("got %d trend points, want 7", len(s.ProductionTrends))
	}
	if len(s.QualityDistribution) != 3 {
		t.Errorf("got %d rating buckets, want 3", len(s.QualityDistribution))
	}
	if len(s.EquipmentStatus) == 0 || s.EquipmentStatus[0].ID != "SP001" {
		t.Errorf("equipmentStatus = %+v", s.EquipmentStatus)
	}
}

func TestGraphQL_ExtensionPing(t *testing.T) {
	resp := queryGraphQL(t, `{ _extension(name: "ping") }`)
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	var data struct {
		Extension *string `json:"_extension"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Extension == nil {
		t.Fatal("_extension returned null")
	}
	var payload map[string]string
	if err := json.Unmarshal([]byte(*data.Extension), &payload); err != nil {
		t.Fatalf("extension payload not JSON: %v", err)
	}
	if payload["pong"] != "ok" {
		t.Errorf("ping payload = %v", payload)
	}
}

func TestGraphQL_UnknownExtension(t *testing.T) {
	resp := queryGraphQL(t, `{ _extension(name: "does-not-exist") }`)
	if len(resp.Errors) == 0 {
		t.Fatal("want error for unregistered extension")
	}
}
