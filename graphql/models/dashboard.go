package models

import (
	"strconv"

	"foundry.GO/model/repository/report"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// DashboardStats mirrors report.Stats with graphql-go field types
// (Int maps to int32, so counts are narrowed here).
type DashboardStats struct {
	TotalCastingRuns     int32
	TotalDefects         int32
	AvgQualityRating     float64
	EquipmentUtilization float64
	RecentActivity       []Activity
	ProductionTrends     []TrendPoint
	QualityDistribution  []RatingBucket
	EquipmentStatus      []EquipmentUnit
}

type Activity struct {
	ID          string
	Type        string
	Description string
	Time        string
	Status      string
}

type TrendPoint struct {
	Date     string
	Castings int32
	Quality  float64
}

type RatingBucket struct {
	Rating     string
	Count      int32
	Percentage float64
}

type EquipmentUnit struct {
	ID              string
	Name            string
	Status          string
	Utilization     float64
	LastMaintenance string
}

func DashboardStatsFromReport(s *report.Stats) *DashboardStats {
	out := &DashboardStats{
		TotalCastingRuns:     int32(s.TotalCastingRuns),
		TotalDefects:         int32(s.TotalDefects),
		AvgQualityRating:     s.AvgQualityRating,
		EquipmentUtilization: s.EquipmentUtilization,
		RecentActivity:       make([]Activity, 0, len(s.RecentActivity)),
		ProductionTrends:     make([]TrendPoint, 0, len(s.ProductionTrends)),
		QualityDistribution:  make([]RatingBucket, 0, len(s.QualityDistribution)),
		EquipmentStatus:      make([]EquipmentUnit, 0, len(s.EquipmentStatus)),
	}
	for _, a := range s.RecentActivity {
		out.RecentActivity = append(out.RecentActivity, Activity{
			ID:          itoa(a.ID),
			Type:        a.Type,
			Description: a.Description,
			Time:        a.Time,
			Status:      a.Status,
		})
	}
	for _, p := range s.ProductionTrends {
		out.ProductionTrends = append(out.ProductionTrends, TrendPoint{
			Date:     p.Date,
			Castings: int32(p.Castings),
			Quality:  p.Quality,
		})
	}
	for _, b := range s.QualityDistribution {
		out.QualityDistribution = append(out.QualityDistribution, RatingBucket{
			Rating:     b.Rating,
			Count:      int32(b.Count),
			Percentage: b.Percentage,
		})
	}
	for _, u := range s.EquipmentStatus {
		out.EquipmentStatus = append(out.EquipmentStatus, EquipmentUnit(u))
	}
	return out
}
