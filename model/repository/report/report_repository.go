package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	foundry "foundry.GO/model/entity/foundry"
)

// Stats is the dashboard snapshot. Every field is recomputed from the store
// on each call; nothing is cached between requests.
type Stats struct {
	TotalCastingRuns     int64           `json:"totalCastingRuns"`
	TotalDefects         int64           `json:"totalDefects"`
	AvgQualityRating     float64         `json:"avgQualityRating"`
	EquipmentUtilization float64         `json:"equipmentUtilization"`
	RecentActivity       []Activity      `json:"recentActivity"`
	ProductionTrends     []TrendPoint    `json:"productionTrends"`
	QualityDistribution  []RatingBucket  `json:"qualityDistribution"`
	EquipmentStatus      []EquipmentUnit `json:"equipmentStatus"`
}

// Activity is one entry of the merged recent-activity feed.
type Activity struct {
	ID          uint   `json:"id"`
	Type        string `json:"type"`   // "casting" or "inspection"
	Description string `json:"description"`
	Time        string `json:"time"`   // event date, 2006-01-02
	Status      string `json:"status"` // completed | in-progress | defect

	when time.Time
}

// TrendPoint is one calendar-day bucket of the 7-day production series.
type TrendPoint struct {
	Date     string  `json:"date"` // "Jan 2"
	Castings int64   `json:"castings"`
	Quality  float64 `json:"quality"`
}

// RatingBucket is one bar of the overall-rating histogram.
type RatingBucket struct {
	Rating     string  `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// EquipmentUnit is the per-machine status line on the dashboard.
type EquipmentUnit struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Status          string  `json:"status"`
	Utilization     float64 `json:"utilization"`
	LastMaintenance string  `json:"lastMaintenance"`
}

const (
	recentPerSource = 5
	recentFeedCap   = 8
	trendDays       = 7
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

var (
	reportRepoInstance *ReportRepository
	reportRepoOnce     sync.Once
)

// GetReportRepository returns the shared repository, pinned to the handle
// from the first call. Callers with their own handle use NewReportRepository.
func GetReportRepository(db *gorm.DB) *ReportRepository {
	reportRepoOnce.Do(func() {
		reportRepoInstance = NewReportRepository(db)
	})
	return reportRepoInstance
}

// startOfDay truncates to local midnight. Trend windows use server-local
// calendar days; a DST transition makes that day 23h or 25h long, accepted.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// Stats fans the independent sub-queries out through an errgroup and joins
// before assembly. Any sub-query error fails the whole snapshot; nothing
// partial is surfaced.
func (r *ReportRepository) Stats(ctx context.Context) (*Stats, error) {
	var (
		totalRuns    int64
		totalDefects int64
		ratings      []int
		equipment    []foundry.SpinnerEquipment
		maintDates   []foundry.MaintenanceRecord
		recentRuns   []foundry.CastingRun
		recentInsp   []foundry.QualityInspection
		trends       = make([]TrendPoint, trendDays)
	)

	now := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	db := func() *gorm.DB { return r.db.WithContext(gctx) }

	g.Go(func() error {
		return db().Model(&foundry.CastingRun{}).Count(&totalRuns).Error
	})
	g.Go(func() error {
		return db().Model(&foundry.DefectRecord{}).Count(&totalDefects).Error
	})
	g.Go(func() error {
		return db().Model(&foundry.QualityInspection{}).
			Where("overall_rating IS NOT NULL").
			Pluck("overall_rating", &ratings).Error
	})
	g.Go(func() error {
		return db().Order("id ASC").Find(&equipment).Error
	})
	g.Go(func() error {
		return db().Model(&foundry.MaintenanceRecord{}).
			Select("spinner_id", "maintenance_date").Find(&maintDates).Error
	})
	g.Go(func() error {
		return db().Preload("WorkOrder").
			Order("casting_date DESC").Limit(recentPerSource).Find(&recentRuns).Error
	})
	g.Go(func() error {
		return db().Preload("CastingRun.WorkOrder").
			Order("inspection_date DESC").Limit(recentPerSource).Find(&recentInsp).Error
	})

	// One bucket per calendar day, oldest first, today included.
	for i := 0; i < trendDays; i++ {
		i := i
		day := startOfDay(now).AddDate(0, 0, i-(trendDays-1))
		g.Go(func() error {
			next := day.AddDate(0, 0, 1)
			var castings int64
			if err := db().Model(&foundry.CastingRun{}).
				Where("casting_date >= ? AND casting_date < ?", day, next).
				Count(&castings).Error; err != nil {
				return err
			}
			var dayRatings []int
			if err := db().Model(&foundry.QualityInspection{}).
				Where("inspection_date >= ? AND inspection_date < ?", day, next).
				Where("overall_rating IS NOT NULL").
				Pluck("overall_rating", &dayRatings).Error; err != nil {
				return err
			}
			trends[i] = TrendPoint{
				Date:     day.Format("Jan 2"),
				Castings: castings,
				Quality:  meanRating(dayRatings),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	lastMaint := latestMaintenanceBySpinner(maintDates)
	stats := &Stats{
		TotalCastingRuns:     totalRuns,
		TotalDefects:         totalDefects,
		AvgQualityRating:     meanRating(ratings),
		EquipmentUtilization: fleetUtilization(equipment),
		RecentActivity:       buildActivityFeed(recentRuns, recentInsp),
		ProductionTrends:     trends,
		QualityDistribution:  ratingHistogram(ratings),
		EquipmentStatus:      buildEquipmentStatus(equipment, lastMaint, now),
	}
	return stats, nil
}

// meanRating averages non-null ratings; zero when the population is empty.
func meanRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// fleetUtilization is the Active share of the fleet as a percentage.
func fleetUtilization(equipment []foundry.SpinnerEquipment) float64 {
	if len(equipment) == 0 {
		return 0
	}
	active := 0
	for _, eq := range equipment {
		if eq.Status == "Active" {
			active++
		}
	}
	return float64(active) / float64(len(equipment)) * 100
}

func ratingHistogram(ratings []int) []RatingBucket {
	buckets := []RatingBucket{
		{Rating: "Excellent (1)"},
		{Rating: "Good (2)"},
		{Rating: "Needs Attention (3)"},
	}
	for _, r := range ratings {
		if r >= 1 && r <= 3 {
			buckets[r-1].Count++
		}
	}
	if total := len(ratings); total > 0 {
		for i := range buckets {
			buckets[i].Percentage = float64(buckets[i].Count) / float64(total) * 100
		}
	}
	return buckets
}

// buildActivityFeed merges the two recent lists newest-first. Equal
// timestamps keep fetch order, castings before inspections; the feed has
// no finer-grained tiebreak upstream.
func buildActivityFeed(runs []foundry.CastingRun, inspections []foundry.QualityInspection) []Activity {
	feed := make([]Activity, 0, len(runs)+len(inspections))
	for _, run := range runs {
		wo := "Unknown WO"
		if run.WorkOrder != nil {
			wo = run.WorkOrder.WorkOrderNumber
		}
		status := "in-progress"
		if strings.EqualFold(run.Status, "completed") {
			status = "completed"
		}
		feed = append(feed, Activity{
			ID:          run.ID,
			Type:        "casting",
			Description: "Casting completed for " + wo,
			Time:        run.CastingDate.Format("2006-01-02"),
			Status:      status,
			when:        run.CastingDate,
		})
	}
	for _, insp := range inspections {
		wo := "Unknown WO"
		if insp.CastingRun != nil && insp.CastingRun.WorkOrder != nil {
			wo = insp.CastingRun.WorkOrder.WorkOrderNumber
		}
		status := "defect"
		if strings.EqualFold(insp.PassFailStatus, "pass") {
			status = "completed"
		}
		feed = append(feed, Activity{
			ID:          insp.ID,
			Type:        "inspection",
			Description: "Quality inspection for " + wo,
			Time:        insp.InspectionDate.Format("2006-01-02"),
			Status:      status,
			when:        insp.InspectionDate,
		})
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].when.After(feed[j].when)
	})
	if len(feed) > recentFeedCap {
		feed = feed[:recentFeedCap]
	}
	return feed
}

func latestMaintenanceBySpinner(records []foundry.MaintenanceRecord) map[string]time.Time {
	latest := make(map[string]time.Time, len(records))
	for _, rec := range records {
		if cur, ok := latest[rec.SpinnerID]; !ok || rec.MaintenanceDate.After(cur) {
			latest[rec.SpinnerID] = rec.MaintenanceDate
		}
	}
	return latest
}

func buildEquipmentStatus(equipment []foundry.SpinnerEquipment, lastMaint map[string]time.Time, now time.Time) []EquipmentUnit {
	units := make([]EquipmentUnit, 0, len(equipment))
	for _, eq := range equipment {
		name := eq.EquipmentModel
		if name == "" {
			name = fmt.Sprintf("Equipment %s", eq.ID)
		}
		status := eq.Status
		if status == "" {
			status = "Unknown"
		}
		lastService := "Never"
		if t, ok := lastMaint[eq.ID]; ok {
			lastService = t.Format("2006-01-02")
		}
		units = append(units, EquipmentUnit{
			ID:              eq.ID,
			Name:            name,
			Status:          status,
			Utilization:     unitUtilization(eq, lastMaint[eq.ID], now),
			LastMaintenance: lastService,
		})
	}
	return units
}

// unitUtilization is the unit's service-interval consumption: elapsed hours
// since its latest maintenance (falling back to last major service, then
// installation) over the rated service interval, as a clamped percentage.
func unitUtilization(eq foundry.SpinnerEquipment, lastMaint time.Time, now time.Time) float64 {
	if eq.ServiceIntervalHours <= 0 {
		return 0
	}
	ref := lastMaint
	if ref.IsZero() && eq.LastMajorService != nil {
		ref = *eq.LastMajorService
	}
	if ref.IsZero() {
		ref = eq.InstallationDate
	}
	if ref.IsZero() || ref.After(now) {
		return 0
	}
	pct := now.Sub(ref).Hours() / float64(eq.ServiceIntervalHours) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
