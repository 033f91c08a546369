package records

import (
	"context"
	"strconv"
	"sync"

	"gorm.io/gorm"

	foundry "foundry.GO/model/entity/foundry"
)

// RecordsRepository covers the data-entry side of the store: creating the
// six record kinds and serving the form option lists.
type RecordsRepository struct {
	db *gorm.DB
}

func NewRecordsRepository(db *gorm.DB) *RecordsRepository {
	return &RecordsRepository{db: db}
}

var (
	recordsRepoInstance *RecordsRepository
	recordsRepoOnce     sync.Once
)

// GetRecordsRepository returns the shared repository, pinned to the handle
// from the first call. Callers with their own handle use NewRecordsRepository.
func GetRecordsRepository(db *gorm.DB) *RecordsRepository {
	recordsRepoOnce.Do(func() {
		recordsRepoInstance = NewRecordsRepository(db)
	})
	return recordsRepoInstance
}

func (r *RecordsRepository) CreateWorkOrder(ctx context.Context, wo *foundry.WorkOrder) error {
	return r.db.WithContext(ctx).Create(wo).Error
}

func (r *RecordsRepository) CreateHeatNumber(ctx context.Context, h *foundry.HeatNumber) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *RecordsRepository) CreateCastingRun(ctx context.Context, run *foundry.CastingRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *RecordsRepository) CreateQualityInspection(ctx context.Context, insp *foundry.QualityInspection) error {
	return r.db.WithContext(ctx).Create(insp).Error
}

func (r *RecordsRepository) CreateMaintenanceRecord(ctx context.Context, rec *foundry.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RecordsRepository) CreateDefectRecord(ctx context.Context, d *foundry.DefectRecord) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// AlloyTypes lists all alloy grades for the entry forms.
func (r *RecordsRepository) AlloyTypes(ctx context.Context) ([]foundry.AlloyType, error) {
	var alloys []foundry.AlloyType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&alloys).Error
	return alloys, err
}

// SpinnerEquipment lists all spinners, including inactive ones.
func (r *RecordsRepository) SpinnerEquipment(ctx context.Context) ([]foundry.SpinnerEquipment, error) {
	var spinners []foundry.SpinnerEquipment
	err := r.db.WithContext(ctx).Order("id ASC").Find(&spinners).Error
	return spinners, err
}

// CastingRunOptions holds the picker lists for the casting-run entry form.
// Only Active spinners are offered.
type CastingRunOptions struct {
	WorkOrders  []foundry.WorkOrder         `json:"workOrders"`
	HeatNumbers []foundry.HeatNumber        `json:"heatNumbers"`
	Molds       []foundry.MoldSpecification `json:"molds"`
	Spinners    []foundry.SpinnerEquipment  `json:"spinners"`
}

func (r *RecordsRepository) CastingRunOptions(ctx context.Context) (*CastingRunOptions, error) {
	db := r.db.WithContext(ctx)
	out := &CastingRunOptions{}
	if err := db.Order("created_date DESC").Find(&out.WorkOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("AlloyType").Order("heat_number DESC").Find(&out.HeatNumbers).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&out.Molds).Error; err != nil {
		return nil, err
	}
	if err := db.Where("status = ?", "Active").Order("id ASC").Find(&out.Spinners).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// RecentCastingRuns feeds the entry hub's "latest runs" panel.
func (r *RecordsRepository) RecentCastingRuns(ctx context.Context, limit int) ([]foundry.CastingRun, error) {
	var runs []foundry.CastingRun
	err := r.db.WithContext(ctx).
		Preload("WorkOrder").Preload("HeatNumber").
		Order("casting_date DESC").Limit(limit).Find(&runs).Error
	return runs, err
}

// NextHeatNumber increments the highest assigned heat number. Heat numbers
// are numeric-lexical strings; 230 is the historical starting point.
func (r *RecordsRepository) NextHeatNumber(ctx context.Context) (string, error) {
	var last foundry.HeatNumber
	err := r.db.WithContext(ctx).Order("heat_number DESC").First(&last).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "230", nil
		}
		return "", err
	}
	n, convErr := strconv.Atoi(last.HeatNumber)
	if convErr != nil {
		return "230", nil
	}
	return strconv.Itoa(n + 1), nil
}
