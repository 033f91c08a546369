package search

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	foundry "foundry.GO/model/entity/foundry"
)

// ErrUnknownKind is returned for a search type outside the registry.
// Both the search and export surfaces map it to a 400.
var ErrUnknownKind = errors.New("invalid search type")

// SearchCap bounds every query-screen result set.
const SearchCap = 100

// OptionsCap bounds each filter picker list.
const OptionsCap = 100

// querySpec holds everything the dispatcher needs for one kind: how to
// compile its filter bag, which relations to hydrate, and how to bound
// and order the single outbound query.
type querySpec struct {
	compile  func(term string, filters map[string]string) (Scope, error)
	preloads []string
	order    string
	find     func(q *gorm.DB) (interface{}, error)
	model    interface{}
}

func findInto[T any](q *gorm.DB) (interface{}, error) {
	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// searchRegistry is built once at package init; kinds are never added at
// runtime.
var searchRegistry = map[Kind]querySpec{
	KindCastingRuns: {
		compile: func(term string, filters map[string]string) (Scope, error) {
			var f CastingRunFilters
			if err := decodeFilters(filters, &f); err != nil {
				return nil, err
			}
			return compileCastingRuns(term, f), nil
		},
		preloads: []string{"WorkOrder", "HeatNumber.AlloyType", "MoldSpecification"},
		order:    "casting_run.casting_date DESC",
		find:     findInto[foundry.CastingRun],
		model:    &foundry.CastingRun{},
	},
	KindQualityInspections: {
		compile: func(term string, filters map[string]string) (Scope, error) {
			var f QualityInspectionFilters
			if err := decodeFilters(filters, &f); err != nil {
				return nil, err
			}
			return compileQualityInspections(term, f), nil
		},
		preloads: []string{"CastingRun.WorkOrder", "CastingRun.HeatNumber"},
		order:    "inspection_date DESC",
		find:     findInto[foundry.QualityInspection],
		model:    &foundry.QualityInspection{},
	},
	KindMaintenanceRecords: {
		compile: func(term string, filters map[string]string) (Scope, error) {
			var f MaintenanceRecordFilters
			if err := decodeFilters(filters, &f); err != nil {
				return nil, err
			}
			return compileMaintenanceRecords(term, f), nil
		},
		preloads: []string{"SpinnerEquipment"},
		order:    "maintenance_date DESC",
		find:     findInto[foundry.MaintenanceRecord],
		model:    &foundry.MaintenanceRecord{},
	},
	KindDefectRecords: {
		compile: func(term string, filters map[string]string) (Scope, error) {
			var f DefectRecordFilters
			if err := decodeFilters(filters, &f); err != nil {
				return nil, err
			}
			return compileDefectRecords(term, f), nil
		},
		preloads: []string{"CastingRun.WorkOrder", "CastingRun.HeatNumber", "QualityInspection"},
		order:    "id DESC",
		find:     findInto[foundry.DefectRecord],
		model:    &foundry.DefectRecord{},
	},
	KindHeatNumbers: {
		compile: func(term string, filters map[string]string) (Scope, error) {
			var f HeatNumberFilters
			if err := decodeFilters(filters, &f); err != nil {
				return nil, err
			}
			return compileHeatNumbers(term, f), nil
		},
		preloads: []string{"AlloyType"},
		order:    "heat_number DESC",
		find:     findInto[foundry.HeatNumber],
		model:    &foundry.HeatNumber{},
	},
	KindWorkOrders: {
		compile: func(term string, filters map[string]string) (Scope, error) {
			var f WorkOrderFilters
			if err := decodeFilters(filters, &f); err != nil {
				return nil, err
			}
			return compileWorkOrders(term, f), nil
		},
		order: "created_date DESC",
		find:  findInto[foundry.WorkOrder],
		model: &foundry.WorkOrder{},
	},
}

type SearchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

var (
	searchRepoInstance *SearchRepository
	searchRepoOnce     sync.Once
)

// GetSearchRepository returns the shared repository. The handle from the
// first call is kept for the life of the process; later calls ignore their
// argument. Callers with their own handle use NewSearchRepository.
func GetSearchRepository(db *gorm.DB) *SearchRepository {
	searchRepoOnce.Do(func() {
		searchRepoInstance = NewSearchRepository(db)
	})
	return searchRepoInstance
}

// Search compiles the filter bag for kind and runs one bounded query,
// newest records first. Results are a []T of the kind's entity type.
func (r *SearchRepository) Search(ctx context.Context, kind Kind, term string, filters map[string]string) (interface{}, error) {
	spec, ok := searchRegistry[kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	scope, err := spec.compile(term, filters)
	if err != nil {
		return nil, err
	}
	q := r.db.WithContext(ctx)
	for _, p := range spec.preloads {
		q = q.Preload(p)
	}
	return spec.find(scope(q).Order(spec.order).Limit(SearchCap))
}

// Count runs the compiled predicate as a COUNT, without cap or ordering.
func (r *SearchRepository) Count(ctx context.Context, kind Kind, term string, filters map[string]string) (int64, error) {
	spec, ok := searchRegistry[kind]
	if !ok {
		return 0, ErrUnknownKind
	}
	scope, err := spec.compile(term, filters)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := scope(r.db.WithContext(ctx).Model(spec.model)).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Picker option shapes for the query screen (wire format matches the UI).

type WorkOrderOption struct {
	ID              string `json:"id"`
	WorkOrderNumber string `json:"workOrderNumber"`
}

type HeatNumberOption struct {
	HeatNumber string `json:"heatNumber"`
	AlloyType  struct {
		AlloyName string `json:"alloyName"`
	} `json:"alloyType"`
}

type AlloyTypeOption struct {
	ID        string `json:"id"`
	AlloyName string `json:"alloyName"`
}

type EquipmentOption struct {
	ID             string `json:"id"`
	EquipmentModel string `json:"equipmentModel"`
}

type Options struct {
	WorkOrders  []WorkOrderOption  `json:"workOrders"`
	HeatNumbers []HeatNumberOption `json:"heatNumbers"`
	AlloyTypes  []AlloyTypeOption  `json:"alloyTypes"`
	Equipment   []EquipmentOption  `json:"equipment"`
}

// Options returns the distinct value lists backing the filter pickers,
// each capped at OptionsCap.
func (r *SearchRepository) Options(ctx context.Context) (*Options, error) {
	out := &Options{
		WorkOrders:  []WorkOrderOption{},
		HeatNumbers: []HeatNumberOption{},
		AlloyTypes:  []AlloyTypeOption{},
		Equipment:   []EquipmentOption{},
	}
	db := r.db.WithContext(ctx)

	var workOrders []foundry.WorkOrder
	if err := db.Order("created_date DESC").Limit(OptionsCap).Find(&workOrders).Error; err != nil {
		return nil, err
	}
	for _, wo := range workOrders {
		out.WorkOrders = append(out.WorkOrders, WorkOrderOption{ID: wo.ID, WorkOrderNumber: wo.WorkOrderNumber})
	}

	var heats []foundry.HeatNumber
	if err := db.Preload("AlloyType").Order("heat_number DESC").Limit(OptionsCap).Find(&heats).Error; err != nil {
		return nil, err
	}
	for _, h := range heats {
		opt := HeatNumberOption{HeatNumber: h.HeatNumber}
		if h.AlloyType != nil {
			opt.AlloyType.AlloyName = h.AlloyType.AlloyName
		}
		out.HeatNumbers = append(out.HeatNumbers, opt)
	}

	var alloys []foundry.AlloyType
	if err := db.Order("id ASC").Limit(OptionsCap).Find(&alloys).Error; err != nil {
		return nil, err
	}
	for _, a := range alloys {
		out.AlloyTypes = append(out.AlloyTypes, AlloyTypeOption{ID: a.ID, AlloyName: a.AlloyName})
	}

	var equipment []foundry.SpinnerEquipment
	if err := db.Order("id ASC").Limit(OptionsCap).Find(&equipment).Error; err != nil {
		return nil, err
	}
	for _, e := range equipment {
		out.Equipment = append(out.Equipment, EquipmentOption{ID: e.ID, EquipmentModel: e.EquipmentModel})
	}
	return out, nil
}
