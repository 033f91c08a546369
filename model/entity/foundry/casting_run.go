package foundry

import "time"

// CastingRun represents the casting_run table, the central production record.
// One run is one spin of one mold against one heat for one work order.
type CastingRun struct {
	ID                 uint                `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	WorkOrderID        string              `gorm:"column:work_order_id;type:varchar(32);not null;index" json:"workOrderId"`
	HeatID             uint                `gorm:"column:heat_id;not null;index" json:"heatId"`
	MoldID             uint                `gorm:"column:mold_id;not null" json:"moldId"`
	SpinnerID          string              `gorm:"column:spinner_id;type:varchar(16);not null" json:"spinnerId"`
	ShiftNumber        int                 `gorm:"column:shift_number;not null;default:1" json:"shiftNumber"`
	OperatorID         string              `gorm:"column:operator_id;type:varchar(32);not null" json:"operatorId"`
	CastingDate        time.Time           `gorm:"column:casting_date;not null;index" json:"castingDate"`
	RpmSetting         int                 `gorm:"column:rpm_setting;not null" json:"rpmSetting"`
	ActualRpm          *int                `gorm:"column:actual_rpm" json:"actualRpm,omitempty"`
	PourTemperature    *float64            `gorm:"column:pour_temperature;type:decimal(7,2)" json:"pourTemperature,omitempty"`
	AmbientTemperature *float64            `gorm:"column:ambient_temperature;type:decimal(5,2)" json:"ambientTemperature,omitempty"`
	CastingWeightKg    *float64            `gorm:"column:casting_weight_kg;type:decimal(10,2)" json:"castingWeightKg,omitempty"`
	CycleTimeMinutes   *int                `gorm:"column:cycle_time_minutes" json:"cycleTimeMinutes,omitempty"`
	PackageInfo        *string             `gorm:"column:package_info;type:varchar(255)" json:"packageInfo,omitempty"`
	OperationalGravity *string             `gorm:"column:operational_gravity;type:varchar(32)" json:"operationalGravity,omitempty"`
	Status             string              `gorm:"column:status;type:varchar(32);not null;default:'In Progress'" json:"status"`
	Notes              *string             `gorm:"column:notes;type:text" json:"notes,omitempty"`
	WorkOrder          *WorkOrder          `gorm:"foreignKey:WorkOrderID" json:"workOrder,omitempty"`
	HeatNumber         *HeatNumber         `gorm:"foreignKey:HeatID" json:"heatNumber,omitempty"`
	MoldSpecification  *MoldSpecification  `gorm:"foreignKey:MoldID" json:"moldSpecification,omitempty"`
	QualityInspections []QualityInspection `gorm:"foreignKey:CastingRunID" json:"qualityInspections,omitempty"`
}

func (CastingRun) TableName() string {
	return "casting_run"
}
