package foundry

import (
	"time"

	"gorm.io/datatypes"
)

// MaintenanceRecord represents the maintenance_record table.
// PartsReplaced is a JSON array of part names.
type MaintenanceRecord struct {
	ID                    uint              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SpinnerID             string            `gorm:"column:spinner_id;type:varchar(16);not null;index" json:"spinnerId"`
	MaintenanceDate       time.Time         `gorm:"column:maintenance_date;not null;index" json:"maintenanceDate"`
	MaintenanceType       string            `gorm:"column:maintenance_type;type:varchar(32);not null" json:"maintenanceType"`
	TechnicianID          string            `gorm:"column:technician_id;type:varchar(32);not null" json:"technicianId"`
	MaintenancePerformed  string            `gorm:"column:maintenance_performed;type:text" json:"maintenancePerformed"`
	CurrentRpm            *int              `gorm:"column:current_rpm" json:"currentRpm,omitempty"`
	TargetRpm             *int              `gorm:"column:target_rpm" json:"targetRpm,omitempty"`
	VibrationLevel        *float64          `gorm:"column:vibration_level;type:decimal(6,3)" json:"vibrationLevel,omitempty"`
	TemperatureReading    *float64          `gorm:"column:temperature_reading;type:decimal(6,2)" json:"temperatureReading,omitempty"`
	Cost                  *float64          `gorm:"column:cost;type:decimal(10,2)" json:"cost,omitempty"`
	ConditionAfterService *string           `gorm:"column:condition_after_service;type:varchar(32)" json:"conditionAfterService,omitempty"`
	PartsReplaced         datatypes.JSON    `gorm:"column:parts_replaced" json:"partsReplaced,omitempty"`
	Notes                 *string           `gorm:"column:notes;type:text" json:"notes,omitempty"`
	SpinnerEquipment      *SpinnerEquipment `gorm:"foreignKey:SpinnerID" json:"spinnerEquipment,omitempty"`
}

func (MaintenanceRecord) TableName() string {
	return "maintenance_record"
}
