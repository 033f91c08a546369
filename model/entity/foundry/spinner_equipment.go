package foundry

import "time"

// SpinnerEquipment represents the spinner_equipment table (centrifugal
// casting machines, IDs like "SP001").
type SpinnerEquipment struct {
	ID                   string              `gorm:"column:id;primaryKey;type:varchar(16)" json:"id"`
	EquipmentModel       string              `gorm:"column:equipment_model;type:varchar(64)" json:"equipmentModel"`
	SerialNumber         string              `gorm:"column:serial_number;type:varchar(64)" json:"serialNumber"`
	InstallationDate     time.Time           `gorm:"column:installation_date" json:"installationDate"`
	RatedRpmMax          int                 `gorm:"column:rated_rpm_max" json:"ratedRpmMax"`
	RatedCapacityKg      float64             `gorm:"column:rated_capacity_kg;type:decimal(10,2)" json:"ratedCapacityKg"`
	CurrentCondition     string              `gorm:"column:current_condition;type:varchar(32)" json:"currentCondition"`
	LastMajorService     *time.Time          `gorm:"column:last_major_service" json:"lastMajorService,omitempty"`
	ServiceIntervalHours int                 `gorm:"column:service_interval_hours" json:"serviceIntervalHours"`
	TotalOperatingHours  int                 `gorm:"column:total_operating_hours" json:"totalOperatingHours"`
	Status               string              `gorm:"column:status;type:varchar(32);not null;default:'Active'" json:"status"`
	MaintenanceRecords   []MaintenanceRecord `gorm:"foreignKey:SpinnerID" json:"maintenanceRecords,omitempty"`
}

func (SpinnerEquipment) TableName() string {
	return "spinner_equipment"
}
