package foundry

import "time"

// HeatNumber represents the heat_number table. The heat number itself is a
// numeric-lexical string ("231", "232", ...) assigned sequentially.
type HeatNumber struct {
	ID                   uint         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	HeatNumber           string       `gorm:"column:heat_number;type:varchar(16);not null;uniqueIndex" json:"heatNumber"`
	AlloyID              string       `gorm:"column:alloy_id;type:varchar(16);not null" json:"alloyId"`
	BatchSizeKg          float64      `gorm:"column:batch_size_kg;type:decimal(10,2);not null" json:"batchSizeKg"`
	MeltDate             time.Time    `gorm:"column:melt_date;not null" json:"meltDate"`
	FurnaceID            string       `gorm:"column:furnace_id;type:varchar(16)" json:"furnaceId"`
	QualityCertification string       `gorm:"column:quality_certification;type:varchar(64)" json:"qualityCertification"`
	Status               string       `gorm:"column:status;type:varchar(32);not null;default:'Available'" json:"status"`
	AlloyType            *AlloyType   `gorm:"foreignKey:AlloyID" json:"alloyType,omitempty"`
	CastingRuns          []CastingRun `gorm:"foreignKey:HeatID" json:"castingRuns,omitempty"`
}

func (HeatNumber) TableName() string {
	return "heat_number"
}
