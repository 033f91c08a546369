package foundry

import "gorm.io/datatypes"

// AlloyType represents the alloy_type table. IDs are ASTM grade codes ("CA-15").
type AlloyType struct {
	ID                      string         `gorm:"column:id;primaryKey;type:varchar(16)" json:"id"`
	AlloyName               string         `gorm:"column:alloy_name;type:varchar(128);not null" json:"alloyName"`
	AlloySpecification      string         `gorm:"column:alloy_specification;type:varchar(128)" json:"alloySpecification"`
	ChemicalComposition     datatypes.JSON `gorm:"column:chemical_composition" json:"chemicalComposition,omitempty"`
	MechanicalProperties    datatypes.JSON `gorm:"column:mechanical_properties" json:"mechanicalProperties,omitempty"`
	MeltingTemperatureRange string         `gorm:"column:melting_temperature_range;type:varchar(32)" json:"meltingTemperatureRange"`
	PouringTemperatureRange string         `gorm:"column:pouring_temperature_range;type:varchar(32)" json:"pouringTemperatureRange"`
	QualityStandards        string         `gorm:"column:quality_standards;type:varchar(128)" json:"qualityStandards"`
	HeatNumbers             []HeatNumber   `gorm:"foreignKey:AlloyID" json:"heatNumbers,omitempty"`
}

func (AlloyType) TableName() string {
	return "alloy_type"
}
