package foundry

// DefectRecord represents the defect_record table. Defects always hang off
// the inspection that found them and the run that produced them.
type DefectRecord struct {
	ID                uint               `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	InspectionID      uint               `gorm:"column:inspection_id;not null;index" json:"inspectionId"`
	CastingRunID      uint               `gorm:"column:casting_run_id;not null;index" json:"castingRunId"`
	DefectType        string             `gorm:"column:defect_type;type:varchar(64);not null" json:"defectType"`
	DefectSeverity    string             `gorm:"column:defect_severity;type:varchar(16);not null" json:"defectSeverity"`
	DefectLocation    *string            `gorm:"column:defect_location;type:varchar(128)" json:"defectLocation,omitempty"`
	DefectDescription *string            `gorm:"column:defect_description;type:text" json:"defectDescription,omitempty"`
	ProbableCause     *string            `gorm:"column:probable_cause;type:text" json:"probableCause,omitempty"`
	CorrectiveAction  *string            `gorm:"column:corrective_action;type:text" json:"correctiveAction,omitempty"`
	CostImpact        *float64           `gorm:"column:cost_impact;type:decimal(10,2)" json:"costImpact,omitempty"`
	Status            string             `gorm:"column:status;type:varchar(32);not null;default:'Open'" json:"status"`
	CastingRun        *CastingRun        `gorm:"foreignKey:CastingRunID" json:"castingRun,omitempty"`
	QualityInspection *QualityInspection `gorm:"foreignKey:InspectionID" json:"qualityInspection,omitempty"`
}

func (DefectRecord) TableName() string {
	return "defect_record"
}
