package foundry

import "time"

// QualityInspection represents the quality_inspection table.
// OverallRating is 1 (excellent) to 3 (needs attention), null until rated.
type QualityInspection struct {
	ID                    uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CastingRunID          uint           `gorm:"column:casting_run_id;not null;index" json:"castingRunId"`
	InspectorID           string         `gorm:"column:inspector_id;type:varchar(32);not null" json:"inspectorId"`
	InspectionDate        time.Time      `gorm:"column:inspection_date;not null;index" json:"inspectionDate"`
	InspectionType        string         `gorm:"column:inspection_type;type:varchar(64)" json:"inspectionType"`
	OverallRating         *int           `gorm:"column:overall_rating" json:"overallRating,omitempty"`
	SurfaceQualityRating  *int           `gorm:"column:surface_quality_rating" json:"surfaceQualityRating,omitempty"`
	InternalQualityRating *int           `gorm:"column:internal_quality_rating" json:"internalQualityRating,omitempty"`
	PassFailStatus        string         `gorm:"column:pass_fail_status;type:varchar(16);not null" json:"passFailStatus"`
	CorrectiveActions     *string        `gorm:"column:corrective_actions;type:text" json:"correctiveActions,omitempty"`
	Notes                 *string        `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CastingRun            *CastingRun    `gorm:"foreignKey:CastingRunID" json:"castingRun,omitempty"`
	DefectRecords         []DefectRecord `gorm:"foreignKey:InspectionID" json:"defectRecords,omitempty"`
}

func (QualityInspection) TableName() string {
	return "quality_inspection"
}
