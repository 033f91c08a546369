package foundry

type MoldSpecification struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MoldType     string `gorm:"column:mold_type;type:varchar(64);not null" json:"moldType"`
	CastingSize  string `gorm:"column:casting_size;type:varchar(64)" json:"castingSize"`
	MoldMaterial string `gorm:"column:mold_material;type:varchar(64)" json:"moldMaterial"`
	Status       string `gorm:"column:status;type:varchar(32);not null;default:'Active'" json:"status"`
}

func (MoldSpecification) TableName() string {
	return "mold_specification"
}
