package foundry

import "time"

// WorkOrder represents the work_order table.
type WorkOrder struct {
	ID                string       `gorm:"column:id;primaryKey;type:varchar(32)" json:"id"`
	WorkOrderNumber   string       `gorm:"column:work_order_number;type:varchar(32);not null;uniqueIndex" json:"workOrderNumber"`
	CustomerID        string       `gorm:"column:customer_id;type:varchar(32);not null" json:"customerId"`
	PartSpecification string       `gorm:"column:part_specification;type:varchar(255);not null" json:"partSpecification"`
	QuantityOrdered   int          `gorm:"column:quantity_ordered;not null" json:"quantityOrdered"`
	OrderDate         time.Time    `gorm:"column:order_date;not null" json:"orderDate"`
	DueDate           *time.Time   `gorm:"column:due_date" json:"dueDate,omitempty"`
	PriorityLevel     string       `gorm:"column:priority_level;type:varchar(16);not null;default:'Medium'" json:"priorityLevel"`
	Status            string       `gorm:"column:status;type:varchar(32);not null;default:'Pending'" json:"status"`
	CreatedDate       time.Time    `gorm:"column:created_date;autoCreateTime" json:"createdDate"`
	CastingRuns       []CastingRun `gorm:"foreignKey:WorkOrderID" json:"castingRuns,omitempty"`
}

func (WorkOrder) TableName() string {
	return "work_order"
}
