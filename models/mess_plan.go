package models

import "gorm.io/gorm"

type MessPlan struct {
	ID          uint     `gorm:"primaryKey;column:plan_id" json:"plan_id"`
	PlanType    PlanType `gorm:"size:10;not null" json:"plan_type"`
	Cost        float64  `gorm:"type:decimal(10,2);not null;check:chk_mess_plans_cost,cost >= 0" json:"cost"`
	Description *string  `gorm:"type:text" json:"description"`
	Timestamps
}

func (p *MessPlan) BeforeSave(tx *gorm.DB) error {
	if p.Cost < 0 {
		return &GuardError{Table: "mess_plans", Column: "cost"}
	}
	return nil
}
