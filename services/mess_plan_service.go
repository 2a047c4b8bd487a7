package services

import (
	"gorm.io/gorm"

	"hostel-backend/models"
)

type MessPlanInput struct {
	PlanType    *string  `json:"plan_type" binding:"omitempty,oneof=veg non-veg custom"`
	Cost        *float64 `json:"cost"`
	Description *string  `json:"description"`
}

type MessPlanService struct {
	DB *gorm.DB
}

func NewMessPlanService(db *gorm.DB) *MessPlanService {
	return &MessPlanService{DB: db}
}

func (s *MessPlanService) List() ([]models.MessPlan, error) {
	var plans []models.MessPlan
	err := s.DB.Order("plan_type, plan_id").Find(&plans).Error
	return plans, err
}

func (s *MessPlanService) Get(id uint) (models.MessPlan, error) {
	var p models.MessPlan
	err := s.DB.Take(&p, "plan_id = ?", id).Error
	return p, lookup(err, "Mess plan")
}

func (in MessPlanInput) apply(p *models.MessPlan) error {
	if err := required(
		field{"plan_type", present(in.PlanType)},
		field{"cost", in.Cost != nil},
	); err != nil {
		return err
	}
	p.PlanType = models.PlanType(text(in.PlanType))
	p.Cost = *in.Cost
	p.Description = optional(in.Description)
	return nil
}

// Create and Update rely on the model hook and the cost check constraint to
// reject negative costs.
func (s *MessPlanService) Create(in MessPlanInput) (models.MessPlan, error) {
	var p models.MessPlan
	if err := in.apply(&p); err != nil {
		return p, err
	}
	if err := s.DB.Create(&p).Error; err != nil {
		return p, classify(err, "Mess plan already exists")
	}
	return s.Get(p.ID)
}

func (s *MessPlanService) Update(id uint, in MessPlanInput) (models.MessPlan, error) {
	p, err := s.Get(id)
	if err != nil {
		return p, err
	}
	if err := in.apply(&p); err != nil {
		return p, err
	}
	if err := s.DB.Save(&p).Error; err != nil {
		return p, classify(err, "Mess plan already exists")
	}
	return s.Get(id)
}

func (s *MessPlanService) Delete(id uint) error {
	return deleteByID(s.DB, &models.MessPlan{}, id, "Mess plan")
}
