package services

import (
	"gorm.io/gorm"

	"hostel-backend/models"
)

type AccessCardInput struct {
	ResidentID *uint   `json:"resident_id"`
	IssueDate  *string `json:"issue_date" binding:"omitempty,isodate"`
	Status     *string `json:"status" binding:"omitempty,oneof=active inactive lost"`
}

type AccessCardService struct {
	DB *gorm.DB
}

func NewAccessCardService(db *gorm.DB) *AccessCardService {
	return &AccessCardService{DB: db}
}

func cardsJoined(db *gorm.DB) *gorm.DB {
	return withResidentName(db, &models.AccessCard{}, "access_cards")
}

func (s *AccessCardService) List() ([]models.AccessCard, error) {
	var cards []models.AccessCard
	err := cardsJoined(s.DB).Order("access_cards.issue_date DESC, access_cards.card_id DESC").Find(&cards).Error
	return cards, err
}

func (s *AccessCardService) Get(id uint) (models.AccessCard, error) {
	var c models.AccessCard
	err := cardsJoined(s.DB).Where("access_cards.card_id = ?", id).Take(&c).Error
	return c, lookup(err, "Access card")
}

func (s *AccessCardService) Create(in AccessCardInput) (models.AccessCard, error) {
	if err := required(
		residentID(in.ResidentID),
		field{"issue_date", present(in.IssueDate)},
	); err != nil {
		return models.AccessCard{}, err
	}
	issued, err := date("issue_date", in.IssueDate)
	if err != nil {
		return models.AccessCard{}, err
	}

	c := models.AccessCard{
		ResidentID: *in.ResidentID,
		IssueDate:  issued,
		Status:     models.CardActive,
	}
	if present(in.Status) {
		c.Status = models.CardStatus(text(in.Status))
	}
	if err := s.DB.Create(&c).Error; err != nil {
		return c, classify(err, "Access card already exists")
	}
	return s.Get(c.ID)
}

func (s *AccessCardService) Update(id uint, in AccessCardInput) (models.AccessCard, error) {
	var c models.AccessCard
	if err := s.DB.Take(&c, "card_id = ?", id).Error; err != nil {
		return c, lookup(err, "Access card")
	}
	if err := required(field{"status", present(in.Status)}); err != nil {
		return c, err
	}

	c.Status = models.CardStatus(text(in.Status))
	if err := s.DB.Save(&c).Error; err != nil {
		return c, classify(err, "Access card already exists")
	}
	return s.Get(id)
}

func (s *AccessCardService) Delete(id uint) error {
	return deleteByID(s.DB, &models.AccessCard{}, id, "Access card")
}
