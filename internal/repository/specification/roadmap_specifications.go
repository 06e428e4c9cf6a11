package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByProfileID struct {
	ProfileID uuid.UUID
}

func (s ByProfileID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("profile_id = ?", s.ProfileID)
}

type ByConsultationID struct {
	ConsultationID uuid.UUID
}

func (s ByConsultationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("consultation_id = ?", s.ConsultationID)
}

type ByConsultationIDs struct {
	ConsultationIDs []uuid.UUID
}

func (s ByConsultationIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("consultation_id IN ?", s.ConsultationIDs)
}

// ActiveOnly keeps the single active roadmap of a profile.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
