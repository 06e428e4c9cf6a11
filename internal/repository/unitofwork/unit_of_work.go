package unitofwork

import (
	"context"

	"career-roadmap-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CareerProfileRepository() contract.CareerProfileRepository
	ConsultationRepository() contract.ConsultationRepository
	ConsultationAnalysisRepository() contract.ConsultationAnalysisRepository
	CareerRoadmapRepository() contract.CareerRoadmapRepository
	NotificationRepository() contract.NotificationRepository
}
