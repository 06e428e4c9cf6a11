package contract

import (
	"context"

	"career-roadmap-be/internal/entity"
	"career-roadmap-be/internal/repository/specification"
)

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entity.Consultation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consultation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ConsultationAnalysisRepository interface {
	Create(ctx context.Context, analysis *entity.ConsultationAnalysis) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConsultationAnalysis, error)
}
