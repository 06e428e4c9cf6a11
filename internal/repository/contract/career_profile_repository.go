package contract

import (
	"context"

	"career-roadmap-be/internal/entity"
	"career-roadmap-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CareerProfileRepository interface {
	Create(ctx context.Context, profile *entity.CareerProfile) error
	Update(ctx context.Context, profile *entity.CareerProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CareerProfile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CareerProfile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
