package contract

import (
	"context"

	"career-roadmap-be/internal/entity"
	"career-roadmap-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CareerRoadmapRepository interface {
	Create(ctx context.Context, roadmap *entity.CareerRoadmap) error
	Update(ctx context.Context, roadmap *entity.CareerRoadmap) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeactivateAllByProfileId clears the active flag on every roadmap of a
	// profile so a regeneration replaces rather than appends.
	DeactivateAllByProfileId(ctx context.Context, profileId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CareerRoadmap, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CareerRoadmap, error)
}
