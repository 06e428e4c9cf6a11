package service

import (
	"context"

	"career-roadmap-be/internal/dto"
	"career-roadmap-be/internal/repository/specification"
	"career-roadmap-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INotificationService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error)
	MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
	}
}

func (s *notificationService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, &dto.NotificationResponse{
			Id:        n.Id,
			Type:      n.Type,
			Title:     n.Title,
			Body:      n.Body,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return result, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		return nil
	}
	return uow.NotificationRepository().MarkRead(ctx, id)
}
