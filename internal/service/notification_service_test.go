package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-roadmap-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotificationGetAll(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.notifications.rows = []*entity.Notification{
		{
			Id:        uuid.New(),
			UserId:    userId,
			Type:      "roadmap_generated",
			Title:     "새 로드맵이 준비되었습니다",
			Body:      "백엔드 개발자 로드맵이 생성되었습니다.",
			IsRead:    false,
			CreatedAt: time.Now(),
		},
		{
			Id:        uuid.New(),
			UserId:    userId,
			Type:      "roadmap_generated",
			Title:     "이전 로드맵",
			IsRead:    true,
			CreatedAt: time.Now().Add(-time.Hour),
		},
	}
	svc := NewNotificationService(uow)

	result, err := svc.GetAll(context.Background(), userId)

	assert.NoError(t, err)
	if len(result) != 2 {
		t.Fatalf("GetAll returned %d notifications, want 2", len(result))
	}
	assert.Equal(t, uow.notifications.rows[0].Id, result[0].Id)
	assert.Equal(t, "roadmap_generated", result[0].Type)
	assert.Equal(t, "새 로드맵이 준비되었습니다", result[0].Title)
	assert.False(t, result[0].IsRead)
	assert.True(t, result[1].IsRead)
}

func TestNotificationGetAllEmpty(t *testing.T) {
	svc := NewNotificationService(newFakeUow())

	result, err := svc.GetAll(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestNotificationGetAllError(t *testing.T) {
	uow := newFakeUow()
	uow.notifications.findErr = errors.New("db unavailable")
	svc := NewNotificationService(uow)

	result, err := svc.GetAll(context.Background(), uuid.New())

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestNotificationMarkRead(t *testing.T) {
	userId := uuid.New()
	id := uuid.New()
	uow := newFakeUow()
	uow.notifications.rows = []*entity.Notification{
		{Id: id, UserId: userId},
	}
	svc := NewNotificationService(uow)

	err := svc.MarkRead(context.Background(), userId, id)

	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, uow.notifications.marked)
}

func TestNotificationMarkReadUnowned(t *testing.T) {
	uow := newFakeUow()
	svc := NewNotificationService(uow)

	// Ownership lookup comes back empty, the update must not run.
	err := svc.MarkRead(context.Background(), uuid.New(), uuid.New())

	assert.NoError(t, err)
	assert.Empty(t, uow.notifications.marked)
}
