package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"career-roadmap-be/internal/dto"
	"career-roadmap-be/internal/entity"
	"career-roadmap-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const notificationTypeRoadmapReady = "ROADMAP_READY"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RoadmapGeneratedEvent
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal roadmap event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing roadmap notification for RoadmapId: %s", payload.RoadmapId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	body := "새로운 커리어 로드맵이 준비되었습니다."
	if payload.TargetJob != "" {
		body = fmt.Sprintf("%s 목표의 새로운 커리어 로드맵이 준비되었습니다.", payload.TargetJob)
	}

	notification := entity.Notification{
		Id:        uuid.New(),
		UserId:    payload.UserId,
		Type:      notificationTypeRoadmapReady,
		Title:     "커리어 로드맵 생성 완료",
		Body:      body,
		CreatedAt: time.Now(),
	}

	if err := uow.NotificationRepository().Create(ctx, &notification); err != nil {
		log.Printf("[ERROR] Failed to create notification for roadmap %s: %v", payload.RoadmapId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	log.Printf("[SUCCESS] Notification created for user %s (roadmap %s)", payload.UserId, payload.RoadmapId)
	msg.Ack()
}
