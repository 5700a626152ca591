package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/DevDad-Main/ServIQ/internal/dto"
	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains ingestion audit events into the system_logs table.
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
	var payload dto.PublishKnowledgeIngestedMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry := entity.SystemLog{
		Id:      uuid.New(),
		Level:   "info",
		Module:  "knowledge",
		Message: cs.topicName,
		Details: map[string]interface{}{
			"source_id":   payload.SourceId.String(),
			"source_type": payload.SourceType,
			"owner_email": payload.OwnerEmail,
		},
		CreatedAt: time.Now(),
	}

	if err := uow.SystemLogRepository().Create(ctx, &entry); err != nil {
		log.Printf("[ERROR] Failed to record ingestion event for %s: %v", payload.SourceId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
