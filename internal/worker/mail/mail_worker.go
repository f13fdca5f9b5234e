package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
	"github.com/Grenders/transport-api/internal/worker"
)

const retryDelay = 2 * time.Second

// MailWorker consumes password-reset mail events and delivers them over SMTP
type MailWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	mailer       repository.Mailer
	consumerName string
	maxRetries   int
}

// NewMailWorker creates a new MailWorker
func NewMailWorker(
	streamRepo repository.StreamRepository,
	mailer repository.Mailer,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *MailWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &MailWorker{
		BaseWorker:   worker.NewBaseWorker("mail-delivery", consumerGroup, logger),
		streamRepo:   streamRepo,
		mailer:       mailer,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start runs the consume loop until the worker is stopped
func (w *MailWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting MailWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamMailReset, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.StreamMailReset, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage delivers one mail event. Both unparsable and permanently
// failing messages get acknowledged so the stream never jams.
func (w *MailWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.PasswordResetMailEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse mail event, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		_ = w.streamRepo.AckMessage(ctx, domain.StreamMailReset, w.ConsumerGroup(), msg.ID)
		return
	}

	var lastErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		lastErr = w.mailer.SendPasswordReset(ctx, event.Email, event.ResetURL)
		if lastErr == nil {
			break
		}
		logger.Warn("Mail delivery failed",
			zap.String("message_id", msg.ID),
			zap.Int("attempt", attempt),
			zap.Int("max_retries", w.maxRetries),
			zap.Error(lastErr))

		select {
		case <-ctx.Done():
			return
		case <-time.After(retryDelay):
		}
	}

	if lastErr != nil {
		logger.Error("Giving up on mail delivery",
			zap.String("message_id", msg.ID),
			zap.String("email", event.Email),
			zap.Error(lastErr))
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamMailReset, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack mail event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}
}
