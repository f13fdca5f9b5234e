package repository

import (
	"context"

	"github.com/Grenders/transport-api/internal/domain"
)

// StreamRepository publishes and consumes Redis Stream messages. The API
// publishes mail events; the mail worker consumes them via a consumer group.
type StreamRepository interface {
	CreateConsumerGroup(ctx context.Context, stream, group string) error
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)
	AckMessage(ctx context.Context, stream, group, messageID string) error
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
