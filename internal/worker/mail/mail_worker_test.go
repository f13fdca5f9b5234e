package mail_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/worker/mail"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockMailer is a mock of Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	args := m.Called(ctx, to, resetURL)
	return args.Error(0)
}

// TestMailWorker_Name tests the worker name
func TestMailWorker_Name(t *testing.T) {
	worker := mail.NewMailWorker(&MockStreamRepository{}, &MockMailer{}, "test-group", 3, zap.NewNop())

	assert.Equal(t, "mail-delivery", worker.Name())
}

// TestMailWorker_Stop tests graceful stop
func TestMailWorker_Stop(t *testing.T) {
	worker := mail.NewMailWorker(&MockStreamRepository{}, &MockMailer{}, "test-group", 3, zap.NewNop())

	// Stop should not error even if not started
	assert.NoError(t, worker.Stop())

	// Calling stop multiple times should be safe
	assert.NoError(t, worker.Stop())
}

// TestMailWorker_DeliversEvent tests the happy path end to end: one event
// consumed, mail sent, message acknowledged
func TestMailWorker_DeliversEvent(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockMailer := &MockMailer{}

	event := domain.PasswordResetMailEvent{
		Email:    "user@example.com",
		Token:    uuid.New().String(),
		ResetURL: "https://example.com/reset?token=abc",
	}
	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	msgChan := make(chan domain.StreamMessage, 1)
	msgChan <- domain.StreamMessage{ID: "1-0", Data: string(payload)}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamMailReset, "test-group").Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, domain.StreamMailReset, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(msgChan), nil)
	acked := make(chan struct{})
	mockStream.On("AckMessage", mock.Anything, domain.StreamMailReset, "test-group", "1-0").
		Run(func(mock.Arguments) { close(acked) }).Return(nil)
	mockMailer.On("SendPasswordReset", mock.Anything, event.Email, event.ResetURL).Return(nil)

	worker := mail.NewMailWorker(mockStream, mockMailer, "test-group", 3, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- worker.Start(context.Background()) }()

	select {
	case <-acked:
	case <-time.After(2 * time.Second):
		t.Fatal("message was not acknowledged")
	}

	assert.NoError(t, worker.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	mockMailer.AssertExpectations(t)
	mockStream.AssertExpectations(t)
}

// TestMailWorker_AcksUnparsableMessage tests that a broken payload is
// acknowledged without any delivery attempt
func TestMailWorker_AcksUnparsableMessage(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockMailer := &MockMailer{}

	msgChan := make(chan domain.StreamMessage, 1)
	msgChan <- domain.StreamMessage{ID: "2-0", Data: "{not json"}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamMailReset, "test-group").Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, domain.StreamMailReset, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(msgChan), nil)
	acked := make(chan struct{})
	mockStream.On("AckMessage", mock.Anything, domain.StreamMailReset, "test-group", "2-0").
		Run(func(mock.Arguments) { close(acked) }).Return(nil)

	worker := mail.NewMailWorker(mockStream, mockMailer, "test-group", 3, zap.NewNop())

	go func() { _ = worker.Start(context.Background()) }()

	select {
	case <-acked:
	case <-time.After(2 * time.Second):
		t.Fatal("broken message was not acknowledged")
	}
	assert.NoError(t, worker.Stop())

	mockMailer.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything)
}

// TestMailWorker_ContextCancellation tests worker stops on context cancellation
func TestMailWorker_ContextCancellation(t *testing.T) {
	mockStream := &MockStreamRepository{}

	msgChan := make(chan domain.StreamMessage)
	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamMailReset, "test-group").Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, domain.StreamMailReset, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(msgChan), nil)

	worker := mail.NewMailWorker(mockStream, &MockMailer{}, "test-group", 3, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop on context cancellation")
	}
}
