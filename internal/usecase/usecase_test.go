package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Mock Transports
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendMessage(ctx context.Context, p domain.MessagePayload) (domain.SendReceipt, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.SendReceipt), args.Error(1)
}

func (m *MockSender) Name() string { return "mock" }

func (m *MockSender) IsConfigured() bool {
	return m.Called().Bool(0)
}

// Mock Repositories
type MockContactMessageRepo struct {
	mock.Mock
}

func (m *MockContactMessageRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockContactMessageRepo) List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

func (m *MockContactMessageRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func receipt() domain.SendReceipt {
	return domain.SendReceipt{Provider: "mock", MessageID: "msg-1", SentAt: time.Now()}
}

func validFields() domain.FormFields {
	return domain.FormFields{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello, I'd like to work with you.",
	}
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
