package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContactUsecase(t *testing.T, sender domain.MessageSender, inbox domain.ContactMessageRepository, opts ...usecase.ContactOption) domain.ContactUsecase {
	t.Helper()
	uc, err := usecase.NewContactUsecase(usecase.ContactControllerConfig{
		Sender:        sender,
		FallbackEmail: fallbackEmail,
		Inbox:         inbox,
		Logger:        logger.Discard(),
	}, opts...)
	require.NoError(t, err)
	return uc
}

func TestSendContactMessage(t *testing.T) {
	t.Run("delivers a valid message", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("SendMessage", mock.Anything, mock.MatchedBy(func(p domain.MessagePayload) bool {
			return p.SenderName == "Jane Doe"
		})).Return(receipt(), nil).Once()
		uc := newContactUsecase(t, sender, nil)

		req := &domain.ContactRequest{Name: " Jane Doe ", Email: "jane@example.com", Message: "Hello, I'd like to work with you."}
		status, err := uc.SendContactMessage(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, domain.SuccessStatus(domain.MsgSubmitSuccess), status)
		sender.AssertExpectations(t)
	})

	t.Run("reports the first validation error", func(t *testing.T) {
		sender := new(MockSender)
		uc := newContactUsecase(t, sender, nil)

		req := &domain.ContactRequest{Name: "Jane", Email: "not-an-email", Message: "short"}
		status, err := uc.SendContactMessage(context.Background(), req)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, domain.InvalidEmailFormat, verr.Kind)
		assert.Equal(t, domain.ErrorStatus(domain.MsgInvalidEmailFormat), status)
		sender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
	})

	t.Run("wraps delivery failures", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("SendMessage", mock.Anything, mock.Anything).Return(domain.SendReceipt{}, errors.New("502 from provider")).Once()
		uc := newContactUsecase(t, sender, nil)

		req := &domain.ContactRequest{Name: "Jane", Email: "jane@example.com", Message: "Hello there, friend."}
		status, err := uc.SendContactMessage(context.Background(), req)

		assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
		assert.Equal(t, domain.StateError, status.State)
		assert.Contains(t, status.Message, fallbackEmail)
	})

	t.Run("passes through an unconfigured transport", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("SendMessage", mock.Anything, mock.Anything).Return(domain.SendReceipt{}, domain.ErrTransportUnavailable).Once()
		uc := newContactUsecase(t, sender, nil)

		req := &domain.ContactRequest{Name: "Jane", Email: "jane@example.com", Message: "Hello there, friend."}
		_, err := uc.SendContactMessage(context.Background(), req)

		assert.ErrorIs(t, err, domain.ErrTransportUnavailable)
		assert.NotErrorIs(t, err, domain.ErrDeliveryFailed)
	})
}

func TestSendContactMessageHoneypot(t *testing.T) {
	sender := new(MockSender)
	inbox := new(MockContactMessageRepo)
	inbox.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.ContactMessage) bool {
		return m.Status == domain.ContactMessageSpam && m.RemoteIP == "203.0.113.7"
	})).Return(nil).Once()
	uc := newContactUsecase(t, sender, inbox, usecase.WithSpamRecording(true))

	ctx := usecase.WithRequestMeta(context.Background(), domain.RequestMeta{RequestID: "req-1", RemoteIP: "203.0.113.7"})
	req := &domain.ContactRequest{Name: "bot", Email: "bot@spam.example", Message: "buy now buy now", Website: "http://spam.example"}
	status, err := uc.SendContactMessage(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, domain.StateSuccess, status.State)
	sender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
	inbox.AssertExpectations(t)
}

func TestSendContactMessageHoneypotNotRecorded(t *testing.T) {
	sender := new(MockSender)
	inbox := new(MockContactMessageRepo)
	uc := newContactUsecase(t, sender, inbox)

	req := &domain.ContactRequest{Name: "bot", Email: "bot@spam.example", Message: "buy now buy now", Website: "x"}
	status, err := uc.SendContactMessage(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.StateSuccess, status.State)
	inbox.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListMessages(t *testing.T) {
	t.Run("clamps paging", func(t *testing.T) {
		repo := new(MockContactMessageRepo)
		repo.On("List", mock.Anything, usecase.MaxInboxLimit, 0).Return(nil, nil).Once()
		repo.On("Count", mock.Anything).Return(0, nil).Once()
		uc := usecase.NewInboxUsecase(repo)

		list, err := uc.ListMessages(context.Background(), 1000, -5)

		require.NoError(t, err)
		assert.Equal(t, usecase.MaxInboxLimit, list.Limit)
		assert.Equal(t, 0, list.Offset)
		assert.NotNil(t, list.Items)
		repo.AssertExpectations(t)
	})

	t.Run("defaults limit", func(t *testing.T) {
		repo := new(MockContactMessageRepo)
		items := []domain.ContactMessage{{ID: "1"}, {ID: "2"}}
		repo.On("List", mock.Anything, usecase.DefaultInboxLimit, 20).Return(items, nil).Once()
		repo.On("Count", mock.Anything).Return(22, nil).Once()
		uc := usecase.NewInboxUsecase(repo)

		list, err := uc.ListMessages(context.Background(), 0, 20)

		require.NoError(t, err)
		assert.Len(t, list.Items, 2)
		assert.Equal(t, 22, list.Total)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockContactMessageRepo)
		repo.On("List", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
		uc := usecase.NewInboxUsecase(repo)

		_, err := uc.ListMessages(context.Background(), 10, 0)
		assert.Error(t, err)
	})
}
