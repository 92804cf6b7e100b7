package usecase

import (
	"context"
	"log/slog"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/logger"
)

type inboxUsecase struct {
	repo domain.ContactMessageRepository
	log  *slog.Logger
}

// Inbox paging bounds
const (
	DefaultInboxLimit = 20
	MaxInboxLimit     = 100
)

// NewInboxUsecase creates a new inbox usecase
func NewInboxUsecase(repo domain.ContactMessageRepository) domain.InboxUsecase {
	return &inboxUsecase{repo: repo, log: logger.Log}
}

// ListMessages returns a page of recorded submissions, newest first.
func (uc *inboxUsecase) ListMessages(ctx context.Context, limit, offset int) (*domain.ContactMessageList, error) {
	if limit <= 0 {
		limit = DefaultInboxLimit
	}
	if limit > MaxInboxLimit {
		limit = MaxInboxLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		uc.log.Error("Failed to list contact messages", "error", err)
		return nil, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		uc.log.Error("Failed to count contact messages", "error", err)
		return nil, err
	}
	if items == nil {
		items = []domain.ContactMessage{}
	}

	return &domain.ContactMessageList{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
