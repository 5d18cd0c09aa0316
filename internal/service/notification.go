package service

import (
	"context"
	"fmt"
	"time"

	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
	"idea-marketplace-backend/internal/repository"

	"github.com/google/uuid"
)

// NotificationService serves a user's inbox
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
	now  func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo, now: time.Now}
}

// SetClock replaces the time source
func (s *NotificationService) SetClock(now func() time.Time) {
	s.now = now
}

// NotificationListResponse represents a page of notifications
type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	Unread        int64                 `json:"unread"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
}

// List returns the notifications addressed to email, newest first
func (s *NotificationService) List(ctx context.Context, email string, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.ErrMissingActorInContext
	}
	limit, offset, err := pagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	notifications, total, err := s.repo.ListByRecipient(ctx, email, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	unread, err := s.repo.CountUnread(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	if page == 0 {
		page = 1
	}
	return &NotificationListResponse{
		Notifications: notifications,
		Total:         total,
		Unread:        unread,
		Page:          page,
		PageSize:      limit,
	}, nil
}

// MarkRead flags one notification as read. Notifications of other users are reported as not found.
func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID, email string) (*models.Notification, error) {
	email = normalizeEmail(email)
	notification, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrNotificationNotFound, "get notification")
	}
	if normalizeEmail(notification.RecipientEmail) != email {
		return nil, apperrors.ErrNotificationNotFound
	}
	if notification.IsRead {
		return notification, nil
	}

	now := s.now()
	if _, err := s.repo.MarkRead(ctx, id, notification.RecipientEmail, now); err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	notification.IsRead = true
	notification.ReadAt = &now
	return notification, nil
}

// MarkAllRead flags every unread notification of email and returns how many changed
func (s *NotificationService) MarkAllRead(ctx context.Context, email string) (int64, error) {
	email = normalizeEmail(email)
	if email == "" {
		return 0, apperrors.ErrMissingActorInContext
	}
	updated, err := s.repo.MarkAllRead(ctx, email, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return updated, nil
}

// UnreadCount counts unread notifications of email
func (s *NotificationService) UnreadCount(ctx context.Context, email string) (int64, error) {
	count, err := s.repo.CountUnread(ctx, normalizeEmail(email))
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
