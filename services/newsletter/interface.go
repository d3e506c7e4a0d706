package newsletter

import (
	"context"
	"errors"
	"time"

	subscriberRepo "freeflow/database/repository/subscriber"
	"freeflow/models"
	"freeflow/services/mailer"
)

var (
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrTokenNotFound     = errors.New("confirmation token expired or unknown")
	ErrSubscriberMissing = errors.New("subscriber not found")
)

// TokenStore keeps short-lived confirmation tokens.
type TokenStore interface {
	Save(ctx context.Context, token, email string, ttl time.Duration) error
	// Redeem returns the email for a token and consumes it.
	Redeem(ctx context.Context, token string) (string, error)
}

// NewsletterService handles double-opt-in newsletter signups.
type NewsletterService interface {
	Subscribe(ctx context.Context, email, source string) (*models.Subscriber, error)
	Confirm(ctx context.Context, token string) (*models.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	ListSubscribers(ctx context.Context) ([]models.Subscriber, error)
	GetStats(ctx context.Context) (*models.NewsletterStats, error)
}

// DefaultNewsletterService implements NewsletterService.
type DefaultNewsletterService struct {
	Repo   subscriberRepo.SubscriberRepository
	Tokens TokenStore
	Mailer mailer.Sender
	// BaseURL prefixes confirmation links, e.g. "https://freeflow.app".
	BaseURL string
}
