package newsletter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"freeflow/models"
	"freeflow/utils"
)

const confirmTokenTTL = 48 * time.Hour

// Subscribe registers an email in pending state and sends the confirmation
// link. Re-subscribing an already-confirmed address is a no-op; a pending or
// unsubscribed address gets a fresh link.
func (svc *DefaultNewsletterService) Subscribe(ctx context.Context, email, source string) (*models.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return nil, ErrInvalidEmail
	}

	sub, err := svc.Repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if sub.Status == models.SubscriberStatusSubscribed {
			return sub, nil
		}
	case errors.Is(err, mongo.ErrNoDocuments):
		sub = &models.Subscriber{
			Email:  email,
			Status: models.SubscriberStatusPending,
			Source: source,
		}
		if err := svc.Repo.Create(ctx, sub); err != nil {
			return nil, fmt.Errorf("failed to create subscriber: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up subscriber: %w", err)
	}

	token := uuid.New().String()
	if err := svc.Tokens.Save(ctx, token, email, confirmTokenTTL); err != nil {
		return nil, err
	}

	link := fmt.Sprintf("%s/newsletter/confirm?token=%s", strings.TrimRight(svc.BaseURL, "/"), token)
	body := fmt.Sprintf("Confirm your newsletter subscription:\n\n%s\n\nThe link expires in 48 hours.\n", link)
	if err := svc.Mailer.Send(email, "Confirm your subscription", body); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Newsletter signup", zap.String("email", email), zap.String("source", source))
	return sub, nil
}

// Confirm consumes a confirmation token and activates the subscription.
func (svc *DefaultNewsletterService) Confirm(ctx context.Context, token string) (*models.Subscriber, error) {
	email, err := svc.Tokens.Redeem(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := svc.Repo.SetStatus(ctx, email, models.SubscriberStatusSubscribed); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSubscriberMissing
		}
		return nil, fmt.Errorf("failed to confirm subscriber %s: %w", email, err)
	}
	sub, err := svc.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to reload subscriber %s: %w", email, err)
	}
	return sub, nil
}

// Unsubscribe turns off delivery for an address.
func (svc *DefaultNewsletterService) Unsubscribe(ctx context.Context, email string) error {
	if err := svc.Repo.SetStatus(ctx, email, models.SubscriberStatusUnsubscribed); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSubscriberMissing
		}
		return fmt.Errorf("failed to unsubscribe %s: %w", email, err)
	}
	return nil
}

func (svc *DefaultNewsletterService) ListSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	subs, err := svc.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subs, nil
}

func (svc *DefaultNewsletterService) GetStats(ctx context.Context) (*models.NewsletterStats, error) {
	stats := &models.NewsletterStats{}
	for status, target := range map[string]*int64{
		models.SubscriberStatusPending:      &stats.Pending,
		models.SubscriberStatusSubscribed:   &stats.Subscribed,
		models.SubscriberStatusUnsubscribed: &stats.Unsubscribed,
	} {
		n, err := svc.Repo.CountByStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s subscribers: %w", status, err)
		}
		*target = n
	}
	stats.Total = stats.Pending + stats.Subscribed + stats.Unsubscribed
	return stats, nil
}
