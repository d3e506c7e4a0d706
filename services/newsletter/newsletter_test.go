package newsletter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"freeflow/models"
)

type fakeSubscriberRepo struct {
	subs map[string]*models.Subscriber
}

func newFakeSubscriberRepo() *fakeSubscriberRepo {
	return &fakeSubscriberRepo{subs: map[string]*models.Subscriber{}}
}

func (f *fakeSubscriberRepo) Create(ctx context.Context, s *models.Subscriber) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.CreatedAt = time.Now()
	clone := *s
	f.subs[s.Email] = &clone
	return nil
}

func (f *fakeSubscriberRepo) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	s, ok := f.subs[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSubscriberRepo) GetAll(ctx context.Context) ([]models.Subscriber, error) {
	out := make([]models.Subscriber, 0, len(f.subs))
	for _, s := range f.subs {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSubscriberRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, s := range f.subs {
		if s.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubscriberRepo) SetStatus(ctx context.Context, email, status string) error {
	s, ok := f.subs[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return mongo.ErrNoDocuments
	}
	s.Status = status
	now := time.Now()
	switch status {
	case models.SubscriberStatusSubscribed:
		s.SubscribedAt = &now
	case models.SubscriberStatusUnsubscribed:
		s.UnsubscribedAt = &now
	}
	return nil
}

type fakeTokenStore struct {
	tokens map[string]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]string{}}
}

func (f *fakeTokenStore) Save(ctx context.Context, token, email string, ttl time.Duration) error {
	f.tokens[token] = email
	return nil
}

func (f *fakeTokenStore) Redeem(ctx context.Context, token string) (string, error) {
	email, ok := f.tokens[token]
	if !ok {
		return "", ErrTokenNotFound
	}
	delete(f.tokens, token)
	return email, nil
}

type fakeMailer struct {
	sent []string // "to|subject|body"
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.sent = append(f.sent, to+"|"+subject+"|"+body)
	return nil
}

func newTestService() (*DefaultNewsletterService, *fakeSubscriberRepo, *fakeTokenStore, *fakeMailer) {
	repo := newFakeSubscriberRepo()
	tokens := newFakeTokenStore()
	mail := &fakeMailer{}
	svc := &DefaultNewsletterService{
		Repo:    repo,
		Tokens:  tokens,
		Mailer:  mail,
		BaseURL: "https://freeflow.app",
	}
	return svc, repo, tokens, mail
}

func TestSubscribe_DoubleOptIn(t *testing.T) {
	svc, repo, tokens, mail := newTestService()
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, " Dana@Example.com ", "footer")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if sub.Email != "dana@example.com" {
		t.Errorf("email = %q, want normalized dana@example.com", sub.Email)
	}
	if sub.Status != models.SubscriberStatusPending {
		t.Errorf("status = %q, want pending", sub.Status)
	}
	if len(mail.sent) != 1 || !strings.Contains(mail.sent[0], "/newsletter/confirm?token=") {
		t.Fatalf("confirmation email missing link: %v", mail.sent)
	}
	if len(tokens.tokens) != 1 {
		t.Fatalf("stored %d tokens, want 1", len(tokens.tokens))
	}

	var token string
	for tok := range tokens.tokens {
		token = tok
	}
	confirmed, err := svc.Confirm(ctx, token)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != models.SubscriberStatusSubscribed {
		t.Errorf("status after confirm = %q, want subscribed", confirmed.Status)
	}
	if confirmed.SubscribedAt == nil {
		t.Error("SubscribedAt not stamped")
	}

	// Token is single-use.
	if _, err := svc.Confirm(ctx, token); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("second redeem err = %v, want ErrTokenNotFound", err)
	}

	stored, _ := repo.GetByEmail(ctx, "dana@example.com")
	if stored.Status != models.SubscriberStatusSubscribed {
		t.Errorf("stored status = %q, want subscribed", stored.Status)
	}
}

func TestSubscribe_AlreadyConfirmedIsNoOp(t *testing.T) {
	svc, _, tokens, mail := newTestService()
	ctx := context.Background()

	if _, err := svc.Subscribe(ctx, "dana@example.com", ""); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	var token string
	for tok := range tokens.tokens {
		token = tok
	}
	if _, err := svc.Confirm(ctx, token); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	mailsBefore := len(mail.sent)
	again, err := svc.Subscribe(ctx, "dana@example.com", "")
	if err != nil {
		t.Fatalf("re-subscribe: %v", err)
	}
	if again.Status != models.SubscriberStatusSubscribed {
		t.Errorf("status = %q, want subscribed", again.Status)
	}
	if len(mail.sent) != mailsBefore {
		t.Errorf("re-subscribing a confirmed address sent %d extra mails", len(mail.sent)-mailsBefore)
	}
}

func TestSubscribe_RejectsBadEmail(t *testing.T) {
	svc, _, _, _ := newTestService()
	for _, email := range []string{"", "nope", "@missing-local", "missing-domain@"} {
		if _, err := svc.Subscribe(context.Background(), email, ""); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("email %q: err = %v, want ErrInvalidEmail", email, err)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Subscribe(ctx, "dana@example.com", ""); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := svc.Unsubscribe(ctx, "dana@example.com"); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	stored, _ := repo.GetByEmail(ctx, "dana@example.com")
	if stored.Status != models.SubscriberStatusUnsubscribed || stored.UnsubscribedAt == nil {
		t.Errorf("unsubscribe not recorded: %+v", stored)
	}

	if err := svc.Unsubscribe(ctx, "ghost@example.com"); !errors.Is(err, ErrSubscriberMissing) {
		t.Errorf("unknown address err = %v, want ErrSubscriberMissing", err)
	}
}

func TestGetStats(t *testing.T) {
	svc, repo, tokens, _ := newTestService()
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := svc.Subscribe(ctx, email, ""); err != nil {
			t.Fatalf("subscribe %s: %v", email, err)
		}
	}
	// Confirm one of them.
	for tok, email := range tokens.tokens {
		if email == "a@example.com" {
			if _, err := svc.Confirm(ctx, tok); err != nil {
				t.Fatalf("confirm: %v", err)
			}
		}
	}
	if err := repo.SetStatus(ctx, "b@example.com", models.SubscriberStatusUnsubscribed); err != nil {
		t.Fatalf("set status: %v", err)
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 || stats.Subscribed != 1 || stats.Unsubscribed != 1 || stats.Pending != 1 {
		t.Errorf("stats = %+v, want total 3, one of each", stats)
	}
}
