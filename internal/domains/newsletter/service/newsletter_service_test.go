package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voidspace-backend/internal/domains/newsletter/model"
	postmodel "voidspace-backend/internal/domains/post/model"
	"voidspace-backend/internal/infrastructure/email"
	"voidspace-backend/internal/shared"
)

// ----------------------------------------
// Fakes
// ----------------------------------------

type fakeNewsletterRepository struct {
	mu          sync.Mutex
	subscribers map[string]*model.Subscriber
}

func newFakeNewsletterRepository() *fakeNewsletterRepository {
	return &fakeNewsletterRepository{subscribers: make(map[string]*model.Subscriber)}
}

func (r *fakeNewsletterRepository) GetByEmail(ctx context.Context, addr string) (*model.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subscribers[addr]
	if !ok {
		return nil, model.ErrSubscriberNotFound
	}
	copied := *sub
	return &copied, nil
}

func (r *fakeNewsletterRepository) Create(ctx context.Context, addr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subscribers[addr] = &model.Subscriber{
		Email:        addr,
		IsActive:     true,
		SubscribedAt: time.Now(),
	}
	return nil
}

func (r *fakeNewsletterRepository) Reactivate(ctx context.Context, addr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub := r.subscribers[addr]
	sub.IsActive = true
	sub.SubscribedAt = time.Now()
	sub.UnsubscribedAt = nil
	return nil
}

func (r *fakeNewsletterRepository) Unsubscribe(ctx context.Context, addr string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subscribers[addr]
	if !ok || !sub.IsActive {
		return false, nil
	}
	now := time.Now()
	sub.IsActive = false
	sub.UnsubscribedAt = &now
	return true, nil
}

func (r *fakeNewsletterRepository) ListActive(ctx context.Context) ([]model.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.Subscriber
	for _, sub := range r.subscribers {
		if sub.IsActive {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (r *fakeNewsletterRepository) Stats(ctx context.Context) (*model.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &model.Stats{}
	for _, sub := range r.subscribers {
		stats.TotalSubscribers++
		if sub.IsActive {
			stats.ActiveSubscribers++
		} else {
			stats.Unsubscribed++
		}
	}
	return stats, nil
}

type fakePostRepository struct {
	posts map[string]*postmodel.Post
}

func (r *fakePostRepository) GetBySlug(ctx context.Context, slug string) (*postmodel.Post, error) {
	post, ok := r.posts[slug]
	if !ok {
		return nil, postmodel.ErrPostNotFound
	}
	return post, nil
}

func (r *fakePostRepository) ListPublished(ctx context.Context) ([]postmodel.Post, error) {
	return nil, nil
}

func (r *fakePostRepository) ListByTag(ctx context.Context, tag string) ([]postmodel.Post, error) {
	return nil, nil
}

func (r *fakePostRepository) GetTagCounts(ctx context.Context) ([]postmodel.TagCount, error) {
	return nil, nil
}

func (r *fakePostRepository) Create(ctx context.Context, post *postmodel.Post) error {
	return nil
}

func (r *fakePostRepository) IncrementViews(ctx context.Context, slug string) (int, error) {
	return 0, nil
}

func (r *fakePostRepository) IncrementResonates(ctx context.Context, slug string) (int, error) {
	return 0, nil
}

type fakeEmailService struct {
	mu      sync.Mutex
	sent    []email.Message
	failFor map[string]bool
}

func (s *fakeEmailService) Send(ctx context.Context, msg email.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failFor[msg.To] {
		return assert.AnError
	}
	s.sent = append(s.sent, msg)
	return nil
}

type fakeEnqueuer struct {
	mu    sync.Mutex
	types []string
	err   error
}

func (e *fakeEnqueuer) Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.err != nil {
		return e.err
	}
	e.types = append(e.types, taskType)
	return nil
}

// ----------------------------------------
// Helpers
// ----------------------------------------

type testDeps struct {
	repo  *fakeNewsletterRepository
	posts *fakePostRepository
	mail  *fakeEmailService
	enq   *fakeEnqueuer
}

func newTestService(t *testing.T) (NewsletterService, *testDeps) {
	t.Helper()

	deps := &testDeps{
		repo:  newFakeNewsletterRepository(),
		posts: &fakePostRepository{posts: map[string]*postmodel.Post{}},
		mail:  &fakeEmailService{failFor: map[string]bool{}},
		enq:   &fakeEnqueuer{},
	}

	svc := NewNewsletterService(
		deps.repo, deps.posts, deps.mail, deps.enq,
		"Void Space", "https://voidd.space",
	)
	return svc, deps
}

// ----------------------------------------
// Subscribe / unsubscribe
// ----------------------------------------

func TestNewsletterService_Subscribe_New(t *testing.T) {
	svc, deps := newTestService(t)

	resp, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "  Alice@Example.COM "})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "Successfully subscribed")

	// Stored normalized, welcome email queued.
	sub, err := deps.repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.True(t, sub.IsActive)
	assert.Equal(t, []string{shared.TypeSendWelcomeEmail}, deps.enq.types)
}

func TestNewsletterService_Subscribe_ActiveDuplicate(t *testing.T) {
	svc, deps := newTestService(t)

	_, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "alice@example.com"})
	assert.ErrorIs(t, err, model.ErrAlreadySubscribed)

	// No second welcome email.
	assert.Len(t, deps.enq.types, 1)
}

func TestNewsletterService_Subscribe_ReactivatesUnsubscribed(t *testing.T) {
	svc, deps := newTestService(t)

	_, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "alice@example.com"})
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe(context.Background(), &model.UnsubscribeRequest{Email: "alice@example.com"}))

	resp, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "reactivated")

	sub, err := deps.repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.True(t, sub.IsActive)
	assert.Nil(t, sub.UnsubscribedAt)
}

func TestNewsletterService_Subscribe_InvalidEmail(t *testing.T) {
	svc, deps := newTestService(t)

	_, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "not-an-email"})
	require.Error(t, err)
	assert.Empty(t, deps.repo.subscribers)
}

func TestNewsletterService_Subscribe_EnqueueFailureIsNotFatal(t *testing.T) {
	svc, deps := newTestService(t)
	deps.enq.err = assert.AnError

	_, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "alice@example.com"})
	require.NoError(t, err)

	sub, err := deps.repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.True(t, sub.IsActive)
}

func TestNewsletterService_Unsubscribe_Unknown(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Unsubscribe(context.Background(), &model.UnsubscribeRequest{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, model.ErrSubscriberNotFound)
}

// ----------------------------------------
// Campaign fanout
// ----------------------------------------

func campaignPost() *postmodel.Post {
	now := time.Now()
	return &postmodel.Post{
		Slug:        "on-silence",
		Title:       "On Silence",
		Excerpt:     "Some thoughts about nothing.",
		IsPublished: true,
		PublishedAt: &now,
	}
}

func TestNewsletterService_SendCampaign(t *testing.T) {
	svc, deps := newTestService(t)
	deps.posts.posts["on-silence"] = campaignPost()

	for _, addr := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: addr})
		require.NoError(t, err)
	}
	// Unsubscribed addresses are excluded from the fanout.
	require.NoError(t, svc.Unsubscribe(context.Background(), &model.UnsubscribeRequest{Email: "c@example.com"}))

	result, err := svc.SendCampaign(context.Background(), &model.SendCampaignRequest{PostSlug: "on-silence"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Successful)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.FailedEmails)

	require.Len(t, deps.mail.sent, 2)
	assert.Equal(t, "New post: On Silence", deps.mail.sent[0].Subject)
	assert.Contains(t, deps.mail.sent[0].HTML, "https://voidd.space/blog/on-silence")
}

func TestNewsletterService_SendCampaign_PartialFailure(t *testing.T) {
	svc, deps := newTestService(t)
	deps.posts.posts["on-silence"] = campaignPost()
	deps.mail.failFor["b@example.com"] = true

	for _, addr := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: addr})
		require.NoError(t, err)
	}

	result, err := svc.SendCampaign(context.Background(), &model.SendCampaignRequest{PostSlug: "on-silence"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Successful)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"b@example.com"}, result.FailedEmails)
}

func TestNewsletterService_SendCampaign_UnknownPost(t *testing.T) {
	svc, deps := newTestService(t)

	_, err := svc.SendCampaign(context.Background(), &model.SendCampaignRequest{PostSlug: "missing"})
	assert.ErrorIs(t, err, postmodel.ErrPostNotFound)
	assert.Empty(t, deps.mail.sent)
}

func TestNewsletterService_Stats(t *testing.T) {
	svc, _ := newTestService(t)

	for _, addr := range []string{"a@example.com", "b@example.com"} {
		_, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: addr})
		require.NoError(t, err)
	}
	require.NoError(t, svc.Unsubscribe(context.Background(), &model.UnsubscribeRequest{Email: "b@example.com"}))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalSubscribers)
	assert.Equal(t, 1, stats.ActiveSubscribers)
	assert.Equal(t, 1, stats.Unsubscribed)
}
