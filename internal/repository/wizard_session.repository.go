package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"traderdash/internal/domain"
	"traderdash/internal/wizard"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = fmt.Errorf("wizard session not found")

// WizardSessionRepository stores wizard state between requests. Sessions
// are disposable - they expire on their own and are never listed.
type WizardSessionRepository interface {
	Create(ctx context.Context, state *wizard.State) (string, error)
	Get(ctx context.Context, id string) (*wizard.State, error)
	Save(ctx context.Context, id string, state *wizard.State) error
	Delete(ctx context.Context, id string) error
}

const sessionTTL = 24 * time.Hour

type redisWizardSessionRepository struct {
	client  *redis.Client
	prefix  string
	baskets []domain.MarketBasket
}

// NewWizardSessionRepository returns a redis-backed store. The basket
// catalog is re-attached to every loaded state since it is config, not
// session data.
func NewWizardSessionRepository(client *redis.Client, baskets []domain.MarketBasket) WizardSessionRepository {
	return &redisWizardSessionRepository{
		client:  client,
		prefix:  "wizard",
		baskets: baskets,
	}
}

func (r *redisWizardSessionRepository) key(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

func (r *redisWizardSessionRepository) Create(ctx context.Context, state *wizard.State) (string, error) {
	id := uuid.NewString()
	if err := r.Save(ctx, id, state); err != nil {
		return "", err
	}
	return id, nil
}

func (r *redisWizardSessionRepository) Get(ctx context.Context, id string) (*wizard.State, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}

	state := wizard.State{}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wizard session: %w", err)
	}
	state.Baskets = r.baskets

	return &state, nil
}

func (r *redisWizardSessionRepository) Save(ctx context.Context, id string, state *wizard.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}

	if err := r.client.Set(ctx, r.key(id), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (r *redisWizardSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}
	return nil
}

// memoryWizardSessionRepository backs sessions when redis is unavailable.
// Expiry is checked lazily on read.
type memoryWizardSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	baskets  []domain.MarketBasket
}

type memorySession struct {
	data      []byte
	expiresAt time.Time
}

func NewInMemoryWizardSessionRepository(baskets []domain.MarketBasket) WizardSessionRepository {
	return &memoryWizardSessionRepository{
		sessions: map[string]memorySession{},
		baskets:  baskets,
	}
}

func (r *memoryWizardSessionRepository) Create(ctx context.Context, state *wizard.State) (string, error) {
	id := uuid.NewString()
	if err := r.Save(ctx, id, state); err != nil {
		return "", err
	}
	return id, nil
}

func (r *memoryWizardSessionRepository) Get(_ context.Context, id string) (*wizard.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok || time.Now().After(session.expiresAt) {
		delete(r.sessions, id)
		return nil, ErrSessionNotFound
	}

	state := wizard.State{}
	if err := json.Unmarshal(session.data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wizard session: %w", err)
	}
	state.Baskets = r.baskets

	return &state, nil
}

func (r *memoryWizardSessionRepository) Save(_ context.Context, id string, state *wizard.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = memorySession{
		data:      data,
		expiresAt: time.Now().Add(sessionTTL),
	}
	return nil
}

func (r *memoryWizardSessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
