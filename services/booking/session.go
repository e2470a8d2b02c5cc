package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"apexdrive/models"
)

const (
	sessionKeyPrefix = "booking:session:"
	confirmKeyPrefix = "booking:confirm:"
	lockKeyPrefix    = "booking:submitlock:"
)

// SessionService persists booking flows in Redis so a session survives
// between HTTP requests. Each session's state is exclusively owned by its
// session ID; nothing is shared across sessions.
type SessionService struct {
	Cache         *redis.Client
	Submitter     BookingSubmitter
	Logger        *zap.Logger
	TTL           time.Duration
	SubmitTimeout time.Duration
}

func NewSessionService(cache *redis.Client, submitter BookingSubmitter, logger *zap.Logger) *SessionService {
	return &SessionService{
		Cache:         cache,
		Submitter:     submitter,
		Logger:        logger,
		TTL:           30 * time.Minute,
		SubmitTimeout: 15 * time.Second,
	}
}

// CreateSession starts a fresh booking flow and returns its session ID.
func (s *SessionService) CreateSession(ctx context.Context) (string, models.BookingSummary, error) {
	sessionID := uuid.New().String()
	flow := NewFlow(s.Submitter, s.SubmitTimeout)
	if err := s.save(ctx, sessionID, flow); err != nil {
		return "", models.BookingSummary{}, err
	}
	s.Logger.Info("booking session created", zap.String("sessionId", sessionID))
	return sessionID, flow.Summary(), nil
}

// GetSummary returns the session's read model.
func (s *SessionService) GetSummary(ctx context.Context, sessionID string) (models.BookingSummary, error) {
	flow, err := s.load(ctx, sessionID)
	if err != nil {
		return models.BookingSummary{}, err
	}
	return flow.Summary(), nil
}

// Mutate loads the session, applies fn to its flow, and saves the result.
// The mutation error is returned alongside the (possibly updated) summary so
// callers can still render current state after a validation failure.
func (s *SessionService) Mutate(ctx context.Context, sessionID string, fn func(*Flow) error) (models.BookingSummary, error) {
	flow, err := s.load(ctx, sessionID)
	if err != nil {
		return models.BookingSummary{}, err
	}
	if err := fn(flow); err != nil {
		return flow.Summary(), err
	}
	if err := s.save(ctx, sessionID, flow); err != nil {
		return flow.Summary(), err
	}
	return flow.Summary(), nil
}

// Submit finalizes the session's booking. A confirmation already cached under
// the session's idempotency key is returned as-is, so retrying after a
// timeout cannot double-book. While one submit is outstanding a second one is
// rejected with ErrSubmitInFlight.
func (s *SessionService) Submit(ctx context.Context, sessionID string) (*models.BookingConfirmation, error) {
	flow, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if key := flow.Snapshot().IdempotencyKey; key != "" {
		if conf, err := s.cachedConfirmation(ctx, key); err == nil && conf != nil {
			s.Logger.Info("returning cached confirmation for retried submit",
				zap.String("sessionId", sessionID), zap.String("idempotencyKey", key))
			flow.state.CurrentStep = models.StepConfirmed
			if err := s.save(ctx, sessionID, flow); err != nil {
				return nil, err
			}
			return conf, nil
		}
	}

	lockKey := lockKeyPrefix + sessionID
	ok, err := s.Cache.SetNX(ctx, lockKey, "1", s.SubmitTimeout+5*time.Second).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	if !ok {
		return nil, ErrSubmitInFlight
	}
	defer s.Cache.Del(ctx, lockKey)

	conf, err := flow.Submit(ctx)

	// The idempotency key minted during Submit must survive a failed attempt
	// so the retry reuses it.
	if saveErr := s.save(ctx, sessionID, flow); saveErr != nil && err == nil {
		err = saveErr
	}
	if err != nil {
		return nil, err
	}

	if data, merr := json.Marshal(conf); merr == nil {
		s.Cache.Set(ctx, confirmKeyPrefix+conf.IdempotencyKey, data, 24*time.Hour)
	}
	return conf, nil
}

// CancelSession drops the session from the cache.
func (s *SessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *SessionService) cachedConfirmation(ctx context.Context, idempotencyKey string) (*models.BookingConfirmation, error) {
	data, err := s.Cache.Get(ctx, confirmKeyPrefix+idempotencyKey).Result()
	if err != nil {
		return nil, err
	}
	var conf models.BookingConfirmation
	if err := json.Unmarshal([]byte(data), &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (s *SessionService) load(ctx context.Context, sessionID string) (*Flow, error) {
	data, err := s.Cache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to read booking session: %w", err)
	}
	var state models.BookingState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return RestoreFlow(state, s.Submitter, s.SubmitTimeout), nil
}

func (s *SessionService) save(ctx context.Context, sessionID string, flow *Flow) error {
	data, err := json.Marshal(flow.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKeyPrefix+sessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
