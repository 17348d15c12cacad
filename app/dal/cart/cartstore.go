package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	corecart "ElectroMart/app/core/cart"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

var ErrNotFound = errors.New("cart not found")

var _ Store = (*redisStore)(nil)

type (
	// Store holds the cart of each guest session. Get on an unknown session
	// returns ErrNotFound; callers treat that as an empty cart.
	Store interface {
		Get(ctx context.Context, sessionId string) ([]corecart.Line, error)
		Put(ctx context.Context, sessionId string, lines []corecart.Line) error
		Clear(ctx context.Context, sessionId string) error
	}

	redisStore struct {
		rds *redis.Redis
		ttl time.Duration
	}
)

// NewRedisStore returns a Store keeping JSON cart snapshots in redis, each
// refreshed to ttl on every write.
func NewRedisStore(rds *redis.Redis, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &redisStore{
		rds: rds,
		ttl: ttl,
	}
}

func cartKey(sessionId string) string {
	return fmt.Sprintf("storefront:cart:%s", sessionId)
}

func (s *redisStore) Get(ctx context.Context, sessionId string) ([]corecart.Line, error) {
	val, err := s.rds.GetCtx(ctx, cartKey(sessionId))
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, ErrNotFound
	}
	var lines []corecart.Line
	if err := json.Unmarshal([]byte(val), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *redisStore) Put(ctx context.Context, sessionId string, lines []corecart.Line) error {
	if lines == nil {
		lines = []corecart.Line{}
	}
	body, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.rds.SetexCtx(ctx, cartKey(sessionId), string(body), int(s.ttl.Seconds()))
}

func (s *redisStore) Clear(ctx context.Context, sessionId string) error {
	_, err := s.rds.DelCtx(ctx, cartKey(sessionId))
	return err
}
