package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/VittaServices/marketplace-api/internal/dto"
)

// ===============================
// Cache de disponibilidade (opcional)
// ===============================

// Availability guarda o resultado do cálculo de um dia por pouco tempo.
// A recomputação continua pull-based: toda escrita de reserva invalida a
// chave. Com rdb nulo o cache vira no-op e a API funciona sem Redis.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewAvailability(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *Availability {
	return &Availability{rdb: rdb, ttl: ttl, log: log}
}

func key(serviceID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", serviceID, date)
}

func (c *Availability) Get(ctx context.Context, serviceID uint, date string) (*dto.DailyAvailabilityDTO, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(serviceID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("availability cache read failed")
		}
		return nil, false
	}

	var out dto.DailyAvailabilityDTO
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Warn().Err(err).Msg("availability cache entry corrupted")
		return nil, false
	}
	return &out, true
}

func (c *Availability) Set(ctx context.Context, serviceID uint, date string, v *dto.DailyAvailabilityDTO) {
	if c == nil || c.rdb == nil || v == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(serviceID, date), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache write failed")
	}
}

// Invalidate remove o dia do cache; chamada em toda escrita de reserva.
func (c *Availability) Invalidate(ctx context.Context, serviceID uint, date string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, key(serviceID, date)).Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache invalidation failed")
	}
}

// InvalidateService remove todos os dias cacheados do serviço; chamada
// quando a agenda semanal ou os settings mudam, já que qualquer dia
// calculado pode ter ficado obsoleto.
func (c *Availability) InvalidateService(ctx context.Context, serviceID uint) {
	if c == nil || c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%d:*", serviceID)
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn().Err(err).Str("key", iter.Val()).Msg("availability cache invalidation failed")
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache scan failed")
	}
}
