// Package rediscache met en cache le résumé du tableau de bord dans Redis.
// Les agrégats du dashboard sont coûteux et tolèrent une minute de retard.
package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jdelort/cafe-manager-api/internal/application/analytics"
	"github.com/jdelort/cafe-manager-api/internal/application/dto"
	"github.com/jdelort/cafe-manager-api/pkg/config"
	"github.com/jdelort/cafe-manager-api/pkg/logger"
)

const (
	summaryKey = "dashboard:summary"
	summaryTTL = time.Minute
)

// DashboardCache implémente analytics.SummaryCache sur Redis.
// Toute erreur Redis est traitée comme un cache miss: le dashboard reste
// disponible même si Redis est indisponible.
type DashboardCache struct {
	client *redis.Client
	log    *logger.Logger
}

var _ analytics.SummaryCache = (*DashboardCache)(nil)

// NewDashboardCache construit le cache et vérifie la connexion.
func NewDashboardCache(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*DashboardCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &DashboardCache{client: client, log: log}, nil
}

// Get renvoie le résumé en cache, ou (nil, false) en cas de miss ou d'erreur.
func (c *DashboardCache) Get(ctx context.Context) (*dto.DashboardSummaryDTO, bool) {
	raw, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("lecture cache dashboard")
		}
		return nil, false
	}
	var summary dto.DashboardSummaryDTO
	if err := json.Unmarshal(raw, &summary); err != nil {
		c.log.Warn().Err(err).Msg("désérialisation cache dashboard")
		return nil, false
	}
	return &summary, true
}

// Set écrit le résumé avec TTL. Les erreurs sont loguées, jamais remontées.
func (c *DashboardCache) Set(ctx context.Context, summary *dto.DashboardSummaryDTO) {
	raw, err := json.Marshal(summary)
	if err != nil {
		c.log.Warn().Err(err).Msg("sérialisation cache dashboard")
		return
	}
	if err := c.client.Set(ctx, summaryKey, raw, summaryTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("écriture cache dashboard")
	}
}

// Close ferme la connexion Redis.
func (c *DashboardCache) Close() error {
	return c.client.Close()
}
