package health

import (
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthMongo "github.com/hellofresh/health-go/v5/checks/mongo"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const version = "1.0.0"

// NewHealthHandler registers the mongo check and, when the cache runs on
// redis, a redis check that degrades instead of failing the whole check.
func NewHealthHandler(cfg *config.Config, withRedis bool) (*health.Health, error) {
	checks := []health.Config{
		{
			Name:      "mongo",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: healthMongo.New(healthMongo.Config{
				DSN:               cfg.Mongo.URI,
				TimeoutConnect:    2 * time.Second,
				TimeoutDisconnect: time.Second,
				TimeoutPing:       time.Second,
			}),
		},
	}

	if withRedis {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
