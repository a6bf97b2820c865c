// pkg/resource/breaker.go
package resource

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/logging"
)

// BreakerLoader wraps a Loader with a circuit breaker. Once the backend
// fails too many times in a row, for example when the asset root is
// missing, loads fail fast until the retry timeout has passed.
type BreakerLoader struct {
	loader  Loader
	breaker *gobreaker.CircuitBreaker
	logger  *logging.Logger
}

// NewBreakerLoader trips after maxConsecutiveFailures failures in a row and
// lets a single probe through after retryAfter
func NewBreakerLoader(loader Loader, maxConsecutiveFailures uint32, retryAfter time.Duration, logger *logging.Logger) *BreakerLoader {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	settings := gobreaker.Settings{
		Name:        "asset-loader",
		MaxRequests: 1,
		Timeout:     retryAfter,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info(context.Background(), "circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &BreakerLoader{
		loader:  loader,
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// LoadTexture implements Loader
func (b *BreakerLoader) LoadTexture(path string) (entity.Texture, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.loader.LoadTexture(path)
	})
	if err != nil {
		return nil, fmt.Errorf("circuit breaker: %w", err)
	}
	return result.(entity.Texture), nil
}

// LoadAudio implements Loader
func (b *BreakerLoader) LoadAudio(path string) (entity.AudioSample, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.loader.LoadAudio(path)
	})
	if err != nil {
		return nil, fmt.Errorf("circuit breaker: %w", err)
	}
	return result.(entity.AudioSample), nil
}

// State returns the current state of the circuit breaker.
func (b *BreakerLoader) State() gobreaker.State {
	return b.breaker.State()
}

// Counts returns the breaker's current success and failure counts.
func (b *BreakerLoader) Counts() gobreaker.Counts {
	return b.breaker.Counts()
}
