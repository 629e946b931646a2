package service

import (
	"context"
	"time"

	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/repository"
	"go.uber.org/zap"
)

const (
	relayBatchSize = 100
	// Events that failed this many times are left for an operator.
	relayMaxAttempts = 10
)

// EffectRelay replays ledger events whose side effects did not complete after commit.
type EffectRelay struct {
	repo         repository.EventRepository
	processor    EffectProcessor
	pollInterval time.Duration
	grace        time.Duration
	now          func() time.Time
}

func NewEffectRelay(repo repository.EventRepository, processor EffectProcessor, interval, grace time.Duration) *EffectRelay {
	return &EffectRelay{
		repo:         repo,
		processor:    processor,
		pollInterval: interval,
		grace:        grace,
		now:          time.Now,
	}
}

func (r *EffectRelay) Run(ctx context.Context) {
	if r.pollInterval <= 0 {
		logger.Log.Info("effect relay disabled")
		return
	}

	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.replayPending(ctx)
		}
	}
}

func (r *EffectRelay) replayPending(ctx context.Context) {
	events, err := r.repo.ListPending(ctx, r.now().Add(-r.grace), relayMaxAttempts, relayBatchSize)
	if err != nil {
		logger.Log.Error("failed to get pending ledger events", zap.Error(err))
		return
	}

	for _, ev := range events {
		if ctx.Err() != nil {
			return
		}
		if err := r.processor.Process(ctx, ev); err != nil {
			if ev.Attempts+1 >= relayMaxAttempts {
				logger.Log.Error("ledger event parked after repeated failures",
					zap.String("event_id", ev.ID), zap.Int("attempts", ev.Attempts+1), zap.Error(err))
				continue
			}
			logger.Log.Warn("ledger event replay failed", zap.String("event_id", ev.ID), zap.Error(err))
			continue
		}
		logger.Log.Info("ledger event replayed", zap.String("event_id", ev.ID), zap.String("kind", string(ev.Kind)))
	}
}
