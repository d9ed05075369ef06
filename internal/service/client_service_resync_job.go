package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
)

const defaultResyncInterval = 5 * time.Minute

type clientResyncJob struct {
	registry MembershipRegistry
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientResyncJob creates a job that calls registry.ResyncAll every
// interval. A zero or negative interval defaults to 5 minutes. The job is
// idle until Start is called.
func NewClientResyncJob(registry MembershipRegistry, interval time.Duration, logger *logger.Logger) ClientResyncJob {
	if interval <= 0 {
		interval = defaultResyncInterval
	}

	return &clientResyncJob{registry: registry, interval: interval, logger: logger}
}

// Start implements ClientResyncJob. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientResyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.registry.ResyncAll(jobCtx); err != nil {
					j.logger.Err(err).Msg("periodic resync failed")
				}
			}
		}
	}()
}

// Stop implements ClientResyncJob. Safe to call when the job is not running.
func (j *clientResyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
