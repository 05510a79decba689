package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-fare-card/internal/logger"
	"github.com/MKhiriev/go-fare-card/models"
	"github.com/sethvargo/go-retry"
)

const (
	defaultRefreshInterval = 30 * time.Second
	refreshRetries         = 2
	refreshBackoffBase     = 250 * time.Millisecond
)

type balanceRefreshJob struct {
	account ClientAccountService
	logger  *logger.Logger

	retryBase time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBalanceRefreshJob creates a balanceRefreshJob that calls
// account.BasicInfo on a ticker. The job is idle until Start is called.
func NewBalanceRefreshJob(account ClientAccountService, logger *logger.Logger) BalanceRefreshJob {
	return &balanceRefreshJob{account: account, logger: logger, retryBase: refreshBackoffBase}
}

// Start implements BalanceRefreshJob. Transient failures are retried with
// exponential backoff before being reported; session errors are reported at
// once.
func (j *balanceRefreshJob) Start(ctx context.Context, interval time.Duration, onUpdate func(models.UserInfo, error)) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if onUpdate == nil {
		onUpdate = func(models.UserInfo, error) {}
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				info, err := j.refresh(jobCtx)
				if jobCtx.Err() != nil {
					return
				}
				if err != nil {
					j.logger.Err(err).Msg("balance refresh failed")
				}
				onUpdate(info, err)
			}
		}
	}()
}

func (j *balanceRefreshJob) refresh(ctx context.Context) (models.UserInfo, error) {
	var info models.UserInfo

	backoff := retry.WithMaxRetries(refreshRetries, retry.NewExponential(j.retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		info, err = j.account.BasicInfo(ctx)
		if err == nil {
			return nil
		}
		if isPermanent(err) {
			return err
		}
		return retry.RetryableError(err)
	})

	return info, err
}

// isPermanent reports errors that a retry cannot fix.
func isPermanent(err error) bool {
	return errors.Is(err, ErrNotLoggedIn) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrAccessDenied) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, context.Canceled)
}

// Stop implements BalanceRefreshJob. Safe to call when the job is not
// running.
func (j *balanceRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
