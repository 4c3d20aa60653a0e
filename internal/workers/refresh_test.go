package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clinitab/uplink/internal/logger"
)

// stubRegistration counts RefreshServerInfo calls.
type stubRegistration struct {
	refreshes atomic.Int64
	err       error
}

func (s *stubRegistration) Register(context.Context) error { return nil }

func (s *stubRegistration) RefreshServerInfo(context.Context) error {
	s.refreshes.Add(1)
	return s.err
}

func TestRefreshJob_RunsPeriodically(t *testing.T) {
	reg := &stubRegistration{}
	job := NewRefreshJob(reg, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return reg.refreshes.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestRefreshJob_StopHaltsRefreshes(t *testing.T) {
	reg := &stubRegistration{}
	job := NewRefreshJob(reg, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		return reg.refreshes.Load() >= 1
	}, time.Second, time.Millisecond)

	job.Stop()
	after := reg.refreshes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, reg.refreshes.Load())
}

func TestRefreshJob_StopWithoutStart(t *testing.T) {
	job := NewRefreshJob(&stubRegistration{}, logger.Nop())

	// no-op, must not panic or block
	job.Stop()
}

func TestRefreshJob_RestartReplacesPreviousJob(t *testing.T) {
	reg := &stubRegistration{}
	job := NewRefreshJob(reg, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond)
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return reg.refreshes.Load() >= 1
	}, time.Second, time.Millisecond)
}

func TestRefreshJob_ContextCancelStops(t *testing.T) {
	reg := &stubRegistration{}
	job := NewRefreshJob(reg, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 5*time.Millisecond)
	cancel()

	time.Sleep(20 * time.Millisecond)
	after := reg.refreshes.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, reg.refreshes.Load())
	job.Stop()
}

func TestRefreshJob_KeepsTickingOnError(t *testing.T) {
	reg := &stubRegistration{err: assert.AnError}
	job := NewRefreshJob(reg, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return reg.refreshes.Load() >= 2
	}, time.Second, time.Millisecond)
}
