package cron

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeReminder struct {
	mu      sync.Mutex
	windows []time.Duration
	err     error
}

func (f *fakeReminder) SendDeadlineReminders(_ context.Context, window time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.windows = append(f.windows, window)
	return len(f.windows), f.err
}

type fakeCleaner struct {
	mu   sync.Mutex
	days []int
	err  error
}

func (f *fakeCleaner) CleanupOldLogs(days int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.days = append(f.days, days)
	return 3, f.err
}

func TestRunRemindersPassesWindow(t *testing.T) {
	r := &fakeReminder{}
	RunReminders(context.Background(), r, 24*time.Hour)
	r.err = errors.New("db down")
	RunReminders(context.Background(), r, 24*time.Hour)
	assert.Equal(t, []time.Duration{24 * time.Hour, 24 * time.Hour}, r.windows)
}

func TestRunCleanupUsesRetention(t *testing.T) {
	c := &fakeCleaner{}
	runCleanup(c, 30)
	c.err = errors.New("db down")
	runCleanup(c, 7)
	assert.Equal(t, []int{30, 7}, c.days)
}

func TestBackgroundTasksStopWithContext(t *testing.T) {
	r := &fakeReminder{}
	c := &fakeCleaner{}
	ctx, cancel := context.WithCancel(context.Background())
	StartReminderTask(ctx, r, time.Hour)
	StartCleanupTask(ctx, c, 30)
	assert.Eventually(t, func() bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		c.mu.Lock()
		defer c.mu.Unlock()
		return len(r.windows) == 1 && len(c.days) == 1
	}, time.Second, 5*time.Millisecond)
	cancel()
}
