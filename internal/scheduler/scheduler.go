package scheduler

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"propdash/server/internal/models"
)

// FeedLoader fetches the listings array from source.
type FeedLoader interface {
	Load(ctx context.Context, source string) ([]models.Property, error)
}

// Snapshot receives a freshly loaded listings array.
type Snapshot interface {
	Replace(properties []models.Property) int
}

// Refresher keeps the snapshot in sync with the feed
type Refresher struct {
	loader   FeedLoader
	snapshot Snapshot
	source   string
	interval time.Duration
	timeout  time.Duration
	logger   *logrus.Logger
	stopChan chan struct{}
	wg       sync.WaitGroup
	jobMutex sync.Mutex // Ensures one load at a time

	statusMutex sync.RWMutex
	lastRefresh time.Time
	lastErr     error
}

// NewRefresher creates a refresher. An interval of zero disables periodic reloads.
func NewRefresher(loader FeedLoader, snapshot Snapshot, source string, interval time.Duration, logger *logrus.Logger) *Refresher {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Refresher{
		loader:   loader,
		snapshot: snapshot,
		source:   source,
		interval: interval,
		timeout:  2 * time.Minute,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins periodic reloads. It is a no-op when the interval is zero.
func (r *Refresher) Start() {
	if r.interval <= 0 {
		r.logger.Info("Periodic feed refresh disabled")
		return
	}
	r.wg.Add(1)
	go r.run()
}

func (r *Refresher) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			return
		case t := <-ticker.C:
			r.logger.WithField("tick", t.Format(time.RFC3339)).Debug("Running scheduled feed refresh")
			ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
			// Errors are logged by RefreshNow
			_, _ = r.RefreshNow(ctx)
			cancel()
		}
	}
}

// RefreshNow loads the feed and replaces the snapshot. On failure the
// previous snapshot stays in place.
func (r *Refresher) RefreshNow(ctx context.Context) (int, error) {
	r.jobMutex.Lock()
	defer r.jobMutex.Unlock()

	start := time.Now()
	properties, err := r.loader.Load(ctx, r.source)
	if err != nil {
		r.setStatus(time.Time{}, err)
		r.logger.WithError(err).WithField("source", r.source).Error("Feed refresh failed, keeping previous snapshot")
		return 0, fmt.Errorf("failed to refresh feed: %w", err)
	}

	count := r.snapshot.Replace(properties)
	r.setStatus(time.Now(), nil)

	r.logger.WithFields(logrus.Fields{
		"source":   r.source,
		"records":  len(properties),
		"unique":   count,
		"duration": time.Since(start).String(),
	}).Info("Feed refresh completed")

	return count, nil
}

// Status reports when the last successful refresh happened and the error
// of the most recent attempt, if any.
// It does not wait for a refresh in progress.
func (r *Refresher) Status() (time.Time, error) {
	r.statusMutex.RLock()
	defer r.statusMutex.RUnlock()
	return r.lastRefresh, r.lastErr
}

// setStatus records an attempt. A zero refreshed time keeps the previous one.
func (r *Refresher) setStatus(refreshed time.Time, err error) {
	r.statusMutex.Lock()
	defer r.statusMutex.Unlock()
	if !refreshed.IsZero() {
		r.lastRefresh = refreshed
	}
	r.lastErr = err
}

// Stop gracefully stops the refresher
func (r *Refresher) Stop() {
	close(r.stopChan)
	r.wg.Wait()
}
