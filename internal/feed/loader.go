package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"propdash/server/internal/models"
)

var ErrEmptySource = errors.New("feed source is empty")

// Loader reads the listings array from a file or an http(s) URL.
type Loader struct {
	logger     *logrus.Logger
	client     *http.Client
	maxRetries int
	retryDelay time.Duration
}

func NewLoader(logger *logrus.Logger, timeout time.Duration, maxRetries int, retryDelay time.Duration) *Loader {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Loader{
		logger:     logger,
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load returns the decoded listings. Records are not validated; records
// that cannot be decoded at all are skipped.
func (l *Loader) Load(ctx context.Context, source string) ([]models.Property, error) {
	if source == "" {
		return nil, ErrEmptySource
	}

	if !isRemote(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read feed file: %w", err)
		}
		return l.decode(source, data)
	}

	var err error
	for attempt := 0; attempt <= l.maxRetries; attempt++ {
		if attempt > 0 {
			l.logger.Infof("Retrying feed fetch, attempt %d of %d", attempt, l.maxRetries)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(l.retryDelay):
			}
		}

		var data []byte
		data, err = l.fetch(ctx, source)
		if err == nil {
			return l.decode(source, data)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		l.logger.WithError(err).WithField("source", source).Error("Feed fetch failed")
	}

	return nil, fmt.Errorf("failed to fetch properties after %d attempts: %w", l.maxRetries+1, err)
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "propdash/1.0")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch properties: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// decode parses the feed array one record at a time. Records that do not
// decode are logged and skipped.
func (l *Loader) decode(source string, data []byte) ([]models.Property, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	properties := make([]models.Property, 0, len(records))
	skipped := 0
	for i, record := range records {
		var property models.Property
		if err := json.Unmarshal(record, &property); err != nil {
			skipped++
			l.logger.WithError(err).WithFields(logrus.Fields{
				"source": source,
				"index":  i,
			}).Warn("Skipping malformed feed record")
			continue
		}
		properties = append(properties, property)
	}

	l.logger.WithFields(logrus.Fields{
		"source":  source,
		"records": len(properties),
		"skipped": skipped,
	}).Info("Loaded property feed")

	return properties, nil
}
