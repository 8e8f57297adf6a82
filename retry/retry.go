package retry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Config controls how an operation is retried.
type Config struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	Logger        logrus.FieldLogger
	Context       context.Context
	Retryable     func(error) bool
}

// Default retries transient failures three times with exponential backoff from 100ms.
func Default() *Config {
	return &Config{
		MaxRetries:    3,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
		Retryable:     IsTransient,
	}
}

func (c *Config) WithLogger(l logrus.FieldLogger) *Config {
	c.Logger = l
	return c
}

func (c *Config) WithContext(ctx context.Context) *Config {
	c.Context = ctx
	return c
}

func (c *Config) WithMaxRetries(n int) *Config {
	c.MaxRetries = n
	return c
}

func (c *Config) WithInitialDelay(d time.Duration) *Config {
	c.InitialDelay = d
	return c
}

func (c *Config) WithMaxDelay(d time.Duration) *Config {
	c.MaxDelay = d
	return c
}

func (c *Config) WithBackoffFactor(f float64) *Config {
	c.BackoffFactor = f
	return c
}

func (c *Config) WithRetryable(f func(error) bool) *Config {
	c.Retryable = f
	return c
}

var transientPatterns = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"timeout",
	"temporary failure",
	"network unreachable",
	"context deadline exceeded",
	"driver: bad connection",
	"leader not available",
	"not leader for partition",
}

// IsTransient reports whether err looks like a network or broker hiccup worth retrying.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, p := range transientPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// Execute runs op until it succeeds, fails with a non-retryable error, or the
// attempts are exhausted. A nil config uses Default.
func Execute(c *Config, op func() error) error {
	if c == nil {
		c = Default()
	}
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	delay := c.InitialDelay
	var err error
	for attempt := 1; ; attempt++ {
		if ctx.Err() != nil {
			return fmt.Errorf("operation cancelled: %w", ctx.Err())
		}

		if err = op(); err == nil {
			if attempt > 1 && c.Logger != nil {
				c.Logger.WithField("attempts", attempt).Info("Operation succeeded after retry.")
			}
			return nil
		}
		if c.Retryable != nil && !c.Retryable(err) {
			return err
		}
		if attempt > c.MaxRetries {
			break
		}

		if c.Logger != nil {
			c.Logger.WithError(err).WithFields(logrus.Fields{
				"attempt": attempt,
				"delay":   delay,
			}).Warn("Operation failed, retrying.")
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("operation cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
		delay = min(time.Duration(float64(delay)*c.BackoffFactor), c.MaxDelay)
	}

	if c.Logger != nil {
		c.Logger.WithError(err).WithField("attempts", c.MaxRetries+1).Error("Operation failed after all retry attempts.")
	}
	return fmt.Errorf("operation failed after %d attempts: %w", c.MaxRetries+1, err)
}
