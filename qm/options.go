package qm

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type config struct {
	allSolutions bool
	timeout      time.Duration
	ctx          context.Context
	logger       logrus.FieldLogger
}

// An Option configures a minimization.
type Option func(c *config) error

// WithAllSolutions skips the dominance steps of the chart reduction so that
// every minimal solution is returned. This is slower on average, and much
// more likely to hit the exponential worst case of Petrick's method.
func WithAllSolutions() Option {
	return func(c *config) error {
		c.allSolutions = true
		return nil
	}
}

// WithTimeout makes the minimization fail with ErrTimeout when no solution was
// found after d. A zero duration means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d < 0 {
			return errors.Errorf("invalid negative timeout %v", d)
		}
		c.timeout = d
		return nil
	}
}

// WithContext makes the minimization fail with ErrTimeout when ctx is done
// before a solution was found.
func WithContext(ctx context.Context) Option {
	return func(c *config) error {
		if ctx == nil {
			return errors.New("nil context")
		}
		c.ctx = ctx
		return nil
	}
}

// WithLogger sets the logger the steps of the minimization are traced to, at
// debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

var defaults = []Option{
	func(c *config) error {
		if c.ctx == nil {
			c.ctx = context.Background()
		}
		return nil
	},
	func(c *config) error {
		if c.logger == nil {
			l := logrus.New()
			l.SetOutput(io.Discard)
			c.logger = l
		}
		return nil
	},
}

func newConfig(options []Option) (*config, error) {
	var c config
	for _, option := range append(options, defaults...) {
		if err := option(&c); err != nil {
			return nil, err
		}
	}
	return &c, nil
}
