package job

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type archiveTask struct{}

func (t *archiveTask) Name() string { return "post.archive" }

func (t *archiveTask) Handle(ctx context.Context, p struct{}) error {
	return nil
}

func TestWithTask(t *testing.T) {
	t.Parallel()

	cfg := newConfig()

	opt := WithTask[struct{}, *archiveTask](&archiveTask{})
	opt(cfg)

	executor, ok := cfg.registry.get("post.archive")
	assert.True(t, ok)
	assert.NotNil(t, executor)
}

type nightlyTask struct {
	schedule string
}

func (t *nightlyTask) Name() string     { return "reminder.daily" }
func (t *nightlyTask) Schedule() string { return t.schedule }

func (t *nightlyTask) Handle(ctx context.Context) error {
	return nil
}

func TestWithScheduledTask(t *testing.T) {
	t.Parallel()

	cfg := newConfig()

	opt := WithScheduledTask[*nightlyTask](&nightlyTask{schedule: "0 18 * * *"})
	opt(cfg)

	require.Len(t, cfg.schedules, 1)
	assert.Equal(t, "reminder.daily", cfg.schedules[0].name)
	assert.Equal(t, "0 18 * * *", cfg.schedules[0].schedule)
	assert.NotNil(t, cfg.schedules[0].handler)
}

func TestWithQueue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		added   bool
	}{
		{"positive workers", 10, true},
		{"zero workers ignored", 0, false},
		{"negative workers ignored", -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := newConfig()
			WithQueue("email", tt.workers)(cfg)

			got, ok := cfg.queues["email"]
			assert.Equal(t, tt.added, ok)
			if tt.added {
				assert.Equal(t, tt.workers, got)
			}
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	cfg := newConfig()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	WithLogger(logger)(cfg)
	assert.Same(t, logger, cfg.logger)

	// Nil does not override.
	WithLogger(nil)(cfg)
	assert.Same(t, logger, cfg.logger)
}

func TestWithMaxWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"positive", 50, 50},
		{"zero ignored", 0, 100},
		{"negative ignored", -10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := newConfig()
			cfg.maxWorkers = 100
			WithMaxWorkers(tt.n)(cfg)
			assert.Equal(t, tt.want, cfg.maxWorkers)
		})
	}
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := newConfig()

	assert.NotNil(t, cfg.registry)
	assert.NotNil(t, cfg.queues)
	assert.Empty(t, cfg.schedules)
	assert.Nil(t, cfg.logger)
	assert.Equal(t, 0, cfg.maxWorkers)
}
