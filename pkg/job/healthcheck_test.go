package job

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	t.Run("nil manager", func(t *testing.T) {
		t.Parallel()

		err := Healthcheck(nil)(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrHealthcheckFailed)
		assert.ErrorIs(t, err, errManagerNil)
	})

	t.Run("not started", func(t *testing.T) {
		t.Parallel()

		manager := &Manager{registry: newTaskRegistry()}

		err := Healthcheck(manager)(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrHealthcheckFailed)
		assert.ErrorIs(t, err, errManagerNotStarted)
	})
}
