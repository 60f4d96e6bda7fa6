package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgo/task-service/internal/services/lifecycle"
)

func TestShutdownRunsHooksInReverseOrder(t *testing.T) {
	m := lifecycle.New(time.Second, nil)

	var order []string
	for _, name := range []string{"postgres", "monitor", "http_server"} {
		name := name
		m.Register(name, func(ctx context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, m.Shutdown(context.Background()))
	assert.Equal(t, []string{"http_server", "monitor", "postgres"}, order)
}

func TestShutdownCollectsFailures(t *testing.T) {
	m := lifecycle.New(time.Second, nil)

	boom := errors.New("close failed")
	var ran bool
	m.Register("first", func(ctx context.Context) error {
		ran = true
		return nil
	})
	m.Register("second", func(ctx context.Context) error {
		return boom
	})

	err := m.Shutdown(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.True(t, ran, "a failing hook must not stop the remaining hooks")
}

func TestRegisterIgnoresNilHooks(t *testing.T) {
	m := lifecycle.New(time.Second, nil)
	m.Register("noop", nil)
	require.NoError(t, m.Shutdown(context.Background()))
}
