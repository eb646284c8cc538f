package events

import (
	"net/http/httptest"
	"testing"

	"event-state/core/loader"
	"event-state/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeature(t *testing.T) {
	feature := NewFeature(reconcile.NewEngine(nil), zap.NewNop())

	assert.Equal(t, "events", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	mgr := loader.NewManager(zap.NewNop())
	mgr.Register(feature)
	require.NoError(t, mgr.LoadAll(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
