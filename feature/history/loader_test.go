package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	t.Run("DisabledWithoutDB", func(t *testing.T) {
		feature := NewFeature(nil, zap.NewNop())
		assert.Equal(t, "history", feature.Name())
		assert.False(t, feature.IsEnabled())
	})

	t.Run("EnabledWithDB", func(t *testing.T) {
		db, _ := setupMockDB(t)
		feature := NewFeature(db, zap.NewNop())
		assert.True(t, feature.IsEnabled())
		assert.NotNil(t, feature.Service())
	})
}
