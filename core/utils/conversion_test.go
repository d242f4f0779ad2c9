package utils_test

import (
	"testing"

	"storage-assistant/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	assert.Equal(t, "reports", utils.ToString("reports"))
	assert.Equal(t, "reports", utils.ToString([]byte("reports")))
	assert.Equal(t, "42", utils.ToString(42))
	assert.Equal(t, "", utils.ToString(nil))
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 1000, utils.ToInt(1000))
	assert.Equal(t, 1000, utils.ToInt(float64(1000)))
	assert.Equal(t, 1000, utils.ToInt("1000"))
	assert.Equal(t, 0, utils.ToInt(nil))
	assert.Equal(t, 0, utils.ToInt("not a number"))
}
