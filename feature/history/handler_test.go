package history

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleRecent(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	app := fiber.New()

	handler := NewHandler(NewService(db, zap.NewNop()))
	handler.RegisterRoutes(app)

	rows := sqlmock.NewRows([]string{"id", "ray_id", "query", "answer", "created_at"}).
		AddRow(1, "ray-1", "how many buckets?", "Two.", time.Now())
	sqlMock.ExpectQuery(".*").WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/history?limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var exchanges []Exchange
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&exchanges))
	require.Len(t, exchanges, 1)
	assert.Equal(t, "how many buckets?", exchanges[0].Query)
}
