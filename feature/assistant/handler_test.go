package assistant

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"storage-assistant/core/llm"
	llmmocks "storage-assistant/core/llm/mocks"
	"storage-assistant/core/middleware/rayid"
	"storage-assistant/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecorder struct {
	rayID  string
	query  string
	answer string
	err    error
}

func (r *fakeRecorder) Record(rayID, query, answer string) error {
	r.rayID, r.query, r.answer = rayID, query, answer
	return r.err
}

func setupTestApp(t *testing.T, recorder Recorder) (*fiber.App, *llmmocks.Gateway) {
	app := fiber.New()
	app.Use(rayid.New())

	gateway := new(llmmocks.Gateway)
	feature, err := NewFeature(gateway, new(mocks.Client), recorder, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, feature.Load(app))

	return app, gateway
}

func postChat(t *testing.T, app *fiber.App, body string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestHandleChat(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, gateway := setupTestApp(t, nil)
		gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
			Return(&llm.Completion{Text: "You have 2 buckets."}, nil)

		code, body := postChat(t, app, `{"query":"how many buckets?"}`)
		assert.Equal(t, 200, code)
		assert.Equal(t, "You have 2 buckets.", body["answer"])
		assert.NotEmpty(t, body["ray_id"])
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		app, _ := setupTestApp(t, nil)

		code, _ := postChat(t, app, `{"query":""}`)
		assert.Equal(t, 400, code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		app, _ := setupTestApp(t, nil)

		code, _ := postChat(t, app, `{not json`)
		assert.Equal(t, 400, code)
	})

	t.Run("GatewayFailure", func(t *testing.T) {
		app, gateway := setupTestApp(t, nil)
		gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("quota exceeded"))

		code, body := postChat(t, app, `{"query":"anything"}`)
		assert.Equal(t, 502, code)

		// The caller gets a single short failure message, not the raw error.
		assert.NotContains(t, body["error"], "quota")
	})

	t.Run("RecordsExchange", func(t *testing.T) {
		recorder := &fakeRecorder{}
		app, gateway := setupTestApp(t, recorder)
		gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
			Return(&llm.Completion{Text: "done"}, nil)

		code, _ := postChat(t, app, `{"query":"hello"}`)
		assert.Equal(t, 200, code)
		assert.Equal(t, "hello", recorder.query)
		assert.Equal(t, "done", recorder.answer)
		assert.NotEmpty(t, recorder.rayID)
	})

	t.Run("RecorderFailureIsNotFatal", func(t *testing.T) {
		recorder := &fakeRecorder{err: errors.New("db gone")}
		app, gateway := setupTestApp(t, recorder)
		gateway.On("Complete", mock.Anything, mock.Anything, mock.Anything).
			Return(&llm.Completion{Text: "done"}, nil)

		code, _ := postChat(t, app, `{"query":"hello"}`)
		assert.Equal(t, 200, code)
	})
}
