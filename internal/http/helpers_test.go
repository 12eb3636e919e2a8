package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope decodes either response shape.
type envelope struct {
	Error     string              `json:"error"`
	Message   string              `json:"message"`
	Code      int                 `json:"code"`
	Errors    map[string][]string `json:"errors"`
	Data      json.RawMessage     `json:"data"`
	RequestID string              `json:"request_id"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodePage(t *testing.T, env envelope) dto.Paginated[json.RawMessage] {
	t.Helper()
	var page dto.Paginated[json.RawMessage]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	return page
}
