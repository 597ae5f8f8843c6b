package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	customError "github.com/segyhp/islamicfin-engine/pkg/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "world", body["data"].(map[string]interface{})["hello"])
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantField  string
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        customError.WrapValidation("cash", "cash must be greater than or equal to 0"),
			wantStatus: http.StatusBadRequest,
			wantCode:   customError.ErrCodeValidation,
			wantField:  "cash",
			wantMsg:    "cash must be greater than or equal to 0",
		},
		{
			name:       "not configured",
			err:        customError.WrapNotConfigured("Chat service", "GEMINI_API_KEY"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   customError.ErrCodeNotConfigured,
			wantMsg:    "Chat service is not configured. Please set GEMINI_API_KEY",
		},
		{
			name:       "unknown error hides detail",
			err:        errors.New("pq: password authentication failed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FromError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantField, body.Field)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	handler := CORSMiddleware("http://localhost:5173")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/zakat", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/zakat", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := LoggingMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-1")
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))
	require.Equal(t, 1, logs.Len())

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/health", fields["path"])
	assert.Equal(t, int64(http.StatusCreated), fields["status"])
}

func TestDecimalsAreNumbers(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]decimal.Decimal{"zakat_due": decimal.RequireFromString("2500.50")})

	assert.Contains(t, rec.Body.String(), `"zakat_due":2500.5`)
}
