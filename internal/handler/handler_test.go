package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	"github.com/segyhp/islamicfin-engine/internal/service"
	customError "github.com/segyhp/islamicfin-engine/pkg/errors"
	"github.com/segyhp/islamicfin-engine/tests/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	calculator *mocks.MockCalculatorService
	prices     *mocks.MockPriceService
	chat       *mocks.MockChatService
	history    *mocks.MockHistoryService
	router     http.Handler
}

func newTestServer() *testServer {
	s := &testServer{
		calculator: &mocks.MockCalculatorService{},
		prices:     &mocks.MockPriceService{},
		chat:       &mocks.MockChatService{},
		history:    &mocks.MockHistoryService{},
	}
	s.router = NewRouter(Handlers{
		Calculator: NewCalculatorHandler(s.calculator),
		Prices:     NewPriceHandler(s.prices),
		Chat:       NewChatHandler(s.chat),
		History:    NewHistoryHandler(s.history),
		Health:     NewHealthHandler(nil, nil, time.Second),
	}, "http://localhost:5173", zap.NewNop())
	return s
}

func (s *testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
	Field   string          `json:"field"`
	Message string          `json:"message"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestZakat_Success(t *testing.T) {
	s := newTestServer()
	s.calculator.On("Zakat", mock.Anything, mock.MatchedBy(func(req *domain.ZakatRequest) bool {
		return req.Cash.Equal(decimal.NewFromInt(2000000)) && req.GoldRatePerGram.Equal(decimal.NewFromInt(20000))
	})).Return(&domain.ZakatResult{
		ZakatDue:          decimal.NewFromInt(50000),
		IsZakatApplicable: true,
	}, nil)

	rec := s.do(http.MethodPost, "/api/v1/zakat", `{"cash": 2000000, "gold_rate_per_gram": "20000"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 50000.0, data["zakat_due"])
	assert.Equal(t, true, data["is_zakat_applicable"])
}

func TestCalculator_ValidationError(t *testing.T) {
	s := newTestServer()
	s.calculator.On("Mudarabah", mock.Anything, mock.Anything).
		Return(nil, customError.WrapValidation("mudarib_profit_ratio", "Profit sharing ratios must sum to 100%, currently 90%"))

	rec := s.do(http.MethodPost, "/api/v1/mudarabah", `{"rabbul_mal_profit_ratio": 60, "mudarib_profit_ratio": 30}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, customError.ErrCodeValidation, env.Code)
	assert.Equal(t, "mudarib_profit_ratio", env.Field)
	assert.Contains(t, env.Message, "currently 90%")
}

func TestCalculator_MalformedBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"empty body", "", "body"},
		{"not json", "{cash:", "body"},
		{"wrong type", `{"lease_term_months": "thirty"}`, "lease_term_months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()

			rec := s.do(http.MethodPost, "/api/v1/leasing", tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, customError.ErrCodeValidation, env.Code)
			assert.Equal(t, tt.wantField, env.Field)
			s.calculator.AssertNotCalled(t, "Leasing", mock.Anything, mock.Anything)
		})
	}
}

func TestCalculator_DefaultsOnlyFillOmittedFields(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantTerm  int
		wantMiles int
	}{
		{"omitted", `{"vehicle_price": 30000, "interest_rate": 6}`, domain.DefaultLeaseTermMonths, domain.DefaultAnnualMileage},
		{"explicit zeros", `{"vehicle_price": 30000, "interest_rate": 6, "lease_term_months": 0, "annual_mileage": 0}`, 0, 0},
		{"explicit values", `{"vehicle_price": 30000, "interest_rate": 6, "lease_term_months": 24, "annual_mileage": 15000}`, 24, 15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			s.calculator.On("Leasing", mock.Anything, mock.MatchedBy(func(req *domain.LeasingRequest) bool {
				return req.LeaseTermMonths == tt.wantTerm && req.AnnualMileage == tt.wantMiles
			})).Return(&domain.LeasingResult{}, nil).Once()

			rec := s.do(http.MethodPost, "/api/v1/leasing", tt.body, nil)

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			s.calculator.AssertExpectations(t)
		})
	}
}

func TestCalculator_RoutesReachService(t *testing.T) {
	tests := []struct {
		path   string
		method string
		result interface{}
	}{
		{"/api/v1/leasing/convert-rate", "ConvertRate", &domain.RateConversion{}},
		{"/api/v1/mudarabah/validate-ratios", "CheckRatios", &domain.RatioCheck{IsValid: true}},
		{"/api/v1/murabaha", "Murabaha", &domain.MurabahaResult{}},
		{"/api/v1/istisna", "Istisna", &domain.IstisnaResult{}},
		{"/api/v1/qard-hasan", "QardHasan", &domain.QardHasanResult{}},
		{"/api/v1/takaful", "Takaful", &domain.TakafulResult{}},
		{"/api/v1/pension-planner", "Pension", &domain.PensionResult{}},
		{"/api/v1/business-partnership-split", "Partnership", &domain.PartnershipResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			s := newTestServer()
			s.calculator.On(tt.method, mock.Anything, mock.Anything).Return(tt.result, nil).Once()

			rec := s.do(http.MethodPost, tt.path, `{}`, nil)

			assert.Equal(t, http.StatusOK, rec.Code)
			s.calculator.AssertExpectations(t)
		})
	}
}

func TestCalculator_UserHeaderReachesService(t *testing.T) {
	s := newTestServer()
	s.calculator.On("Takaful", mock.MatchedBy(func(ctx context.Context) bool {
		return service.UserIDFromContext(ctx) == "user-7"
	}), mock.Anything).Return(&domain.TakafulResult{}, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/takaful", `{"age": 30}`, map[string]string{"X-User-ID": "user-7"})

	assert.Equal(t, http.StatusOK, rec.Code)
	s.calculator.AssertExpectations(t)
}

func TestCalculator_UnexpectedErrorIsGeneric(t *testing.T) {
	s := newTestServer()
	s.calculator.On("Pension", mock.Anything, mock.Anything).Return(nil, errors.New("stack trace here"))

	rec := s.do(http.MethodPost, "/api/v1/pension-planner", `{}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "stack trace")
}

func TestPrices(t *testing.T) {
	s := newTestServer()
	s.prices.On("MetalPrices", mock.Anything).Return(&domain.MetalPrices{
		GoldPricePerGram: decimal.RequireFromString("23685.44"),
		Currency:         "PKR",
		Source:           domain.SourceFallback,
	}, nil)
	s.prices.On("ExchangeRate", mock.Anything).Return(&domain.ExchangeRate{
		Rate:         decimal.NewFromInt(278),
		CurrencyPair: "USD/PKR",
	}, nil)

	rec := s.do(http.MethodGet, "/api/v1/prices/metals", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"gold_price_per_gram":23685.44`)
	assert.Contains(t, rec.Body.String(), `"source":"fallback"`)

	rec = s.do(http.MethodGet, "/api/v1/prices/exchange-rate", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"currency_pair":"USD/PKR"`)
}

func TestChat(t *testing.T) {
	s := newTestServer()
	s.chat.On("Chat", mock.Anything, mock.MatchedBy(func(req *domain.ChatRequest) bool {
		return req.Message == "What is zakat?" && len(req.History) == 1
	})).Return(&domain.ChatReply{Reply: "Zakat is obligatory alms."}, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/chat", `{"message":"What is zakat?","history":[{"role":"user","text":"salam"}]}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Zakat is obligatory alms.")
}

func TestChat_NotConfigured(t *testing.T) {
	s := newTestServer()
	s.chat.On("Chat", mock.Anything, mock.Anything).
		Return(nil, customError.WrapNotConfigured("Chat service", "GEMINI_API_KEY"))

	rec := s.do(http.MethodPost, "/api/v1/chat", `{"message":"hi"}`, nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, customError.ErrCodeNotConfigured, decode(t, rec).Code)
}

func TestHistory(t *testing.T) {
	s := newTestServer()
	id := uuid.New()
	s.history.On("List", mock.Anything, "user-1", 5).Return(&domain.HistoryResponse{UserID: "user-1"}, nil).Once()
	s.history.On("Get", mock.Anything, "user-1", id.String()).Return(&domain.CalculationRecord{ID: id, UserID: "user-1"}, nil).Once()
	s.history.On("Get", mock.Anything, "user-1", "missing").Return(nil, customError.WrapRecordNotFound("calculation", "missing")).Once()

	headers := map[string]string{"X-User-ID": "user-1"}

	rec := s.do(http.MethodGet, "/api/v1/history?limit=5", "", headers)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/history/"+id.String(), "", headers)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())

	rec = s.do(http.MethodGet, "/api/v1/history/missing", "", headers)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/history?limit=abc", "", headers)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "limit", decode(t, rec).Field)
}

func TestHealth(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"disabled"`)
}

func TestRouter_CORSAndUnknownRoutes(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodOptions, "/api/v1/zakat", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = s.do(http.MethodGet, "/api/v1/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
