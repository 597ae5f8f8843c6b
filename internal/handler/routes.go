package handler

import (
	"net/http"

	"github.com/segyhp/islamicfin-engine/internal/metrics"
	"github.com/segyhp/islamicfin-engine/pkg/response"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handlers struct {
	Calculator *CalculatorHandler
	Prices     *PriceHandler
	Chat       *ChatHandler
	History    *HistoryHandler
	Health     *HealthHandler
}

// NewRouter mounts every route. CORS wraps the router so preflight requests
// reach it even on paths registered for POST only.
func NewRouter(h Handlers, allowedOrigin string, logger *zap.Logger) http.Handler {
	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	router.HandleFunc("/health/ready", h.Health.Ready).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(UserMiddleware)

	api.HandleFunc("/zakat", h.Calculator.Zakat).Methods(http.MethodPost)
	api.HandleFunc("/leasing", h.Calculator.Leasing).Methods(http.MethodPost)
	api.HandleFunc("/leasing/convert-rate", h.Calculator.ConvertRate).Methods(http.MethodPost)
	api.HandleFunc("/mudarabah", h.Calculator.Mudarabah).Methods(http.MethodPost)
	api.HandleFunc("/mudarabah/validate-ratios", h.Calculator.CheckRatios).Methods(http.MethodPost)
	api.HandleFunc("/murabaha", h.Calculator.Murabaha).Methods(http.MethodPost)
	api.HandleFunc("/istisna", h.Calculator.Istisna).Methods(http.MethodPost)
	api.HandleFunc("/qard-hasan", h.Calculator.QardHasan).Methods(http.MethodPost)
	api.HandleFunc("/takaful", h.Calculator.Takaful).Methods(http.MethodPost)
	api.HandleFunc("/pension-planner", h.Calculator.Pension).Methods(http.MethodPost)
	api.HandleFunc("/business-partnership-split", h.Calculator.Partnership).Methods(http.MethodPost)

	api.HandleFunc("/prices/metals", h.Prices.MetalPrices).Methods(http.MethodGet)
	api.HandleFunc("/prices/exchange-rate", h.Prices.ExchangeRate).Methods(http.MethodGet)

	api.HandleFunc("/chat", h.Chat.Chat).Methods(http.MethodPost)

	api.HandleFunc("/history", h.History.List).Methods(http.MethodGet)
	api.HandleFunc("/history/{id}", h.History.Get).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "route not found")
	})

	var handler http.Handler = router
	handler = response.CORSMiddleware(allowedOrigin)(handler)
	handler = response.LoggingMiddleware(logger)(handler)
	return handler
}
