package http

import (
	"net/http"

	"spansim/internal/datasets"
	"spansim/internal/history"
	"spansim/internal/rulesets"
	"spansim/internal/shared/loggers"
	"spansim/internal/shared/metrics"
	"spansim/internal/simulation"
	"spansim/internal/streams"

	"github.com/go-chi/chi/v5"
)

// RouterServices bundles the services the API routes are built on.
type RouterServices struct {
	DatasetService    datasets.Service
	SimulationService simulation.Service
	RuleSetService    rulesets.Service
	RecordingService  history.RecordingService
	RecordProducer    streams.SimulationRecordProducer
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	simulateHandler := NewSimulateHandler(services.DatasetService, services.SimulationService, services.RecordProducer)
	getSimulationHandler := NewGetSimulationHandler(services.RecordingService)
	listSimulationsHandler := NewListSimulationsHandler(services.RecordingService)
	attributeValuesHandler := NewAttributeValuesHandler(services.DatasetService)
	createRuleSetHandler := NewCreateRuleSetHandler(services.RuleSetService)
	getRuleSetHandler := NewGetRuleSetHandler(services.RuleSetService)
	listRuleSetsHandler := NewListRuleSetsHandler(services.RuleSetService)
	updateRuleSetHandler := NewUpdateRuleSetHandler(services.RuleSetService)
	deleteRuleSetHandler := NewDeleteRuleSetHandler(services.RuleSetService)

	// Routes
	router.Route("/api/v1", func(api chi.Router) {
		api.Post("/simulations", errorHandlingAdapter(simulateHandler))
		api.Get("/simulations", errorHandlingAdapter(listSimulationsHandler))
		api.Get("/simulations/{simulationID}", errorHandlingAdapter(getSimulationHandler))

		api.Get("/attributes/{attribute}/values", errorHandlingAdapter(attributeValuesHandler))

		api.Post("/rulesets", errorHandlingAdapter(createRuleSetHandler))
		api.Get("/rulesets", errorHandlingAdapter(listRuleSetsHandler))
		api.Get("/rulesets/{rulesetID}", errorHandlingAdapter(getRuleSetHandler))
		api.Put("/rulesets/{rulesetID}", errorHandlingAdapter(updateRuleSetHandler))
		api.Delete("/rulesets/{rulesetID}", errorHandlingAdapter(deleteRuleSetHandler))
	})

	router.Get("/health", healthCheck)
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
