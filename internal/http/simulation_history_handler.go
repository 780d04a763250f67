package http

import (
	"net/http"

	"spansim/internal/history"

	"github.com/go-chi/chi/v5"
)

type getSimulationHandler struct {
	recordingService history.RecordingService
}

func NewGetSimulationHandler(recordingService history.RecordingService) AppHttpHandler {
	return &getSimulationHandler{recordingService: recordingService}
}

// Handle processes GET /api/v1/simulations/{simulationID} requests. The
// organization query parameter is required because snapshots are keyed by
// organization. A run that has not been flushed by the recorder yet reads
// as not found.
func (h *getSimulationHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	organization := r.URL.Query().Get("organization")
	simulationID := chi.URLParam(r, "simulationID")

	record, err := h.recordingService.GetSimulation(r.Context(), organization, simulationID)
	if err != nil {
		return err
	}

	writeJSONResponse(w, r, http.StatusOK, record)
	return nil
}

type listSimulationsResponse struct {
	Organization  string   `json:"organization"`
	SimulationIDs []string `json:"simulationIds"`
}

type listSimulationsHandler struct {
	recordingService history.RecordingService
}

func NewListSimulationsHandler(recordingService history.RecordingService) AppHttpHandler {
	return &listSimulationsHandler{recordingService: recordingService}
}

// Handle processes GET /api/v1/simulations requests. IDs are ULIDs, so the
// returned order is oldest run first.
func (h *listSimulationsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	organization := r.URL.Query().Get("organization")

	ids, err := h.recordingService.ListSimulationIDs(r.Context(), organization)
	if err != nil {
		return err
	}

	writeJSONResponse(w, r, http.StatusOK, listSimulationsResponse{
		Organization:  organization,
		SimulationIDs: ids,
	})
	return nil
}
