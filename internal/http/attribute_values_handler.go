package http

import (
	"net/http"
	"strconv"

	"spansim/internal/datasets"
	"spansim/internal/models"

	"github.com/go-chi/chi/v5"
)

type attributeValuesResponse struct {
	Attribute string   `json:"attribute"`
	Values    []string `json:"values"`
}

// attributeValuesHandler serves the distinct observed values of one grouping
// attribute, for rule-builder autocomplete.
type attributeValuesHandler struct {
	datasetService datasets.Service
}

func NewAttributeValuesHandler(datasetService datasets.Service) AppHttpHandler {
	return &attributeValuesHandler{datasetService: datasetService}
}

// Handle processes GET /api/v1/attributes/{attribute}/values requests.
func (h *attributeValuesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	attribute := chi.URLParam(r, "attribute")

	query := r.URL.Query()
	periodDays := 30
	if raw := query.Get("periodDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return errRequestValidationFailed("periodDays must be an integer")
		}
		periodDays = parsed
	}
	if !allowedPeriods[periodDays] {
		return errRequestValidationFailed("periodDays must be one of 7, 30, 90")
	}

	scope := models.Scope{
		Organization: query.Get("organization"),
		Project:      query.Get("project"),
		PeriodDays:   periodDays,
	}

	values, err := h.datasetService.GetAttributeValues(r.Context(), scope, attribute)
	if err != nil {
		return err
	}

	writeJSONResponse(w, r, http.StatusOK, attributeValuesResponse{
		Attribute: attribute,
		Values:    values,
	})
	return nil
}
