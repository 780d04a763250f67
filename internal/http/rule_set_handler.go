package http

import (
	"net/http"

	"spansim/internal/models"
	"spansim/internal/rulesets"

	"github.com/go-chi/chi/v5"
)

// ruleSetRequest is the body of rule set create and update requests. The
// service assigns IDs and timestamps; on update the scope must match the
// stored rule set.
type ruleSetRequest struct {
	Organization string        `json:"organization"`
	Project      string        `json:"project"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Rules        []models.Rule `json:"rules"`
}

func (req *ruleSetRequest) toInput() *rulesets.RuleSetInput {
	return &rulesets.RuleSetInput{
		Organization: req.Organization,
		Project:      req.Project,
		Name:         req.Name,
		Description:  req.Description,
		Rules:        req.Rules,
	}
}

type listRuleSetsResponse struct {
	RuleSets []*models.RuleSet `json:"ruleSets"`
}

type createRuleSetHandler struct {
	ruleSetService rulesets.Service
}

func NewCreateRuleSetHandler(ruleSetService rulesets.Service) AppHttpHandler {
	return &createRuleSetHandler{ruleSetService: ruleSetService}
}

// Handle processes POST /api/v1/rulesets requests.
func (h *createRuleSetHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req ruleSetRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return err
	}

	ruleSet, err := h.ruleSetService.CreateRuleSet(r.Context(), req.toInput())
	if err != nil {
		return err
	}

	writeJSONResponse(w, r, http.StatusCreated, ruleSet)
	return nil
}

type getRuleSetHandler struct {
	ruleSetService rulesets.Service
}

func NewGetRuleSetHandler(ruleSetService rulesets.Service) AppHttpHandler {
	return &getRuleSetHandler{ruleSetService: ruleSetService}
}

// Handle processes GET /api/v1/rulesets/{rulesetID} requests.
func (h *getRuleSetHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	ruleSet, err := h.ruleSetService.GetRuleSet(r.Context(), chi.URLParam(r, "rulesetID"))
	if err != nil {
		return err
	}

	writeJSONResponse(w, r, http.StatusOK, ruleSet)
	return nil
}

type listRuleSetsHandler struct {
	ruleSetService rulesets.Service
}

func NewListRuleSetsHandler(ruleSetService rulesets.Service) AppHttpHandler {
	return &listRuleSetsHandler{ruleSetService: ruleSetService}
}

// Handle processes GET /api/v1/rulesets requests.
func (h *listRuleSetsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	ruleSets, err := h.ruleSetService.ListRuleSets(r.Context(), query.Get("organization"), query.Get("project"))
	if err != nil {
		return err
	}

	writeJSONResponse(w, r, http.StatusOK, listRuleSetsResponse{RuleSets: ruleSets})
	return nil
}

type updateRuleSetHandler struct {
	ruleSetService rulesets.Service
}

func NewUpdateRuleSetHandler(ruleSetService rulesets.Service) AppHttpHandler {
	return &updateRuleSetHandler{ruleSetService: ruleSetService}
}

// Handle processes PUT /api/v1/rulesets/{rulesetID} requests.
func (h *updateRuleSetHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req ruleSetRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return err
	}

	ruleSet, err := h.ruleSetService.UpdateRuleSet(r.Context(), chi.URLParam(r, "rulesetID"), req.toInput())
	if err != nil {
		return err
	}

	writeJSONResponse(w, r, http.StatusOK, ruleSet)
	return nil
}

type deleteRuleSetHandler struct {
	ruleSetService rulesets.Service
}

func NewDeleteRuleSetHandler(ruleSetService rulesets.Service) AppHttpHandler {
	return &deleteRuleSetHandler{ruleSetService: ruleSetService}
}

// Handle processes DELETE /api/v1/rulesets/{rulesetID} requests.
func (h *deleteRuleSetHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if err := h.ruleSetService.DeleteRuleSet(r.Context(), chi.URLParam(r, "rulesetID")); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
