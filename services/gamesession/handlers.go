package gamesession

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// REST Handlers

func (s *Service) StateHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.orchestrator.Snapshot())
}

func (s *Service) TravelHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Era string `json:"era"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.orchestrator.TravelToEra(req.Era); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusAccepted, s.orchestrator.Snapshot())
}

func (s *Service) ActionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind    string `json:"kind"`
		Command string `json:"command,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.orchestrator.PerformAction(ActionKind(req.Kind), req.Command); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusAccepted, s.orchestrator.Snapshot())
}

func (s *Service) AdvanceDialogueHandler(w http.ResponseWriter, r *http.Request) {
	s.orchestrator.AdvanceDialogue()
	writeJSON(w, http.StatusOK, s.orchestrator.Snapshot())
}

func (s *Service) ChoiceHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.orchestrator.SelectChoice(req.Index); err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, s.orchestrator.Snapshot())
}

func (s *Service) NPCHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := s.orchestrator.InteractWithNPC(vars["npc_id"]); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, s.orchestrator.Snapshot())
}

func (s *Service) HotspotHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := s.orchestrator.InteractWithHotspot(vars["hotspot_id"]); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, s.orchestrator.Snapshot())
}

func (s *Service) BackendHandler(w http.ResponseWriter, r *http.Request) {
	status := s.orchestrator.CheckBackend(r.Context())
	writeJSON(w, http.StatusOK, status)
}

// WorldStateHandler proxies the backend's world snapshot for an era.
// The backend keys worlds by era name, so the scene id is resolved
// first.
func (s *Service) WorldStateHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scene, ok := s.registry.Scene(vars["era_id"])
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown era: " + vars["era_id"]})
		return
	}
	state := s.client.WorldState(r.Context(), scene.Era)
	if state == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "world state unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// CausalityHandler proxies the backend's causal-chain check between two
// eras.
func (s *Service) CausalityHandler(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	target := r.URL.Query().Get("target")
	if source == "" || target == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "source and target are required"})
		return
	}
	result := s.client.CheckCausality(r.Context(), source, target)
	if result == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "causality check unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}
