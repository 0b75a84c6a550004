package causality

// ButterflyEffect describes how a command ripples across the timeline.
type ButterflyEffect struct {
	SourceAction     string                 `json:"source_action"`
	AffectedEras     []string               `json:"affected_eras"`
	ParadoxRisk      float64                `json:"paradox_risk"`
	NarrativeChanges []string               `json:"narrative_changes"`
	WorldStateDelta  map[string]interface{} `json:"world_state_delta,omitempty"`
}

// CommandResult is the outcome of a temporal command, real or simulated.
// The session layer only ever sees this shape; transport and validation
// failures are absorbed before it is built.
type CommandResult struct {
	ActionID        string          `json:"action_id"`
	Intent          string          `json:"intent,omitempty"`
	Vibe            string          `json:"vibe,omitempty"`
	ButterflyEffect ButterflyEffect `json:"butterfly_effect"`
	ButterflyIndex  float64         `json:"butterfly_index"`
	EchoMessages    []string        `json:"echo_messages"`
	IsParadox       bool            `json:"is_paradox,omitempty"`
	Blocked         bool            `json:"blocked,omitempty"`
	Reason          string          `json:"reason,omitempty"`
	Source          string          `json:"source,omitempty"`
}

// HealthStatus is the result of a backend health probe.
type HealthStatus struct {
	Online  bool                   `json:"online"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// WorldState is the backend's per-era world snapshot. Best-effort read;
// callers tolerate its absence.
type WorldState struct {
	Era              string                 `json:"era"`
	Year             int                    `json:"year"`
	VisualStyle      string                 `json:"visual_style"`
	Architecture     string                 `json:"architecture"`
	Population       string                 `json:"population"`
	TechLevel        int                    `json:"tech_level"`
	DominantFaction  string                 `json:"dominant_faction"`
	Mood             string                 `json:"mood"`
	Weather          string                 `json:"weather"`
	Stability        int                    `json:"stability"`
	NarrativeContext string                 `json:"narrative_context"`
	ActiveEvents     []string               `json:"active_events,omitempty"`
	Environment      map[string]interface{} `json:"environment,omitempty"`
}

// TimelineAnchor is one decision point in the backend timeline.
type TimelineAnchor struct {
	ID          string `json:"id"`
	Year        int    `json:"year"`
	Era         string `json:"era"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TimelineState is the backend's full timeline view.
type TimelineState struct {
	Anchors        []TimelineAnchor         `json:"anchors"`
	Branches       []map[string]interface{} `json:"branches,omitempty"`
	ButterflyIndex float64                  `json:"butterfly_index"`
	ActiveBranch   string                   `json:"active_branch"`
	TotalActions   int                      `json:"total_actions"`
}

// CausalityResult describes the causal chain between two eras.
type CausalityResult struct {
	Valid       bool     `json:"valid"`
	Path        []string `json:"path,omitempty"`
	ParadoxRisk float64  `json:"paradox_risk"`
	ChainLength int      `json:"chain_length"`
	Description string   `json:"description,omitempty"`
	Reason      string   `json:"reason,omitempty"`
}
