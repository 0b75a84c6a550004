package causality

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBackendResult() map[string]interface{} {
	return map[string]interface{}{
		"action_id":       "a1b2c3d4",
		"butterfly_index": 62.5,
		"butterfly_effect": map[string]interface{}{
			"source_action":     "Save the inventor",
			"affected_eras":     []string{"Renaissance", "Enlightenment"},
			"paradox_risk":      0.12,
			"narrative_changes": []string{"Leonardo lives on"},
		},
		"echo_messages": []string{"Causality verified"},
	}
}

func TestCheckHealthOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"status": "online"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	status := client.CheckHealth(context.Background())

	assert.True(t, status.Online)
	assert.Equal(t, "online", status.Details["status"])
	assert.True(t, client.Online())
}

func TestCheckHealthFlipsOfflineOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	status := client.CheckHealth(context.Background())

	assert.False(t, status.Online)
	assert.False(t, client.Online())
}

func TestCheckHealthUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	assert.False(t, client.CheckHealth(context.Background()).Online)
}

func TestSendCommandPassesThroughValidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/temporal-command", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Save the inventor", body["command"])
		assert.Equal(t, "Renaissance", body["era"])
		json.NewEncoder(w).Encode(validBackendResult())
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	res := client.SendCommand(context.Background(), "Save the inventor", "Renaissance")

	require.NotNil(t, res)
	assert.Equal(t, "a1b2c3d4", res.ActionID)
	assert.Equal(t, 62.5, res.ButterflyIndex)
	assert.Equal(t, []string{"Causality verified"}, res.EchoMessages)
	assert.True(t, client.Online())
}

func TestSendCommandSanitizesInput(t *testing.T) {
	var received string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		received = body["command"]
		json.NewEncoder(w).Encode(validBackendResult())
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.SendCommand(context.Background(), `<b>save him;</b> `, "Renaissance")
	assert.Equal(t, "save him", received)
}

func TestSendCommandFallsBackOnMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// missing butterfly_index and echo_messages
		json.NewEncoder(w).Encode(map[string]interface{}{"action_id": "x"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	res := client.SendCommand(context.Background(), "observe the siege", "Medieval")

	require.NotNil(t, res)
	assert.Equal(t, "mock_simulation", res.Source)
	assert.NotEmpty(t, res.EchoMessages)
	// shape failure is not a transport failure: the client stays online
	assert.True(t, client.Online())
}

func TestSendCommandFallsBackWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	res := client.SendCommand(context.Background(), "Destroy the artifact", "Renaissance")

	require.NotNil(t, res)
	assert.Equal(t, "destroy", res.Intent)
	assert.False(t, res.IsParadox)
	assert.NotEmpty(t, res.EchoMessages)
	assert.False(t, client.Online())
}

func TestSendCommandOfflineSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.setOnline(false)

	res := client.SendCommand(context.Background(), "help the monks", "Dark Ages")
	require.NotNil(t, res)
	assert.Equal(t, "save", res.Intent)
	assert.Equal(t, 0, calls)
}

func TestSendCommandPassesThroughBlocked(t *testing.T) {
	blocked := validBackendResult()
	blocked["blocked"] = true
	blocked["reason"] = "paradox_gridlock"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(blocked)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	res := client.SendCommand(context.Background(), "erase everything everywhere", "Digital")

	require.NotNil(t, res)
	assert.True(t, res.Blocked)
	assert.Equal(t, "paradox_gridlock", res.Reason)
}

func TestWorldStateOfflineReturnsNil(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	client.setOnline(false)
	assert.Nil(t, client.WorldState(context.Background(), "Renaissance"))
	assert.Nil(t, client.Timeline(context.Background()))
	assert.Nil(t, client.CheckCausality(context.Background(), "Medieval", "Digital"))
}

func TestWorldStateBestEffort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/world-state/Renaissance":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"era": "Renaissance", "year": 1400, "stability": 82,
			})
		case "/api/timeline":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"anchors":       []map[string]interface{}{{"id": "n3", "era": "Renaissance", "status": "shifting"}},
				"active_branch": "Alpha Timeline",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	state := client.WorldState(context.Background(), "Renaissance")
	require.NotNil(t, state)
	assert.Equal(t, 1400, state.Year)
	assert.Equal(t, 82, state.Stability)

	timeline := client.Timeline(context.Background())
	require.NotNil(t, timeline)
	assert.Equal(t, "Alpha Timeline", timeline.ActiveBranch)
	require.Len(t, timeline.Anchors, 1)
	assert.Equal(t, "shifting", timeline.Anchors[0].Status)

	// 404 is absorbed into absence
	assert.Nil(t, client.CheckCausality(context.Background(), "Medieval", "Digital"))
}

func TestValidateCommandResultRejectsWrongTypes(t *testing.T) {
	_, err := validateCommandResult([]byte(`{
		"action_id": 12,
		"butterfly_index": "high",
		"butterfly_effect": {},
		"echo_messages": []
	}`))
	assert.Error(t, err)
}
