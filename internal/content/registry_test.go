package content

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronos-core/internal/dialogue"
)

func TestBuiltinRegistry(t *testing.T) {
	r := Builtin()

	scenes := r.Scenes()
	require.Len(t, scenes, 8)
	assert.Equal(t, "Dark Ages", scenes[0].Era)
	assert.Equal(t, "Cyberpunk", scenes[len(scenes)-1].Era)

	def := r.DefaultScene()
	assert.Equal(t, "renaissance", def.ID)
	assert.Equal(t, 1400, def.Year)
	assert.NotEmpty(t, def.NPCs)
	assert.NotEmpty(t, def.Hotspots)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	r := Builtin()

	scene, ok := r.Scene("atlantis")
	assert.False(t, ok)
	assert.Empty(t, scene.ID)

	assert.Equal(t, DefaultSceneID, r.Resolve("atlantis").ID)
	assert.Equal(t, "cyberpunk", r.Resolve("cyberpunk").ID)
}

func TestTimelineSeed(t *testing.T) {
	r := Builtin()
	nodes := r.Timeline()
	require.Len(t, nodes, 8)
	assert.Equal(t, NodeShifting, nodes[2].Status)
	assert.Equal(t, NodeParadox, nodes[7].Status)

	// returned slice is a copy
	nodes[0].Status = NodeParadox
	assert.Equal(t, NodeStable, r.Timeline()[0].Status)
}

func TestSequenceFallbacks(t *testing.T) {
	r := Builtin()

	assert.NotEmpty(t, r.ActSequence("cyberpunk"))
	assert.Equal(t, r.ActSequence(DefaultSceneID), r.ActSequence("neo_age"))
	assert.Equal(t, r.ObserveSequence(DefaultSceneID), r.ObserveSequence("industrial"))
	assert.NotEmpty(t, r.TemporalSequence())
}

func TestActSequencesEndInCommandChoices(t *testing.T) {
	r := Builtin()
	for _, era := range []string{"renaissance", "medieval", "cyberpunk"} {
		lines := r.ActSequence(era)
		require.NotEmpty(t, lines, era)
		last := lines[len(lines)-1]
		require.NotEmpty(t, last.Choices, era)
		for _, choice := range last.Choices {
			assert.Equal(t, dialogue.ActionCommand, choice.Action.Kind, era)
			assert.NotEmpty(t, choice.Action.Command, era)
		}
	}
}

func TestChoiceResponseFallback(t *testing.T) {
	r := Builtin()
	assert.NotEmpty(t, r.ChoiceResponse("ask_about_blueprints"))
	generic := r.ChoiceResponse("no_such_key")
	require.Len(t, generic, 1)
	assert.True(t, generic[0].Narration)
}

func TestApplyOverrides(t *testing.T) {
	r := Builtin()
	err := r.ApplyOverrides([]byte(`
default_scene: cyberpunk
scenes:
  - id: cyberpunk
    era: Cyberpunk
    year: 2847
    background: test background
    description: overridden description
    ambience: neon_rain
  - id: lost_era
    era: Lost Era
    year: 3000
    background: void
    description: an era that ships only via override
    ambience: silence
timeline:
  - id: x1
    year: 3000
    era: Lost Era
    label: The End
    status: stable
    unlocked: true
`))
	require.NoError(t, err)

	assert.Equal(t, "cyberpunk", r.DefaultScene().ID)
	assert.Equal(t, "overridden description", r.Resolve("cyberpunk").Description)
	assert.Equal(t, "Lost Era", r.Resolve("lost_era").Era)
	require.Len(t, r.Timeline(), 1)
	assert.Equal(t, "x1", r.Timeline()[0].ID)
}

func TestApplyOverridesRejectsBadDocuments(t *testing.T) {
	r := Builtin()
	assert.Error(t, r.ApplyOverrides([]byte(`scenes: [{era: "No ID"}]`)))
	assert.Error(t, r.ApplyOverrides([]byte(`default_scene: unknown_scene`)))
	assert.Error(t, r.ApplyOverrides([]byte(`scenes: "not a list"`)))
}

type fakeStore struct {
	objects map[string][]byte
}

func (f *fakeStore) GetObject(bucket, object string) ([]byte, error) {
	data, ok := f.objects[bucket+"/"+object]
	if !ok {
		return nil, fmt.Errorf("object %s/%s not found", bucket, object)
	}
	return data, nil
}

func TestLoadOverrides(t *testing.T) {
	r := Builtin()

	// nil store and missing object both keep builtin content
	require.NoError(t, r.LoadOverrides(nil, "chronos-content"))
	require.NoError(t, r.LoadOverrides(&fakeStore{objects: map[string][]byte{}}, "chronos-content"))
	assert.Equal(t, DefaultSceneID, r.DefaultScene().ID)

	store := &fakeStore{objects: map[string][]byte{
		"chronos-content/scenes.yaml": []byte("default_scene: digital\n"),
	}}
	require.NoError(t, r.LoadOverrides(store, "chronos-content"))
	assert.Equal(t, "digital", r.DefaultScene().ID)
}
