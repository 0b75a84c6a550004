package content

import (
	"fmt"
	"log"
	"sync"

	"gopkg.in/yaml.v3"

	"chronos-core/internal/dialogue"
)

// Registry resolves eras to scenes, dialogue tables and the timeline
// seed. Reads vastly outnumber writes; overrides replace entries under
// the write lock.
type Registry struct {
	mu        sync.RWMutex
	scenes    map[string]Scene
	order     []string
	defaultID string
	timeline  []TimelineNode

	act      map[string][]dialogue.Line
	observe  map[string][]dialogue.Line
	temporal []dialogue.Line
	respond  map[string][]dialogue.Line
}

// Builtin returns a registry populated with the shipped content.
func Builtin() *Registry {
	r := &Registry{
		scenes:   make(map[string]Scene),
		act:      actSequences(),
		observe:  observeSequences(),
		temporal: temporalSequence(),
		respond:  choiceResponses(),
	}
	for _, scene := range builtinScenes() {
		r.scenes[scene.ID] = scene
		r.order = append(r.order, scene.ID)
	}
	r.defaultID = DefaultSceneID
	r.timeline = defaultTimeline()
	return r
}

// Scene resolves an era id. The second return reports whether the id
// was known; callers that need a scene unconditionally use Resolve.
func (r *Registry) Scene(id string) (Scene, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	scene, ok := r.scenes[id]
	return scene, ok
}

// Resolve returns the scene for id, falling back to the default scene
// for unknown identifiers.
func (r *Registry) Resolve(id string) Scene {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if scene, ok := r.scenes[id]; ok {
		return scene
	}
	return r.scenes[r.defaultID]
}

// DefaultScene returns the starting scene.
func (r *Registry) DefaultScene() Scene {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scenes[r.defaultID]
}

// Scenes lists all registered scenes in registry order.
func (r *Registry) Scenes() []Scene {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Scene, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.scenes[id])
	}
	return out
}

// Timeline returns a copy of the timeline seed.
func (r *Registry) Timeline() []TimelineNode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]TimelineNode(nil), r.timeline...)
}

// ActSequence returns the "act" flow for an era, falling back to the
// default era's flow when none is defined.
func (r *Registry) ActSequence(eraID string) []dialogue.Line {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if lines, ok := r.act[eraID]; ok {
		return lines
	}
	return r.act[r.defaultID]
}

// ObserveSequence returns the "observe" flow for an era with the same
// fallback rule as ActSequence.
func (r *Registry) ObserveSequence(eraID string) []dialogue.Line {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if lines, ok := r.observe[eraID]; ok {
		return lines
	}
	return r.observe[r.defaultID]
}

// TemporalSequence returns the fixed temporal-manipulation flow.
func (r *Registry) TemporalSequence() []dialogue.Line {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.temporal
}

// ChoiceResponse returns the canned reply sequence for a narrative
// choice key, or a generic line when the key is unknown.
func (r *Registry) ChoiceResponse(key string) []dialogue.Line {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if lines, ok := r.respond[key]; ok {
		return lines
	}
	return genericResponse()
}

// overrideDocument is the YAML layout accepted from the object store.
type overrideDocument struct {
	DefaultScene string         `yaml:"default_scene,omitempty"`
	Scenes       []Scene        `yaml:"scenes,omitempty"`
	Timeline     []TimelineNode `yaml:"timeline,omitempty"`
}

// ApplyOverrides merges a YAML override document into the registry.
// Scenes merge by id (new ids are appended); a non-empty timeline
// replaces the seed wholesale.
func (r *Registry) ApplyOverrides(data []byte) error {
	var doc overrideDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid content override YAML: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, scene := range doc.Scenes {
		if scene.ID == "" {
			return fmt.Errorf("content override scene missing id")
		}
		if _, known := r.scenes[scene.ID]; !known {
			r.order = append(r.order, scene.ID)
		}
		r.scenes[scene.ID] = scene
	}

	if doc.DefaultScene != "" {
		if _, known := r.scenes[doc.DefaultScene]; !known {
			return fmt.Errorf("default_scene %q not present in registry", doc.DefaultScene)
		}
		r.defaultID = doc.DefaultScene
	}

	if len(doc.Timeline) > 0 {
		r.timeline = append([]TimelineNode(nil), doc.Timeline...)
	}

	return nil
}

// ObjectStore is the slice of object storage the registry needs.
type ObjectStore interface {
	GetObject(bucket, object string) ([]byte, error)
}

// LoadOverrides pulls scenes.yaml from the content bucket and applies
// it. A missing store or missing object leaves the builtin content in
// place; only a malformed document is an error.
func (r *Registry) LoadOverrides(store ObjectStore, bucket string) error {
	if store == nil {
		return nil
	}

	data, err := store.GetObject(bucket, "scenes.yaml")
	if err != nil {
		log.Printf("Content overrides not loaded from bucket %s: %v", bucket, err)
		return nil
	}

	if err := r.ApplyOverrides(data); err != nil {
		return err
	}
	log.Printf("Content overrides applied from bucket %s", bucket)
	return nil
}
