package gamesession

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"chronos-core/internal/causality"
	"chronos-core/internal/content"
	"chronos-core/internal/dialogue"
	"chronos-core/internal/eventbus"

	"github.com/google/uuid"
)

// Config carries the tunable timings of a session. Zero values fall back
// to the production defaults; tests inject short durations.
type Config struct {
	SessionID       string
	TransitionDelay time.Duration
	ParadoxWindow   time.Duration
	RegenInterval   time.Duration
	Seed            int64
}

const (
	defaultTransitionDelay = 1500 * time.Millisecond
	defaultParadoxWindow   = 3 * time.Second
	defaultRegenInterval   = 5 * time.Second
)

func (c Config) withDefaults() Config {
	if c.SessionID == "" {
		c.SessionID = "session-" + uuid.New().String()[:8]
	}
	if c.TransitionDelay <= 0 {
		c.TransitionDelay = defaultTransitionDelay
	}
	if c.ParadoxWindow <= 0 {
		c.ParadoxWindow = defaultParadoxWindow
	}
	if c.RegenInterval <= 0 {
		c.RegenInterval = defaultRegenInterval
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// Orchestrator owns all mutable session state. Every public operation
// takes the single mutex, mutates, builds a snapshot, and notifies the
// change listener after the lock is released.
type Orchestrator struct {
	mu       sync.Mutex
	cfg      Config
	client   *causality.Client
	registry *content.Registry
	bus      *eventbus.EventBus
	rng      *rand.Rand
	onChange func(Snapshot)

	seq *dialogue.Sequencer

	hp             int
	energy         int
	currentEra     string
	scene          content.Scene
	butterflyIndex float64
	isParadoxEvent bool
	affectedEras   []string
	nodes          []content.TimelineNode
	totalActions   int
	echoes         []string
	inventory      []Item

	transitioning bool
	recalculating bool
	backendOnline bool

	transitionTimer *time.Timer
	paradoxTimer    *time.Timer
	closed          bool
}

// NewOrchestrator builds a session at the default scene with full
// resources. The event bus may be nil when telemetry is disabled.
func NewOrchestrator(cfg Config, client *causality.Client, registry *content.Registry, bus *eventbus.EventBus) *Orchestrator {
	cfg = cfg.withDefaults()
	scene := registry.DefaultScene()

	o := &Orchestrator{
		cfg:            cfg,
		client:         client,
		registry:       registry,
		bus:            bus,
		rng:            rand.New(rand.NewSource(cfg.Seed)),
		seq:            dialogue.NewSequencer(),
		hp:             MaxHP,
		energy:         MaxEnergy,
		currentEra:     scene.ID,
		scene:          scene,
		butterflyIndex: 50,
		nodes:          registry.Timeline(),
		backendOnline:  client.Online(),
		echoes: []string{
			"Echo log initialized. The timeline is listening.",
		},
	}
	return o
}

// SetOnChange registers the snapshot listener. Call before Start; the
// orchestrator invokes it outside its own lock.
func (o *Orchestrator) SetOnChange(fn func(Snapshot)) {
	o.mu.Lock()
	o.onChange = fn
	o.mu.Unlock()
}

// Start checks the causality backend, begins energy regeneration and
// queues the opening narration. It returns once the background
// goroutines are launched; they stop when ctx is cancelled.
func (o *Orchestrator) Start(ctx context.Context) {
	go func() {
		status := o.client.CheckHealth(ctx)
		o.mu.Lock()
		o.backendOnline = status.Online
		snap := o.snapshotLocked()
		o.mu.Unlock()
		o.emit(snap)
	}()

	go o.regenLoop(ctx)

	o.mu.Lock()
	o.seq.Start(o.introLinesLocked())
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.emit(snap)
}

// Close stops the pending timers. Background loops stop via the Start
// context.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	if o.transitionTimer != nil {
		o.transitionTimer.Stop()
	}
	if o.paradoxTimer != nil {
		o.paradoxTimer.Stop()
	}
}

func (o *Orchestrator) regenLoop(ctx context.Context) {
	ticker := time.NewTicker(o.cfg.RegenInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.mu.Lock()
			if o.closed || o.energy >= MaxEnergy {
				o.mu.Unlock()
				continue
			}
			o.energy += regenAmount
			if o.energy > MaxEnergy {
				o.energy = MaxEnergy
			}
			snap := o.snapshotLocked()
			o.mu.Unlock()
			o.emit(snap)
		}
	}
}

func (o *Orchestrator) emit(snap Snapshot) {
	o.mu.Lock()
	fn := o.onChange
	o.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

// Snapshot returns a copy of the current session state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *Orchestrator) snapshotLocked() Snapshot {
	snap := Snapshot{
		SessionID:        o.cfg.SessionID,
		PlayerHP:         o.hp,
		MaxHP:            MaxHP,
		TemporalEnergy:   o.energy,
		MaxEnergy:        MaxEnergy,
		CurrentEra:       o.currentEra,
		CurrentScene:     o.scene,
		IsDialogueActive: o.seq.Active(),
		ButterflyIndex:   o.butterflyIndex,
		IsParadoxEvent:   o.isParadoxEvent,
		TotalActions:     o.totalActions,
		IsTransitioning:  o.transitioning,
		IsRecalculating:  o.recalculating,
		BackendOnline:    o.backendOnline,
	}
	if cur := o.seq.Current(); cur != nil {
		line := *cur
		snap.CurrentDialogue = &line
	}
	snap.DialogueQueue = o.seq.Pending()
	snap.AffectedEras = append([]string(nil), o.affectedEras...)
	snap.TimelineNodes = append([]content.TimelineNode(nil), o.nodes...)
	snap.EchoMessages = append([]string(nil), o.echoes...)
	snap.Inventory = append([]Item(nil), o.inventory...)
	return snap
}

func (o *Orchestrator) introLinesLocked() []dialogue.Line {
	return []dialogue.Line{
		dialogue.Narrate(fmt.Sprintf("%s, %d AD", o.scene.Era, o.scene.Year)),
		dialogue.Narrate(o.scene.Description),
	}
}

// TravelToEra starts a transition to the scene with the given id. The
// era commits only after the transition delay elapses. Insufficient
// energy is a soft failure: a dialogue line, no state change.
func (o *Orchestrator) TravelToEra(eraID string) error {
	o.mu.Lock()

	target, ok := o.registry.Scene(eraID)
	if !ok {
		o.mu.Unlock()
		return fmt.Errorf("unknown era: %s", eraID)
	}
	if target.ID == o.currentEra {
		o.mu.Unlock()
		return fmt.Errorf("already in era: %s", eraID)
	}
	if o.seq.Active() {
		o.mu.Unlock()
		return fmt.Errorf("dialogue in progress")
	}
	if o.transitioning {
		o.mu.Unlock()
		return fmt.Errorf("transition already in progress")
	}
	if o.recalculating {
		o.mu.Unlock()
		return fmt.Errorf("causality recalculation in progress")
	}
	if o.energy < travelEnergyCost {
		o.seq.Start([]dialogue.Line{dialogue.Say("Chronos Interface",
			"Not enough temporal energy for the jump. Wait for the stream to replenish.")})
		snap := o.snapshotLocked()
		o.mu.Unlock()
		o.emit(snap)
		return nil
	}

	o.energy -= travelEnergyCost
	o.transitioning = true
	o.pushEchoLocked(fmt.Sprintf("Temporal jump initiated: %s, %d AD", target.Era, target.Year))
	o.transitionTimer = time.AfterFunc(o.cfg.TransitionDelay, func() {
		o.commitTravel(target)
	})
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.emit(snap)
	return nil
}

func (o *Orchestrator) commitTravel(target content.Scene) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	from := o.scene.Era
	o.scene = target
	o.currentEra = target.ID
	o.transitioning = false
	o.seq.Start(o.introLinesLocked())
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.emit(snap)
	o.publishSessionEvent(eventbus.TypeEraChanged, map[string]interface{}{
		"from_era": from,
		"to_era":   target.Era,
		"year":     target.Year,
	})
}

// PerformAction runs one of the scene actions. Actions are gated on an
// active dialogue and on in-flight command processing. Insufficient
// energy for temporal focus is a soft failure shown as a dialogue line.
func (o *Orchestrator) PerformAction(kind ActionKind, command string) error {
	o.mu.Lock()
	if o.seq.Active() {
		o.mu.Unlock()
		return fmt.Errorf("dialogue in progress")
	}
	if o.recalculating {
		o.mu.Unlock()
		return fmt.Errorf("causality recalculation in progress")
	}

	switch kind {
	case ActionAct:
		o.seq.Start(o.registry.ActSequence(o.currentEra))
	case ActionObserve:
		o.seq.Start(o.registry.ObserveSequence(o.currentEra))
	case ActionTemporal:
		if o.energy < temporalEnergyCost {
			o.seq.Start([]dialogue.Line{dialogue.Say("Chronos Interface",
				"Not enough temporal energy. The stream slips through your fingers.")})
		} else {
			o.energy -= temporalEnergyCost
			o.seq.Start(o.registry.TemporalSequence())
		}
	case ActionCustom:
		o.mu.Unlock()
		return o.SubmitCommand(command)
	default:
		o.mu.Unlock()
		return fmt.Errorf("unknown action kind: %s", kind)
	}

	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.emit(snap)
	return nil
}

// SubmitCommand sends a free-form command through the causality
// pipeline. Only one command is in flight at a time; the result is
// applied asynchronously.
func (o *Orchestrator) SubmitCommand(command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return fmt.Errorf("empty command")
	}

	o.mu.Lock()
	if o.recalculating {
		o.mu.Unlock()
		return fmt.Errorf("causality recalculation in progress")
	}
	if o.transitioning {
		o.mu.Unlock()
		return fmt.Errorf("transition in progress")
	}
	o.recalculating = true
	o.totalActions++
	o.pushEchoLocked("> " + command)
	era := o.scene.Era
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.emit(snap)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		result := o.client.SendCommand(ctx, command, era)
		o.applyResult(command, result)
	}()
	return nil
}

// applyResult folds a causality verdict into session state.
func (o *Orchestrator) applyResult(command string, result *causality.CommandResult) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.recalculating = false
	o.backendOnline = o.client.Online()

	if result.Blocked {
		reason := result.Reason
		if reason == "" {
			reason = "The timeline refuses to bend that way."
		}
		o.seq.Start([]dialogue.Line{
			dialogue.Say("The Causality Engine", "Command blocked by temporal ethics protocols."),
			dialogue.Say("The Causality Engine", reason),
		})
		snap := o.snapshotLocked()
		o.mu.Unlock()
		o.emit(snap)
		o.publishCommandEvent(eventbus.TypeCommandBlocked, command, result)
		return
	}

	o.butterflyIndex = result.ButterflyIndex
	for _, msg := range result.EchoMessages {
		o.pushEchoLocked(msg)
	}

	risk := result.ButterflyEffect.ParadoxRisk
	paradox := result.IsParadox || risk > paradoxRiskThreshold

	if paradox {
		o.damageLocked(paradoxDamage)
	} else if risk > damageRiskThreshold {
		o.damageLocked(riskDamage)
	}

	// The paradox window tracks the latest verdict: the flag and the
	// affected list are replaced on every command, and the auto-clear
	// timer restarts so the window measures from the most recent event.
	o.isParadoxEvent = paradox
	o.affectedEras = append([]string(nil), result.ButterflyEffect.AffectedEras...)
	o.armParadoxTimerLocked()

	o.updateNodesLocked(result.ButterflyEffect.AffectedEras, risk, paradox)

	var found *Item
	if !paradox && o.rng.Float64() < itemDropChance {
		item := o.rollItemLocked()
		o.inventory = append(o.inventory, item)
		o.pushEchoLocked(fmt.Sprintf("Discovered: %s (%s)", item.Name, item.Era))
		found = &item
	}

	o.seq.Start(o.resultLinesLocked(result, paradox, found))
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.emit(snap)

	o.publishCommandEvent(eventbus.TypeCommandProcessed, command, result)
	if paradox {
		o.publishParadoxEvent(command, result)
	}
	if found != nil {
		o.publishSessionEvent(eventbus.TypeItemDiscovered, map[string]interface{}{
			"item_id":   found.ID,
			"item_name": found.Name,
			"era":       found.Era,
		})
	}
}

func (o *Orchestrator) pushEchoLocked(msg string) {
	o.echoes = append(o.echoes, msg)
	if len(o.echoes) > echoLimit {
		o.echoes = o.echoes[len(o.echoes)-echoLimit:]
	}
}

func (o *Orchestrator) damageLocked(amount int) {
	o.hp -= amount
	if o.hp < 0 {
		o.hp = 0
	}
}

// armParadoxTimerLocked schedules the paradox window to clear. A new
// paradox replaces the pending timer so the window always measures from
// the most recent event.
func (o *Orchestrator) armParadoxTimerLocked() {
	if o.paradoxTimer != nil {
		o.paradoxTimer.Stop()
	}
	o.paradoxTimer = time.AfterFunc(o.cfg.ParadoxWindow, func() {
		o.mu.Lock()
		if o.closed {
			o.mu.Unlock()
			return
		}
		o.isParadoxEvent = false
		o.affectedEras = nil
		snap := o.snapshotLocked()
		o.mu.Unlock()
		o.emit(snap)
	})
}

func (o *Orchestrator) updateNodesLocked(affected []string, risk float64, paradox bool) {
	for i := range o.nodes {
		for _, era := range affected {
			if o.nodes[i].Era != era {
				continue
			}
			switch {
			case paradox:
				o.nodes[i].Status = content.NodeParadox
			case risk > shiftingRiskThreshold:
				o.nodes[i].Status = content.NodeShifting
			default:
				o.nodes[i].Status = content.NodeStable
			}
		}
	}
}

func (o *Orchestrator) rollItemLocked() Item {
	tpl := itemTemplates[o.rng.Intn(len(itemTemplates))]
	return Item{
		ID:          "item-" + uuid.New().String()[:8],
		Name:        tpl.Name,
		Description: tpl.Description,
		Era:         o.scene.Era,
		FoundAt:     time.Now().UTC(),
	}
}

// resultLinesLocked renders a command verdict as dialogue: paradox
// warning first when one fired, then the backend's narrative changes,
// then a summary line with the rounded index and risk.
func (o *Orchestrator) resultLinesLocked(result *causality.CommandResult, paradox bool, found *Item) []dialogue.Line {
	var lines []dialogue.Line
	if paradox {
		lines = append(lines, dialogue.Say("The Causality Engine",
			"PARADOX DETECTED. The timeline is rejecting your action. Brace for temporal backlash."))
	}
	for _, change := range result.ButterflyEffect.NarrativeChanges {
		lines = append(lines, dialogue.Narrate(change))
	}
	if found != nil {
		lines = append(lines, dialogue.Narrate(fmt.Sprintf("Something glints in the disturbance. You pick up: %s.", found.Name)))
	}
	lines = append(lines, dialogue.Narrate(fmt.Sprintf("Butterfly Index: %.0f%%. Paradox risk: %.0f%%.",
		result.ButterflyIndex, result.ButterflyEffect.ParadoxRisk*100)))
	return lines
}

// InteractWithNPC opens the dialogue of a scene character. No-op while
// another dialogue is active.
func (o *Orchestrator) InteractWithNPC(npcID string) error {
	o.mu.Lock()
	if o.seq.Active() {
		o.mu.Unlock()
		return fmt.Errorf("dialogue in progress")
	}
	var npc *content.NPC
	for i := range o.scene.NPCs {
		if o.scene.NPCs[i].ID == npcID {
			npc = &o.scene.NPCs[i]
			break
		}
	}
	if npc == nil {
		o.mu.Unlock()
		return fmt.Errorf("no such character in %s: %s", o.scene.Era, npcID)
	}
	o.seq.Start(append([]dialogue.Line(nil), npc.Lines...))
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.emit(snap)
	return nil
}

// InteractWithHotspot examines a scene object. The hotspot's echo joins
// the echo log. No-op while a dialogue is active.
func (o *Orchestrator) InteractWithHotspot(hotspotID string) error {
	o.mu.Lock()
	if o.seq.Active() {
		o.mu.Unlock()
		return fmt.Errorf("dialogue in progress")
	}
	var spot *content.Hotspot
	for i := range o.scene.Hotspots {
		if o.scene.Hotspots[i].ID == hotspotID {
			spot = &o.scene.Hotspots[i]
			break
		}
	}
	if spot == nil {
		o.mu.Unlock()
		return fmt.Errorf("no such hotspot in %s: %s", o.scene.Era, hotspotID)
	}
	if spot.Echo != "" {
		o.pushEchoLocked(spot.Echo)
	}
	o.seq.Start(append([]dialogue.Line(nil), spot.Lines...))
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.emit(snap)
	return nil
}

// AdvanceDialogue moves to the next queued line. Lines that offer
// choices hold until SelectChoice resolves them.
func (o *Orchestrator) AdvanceDialogue() {
	o.mu.Lock()
	cur := o.seq.Current()
	if cur != nil && len(cur.Choices) > 0 {
		o.mu.Unlock()
		return
	}
	o.seq.Advance()
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.emit(snap)
}

// SelectChoice resolves the current line's choice at the given index.
func (o *Orchestrator) SelectChoice(index int) error {
	o.mu.Lock()
	cur := o.seq.Current()
	if cur == nil || len(cur.Choices) == 0 {
		o.mu.Unlock()
		return fmt.Errorf("no choices pending")
	}
	if index < 0 || index >= len(cur.Choices) {
		o.mu.Unlock()
		return fmt.Errorf("choice index out of range: %d", index)
	}
	choice := cur.Choices[index]

	switch choice.Action.Kind {
	case dialogue.ActionNarrative:
		o.seq.Start(o.registry.ChoiceResponse(choice.Action.Key))
		snap := o.snapshotLocked()
		o.mu.Unlock()
		o.emit(snap)
		return nil
	case dialogue.ActionCommand:
		o.seq.Clear()
		snap := o.snapshotLocked()
		o.mu.Unlock()
		o.emit(snap)
		return o.SubmitCommand(choice.Action.Command)
	default:
		o.mu.Unlock()
		return fmt.Errorf("unknown choice action: %s", choice.Action.Kind)
	}
}

// CheckBackend re-checks the causality backend and records the result.
func (o *Orchestrator) CheckBackend(ctx context.Context) causality.HealthStatus {
	status := o.client.CheckHealth(ctx)
	o.mu.Lock()
	o.backendOnline = status.Online
	snap := o.snapshotLocked()
	o.mu.Unlock()
	o.emit(snap)
	return status
}

func (o *Orchestrator) publishCommandEvent(eventType, command string, result *causality.CommandResult) {
	if o.bus == nil {
		return
	}
	ev := eventbus.NewEvent(eventType, "chronos-session", o.cfg.SessionID, map[string]interface{}{
		"command":         command,
		"action_id":       result.ActionID,
		"intent":          result.Intent,
		"butterfly_index": result.ButterflyIndex,
		"paradox_risk":    result.ButterflyEffect.ParadoxRisk,
		"source":          result.Source,
	})
	if err := o.bus.PublishCommandEvent(context.Background(), ev); err != nil {
		log.Printf("Warning: Failed to publish command event: %v", err)
	}
}

func (o *Orchestrator) publishParadoxEvent(command string, result *causality.CommandResult) {
	if o.bus == nil {
		return
	}
	ev := eventbus.NewEvent(eventbus.TypeParadoxTriggered, "chronos-session", o.cfg.SessionID, map[string]interface{}{
		"command":       command,
		"action_id":     result.ActionID,
		"affected_eras": result.ButterflyEffect.AffectedEras,
		"paradox_risk":  result.ButterflyEffect.ParadoxRisk,
	})
	if err := o.bus.PublishParadoxEvent(context.Background(), ev); err != nil {
		log.Printf("Warning: Failed to publish paradox event: %v", err)
	}
}

func (o *Orchestrator) publishSessionEvent(eventType string, payload map[string]interface{}) {
	if o.bus == nil {
		return
	}
	ev := eventbus.NewEvent(eventType, "chronos-session", o.cfg.SessionID, payload)
	if err := o.bus.PublishSessionEvent(context.Background(), ev); err != nil {
		log.Printf("Warning: Failed to publish session event: %v", err)
	}
}
