package gamesession

import (
	"context"
	"encoding/json"
	"log"

	"chronos-core/internal/causality"
	"chronos-core/internal/content"
	"chronos-core/internal/eventbus"
)

type ServiceConfig struct {
	HTTPAddr      string
	BackendURL    string
	KafkaBrokers  []string
	ContentBucket string
	Session       Config
}

// Service wires the orchestrator to its transports: REST and WebSocket
// on the front, the causality backend and the Kafka telemetry bus on
// the back.
type Service struct {
	cfg          ServiceConfig
	bus          *eventbus.EventBus
	client       *causality.Client
	registry     *content.Registry
	orchestrator *Orchestrator
	httpServer   *HTTPServer
	wsServer     *WebSocketServer
	broadcast    chan []byte
}

func NewService(cfg ServiceConfig) *Service {
	registry := content.Builtin()
	if store, err := content.NewMinioStoreFromEnv(); err != nil {
		log.Printf("Warning: Failed to create MinIO client: %v", err)
	} else if store != nil {
		if err := registry.LoadOverrides(store, cfg.ContentBucket); err != nil {
			log.Printf("Warning: Failed to load content overrides: %v", err)
		}
	}

	var bus *eventbus.EventBus
	if len(cfg.KafkaBrokers) > 0 {
		bus = eventbus.NewEventBus(cfg.KafkaBrokers)
	} else {
		log.Println("No Kafka brokers configured, telemetry disabled")
	}

	client := causality.NewClient(cfg.BackendURL)
	orchestrator := NewOrchestrator(cfg.Session, client, registry, bus)

	s := &Service{
		cfg:          cfg,
		bus:          bus,
		client:       client,
		registry:     registry,
		orchestrator: orchestrator,
		httpServer:   NewHTTPServer(cfg.HTTPAddr),
		broadcast:    make(chan []byte, 100),
	}
	s.wsServer = NewWebSocketServer(s.snapshotJSON, s.handleClientMessage)

	orchestrator.SetOnChange(func(snap Snapshot) {
		message, err := json.Marshal(snap)
		if err != nil {
			log.Printf("Warning: Failed to marshal snapshot: %v", err)
			return
		}
		select {
		case s.broadcast <- message:
		default:
			log.Println("Warning: Broadcast channel full, dropping snapshot")
		}
	})
	return s
}

func (s *Service) Start(ctx context.Context) {
	log.Println("Chronos session service started. Initializing components...")

	s.httpServer.RegisterRoutes(s, s.wsServer)
	s.httpServer.Start()

	go s.wsServer.BroadcastLoop(s.broadcast)

	// Mirror the telemetry topics to connected clients, so spectator
	// UIs see the same stream the backend consumers do
	if s.bus != nil {
		topics := []string{
			eventbus.TopicCommandEvents,
			eventbus.TopicParadoxEvents,
			eventbus.TopicSessionEvents,
		}
		for _, topic := range topics {
			topic := topic
			go func() {
				s.bus.Subscribe(ctx, topic, "chronos-session-gateway", s.forwardTelemetry)
			}()
		}
	}

	s.orchestrator.Start(ctx)

	log.Println("Chronos session service fully initialized and running.")
}

func (s *Service) Stop() {
	s.orchestrator.Close()
	if s.bus != nil {
		if err := s.bus.Close(); err != nil {
			log.Printf("Warning: Failed to close event bus: %v", err)
		}
	}
	s.httpServer.Stop()
	close(s.broadcast)
}

func (s *Service) snapshotJSON() []byte {
	message, err := json.Marshal(s.orchestrator.Snapshot())
	if err != nil {
		log.Printf("Warning: Failed to marshal snapshot: %v", err)
		return nil
	}
	return message
}

func (s *Service) forwardTelemetry(event eventbus.Event) {
	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("Warning: Failed to marshal telemetry event: %v", err)
		return
	}
	select {
	case s.broadcast <- message:
	default:
		log.Println("Warning: Broadcast channel full, dropping telemetry event")
	}
}

// handleClientMessage services lightweight client messages arriving on
// the WebSocket. Anything heavier goes through the REST API.
func (s *Service) handleClientMessage(payload map[string]interface{}) {
	msgType, _ := payload["type"].(string)
	switch msgType {
	case "dialogue.advance":
		s.orchestrator.AdvanceDialogue()
	case "ping":
		// keepalive, nothing to do
	default:
		log.Printf("Received message from client: %v", payload)
	}
}
