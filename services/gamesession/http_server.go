package gamesession

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type HTTPServer struct {
	server *http.Server
	router *mux.Router
}

func NewHTTPServer(addr string) *HTTPServer {
	router := mux.NewRouter()

	srv := &http.Server{
		Addr:         addr,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	return &HTTPServer{
		server: srv,
		router: router,
	}
}

func (hs *HTTPServer) Start() {
	go func() {
		log.Printf("HTTP server starting on %s", hs.server.Addr)
		if err := hs.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()
}

func (hs *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := hs.server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("HTTP server stopped")
}

func (hs *HTTPServer) RegisterRoutes(service *Service, wsServer *WebSocketServer) {
	// WebSocket endpoint: pushes a state snapshot on every change
	hs.router.HandleFunc("/ws/state", wsServer.HandleWebSocket)

	// REST API endpoints
	hs.router.HandleFunc("/api/session/state", service.StateHandler).Methods("GET")
	hs.router.HandleFunc("/api/session/travel", service.TravelHandler).Methods("POST")
	hs.router.HandleFunc("/api/session/action", service.ActionHandler).Methods("POST")
	hs.router.HandleFunc("/api/session/dialogue/advance", service.AdvanceDialogueHandler).Methods("POST")
	hs.router.HandleFunc("/api/session/dialogue/choice", service.ChoiceHandler).Methods("POST")
	hs.router.HandleFunc("/api/session/npc/{npc_id}", service.NPCHandler).Methods("POST")
	hs.router.HandleFunc("/api/session/hotspot/{hotspot_id}", service.HotspotHandler).Methods("POST")
	hs.router.HandleFunc("/api/session/backend", service.BackendHandler).Methods("GET")
	hs.router.HandleFunc("/api/session/world/{era_id}", service.WorldStateHandler).Methods("GET")
	hs.router.HandleFunc("/api/session/causality", service.CausalityHandler).Methods("GET")
}
