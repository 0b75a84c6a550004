package gamesession

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin (restrict in production)
		return true
	},
}

type WebSocketServer struct {
	clients   map[*websocket.Conn]bool
	mutex     sync.Mutex
	onConnect func() []byte
	onMessage func(map[string]interface{})
}

// NewWebSocketServer builds the state broadcaster. onConnect supplies
// the snapshot sent to each new client; onMessage receives decoded
// client messages.
func NewWebSocketServer(onConnect func() []byte, onMessage func(map[string]interface{})) *WebSocketServer {
	return &WebSocketServer{
		clients:   make(map[*websocket.Conn]bool),
		onConnect: onConnect,
		onMessage: onMessage,
	}
}

func (w *WebSocketServer) HandleWebSocket(wr http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(wr, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer conn.Close()

	w.mutex.Lock()
	w.clients[conn] = true
	w.mutex.Unlock()

	// New clients get the full session state right away
	if w.onConnect != nil {
		if snapshot := w.onConnect(); snapshot != nil {
			if err := conn.WriteMessage(websocket.TextMessage, snapshot); err != nil {
				log.Printf("Failed to send initial state: %v", err)
			}
		}
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			log.Printf("Client disconnected: %v", err)
			w.mutex.Lock()
			delete(w.clients, conn)
			w.mutex.Unlock()
			break
		}

		var payload map[string]interface{}
		if err := json.Unmarshal(message, &payload); err != nil {
			log.Printf("Failed to parse client message: %v", err)
			continue
		}
		if w.onMessage != nil {
			w.onMessage(payload)
		}
	}
}

func (w *WebSocketServer) BroadcastMessage(message []byte) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	for client := range w.clients {
		err := client.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			log.Printf("Failed to send message to client: %v", err)
			client.Close()
			delete(w.clients, client)
		}
	}
}

func (w *WebSocketServer) BroadcastLoop(broadcast <-chan []byte) {
	for message := range broadcast {
		w.BroadcastMessage(message)
	}
}
