package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// Evento es lo que se transmite por el feed en vivo: canciones nuevas y
// toggles de interacción.
type Evento struct {
	Tipo      string                 `json:"tipo"`
	UsuarioID uint                   `json:"usuario_id"`
	Detalle   map[string]interface{} `json:"detalle,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// feedMu protege el mapa: cada conexión lo escribe desde su propia goroutine
// y el repartidor lo recorre desde la suya.
var (
	feedMu        sync.Mutex
	feedClients   = make(map[*websocket.Conn]bool)
	feedBroadcast = make(chan Evento, 64)
)

var feedUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleFeedWS conecta un cliente al feed de actividad.
func HandleFeedWS(w http.ResponseWriter, r *http.Request) {
	conn, err := feedUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("Error al abrir WS del feed", "err", err)
		return
	}
	defer conn.Close()

	feedMu.Lock()
	feedClients[conn] = true
	feedMu.Unlock()
	log.Info("Cliente conectado al feed", "addr", conn.RemoteAddr())

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			feedMu.Lock()
			delete(feedClients, conn)
			feedMu.Unlock()
			break
		}
	}
}

// HandleFeedMessages reparte los eventos a todos los clientes conectados.
func HandleFeedMessages() {
	for evento := range feedBroadcast {
		feedMu.Lock()
		for conn := range feedClients {
			if err := conn.WriteJSON(evento); err != nil {
				conn.Close()
				delete(feedClients, conn)
			}
		}
		feedMu.Unlock()
	}
}

// PublicarEvento encola un evento sin bloquear al handler que lo emite.
func PublicarEvento(tipo string, usuarioID uint, detalle map[string]interface{}) {
	evento := Evento{Tipo: tipo, UsuarioID: usuarioID, Detalle: detalle, Timestamp: time.Now()}
	select {
	case feedBroadcast <- evento:
	default:
		// feed lleno, se descarta: no hay garantía de entrega
	}
}
