package debug

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/DrakeOne/voxelcraft-optimized/internal/world"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Snapshot é o estado publicado no feed: as estatísticas do mundo mais
// o lado do cliente. É um valor imutável; o tick monta um por segundo
// e entrega ao feed, que é a única parte concorrente do programa.
type Snapshot struct {
	world.Stats

	FPS     int32   `json:"fps"`
	Models  int     `json:"models"`
	Uploads int     `json:"uploads"`
	CamX    float32 `json:"cam_x"`
	CamY    float32 `json:"cam_y"`
	CamZ    float32 `json:"cam_z"`
	Uptime  float64 `json:"uptime_s"`
}

// hub gerencia as conexões WebSocket ativas.
type hub struct {
	clients    map[*websocket.Conn]*sync.Mutex
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func newHub() *hub {
	return &hub{
		clients:    make(map[*websocket.Conn]*sync.Mutex),
		broadcast:  make(chan []byte, 64), // bufferizado para nunca travar o tick
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *hub) run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Stats] Hub recuperado de pânico: %v", r)
		}
	}()

	for {
		select {
		case client, ok := <-h.register:
			if !ok {
				return
			}
			h.mu.Lock()
			h.clients[client] = &sync.Mutex{}
			h.mu.Unlock()
			log.Printf("[Stats] Cliente conectado: %s", client.RemoteAddr())
		case client, ok := <-h.unregister:
			if !ok {
				return
			}
			h.mu.Lock()
			if lock, ok := h.clients[client]; ok {
				lock.Lock()
				delete(h.clients, client)
				client.Close()
				lock.Unlock()
				log.Printf("[Stats] Cliente desconectado: %s", client.RemoteAddr())
			}
			h.mu.Unlock()
		case message, ok := <-h.broadcast:
			if !ok {
				return
			}
			h.mu.Lock()
			type clientEntry struct {
				conn *websocket.Conn
				lock *sync.Mutex
			}
			var targets []clientEntry
			for c, l := range h.clients {
				targets = append(targets, clientEntry{c, l})
			}
			h.mu.Unlock()

			// Escreve fora do lock do hub; o lock por cliente serializa
			// escritas concorrentes na mesma conexão.
			for _, target := range targets {
				target.lock.Lock()
				err := target.conn.WriteMessage(websocket.TextMessage, message)
				if err != nil {
					target.conn.Close()
					h.mu.Lock()
					delete(h.clients, target.conn)
					h.mu.Unlock()
				}
				target.lock.Unlock()
			}
		}
	}
}

// safeSend envia para o broadcast sem nunca bloquear o chamador: se o
// buffer encheu (nenhum cliente drenando), o snapshot é descartado.
func (h *hub) safeSend(data []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Stats] Aviso: broadcast em canal fechado: %v", r)
		}
	}()
	select {
	case h.broadcast <- data:
	default:
	}
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Feed publica snapshots de estatísticas por WebSocket em /stats e o
// último snapshot por GET em /stats.json. addr vazio desliga o feed:
// todos os métodos aceitam receptor nil.
type Feed struct {
	hub  *hub
	srv  *http.Server
	addr string

	mu   sync.Mutex
	last []byte
}

// Serve abre o listener e começa a aceitar clientes. Retorna erro se a
// porta estiver ocupada (provavelmente outra instância rodando).
func Serve(addr string) (*Feed, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	f := &Feed{hub: newHub(), addr: ln.Addr().String()}

	mux := http.NewServeMux()
	mux.HandleFunc("/stats", f.serveWs)
	mux.HandleFunc("/stats.json", f.serveJSON)
	f.srv = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go f.hub.run()
	go func() {
		if err := f.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("[Stats] Servidor HTTP encerrado: %v", err)
		}
	}()

	log.Printf("[Stats] Feed de estatísticas em ws://%s/stats", f.addr)
	return f, nil
}

// Publish serializa o snapshot e o difunde para os clientes.
func (f *Feed) Publish(s Snapshot) {
	if f == nil {
		return
	}
	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[Stats] Erro ao serializar snapshot: %v", err)
		return
	}

	f.mu.Lock()
	f.last = data
	f.mu.Unlock()

	f.hub.safeSend(data)
}

// Addr retorna o endereço real do listener, útil com porta 0.
func (f *Feed) Addr() string {
	if f == nil {
		return ""
	}
	return f.addr
}

// Clients retorna quantos clientes estão conectados.
func (f *Feed) Clients() int {
	if f == nil {
		return 0
	}
	return f.hub.count()
}

// Close derruba o servidor HTTP. As goroutines de leitura morrem
// quando as conexões fecham.
func (f *Feed) Close() {
	if f == nil {
		return
	}
	f.srv.Close()
}

// serveWs faz o upgrade e pendura o cliente no hub. A goroutine de
// leitura existe só para detectar o fechamento; o conteúdo é ignorado.
func (f *Feed) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Stats] Erro no upgrade do WebSocket: %v", err)
		return
	}
	// Primeiro contato: o último snapshot, para não esperar o próximo
	// tick. Antes do register só este handler escreve na conexão.
	f.mu.Lock()
	last := f.last
	f.mu.Unlock()
	if last != nil {
		conn.WriteMessage(websocket.TextMessage, last)
	}

	f.hub.register <- conn

	go func() {
		defer func() {
			f.hub.unregister <- conn
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (f *Feed) serveJSON(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	last := f.last
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if last == nil {
		w.Write([]byte("{}"))
		return
	}
	w.Write(last)
}
