package realtime

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	Endpoint          = "/handshake"
	defaultSendBuffer = 64
)

// prefix destination yang boleh di-SUBSCRIBE
var brokerPrefixes = []string{"/public", "/private", "/chat-department"}

var ErrHubClosed = errors.New("realtime hub closed")

// Hub adalah simple broker STOMP in-memory. Publish tidak pernah menunggu subscriber lambat.
type Hub struct {
	mu         sync.RWMutex
	sessions   map[*session]struct{}
	closed     bool
	upgrader   websocket.Upgrader
	sendBuffer int
	logger     *zap.Logger
}

type Option func(*Hub)

// WithSendBuffer mengatur kapasitas antrian outbound per koneksi.
func WithSendBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.sendBuffer = n
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(h *Hub) {
		if logger != nil {
			h.logger = logger.Named("realtime.hub")
		}
	}
}

func NewHub(opts ...Option) *Hub {
	h := &Hub{
		sessions:   make(map[*session]struct{}),
		sendBuffer: defaultSendBuffer,
		logger:     zap.L().Named("realtime.hub"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			Subprotocols:    []string{"v12.stomp", "v11.stomp", "v10.stomp"},
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func isBrokerDestination(dest string) bool {
	for _, p := range brokerPrefixes {
		if dest == p || strings.HasPrefix(dest, p+"/") {
			return true
		}
	}
	return false
}

// Publish mengirim MESSAGE ke setiap subscription yang destination-nya sama persis.
// Context tidak dipakai untuk membatalkan; enqueue tidak pernah blocking.
func (h *Hub) Publish(_ context.Context, channel, payload string) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return ErrHubClosed
	}

	delivered, dropped := 0, 0
	for s := range h.sessions {
		for _, subID := range s.subscriptionsFor(channel) {
			if s.enqueue(messageFrame(channel, subID, uuid.NewString(), payload)) {
				delivered++
			} else {
				dropped++
			}
		}
	}

	if dropped > 0 {
		h.logger.Warn("notification dropped for slow subscribers",
			zap.String("channel", channel),
			zap.Int("dropped", dropped),
		)
	}
	h.logger.Debug("notification published",
		zap.String("channel", channel),
		zap.Int("delivered", delivered),
	)
	return nil
}

// ServeHTTP melakukan upgrade WebSocket lalu menjalankan sesi STOMP sampai koneksi putus.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	// deadline dari http.Server ikut terbawa setelah hijack; heart-beat 0,0 jadi sesi boleh idle
	_ = conn.SetReadDeadline(time.Time{})

	s := newSession(conn, h.sendBuffer, h.logger)
	if !h.register(s) {
		_ = conn.Close()
		return
	}
	defer h.unregister(s)

	h.logger.Debug("stomp session opened", zap.String("session_id", s.id))
	s.run()
	h.logger.Debug("stomp session closed", zap.String("session_id", s.id))
}

func (h *Hub) register(s *session) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.sessions[s] = struct{}{}
	return true
}

func (h *Hub) unregister(s *session) {
	h.mu.Lock()
	delete(h.sessions, s)
	h.mu.Unlock()
}

// SessionCount jumlah koneksi aktif.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Close menutup semua koneksi; Publish setelahnya mengembalikan ErrHubClosed.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	sessions := make([]*session, 0, len(h.sessions))
	for s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}
