package realtime

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/go-stomp/stomp/v3/frame"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait    = 10 * time.Second
	maxFrameSize = 64 * 1024
	serverName   = "groupware"
)

type outbound struct {
	data       []byte
	closeAfter bool
}

type session struct {
	id     string
	conn   *websocket.Conn
	send   chan outbound
	done   chan struct{}
	once   sync.Once
	logger *zap.Logger

	mu        sync.Mutex
	connected bool
	subs      map[string]string // subscription id -> destination
}

func newSession(conn *websocket.Conn, buffer int, logger *zap.Logger) *session {
	id := uuid.NewString()
	return &session{
		id:     id,
		conn:   conn,
		send:   make(chan outbound, buffer),
		done:   make(chan struct{}),
		logger: logger.With(zap.String("session_id", id)),
		subs:   make(map[string]string),
	}
}

func (s *session) run() {
	go s.writeLoop()
	s.readLoop()
	s.close()
}

func (s *session) close() {
	s.once.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

func (s *session) writeLoop() {
	for {
		select {
		case <-s.done:
			return
		case out := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, out.data); err != nil {
				s.logger.Debug("stomp write failed", zap.Error(err))
				s.close()
				return
			}
			if out.closeAfter {
				s.close()
				return
			}
		}
	}
}

func (s *session) readLoop() {
	s.conn.SetReadLimit(maxFrameSize)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}

		reader := frame.NewReader(bytes.NewReader(data))
		for {
			f, err := reader.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				s.fail(nil, "malformed frame")
				return
			}
			if f == nil {
				// heart-beat
				continue
			}
			if !s.handle(f) {
				return
			}
		}
	}
}

// handle memproses satu frame dari client. false berarti sesi harus diakhiri.
func (s *session) handle(f *frame.Frame) bool {
	if f.Command == frame.CONNECT || f.Command == frame.STOMP {
		return s.handleConnect(f)
	}

	s.mu.Lock()
	connected := s.connected
	s.mu.Unlock()
	if !connected {
		s.fail(f, "not connected")
		return false
	}

	switch f.Command {
	case frame.SUBSCRIBE:
		dest := f.Header.Get(frame.Destination)
		subID := f.Header.Get(frame.Id)
		if dest == "" || subID == "" {
			s.fail(f, "subscribe requires destination and id")
			return false
		}
		if !isBrokerDestination(dest) {
			s.fail(f, "unknown destination "+dest)
			return false
		}
		s.mu.Lock()
		s.subs[subID] = dest
		s.mu.Unlock()

	case frame.UNSUBSCRIBE:
		s.mu.Lock()
		delete(s.subs, f.Header.Get(frame.Id))
		s.mu.Unlock()

	case frame.DISCONNECT:
		if receipt := f.Header.Get(frame.Receipt); receipt != "" {
			s.control(frame.New(frame.RECEIPT, frame.ReceiptId, receipt), true)
			return true
		}
		return false

	case frame.SEND:
		s.fail(f, "client messages are not accepted")
		return false

	case frame.ACK, frame.NACK, frame.BEGIN, frame.COMMIT, frame.ABORT:
		// auto-ack, tanpa transaksi

	default:
		s.fail(f, "unknown command "+f.Command)
		return false
	}

	s.receipt(f)
	return true
}

func (s *session) handleConnect(f *frame.Frame) bool {
	s.mu.Lock()
	already := s.connected
	s.connected = true
	s.mu.Unlock()
	if already {
		s.fail(f, "already connected")
		return false
	}

	s.control(frame.New(frame.CONNECTED,
		frame.Version, negotiateVersion(f.Header.Get(frame.AcceptVersion)),
		frame.HeartBeat, "0,0",
		frame.Server, serverName,
		frame.Session, s.id,
	), false)
	return true
}

func negotiateVersion(accept string) string {
	if accept == "" {
		return "1.0"
	}
	best := "1.0"
	for _, v := range strings.Split(accept, ",") {
		v = strings.TrimSpace(v)
		if (v == "1.1" || v == "1.2") && v > best {
			best = v
		}
	}
	return best
}

func (s *session) receipt(f *frame.Frame) {
	if receipt := f.Header.Get(frame.Receipt); receipt != "" {
		s.control(frame.New(frame.RECEIPT, frame.ReceiptId, receipt), false)
	}
}

// fail mengirim ERROR lalu menutup koneksi setelah frame terkirim.
func (s *session) fail(f *frame.Frame, message string) {
	s.logger.Debug("stomp protocol error", zap.String("message", message))
	errFrame := frame.New(frame.ERROR, frame.Message, message)
	if f != nil {
		if receipt := f.Header.Get(frame.Receipt); receipt != "" {
			errFrame.Header.Add(frame.ReceiptId, receipt)
		}
	}
	errFrame.Body = []byte(message)
	s.control(errFrame, true)
	<-s.done
}

// control mengantrikan frame protokol; berbeda dengan MESSAGE, frame ini menunggu slot antrian.
func (s *session) control(f *frame.Frame, closeAfter bool) {
	data, err := encode(f)
	if err != nil {
		s.logger.Error("encode stomp frame failed", zap.Error(err))
		return
	}
	select {
	case s.send <- outbound{data: data, closeAfter: closeAfter}:
	case <-s.done:
	}
}

// enqueue tidak pernah blocking; false kalau antrian penuh atau sesi sudah tutup.
func (s *session) enqueue(f *frame.Frame) bool {
	data, err := encode(f)
	if err != nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.send <- outbound{data: data}:
		return true
	default:
		return false
	}
}

func (s *session) subscriptionsFor(destination string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id, dest := range s.subs {
		if dest == destination {
			ids = append(ids, id)
		}
	}
	return ids
}

func messageFrame(destination, subscriptionID, messageID, payload string) *frame.Frame {
	f := frame.New(frame.MESSAGE,
		frame.Destination, destination,
		frame.Subscription, subscriptionID,
		frame.MessageId, messageID,
		frame.ContentType, "text/plain;charset=UTF-8",
	)
	f.Body = []byte(payload)
	return f
}

func encode(f *frame.Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := frame.NewWriter(&buf).Write(f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
