package realtime

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-stomp/stomp/v3/frame"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startHub(t *testing.T, opts ...Option) (*Hub, string) {
	t.Helper()
	hub := NewHub(opts...)
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + Endpoint
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func sendFrame(t *testing.T, conn *websocket.Conn, f *frame.Frame) {
	t.Helper()
	data, err := encode(f)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

func readFrame(t *testing.T, conn *websocket.Conn) *frame.Frame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	f, err := frame.NewReader(bytes.NewReader(data)).Read()
	require.NoError(t, err)
	require.NotNil(t, f)
	return f
}

func connect(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	sendFrame(t, conn, frame.New(frame.CONNECT, frame.AcceptVersion, "1.1,1.2", frame.Host, "localhost"))
	f := readFrame(t, conn)
	require.Equal(t, frame.CONNECTED, f.Command)
	assert.Equal(t, "1.2", f.Header.Get(frame.Version))
}

func subscribe(t *testing.T, conn *websocket.Conn, id, destination string) {
	t.Helper()
	sendFrame(t, conn, frame.New(frame.SUBSCRIBE,
		frame.Id, id,
		frame.Destination, destination,
		frame.Receipt, "r-"+id,
	))
	f := readFrame(t, conn)
	require.Equal(t, frame.RECEIPT, f.Command)
	assert.Equal(t, "r-"+id, f.Header.Get(frame.ReceiptId))
}

func TestHub_PublishDeliversToSubscribers(t *testing.T) {
	hub, url := startHub(t)

	a := dial(t, url)
	connect(t, a)
	subscribe(t, a, "sub-0", "/private/g-11")

	b := dial(t, url)
	connect(t, b)
	subscribe(t, b, "sub-0", "/public")

	require.NoError(t, hub.Publish(context.Background(), "/private/g-11", "you have a new note"))
	require.NoError(t, hub.Publish(context.Background(), "/public", "new board post"))

	msg := readFrame(t, a)
	assert.Equal(t, frame.MESSAGE, msg.Command)
	assert.Equal(t, "/private/g-11", msg.Header.Get(frame.Destination))
	assert.Equal(t, "sub-0", msg.Header.Get(frame.Subscription))
	assert.NotEmpty(t, msg.Header.Get(frame.MessageId))
	assert.Equal(t, "you have a new note", string(msg.Body))

	msg = readFrame(t, b)
	assert.Equal(t, "/public", msg.Header.Get(frame.Destination))
	assert.Equal(t, "new board post", string(msg.Body))
}

func TestHub_PublishIgnoresCanceledContext(t *testing.T) {
	hub, url := startHub(t)

	a := dial(t, url)
	connect(t, a)
	subscribe(t, a, "sub-0", "/private/g-3")

	// request pengirim sudah selesai sebelum notifikasi dikirim
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, hub.Publish(ctx, "/private/g-3", "you have a new note"))

	msg := readFrame(t, a)
	assert.Equal(t, "/private/g-3", msg.Header.Get(frame.Destination))
	assert.Equal(t, "you have a new note", string(msg.Body))
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub, _ := startHub(t)
	assert.NoError(t, hub.Publish(context.Background(), "/chat-department/1", "refresh"))
}

func TestHub_UnknownDestinationRejected(t *testing.T) {
	_, url := startHub(t)

	conn := dial(t, url)
	connect(t, conn)
	sendFrame(t, conn, frame.New(frame.SUBSCRIBE, frame.Id, "sub-0", frame.Destination, "/topic/admin"))

	f := readFrame(t, conn)
	assert.Equal(t, frame.ERROR, f.Command)
	assert.Contains(t, f.Header.Get(frame.Message), "/topic/admin")
}

func TestHub_FrameBeforeConnectRejected(t *testing.T) {
	_, url := startHub(t)

	conn := dial(t, url)
	sendFrame(t, conn, frame.New(frame.SUBSCRIBE, frame.Id, "sub-0", frame.Destination, "/public"))

	f := readFrame(t, conn)
	assert.Equal(t, frame.ERROR, f.Command)
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	hub, url := startHub(t)

	conn := dial(t, url)
	connect(t, conn)
	subscribe(t, conn, "sub-0", "/chat-department/2")
	subscribe(t, conn, "sub-1", "/public")

	sendFrame(t, conn, frame.New(frame.UNSUBSCRIBE, frame.Id, "sub-0", frame.Receipt, "unsub"))
	require.Equal(t, frame.RECEIPT, readFrame(t, conn).Command)

	require.NoError(t, hub.Publish(context.Background(), "/chat-department/2", "refresh"))
	require.NoError(t, hub.Publish(context.Background(), "/public", "board list viewed"))

	// pesan pertama yang diterima harus dari /public
	msg := readFrame(t, conn)
	assert.Equal(t, "/public", msg.Header.Get(frame.Destination))
}

func TestHub_DisconnectWithReceipt(t *testing.T) {
	hub, url := startHub(t)

	conn := dial(t, url)
	connect(t, conn)
	sendFrame(t, conn, frame.New(frame.DISCONNECT, frame.Receipt, "bye"))

	f := readFrame(t, conn)
	assert.Equal(t, frame.RECEIPT, f.Command)
	assert.Equal(t, "bye", f.Header.Get(frame.ReceiptId))

	assert.Eventually(t, func() bool { return hub.SessionCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_ClosedHubRejectsPublish(t *testing.T) {
	hub := NewHub()
	hub.Close()
	assert.ErrorIs(t, hub.Publish(context.Background(), "/public", "x"), ErrHubClosed)
}

func TestSession_EnqueueDropsWhenFull(t *testing.T) {
	s := newSession(nil, 1, zap.NewNop())
	s.subs["sub-0"] = "/public"

	assert.True(t, s.enqueue(messageFrame("/public", "sub-0", "m-1", "a")))
	assert.False(t, s.enqueue(messageFrame("/public", "sub-0", "m-2", "b")))
	assert.Len(t, s.send, 1)
}

func TestIsBrokerDestination(t *testing.T) {
	assert.True(t, isBrokerDestination("/public"))
	assert.True(t, isBrokerDestination("/private/g-1"))
	assert.True(t, isBrokerDestination("/chat-department/3"))
	assert.False(t, isBrokerDestination("/publicity"))
	assert.False(t, isBrokerDestination("/app/hello"))
}

func TestNegotiateVersion(t *testing.T) {
	assert.Equal(t, "1.0", negotiateVersion(""))
	assert.Equal(t, "1.1", negotiateVersion("1.0,1.1"))
	assert.Equal(t, "1.2", negotiateVersion("1.2, 1.1"))
}
