package sensor

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// DefaultPath is where phones connect when WebSocketFeed.Path is empty.
const DefaultPath = "/sensor"

const shutdownTimeout = 2 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Phones load the sender page from elsewhere
	CheckOrigin: func(*http.Request) bool { return true },
}

// WebSocketFeed accepts sample streams from phones. Each text frame carries
// one JSON sample; see DecodeSample.
type WebSocketFeed struct {
	Addr   string
	Path   string
	Logger *log.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]string
}

// Handler returns the HTTP handler that upgrades connections and feeds
// decoded samples into sink.
func (f *WebSocketFeed) Handler(sink Sink) http.Handler {
	path := f.Path
	if path == "" {
		path = DefaultPath
	}

	mux := http.NewServeMux()
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		f.serve(w, r, sink)
	})
	return mux
}

// Run listens on Addr until ctx is cancelled, then shuts the server down and
// closes open connections.
func (f *WebSocketFeed) Run(ctx context.Context, sink Sink) error {
	logger := loggerOrDiscard(f.Logger)

	ln, err := net.Listen("tcp", f.Addr)
	if err != nil {
		return fmt.Errorf("sensor: listen %s: %w", f.Addr, err)
	}

	srv := &http.Server{
		Handler:           f.Handler(sink),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info("sensor bridge listening", "addr", ln.Addr().String(), "path", f.pathOrDefault())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("sensor: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	f.closeAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("sensor: shutdown: %w", err)
	}
	logger.Info("sensor bridge stopped")
	return nil
}

func (f *WebSocketFeed) pathOrDefault() string {
	if f.Path == "" {
		return DefaultPath
	}
	return f.Path
}

func (f *WebSocketFeed) serve(w http.ResponseWriter, r *http.Request, sink Sink) {
	logger := loggerOrDiscard(f.Logger)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("sensor upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	id := uuid.NewString()
	f.track(conn, id)
	defer f.untrack(conn)
	defer conn.Close()

	logger.Info("sensor connected", "conn", id, "remote", r.RemoteAddr)

	var accepted, rejected int
	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("sensor read ended", "conn", id, "err", err)
			}
			break
		}
		if kind != websocket.TextMessage {
			continue
		}

		sample, err := DecodeSample(data)
		if err != nil {
			rejected++
			logger.Warn("dropping sensor frame", "conn", id, "err", err)
			continue
		}
		accepted++
		sink.Feed(sample)
	}

	logger.Info("sensor disconnected", "conn", id, "samples", accepted, "rejected", rejected)
}

func (f *WebSocketFeed) track(c *websocket.Conn, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conns == nil {
		f.conns = make(map[*websocket.Conn]string)
	}
	f.conns[c] = id
}

func (f *WebSocketFeed) untrack(c *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.conns, c)
}

// closeAll closes hijacked connections, which http.Server.Shutdown leaves open.
func (f *WebSocketFeed) closeAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for c := range f.conns {
		_ = c.Close()
	}
}

// Connections returns the number of open sensor connections.
func (f *WebSocketFeed) Connections() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.conns)
}
