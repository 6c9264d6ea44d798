package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"drift-and-burn/server/internal/predict"
	"drift-and-burn/server/internal/telemetry"
	worldpkg "drift-and-burn/server/internal/world"
	"drift-and-burn/server/journal"
	"drift-and-burn/server/logging"
	loggingNet "drift-and-burn/server/logging/network"
)

// HubConfig bundles the dependencies for a running zone.
type HubConfig struct {
	World     worldpkg.Config
	Predictor *predict.Predictor
	Logger    telemetry.Logger
	Publisher logging.Publisher
	Counters  *logging.Metrics
	Journal   *journal.Writer
}

// DefaultHubConfig runs the stock zone with console-free dependencies.
func DefaultHubConfig() HubConfig {
	return HubConfig{World: worldpkg.DefaultConfig()}
}

type viewerState struct {
	ID            string
	lastHeartbeat time.Time
	lastRTT       time.Duration
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) write(messageType int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(messageType, data)
}

// Hub owns the world, the viewer roster, and the broadcast fanout. Viewers
// are spectators: they subscribe to the stream but do not steer ships.
type Hub struct {
	mu          sync.Mutex
	world       *World
	viewers     map[string]*viewerState
	subscribers map[string]*subscriber
	nextID      atomic.Uint64

	logger    telemetry.Logger
	metrics   telemetry.Metrics
	publisher logging.Publisher
	counters  *logging.Metrics
	journal   *journal.Writer
}

func NewHub() *Hub {
	return NewHubWithConfig(DefaultHubConfig())
}

func NewHubWithConfig(cfg HubConfig) *Hub {
	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.LoggerFunc(func(string, ...any) {})
	}
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = logging.NopPublisher()
	}
	metrics := telemetry.NopMetrics()
	if cfg.Counters != nil {
		metrics = telemetry.WrapMetrics(cfg.Counters)
	}

	hub := &Hub{
		viewers:     make(map[string]*viewerState),
		subscribers: make(map[string]*subscriber),
		logger:      logger,
		metrics:     metrics,
		publisher:   publisher,
		counters:    cfg.Counters,
		journal:     cfg.Journal,
	}
	hub.world = NewWorld(cfg.World, cfg.Predictor, publisher, metrics)
	return hub
}

// Join registers a viewer and returns the initial zone snapshot.
func (h *Hub) Join() joinResponse {
	id := h.nextID.Add(1)
	viewerID := fmt.Sprintf("viewer-%d", id)
	now := time.Now()

	h.mu.Lock()
	h.viewers[viewerID] = &viewerState{ID: viewerID, lastHeartbeat: now}
	response := joinResponse{
		ID:      viewerID,
		Zone:    h.world.zoneInfo(),
		Ships:   h.world.SnapshotShips(),
		Turrets: h.world.SnapshotTurrets(),
	}
	tick := h.world.Tick()
	h.mu.Unlock()

	loggingNet.ViewerJoined(context.Background(), h.publisher, tick,
		logging.EntityRef{ID: viewerID, Kind: logging.EntityKindViewer})
	h.metrics.Add("network.viewers_joined", 1)

	return response
}

// Subscribe attaches a websocket connection to a joined viewer. An existing
// connection for the same viewer is replaced.
func (h *Hub) Subscribe(viewerID string, conn *websocket.Conn) (*subscriber, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	viewer, ok := h.viewers[viewerID]
	if !ok {
		return nil, false
	}
	viewer.lastHeartbeat = time.Now()

	if existing, ok := h.subscribers[viewerID]; ok {
		existing.conn.Close()
	}

	sub := &subscriber{conn: conn}
	h.subscribers[viewerID] = sub
	return sub, true
}

// Disconnect drops a viewer and closes its connection if any.
func (h *Hub) Disconnect(viewerID, reason string) {
	h.mu.Lock()
	sub, subOK := h.subscribers[viewerID]
	if subOK {
		delete(h.subscribers, viewerID)
	}
	_, viewerOK := h.viewers[viewerID]
	if viewerOK {
		delete(h.viewers, viewerID)
	}
	tick := h.world.Tick()
	h.mu.Unlock()

	if subOK {
		sub.conn.Close()
	}
	if viewerOK {
		loggingNet.ViewerDropped(context.Background(), h.publisher, tick,
			logging.EntityRef{ID: viewerID, Kind: logging.EntityKindViewer}, reason)
	}
}

// UpdateHeartbeat records a viewer heartbeat and returns the smoothed RTT.
func (h *Hub) UpdateHeartbeat(viewerID string, receivedAt time.Time, clientSent int64) (time.Duration, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	viewer, ok := h.viewers[viewerID]
	if !ok {
		return 0, false
	}
	viewer.lastHeartbeat = receivedAt

	if clientSent > 0 {
		clientTime := time.UnixMilli(clientSent)
		if clientTime.Before(receivedAt.Add(5 * time.Second)) {
			rtt := receivedAt.Sub(clientTime)
			if rtt < 0 {
				rtt = 0
			}
			viewer.lastRTT = rtt
		}
	}
	return viewer.lastRTT, true
}

// RunSimulation drives the fixed-timestep loop until stop closes.
func (h *Hub) RunSimulation(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt <= 0 {
				dt = 1.0 / tickRate
			}
			state, stale := h.advance(now, dt)
			for _, viewerID := range stale {
				h.Disconnect(viewerID, "heartbeat timeout")
			}
			h.broadcast(state)
		}
	}
}

// advance steps the world one tick and assembles the broadcast payload under
// the lock. Stale viewers are reported, not dropped, so the caller can
// disconnect them without re-entering the lock.
func (h *Hub) advance(now time.Time, dt float64) (stateMessage, []string) {
	h.mu.Lock()

	h.world.Step(context.Background(), now, dt)

	state := stateMessage{
		Type:        "state",
		Tick:        h.world.Tick(),
		ServerTime:  now.UnixMilli(),
		Ships:       h.world.SnapshotShips(),
		Turrets:     h.world.SnapshotTurrets(),
		Shots:       h.world.SnapshotShots(),
		Predictions: h.world.SnapshotPredictions(),
	}

	stale := make([]string, 0)
	for id, viewer := range h.viewers {
		if now.Sub(viewer.lastHeartbeat) > disconnectAfter {
			stale = append(stale, id)
		}
	}
	h.mu.Unlock()

	h.appendJournal(now, state)
	return state, stale
}

func (h *Hub) appendJournal(now time.Time, state stateMessage) {
	if h.journal == nil {
		return
	}

	record := journal.Record{
		Tick:  state.Tick,
		Time:  now.UTC(),
		Ships: make([]journal.ShipRecord, 0, len(state.Ships)),
	}
	for _, ship := range state.Ships {
		record.Ships = append(record.Ships, journal.ShipRecord{
			ID:       ship.ID,
			Behavior: ship.Behavior,
			Faction:  ship.Faction,
			X:        ship.X,
			Y:        ship.Y,
			VX:       ship.VX,
			VY:       ship.VY,
		})
	}
	for _, prediction := range state.Predictions {
		samples := make([]journal.SampleRecord, 0, len(prediction.Samples))
		for _, sample := range prediction.Samples {
			samples = append(samples, journal.SampleRecord{X: sample.X, Y: sample.Y, Confidence: sample.Confidence})
		}
		record.Predictions = append(record.Predictions, journal.PredictionRecord{
			ShipID:         prediction.ShipID,
			Behavior:       prediction.Behavior,
			EffectiveRange: prediction.EffectiveRange,
			Samples:        samples,
		})
	}

	if err := h.journal.Append(record); err != nil {
		h.logger.Printf("journal append failed at tick %d: %v", state.Tick, err)
	}
}

func (h *Hub) broadcast(state stateMessage) {
	data, err := json.Marshal(state)
	if err != nil {
		h.logger.Printf("failed to marshal state message: %v", err)
		return
	}

	h.mu.Lock()
	subs := make(map[string]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		if err := sub.write(websocket.TextMessage, data); err != nil {
			h.logger.Printf("failed to send state to %s: %v", id, err)
			h.Disconnect(id, "write failure")
		}
	}
	h.metrics.Add("network.broadcasts", 1)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleJoin implements POST /join.
func (h *Hub) HandleJoin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.Join()); err != nil {
		h.logger.Printf("failed to encode join response: %v", err)
	}
}

// HandleWS implements GET /ws?id=<viewer>.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	viewerID := r.URL.Query().Get("id")
	if viewerID == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade failed: %v", err)
		return
	}

	sub, ok := h.Subscribe(viewerID, conn)
	if !ok {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "unknown viewer"))
		conn.Close()
		return
	}

	go h.readLoop(viewerID, sub)
}

func (h *Hub) readLoop(viewerID string, sub *subscriber) {
	defer h.Disconnect(viewerID, "read loop ended")

	for {
		_, data, err := sub.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Printf("malformed client message from %s: %v", viewerID, err)
			continue
		}

		switch msg.Type {
		case "heartbeat":
			now := time.Now()
			rtt, ok := h.UpdateHeartbeat(viewerID, now, msg.SentAt)
			if !ok {
				return
			}
			reply := heartbeatMessage{
				Type:       "heartbeat",
				ServerTime: now.UnixMilli(),
				ClientTime: msg.SentAt,
				RTTMillis:  rtt.Milliseconds(),
			}
			payload, err := json.Marshal(reply)
			if err != nil {
				continue
			}
			if err := sub.write(websocket.TextMessage, payload); err != nil {
				return
			}
		default:
			// Viewers are spectators; anything else is ignored.
		}
	}
}
