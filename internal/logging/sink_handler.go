package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	flushInterval = 5 * time.Second
	flushSize     = 50
)

// LogWriter persists batches of system log records.
type LogWriter interface {
	SaveSystemLogs(ctx context.Context, logs []models.SystemLog) error
}

// SinkHandler is an slog.Handler that batches ERROR+ records into the
// system_logs table.
type SinkHandler struct {
	core  *sinkCore
	attrs []slog.Attr
	group string
}

type sinkCore struct {
	writer LogWriter
	mu     sync.Mutex
	buffer []models.SystemLog
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

func NewSinkHandler(writer LogWriter) *SinkHandler {
	core := &sinkCore{
		writer: writer,
		buffer: make([]models.SystemLog, 0, flushSize),
		ticker: time.NewTicker(flushInterval),
		done:   make(chan struct{}),
	}
	core.wg.Add(1)
	go core.flushLoop()
	return &SinkHandler{core: core}
}

func (c *sinkCore) flushLoop() {
	defer c.wg.Done()
	for {
		select {
		case <-c.ticker.C:
			c.flush()
		case <-c.done:
			c.flush()
			return
		}
	}
}

func (c *sinkCore) flush() {
	c.mu.Lock()
	if len(c.buffer) == 0 {
		c.mu.Unlock()
		return
	}
	batch := c.buffer
	c.buffer = make([]models.SystemLog, 0, flushSize)
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.writer.SaveSystemLogs(ctx, batch); err != nil {
		// ERROR would re-enter this handler
		slog.Warn("failed to flush system logs", "error", err, "count", len(batch))
	}
}

// Stop flushes pending records and ends the background loop. Safe to call
// more than once.
func (h *SinkHandler) Stop() {
	h.core.once.Do(func() {
		h.core.ticker.Stop()
		close(h.core.done)
	})
	h.core.wg.Wait()
}

// Enabled only handles ERROR and above.
func (h *SinkHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *SinkHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time.UTC(),
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	for _, a := range h.attrs {
		applyAttr(&entry, extra, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		applyAttr(&entry, extra, a)
		return true
	})

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.core.mu.Lock()
	h.core.buffer = append(h.core.buffer, entry)
	needFlush := len(h.core.buffer) >= flushSize
	h.core.mu.Unlock()

	if needFlush {
		go h.core.flush()
	}
	return nil
}

// applyAttr maps well-known keys onto columns. Grouped keys contain a dot and
// always land in Extra.
func applyAttr(entry *models.SystemLog, extra map[string]interface{}, a slog.Attr) {
	switch a.Key {
	case "request_id":
		entry.RequestID = a.Value.String()
	case "user_id":
		s := a.Value.String()
		entry.UserID = &s
	case "method":
		entry.Method = a.Value.String()
	case "path":
		entry.Path = a.Value.String()
	case "status":
		entry.Status = int(intValue(a.Value))
	case "error":
		entry.Error = a.Value.String()
	case "latency_ms":
		entry.LatencyMs = int(intValue(a.Value))
	default:
		v := a.Value.Resolve().Any()
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		extra[a.Key] = v
	}
}

func intValue(v slog.Value) int64 {
	switch v.Kind() {
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return int64(v.Uint64())
	case slog.KindFloat64:
		return int64(math.Round(v.Float64()))
	case slog.KindDuration:
		return v.Duration().Milliseconds()
	default:
		n, _ := strconv.ParseInt(v.String(), 10, 64)
		return n
	}
}

func (h *SinkHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return &next
}

func (h *SinkHandler) WithGroup(name string) slog.Handler {
	next := *h
	if next.group != "" {
		name = next.group + "." + name
	}
	next.group = name
	return &next
}
