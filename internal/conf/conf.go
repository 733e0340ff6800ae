package conf

import "time"

// Bootstrap is the root configuration, scanned from configs/config.yaml.
type Bootstrap struct {
	Server     *Server     `json:"server"`
	Data       *Data       `json:"data"`
	Engagement *Engagement `json:"engagement"`
	Outbox     *Outbox     `json:"outbox"`
}

// Server configures the thin HTTP front of the engine.
type Server struct {
	Http *HTTP `json:"http"`
}

// HTTP configures the HTTP listener.
type HTTP struct {
	Network   string `json:"network"`
	Addr      string `json:"addr"`
	TimeoutMs int64  `json:"timeout_ms"`
}

// Timeout returns the configured request timeout, defaulting to 1s.
func (h *HTTP) Timeout() time.Duration {
	if h == nil || h.TimeoutMs <= 0 {
		return time.Second
	}
	return time.Duration(h.TimeoutMs) * time.Millisecond
}

// Data configures storage backends.
type Data struct {
	Database *Database `json:"database"`
	Redis    *Redis    `json:"redis"`
}

// Database configures the SQL store backing the event log and rollups.
type Database struct {
	// Driver is "sqlite3" or "postgres".
	Driver string `json:"driver"`
	Source string `json:"source"`
}

// Redis configures the optional rollup cache. An empty Addr disables it.
type Redis struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// Engagement configures the scoring weights applied per distinct reacting
// and commenting user.
type Engagement struct {
	ReactionWeight float64 `json:"reaction_weight"`
	CommentWeight  float64 `json:"comment_weight"`
}

// Outbox configures the outbox forwarder.
type Outbox struct {
	PollIntervalMs int64 `json:"poll_interval_ms"`
	BatchSize      int   `json:"batch_size"`
}

// PollInterval returns the configured poll interval, defaulting to 100ms.
func (o *Outbox) PollInterval() time.Duration {
	if o == nil || o.PollIntervalMs <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(o.PollIntervalMs) * time.Millisecond
}

// Batch returns the configured batch size, defaulting to 100.
func (o *Outbox) Batch() int {
	if o == nil || o.BatchSize <= 0 {
		return 100
	}
	return o.BatchSize
}
