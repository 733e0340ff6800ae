package conf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHTTPTimeoutDefaults(t *testing.T) {
	var nilHTTP *HTTP
	assert.Equal(t, time.Second, nilHTTP.Timeout())
	assert.Equal(t, time.Second, (&HTTP{}).Timeout())
	assert.Equal(t, 250*time.Millisecond, (&HTTP{TimeoutMs: 250}).Timeout())
}

func TestOutboxDefaults(t *testing.T) {
	var nilOutbox *Outbox
	assert.Equal(t, 100*time.Millisecond, nilOutbox.PollInterval())
	assert.Equal(t, 100, nilOutbox.Batch())

	o := &Outbox{PollIntervalMs: 50, BatchSize: 10}
	assert.Equal(t, 50*time.Millisecond, o.PollInterval())
	assert.Equal(t, 10, o.Batch())
}
