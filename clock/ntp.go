package clock

import (
	"sync"
	"time"

	"github.com/beevik/ntp"
	"github.com/rs/zerolog/log"
)

const (
	ntpBackoffInitial = 5 * time.Second
	ntpBackoffMax     = 5 * time.Minute
)

// NTP is the host clock corrected by an offset queried periodically from
// an NTP server. A failed sync keeps the last known offset and retries
// with exponential backoff.
type NTP struct {
	server       string
	syncInterval time.Duration

	mu          sync.Mutex
	offset      time.Duration
	lastSync    time.Time
	lastAttempt time.Time
	lastError   error
	backoff     time.Duration
	syncing     bool

	// query is ntp.Query; replaced in tests.
	query func(host string) (*ntp.Response, error)
}

// NewNTP creates an NTP clock and performs the first sync. A failed
// first sync is not fatal: the offset stays zero until a later sync.
func NewNTP(server string, syncInterval time.Duration) *NTP {
	return newNTP(server, syncInterval, ntp.Query)
}

func newNTP(server string, syncInterval time.Duration, query func(string) (*ntp.Response, error)) *NTP {
	c := &NTP{server: server, syncInterval: syncInterval, query: query}
	c.lastAttempt = time.Now()
	resp, err := c.query(c.server)
	c.record(resp, err)
	return c
}

// Now returns the host time corrected by the last known offset. The
// caller that finds a sync due performs it without holding the lock, so
// concurrent callers keep using the previous offset meanwhile.
func (c *NTP) Now() time.Time {
	c.mu.Lock()
	due := c.due()
	if due {
		c.syncing = true
		c.lastAttempt = time.Now()
	}
	offset := c.offset
	c.mu.Unlock()

	if due {
		resp, err := c.query(c.server)
		c.mu.Lock()
		c.record(resp, err)
		offset = c.offset
		c.mu.Unlock()
	}
	return time.Now().Add(offset)
}

// Health returns the current offset, the time of the last successful
// sync and the last sync error, if any.
func (c *NTP) Health() (offset time.Duration, lastSync time.Time, lastError error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset, c.lastSync, c.lastError
}

// due reports whether a sync should start. c.mu must be held.
func (c *NTP) due() bool {
	if c.syncing {
		return false
	}
	effective := c.syncInterval
	if c.backoff > 0 {
		effective = c.backoff
	}
	return time.Since(c.lastAttempt) >= effective
}

// record applies the outcome of a query. c.mu must be held.
func (c *NTP) record(resp *ntp.Response, err error) {
	c.syncing = false
	if err != nil {
		c.lastError = err
		switch {
		case c.backoff == 0:
			c.backoff = ntpBackoffInitial
		case c.backoff < ntpBackoffMax:
			c.backoff = min(c.backoff*2, ntpBackoffMax)
		}
		log.Warn().Err(err).Str("server", c.server).Dur("retryIn", c.backoff).Msg("ntp sync failed")
		return
	}
	c.offset = resp.ClockOffset
	c.lastSync = c.lastAttempt
	c.lastError = nil
	c.backoff = 0
	log.Debug().Str("server", c.server).Dur("offset", c.offset).Msg("ntp synced")
}
