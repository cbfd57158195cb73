package scheduler

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
)

// DefaultScheduleTTL bounds how long a cached month may answer reads
// before storage is consulted again.
const DefaultScheduleTTL = 60 * time.Second

type CacheKey struct {
	Year  int
	Month time.Month
}

type cacheEntry struct {
	entries   []models.ScheduleEntry
	etag      string
	fetchedAt time.Time
}

// MonthCache holds the most recently generated or fetched months with
// their content fingerprints. It performs no background expiry; callers
// drive invalidation on every external mutation. Entries are
// process-local and advisory; storage remains the authority.
type MonthCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[CacheKey]cacheEntry
}

func NewMonthCache(ttl time.Duration) *MonthCache {
	return &MonthCache{ttl: ttl, entries: make(map[CacheKey]cacheEntry)}
}

// Get returns the cached month when it is still within the TTL.
func (c *MonthCache) Get(key CacheKey, now time.Time) ([]models.ScheduleEntry, string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || now.Sub(entry.fetchedAt) >= c.ttl {
		return nil, "", false
	}
	return entry.entries, entry.etag, true
}

func (c *MonthCache) Put(key CacheKey, entries []models.ScheduleEntry, etag string, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{entries: entries, etag: etag, fetchedAt: now}
}

func (c *MonthCache) Invalidate(key CacheKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *MonthCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[CacheKey]cacheEntry)
}

// ComputeETag fingerprints a month's serialized content. Only dates and
// assignments participate, so an untouched roster keeps its fingerprint
// across regenerations. Entries must arrive canonically ordered (by
// date, assignments by employee name) so equal content always hashes
// equally.
func ComputeETag(entries []models.ScheduleEntry) (string, error) {
	type dayContent struct {
		Date        string              `json:"date"`
		Assignments []models.Assignment `json:"assignments"`
	}
	content := make([]dayContent, len(entries))
	for i, e := range entries {
		content[i] = dayContent{Date: e.Date, Assignments: e.Assignments}
	}

	payload, err := json.Marshal(content)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])[:16], nil
}
