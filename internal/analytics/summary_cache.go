package analytics

import (
	"sync"
	"time"

	"interviewpro/api/internal/models"
)

// SummaryCache keeps recently computed analytics summaries in memory with a
// TTL to avoid recomputing them on every dashboard load
type SummaryCache struct {
	cache map[string]*cacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

type cacheEntry struct {
	summary   *models.AnalyticsResponse
	expiresAt time.Time
}

// NewSummaryCache creates a new summary cache with the specified TTL
func NewSummaryCache(ttl time.Duration) *SummaryCache {
	sc := &SummaryCache{
		cache: make(map[string]*cacheEntry),
		ttl:   ttl,
	}

	// Start background cleanup goroutine
	go sc.cleanupLoop()

	return sc
}

// Set stores a summary with TTL. A zero or negative TTL disables caching.
func (sc *SummaryCache) Set(userID string, summary *models.AnalyticsResponse) {
	if sc.ttl <= 0 {
		return
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.cache[userID] = &cacheEntry{
		summary:   summary,
		expiresAt: time.Now().Add(sc.ttl),
	}
}

// Get retrieves a summary if it exists and hasn't expired
func (sc *SummaryCache) Get(userID string) (*models.AnalyticsResponse, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	entry, exists := sc.cache[userID]
	if !exists {
		return nil, false
	}

	// Check if expired
	if time.Now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.summary, true
}

// Delete removes a cached summary
func (sc *SummaryCache) Delete(userID string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	delete(sc.cache, userID)
}

// cleanupLoop runs periodically to remove expired entries
func (sc *SummaryCache) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		sc.cleanup()
	}
}

// cleanup removes expired entries from cache
func (sc *SummaryCache) cleanup() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	now := time.Now()
	for userID, entry := range sc.cache {
		if now.After(entry.expiresAt) {
			delete(sc.cache, userID)
		}
	}
}

// Size returns the current number of cached summaries
func (sc *SummaryCache) Size() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	return len(sc.cache)
}
