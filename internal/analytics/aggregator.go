package analytics

import (
	"context"
	"time"

	"interviewpro/api/internal/models"
	"interviewpro/api/internal/store"
)

// number of sessions charted in the recent trend
const trendSize = 10

// Aggregator computes per-user summary statistics. Read-only over the
// session store; summaries are cached briefly to keep the dashboard cheap.
type Aggregator struct {
	sessions store.SessionStore
	cache    *SummaryCache
}

func NewAggregator(sessions store.SessionStore, cacheTTL time.Duration) *Aggregator {
	return &Aggregator{
		sessions: sessions,
		cache:    NewSummaryCache(cacheTTL),
	}
}

// Summarize reduces a user's sessions to count, average and recent trend.
// Sessions without attempts are excluded from the average so unfinished
// interviews do not drag it down.
func (a *Aggregator) Summarize(ctx context.Context, userID string) (*models.AnalyticsResponse, error) {
	if cached, ok := a.cache.Get(userID); ok {
		return cached, nil
	}

	sessions, err := a.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var scoredCount int
	var scoredTotal float64
	for _, session := range sessions {
		if len(session.Attempts) == 0 {
			continue
		}
		scoredCount++
		scoredTotal += session.TotalScore
	}

	averageScore := 0.0
	if scoredCount > 0 {
		averageScore = scoredTotal / float64(scoredCount)
	}

	// last N sessions, oldest first (ListByUser is already created_at ASC)
	recent := sessions
	if len(recent) > trendSize {
		recent = recent[len(recent)-trendSize:]
	}

	trend := make([]models.TrendPoint, 0, len(recent))
	for _, session := range recent {
		trend = append(trend, models.TrendPoint{
			Label: session.CreatedAt.Format("2006-01-02"),
			Score: session.TotalScore,
			Type:  session.SessionType,
		})
	}

	summary := &models.AnalyticsResponse{
		TotalSessions: len(sessions),
		AverageScore:  averageScore,
		Sessions:      trend,
	}
	a.cache.Set(userID, summary)

	return summary, nil
}

// Invalidate drops the user's cached summary so the next Summarize reflects
// newly recorded attempts instead of waiting out the TTL.
func (a *Aggregator) Invalidate(userID string) {
	a.cache.Delete(userID)
}
