package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"interviewpro/api/internal/models"
	"interviewpro/api/internal/store"
)

// SessionReportJob periodically exports summaries of recent sessions as
// JSONL files for offline analysis. Read-only over the session store.
type SessionReportJob struct {
	sessions store.SessionStore
	config   *ReportConfig
	cron     *cron.Cron

	mu      sync.Mutex
	lastRun time.Time
}

// ReportConfig contains configuration for the report job
type ReportConfig struct {
	Schedule  string // Cron schedule (e.g., "0 3 * * *" for 3 AM daily)
	ExportDir string // Directory to store exported files
	Enabled   bool   // Whether to run exports
}

// SessionReportLine is one exported JSONL record.
type SessionReportLine struct {
	SessionID    string    `json:"session_id"`
	UserID       string    `json:"user_id"`
	SessionType  string    `json:"session_type"`
	AttemptCount int       `json:"attempt_count"`
	TotalScore   float64   `json:"total_score"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewSessionReportJob creates a new report job
func NewSessionReportJob(sessions store.SessionStore, config *ReportConfig) *SessionReportJob {
	return &SessionReportJob{
		sessions: sessions,
		config:   config,
		cron:     cron.New(),
		lastRun:  time.Now(),
	}
}

// Start begins the scheduled report job
func (srj *SessionReportJob) Start() error {
	if !srj.config.Enabled {
		log.Println("Session report export is disabled, skipping scheduler")
		return nil
	}

	log.Printf("Starting session report exporter with schedule: %s", srj.config.Schedule)

	_, err := srj.cron.AddFunc(srj.config.Schedule, func() {
		if err := srj.RunExport(context.Background()); err != nil {
			log.Printf("Report export job failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule report job: %w", err)
	}

	srj.cron.Start()
	log.Println("Session report exporter started successfully")

	return nil
}

// Stop stops the scheduled report job
func (srj *SessionReportJob) Stop() {
	if srj.cron != nil {
		srj.cron.Stop()
		log.Println("Session report exporter stopped")
	}
}

// RunExport performs a single export run covering sessions created since the
// previous run
func (srj *SessionReportJob) RunExport(ctx context.Context) error {
	srj.mu.Lock()
	since := srj.lastRun
	runStart := time.Now()
	srj.mu.Unlock()

	log.Printf("Starting session report export (since %v)...", since)

	sessions, err := srj.sessions.ListCreatedSince(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		log.Println("No new sessions to report")
		srj.markRun(runStart)
		return nil
	}

	data, err := srj.buildJSONL(sessions)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(srj.config.ExportDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	timestamp := runStart.Format("20060102_150405")
	filename := fmt.Sprintf("session_report_%s.jsonl", timestamp)
	path := filepath.Join(srj.config.ExportDir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	log.Printf("Exported %d session summaries to %s", len(sessions), path)
	srj.markRun(runStart)

	return nil
}

func (srj *SessionReportJob) markRun(at time.Time) {
	srj.mu.Lock()
	srj.lastRun = at
	srj.mu.Unlock()
}

func (srj *SessionReportJob) buildJSONL(sessions []models.InterviewSession) ([]byte, error) {
	var out []byte
	for i, session := range sessions {
		line := SessionReportLine{
			SessionID:    session.ID,
			UserID:       session.UserID,
			SessionType:  session.SessionType,
			AttemptCount: len(session.Attempts),
			TotalScore:   session.TotalScore,
			CreatedAt:    session.CreatedAt,
		}
		jsonBytes, err := json.Marshal(line)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal report line: %w", err)
		}
		out = append(out, jsonBytes...)
		if i < len(sessions)-1 {
			out = append(out, '\n')
		}
	}
	return out, nil
}
