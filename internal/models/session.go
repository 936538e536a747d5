package models

import (
	"time"
)

// InterviewSession is one interview owned by a user. ID, UserID, SessionType
// and CreatedAt are fixed at creation; Attempts is append-only and TotalScore
// is always the sum of the attempt scores.
type InterviewSession struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;index" json:"userId"`
	SessionType string    `gorm:"not null" json:"sessionType"`
	Attempts    []Attempt `gorm:"foreignKey:SessionID;references:ID" json:"questionsAsked"`
	TotalScore  float64   `gorm:"not null;default:0" json:"totalScore"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Attempt is one scored question/answer exchange within a session.
type Attempt struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	SessionID  string    `gorm:"not null;index" json:"-"`
	QuestionID *string   `json:"questionId,omitempty"`
	UserAnswer string    `gorm:"type:text" json:"userAnswer"`
	AIFeedback string    `gorm:"type:text" json:"aiFeedback"`
	Score      float64   `gorm:"not null" json:"score"`
	CreatedAt  time.Time `json:"-"`
}

// ValidScore reports whether the attempt score is on the 0-10 scale.
func (a *Attempt) ValidScore() bool {
	return a.Score >= MinScore && a.Score <= MaxScore
}

// ChatMessage is a single turn of client-supplied conversation history.
// Role is RoleCandidate or RoleInterviewer.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
