package models

import (
	"time"
)

// Question is a catalog entry used to seed interview prompts. Hints are
// stored as a JSON-serialized string slice.
type Question struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Category      string    `gorm:"not null;index" json:"category"`
	Difficulty    string    `gorm:"not null;index" json:"difficulty"`
	QuestionText  string    `gorm:"type:text;not null" json:"questionText"`
	ExampleInput  string    `gorm:"type:text" json:"exampleInput,omitempty"`
	ExampleOutput string    `gorm:"type:text" json:"exampleOutput,omitempty"`
	SolutionCode  string    `gorm:"type:text" json:"solutionCode,omitempty"`
	Hints         []string  `gorm:"serializer:json" json:"hints,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
