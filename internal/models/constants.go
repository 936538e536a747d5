package models

// contains all supported interview categories (in lowercase)
var SupportedCategories = map[string]bool{
	"dsa":           true,
	"javascript":    true,
	"mern":          true,
	"system design": true,
}

// contains all valid difficulty levels (in lowercase)
var ValidDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// session types recorded on InterviewSession.SessionType
const (
	SessionTypeMockInterview  = "MockInterview"
	SessionTypeCodingPractice = "CodingPractice"
)

var ValidSessionTypes = map[string]bool{
	SessionTypeMockInterview:  true,
	SessionTypeCodingPractice: true,
}

// conversation roles as seen on the wire; provider adapters map these to
// their own role names
const (
	RoleCandidate   = "candidate"
	RoleInterviewer = "interviewer"
)

// attempt scores are graded on a fixed 0-10 scale
const (
	MinScore = 0
	MaxScore = 10
)

func SupportedCategoriesList() []string {
	return []string{"dsa", "javascript", "mern", "system design"}
}

func ValidDifficultiesList() []string {
	return []string{"easy", "medium", "hard"}
}
