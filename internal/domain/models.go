package domain

import "time"

// QuestionKind selects how a question's answers are judged.
type QuestionKind string

const (
	// KindSingle expects exactly one selected option.
	KindSingle QuestionKind = "single"
	// KindMultiple expects the selected set to match the correct set exactly.
	KindMultiple QuestionKind = "multiple"
)

// Question is a single scorable prompt. CorrectAnswers holds indices into
// Options and is always non-empty with in-range values. Questions are owned
// by their parent quiz and are not edited after creation.
type Question struct {
	ID             string       `json:"id"`
	Text           string       `json:"text"`
	Points         int          `json:"points"`
	Options        []string     `json:"options"`
	Kind           QuestionKind `json:"type"`
	CorrectAnswers []int        `json:"correctAnswers"`
}

// Quiz is an ordered collection of questions owned by a creator.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatorID   string     `json:"creatorId"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Answer is the scoring input for one question: which option indices the
// user picked and how long they spent, in seconds.
type Answer struct {
	QuestionID      string  `json:"questionId"`
	SelectedAnswers []int   `json:"selectedAnswers"`
	TimeTaken       float64 `json:"timeTaken"`
}

// QuizSubmission is one user's completed attempt at a quiz. Submissions are
// append-only and never mutated after creation.
type QuizSubmission struct {
	ID          string    `json:"id"`
	QuizID      string    `json:"quizId"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	Score       int       `json:"score"`
	TimeTaken   float64   `json:"timeTaken"` // seconds
	SubmittedAt time.Time `json:"submittedAt"`
}

// RankedSubmission is a submission with its 1-based leaderboard position.
type RankedSubmission struct {
	QuizSubmission
	Rank int `json:"rank"`
}

// QuizPage is one page of a filtered quiz listing. Total counts all matches
// before pagination.
type QuizPage struct {
	Quizzes    []Quiz `json:"quizzes"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
}
