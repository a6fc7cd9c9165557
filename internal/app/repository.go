package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"quizboard-service/internal/domain"
)

// QuestionSpec carries the caller-supplied fields of a new question; the
// repository allocates the ID.
type QuestionSpec struct {
	Text           string
	Points         int
	Options        []string
	Kind           domain.QuestionKind
	CorrectAnswers []int
}

// Repository owns the in-memory quiz and submission collections and writes
// them through to the gateway after every mutation. All mutating operations
// are serialized behind a single mutex so append-then-persist-whole-collection
// never loses updates under concurrent callers.
type Repository struct {
	gateway Gateway
	clock   func() time.Time
	newID   func() string

	mu          sync.RWMutex
	quizzes     []domain.Quiz
	submissions []domain.QuizSubmission
	watchers    map[string]map[chan []domain.RankedSubmission]struct{}
}

func NewRepository(gateway Gateway) *Repository {
	return &Repository{
		gateway:  gateway,
		clock:    time.Now,
		newID:    uuid.NewString,
		watchers: make(map[string]map[chan []domain.RankedSubmission]struct{}),
	}
}

// NewRepositoryWithClock is test-only for deterministic timestamps.
func NewRepositoryWithClock(gateway Gateway, now func() time.Time) *Repository {
	r := NewRepository(gateway)
	r.clock = now
	return r
}

// Load reads both collections from the gateway. Slots that were never written
// yield empty collections. Timestamp fields are revived by time.Time's
// RFC 3339 JSON codec during decoding.
func (r *Repository) Load(ctx context.Context) error {
	var (
		quizzes     []domain.Quiz
		submissions []domain.QuizSubmission
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.loadSlot(ctx, SlotQuizzes, &quizzes) })
	g.Go(func() error { return r.loadSlot(ctx, SlotSubmissions, &submissions) })
	if err := g.Wait(); err != nil {
		return err
	}

	r.mu.Lock()
	r.quizzes = quizzes
	r.submissions = submissions
	r.mu.Unlock()
	return nil
}

func (r *Repository) loadSlot(ctx context.Context, slot string, out any) error {
	data, ok, err := r.gateway.Load(ctx, slot)
	if err != nil {
		return fmt.Errorf("load %s: %w", slot, err)
	}
	if !ok || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", slot, err)
	}
	return nil
}

// CreateQuiz allocates a new quiz with an empty question list and persists
// the quizzes collection. Title and description are stored as given.
func (r *Repository) CreateQuiz(ctx context.Context, title, description, creatorID string) (domain.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	quiz := domain.Quiz{
		ID:          r.newID(),
		Title:       title,
		Description: description,
		CreatorID:   creatorID,
		Questions:   []domain.Question{},
		CreatedAt:   r.clock(),
	}
	r.quizzes = append(r.quizzes, quiz)
	if err := r.persistQuizzesLocked(ctx); err != nil {
		return domain.Quiz{}, err
	}
	return quiz, nil
}

// AddQuestion appends a question to the quiz and persists. It returns false
// (and does nothing) when the quiz does not exist; the error return carries
// gateway failures only.
func (r *Repository) AddQuestion(ctx context.Context, quizID string, spec QuestionSpec) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.quizzes {
		if r.quizzes[i].ID == quizID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	question := domain.Question{
		ID:             r.newID(),
		Text:           spec.Text,
		Points:         spec.Points,
		Options:        spec.Options,
		Kind:           spec.Kind,
		CorrectAnswers: spec.CorrectAnswers,
	}
	r.quizzes[idx].Questions = append(r.quizzes[idx].Questions, question)
	if err := r.persistQuizzesLocked(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// GetQuizByID looks up a quiz. No side effects.
func (r *Repository) GetQuizByID(quizID string) (domain.Quiz, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findQuizLocked(quizID)
}

// SubmitQuiz scores the answers against the quiz, appends the resulting
// submission, persists, and notifies rankings watchers. It returns
// domain.ErrQuizNotFound without appending anything when the quiz does not
// exist. Answers referencing unknown question IDs are skipped silently.
func (r *Repository) SubmitQuiz(ctx context.Context, quizID, userID, userName string, answers []domain.Answer) (domain.QuizSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	quiz, ok := r.findQuizLocked(quizID)
	if !ok {
		return domain.QuizSubmission{}, domain.ErrQuizNotFound
	}

	score, elapsed := scoreAnswers(quiz, answers)
	submission := domain.QuizSubmission{
		ID:          r.newID(),
		QuizID:      quizID,
		UserID:      userID,
		UserName:    userName,
		Score:       score,
		TimeTaken:   elapsed,
		SubmittedAt: r.clock(),
	}
	r.submissions = append(r.submissions, submission)
	if err := r.persistSubmissionsLocked(ctx); err != nil {
		return domain.QuizSubmission{}, err
	}
	r.notifyLocked(quizID)
	return submission, nil
}

func (r *Repository) findQuizLocked(quizID string) (domain.Quiz, bool) {
	for i := range r.quizzes {
		if r.quizzes[i].ID == quizID {
			return r.quizzes[i], true
		}
	}
	return domain.Quiz{}, false
}

func (r *Repository) persistQuizzesLocked(ctx context.Context) error {
	data, err := json.Marshal(r.quizzes)
	if err != nil {
		return fmt.Errorf("encode %s: %w", SlotQuizzes, err)
	}
	if err := r.gateway.Save(ctx, SlotQuizzes, data); err != nil {
		return fmt.Errorf("save %s: %w", SlotQuizzes, err)
	}
	return nil
}

func (r *Repository) persistSubmissionsLocked(ctx context.Context) error {
	data, err := json.Marshal(r.submissions)
	if err != nil {
		return fmt.Errorf("encode %s: %w", SlotSubmissions, err)
	}
	if err := r.gateway.Save(ctx, SlotSubmissions, data); err != nil {
		return fmt.Errorf("save %s: %w", SlotSubmissions, err)
	}
	return nil
}
