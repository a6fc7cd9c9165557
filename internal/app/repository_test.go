package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizboard-service/internal/app"
	"quizboard-service/internal/domain"
	"quizboard-service/internal/infra/memory"
)

func TestCreateQuizAndLookup(t *testing.T) {
	repo := newTestRepo(t)

	quiz, err := repo.CreateQuiz(context.Background(), "Geography", "Capitals of the world", "creator-1")
	require.NoError(t, err)
	assert.NotEmpty(t, quiz.ID)
	assert.Empty(t, quiz.Questions)
	assert.False(t, quiz.CreatedAt.IsZero())

	found, ok := repo.GetQuizByID(quiz.ID)
	require.True(t, ok)
	assert.Equal(t, quiz.Title, found.Title)

	_, ok = repo.GetQuizByID("missing")
	assert.False(t, ok)
}

func TestAddQuestionPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	quiz, err := repo.CreateQuiz(ctx, "Ordered", "", "creator-1")
	require.NoError(t, err)

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		spec := singleChoice(10)
		spec.Text = text
		ok, err := repo.AddQuestion(ctx, quiz.ID, spec)
		require.NoError(t, err)
		require.True(t, ok)
	}

	found, ok := repo.GetQuizByID(quiz.ID)
	require.True(t, ok)
	require.Len(t, found.Questions, 3)
	for i, text := range texts {
		assert.Equal(t, text, found.Questions[i].Text)
	}
	assert.NotEqual(t, found.Questions[0].ID, found.Questions[1].ID)
}

func TestAddQuestionUnknownQuizIsNoOp(t *testing.T) {
	repo := newTestRepo(t)

	ok, err := repo.AddQuestion(context.Background(), "missing", singleChoice(10))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubmitUnknownQuizAppendsNothing(t *testing.T) {
	ctx := context.Background()
	gateway := memory.NewGateway()
	repo := app.NewRepository(gateway)
	require.NoError(t, repo.Load(ctx))

	_, err := repo.SubmitQuiz(ctx, "missing", "u1", "Alice", nil)
	require.ErrorIs(t, err, domain.ErrQuizNotFound)

	assert.Empty(t, repo.Rankings("missing"))
	_, ok, err := gateway.Load(ctx, app.SlotSubmissions)
	require.NoError(t, err)
	assert.False(t, ok, "nothing should have been persisted")
}

func TestCollectionsSurviveReload(t *testing.T) {
	ctx := context.Background()
	gateway := memory.NewGateway()
	createdAt := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	repo := app.NewRepositoryWithClock(gateway, func() time.Time { return createdAt })
	require.NoError(t, repo.Load(ctx))

	quiz, err := repo.CreateQuiz(ctx, "Persistent", "survives restarts", "creator-1")
	require.NoError(t, err)
	ok, err := repo.AddQuestion(ctx, quiz.ID, singleChoice(10))
	require.NoError(t, err)
	require.True(t, ok)

	created, _ := repo.GetQuizByID(quiz.ID)
	_, err = repo.SubmitQuiz(ctx, quiz.ID, "u1", "Alice", []domain.Answer{
		{QuestionID: created.Questions[0].ID, SelectedAnswers: []int{1}, TimeTaken: 3},
	})
	require.NoError(t, err)

	reloaded := app.NewRepository(gateway)
	require.NoError(t, reloaded.Load(ctx))

	found, ok := reloaded.GetQuizByID(quiz.ID)
	require.True(t, ok)
	assert.True(t, found.CreatedAt.Equal(createdAt), "timestamps must survive serialization")
	require.Len(t, found.Questions, 1)
	assert.Equal(t, []int{1}, found.Questions[0].CorrectAnswers)

	ranked := reloaded.Rankings(quiz.ID)
	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].SubmittedAt.Equal(createdAt))
}

func TestLoadRejectsCorruptSlot(t *testing.T) {
	ctx := context.Background()
	gateway := memory.NewGateway()
	require.NoError(t, gateway.Save(ctx, app.SlotQuizzes, []byte("not json")))

	repo := app.NewRepository(gateway)
	err := repo.Load(ctx)
	require.Error(t, err)
}

type failingGateway struct {
	app.Gateway
	err error
}

func (g failingGateway) Save(context.Context, string, []byte) error { return g.err }

func TestGatewayFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend down")
	repo := app.NewRepository(failingGateway{Gateway: memory.NewGateway(), err: boom})
	require.NoError(t, repo.Load(ctx))

	_, err := repo.CreateQuiz(ctx, "doomed", "", "creator-1")
	require.ErrorIs(t, err, boom)
}
