package cli

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"quizboard-service/internal/app"
	"quizboard-service/internal/config"
	"quizboard-service/internal/domain"
	"quizboard-service/internal/logging"
)

var seedTitles = []string{
	"Basic Mathematics Quiz", "World History Events", "Natural Science Trivia",
	"Classic Literature", "Olympic Sports Knowledge", "World Geography",
	"Classical Music Basics", "Western Art History", "Computer Fundamentals",
	"Everyday English Vocabulary",
}

var seedDescriptions = []string{
	"Algebra, geometry, and other math foundations",
	"Key historical events from antiquity to today",
	"Physics, chemistry, and biology basics",
	"Famous works and their authors",
	"Olympic disciplines and records",
	"Countries, capitals, and landmarks",
	"Musical eras and their composers",
	"Art movements from the Renaissance onward",
	"How computers work, from bits to programs",
	"Core vocabulary for daily conversation",
}

// NewSeedCmd fills the configured store with demo quizzes and submissions.
func NewSeedCmd(configPath *string) *cobra.Command {
	var creatorID string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate demo quizzes and submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath, creatorID)
		},
	}
	cmd.Flags().StringVar(&creatorID, "creator", "default-user-123", "creator ID to own the seeded quizzes")
	return cmd
}

func runSeed(ctx context.Context, configPath, creatorID string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	slog.SetDefault(logging.New(os.Stdout, cfg.Log.Level))

	gateway, cleanup, err := buildGateway(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	repo := app.NewRepository(gateway)
	if err := repo.Load(ctx); err != nil {
		return err
	}
	return seedRepository(ctx, repo, creatorID)
}

// seedRepository creates the demo quizzes through the public repository API,
// so every seeded submission carries a genuinely computed score.
func seedRepository(ctx context.Context, repo *app.Repository, creatorID string) error {
	for i := range seedTitles {
		quiz, err := repo.CreateQuiz(ctx, seedTitles[i], seedDescriptions[i], creatorID)
		if err != nil {
			return err
		}

		questionCount := rand.Intn(3) + 2
		for j := 0; j < questionCount; j++ {
			ok, err := repo.AddQuestion(ctx, quiz.ID, app.QuestionSpec{
				Text:           fmt.Sprintf("Question %d: a quick check on %s", j+1, seedTitles[i]),
				Points:         10,
				Options:        []string{"Option A", "Option B", "Option C", "Option D"},
				Kind:           domain.KindSingle,
				CorrectAnswers: []int{rand.Intn(4)},
			})
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("quiz %s vanished while seeding", quiz.ID)
			}
		}

		seeded, _ := repo.GetQuizByID(quiz.ID)
		submissionCount := rand.Intn(11) + 5
		for k := 0; k < submissionCount; k++ {
			if _, err := repo.SubmitQuiz(ctx, quiz.ID, fmt.Sprintf("user-%d", rand.Intn(1000)),
				fmt.Sprintf("Player %d", k+1), randomAnswers(seeded)); err != nil {
				return err
			}
		}
		slog.Info("seeded quiz", "title", quiz.Title, "questions", questionCount, "submissions", submissionCount)
	}
	return nil
}

func randomAnswers(quiz domain.Quiz) []domain.Answer {
	answers := make([]domain.Answer, 0, len(quiz.Questions))
	for _, question := range quiz.Questions {
		selected := rand.Intn(len(question.Options))
		// Bias towards correct answers so leaderboards look lived-in.
		if rand.Float64() < 0.7 {
			selected = question.CorrectAnswers[0]
		}
		answers = append(answers, domain.Answer{
			QuestionID:      question.ID,
			SelectedAnswers: []int{selected},
			TimeTaken:       float64(rand.Intn(28) + 2),
		})
	}
	return answers
}
