package app

import (
	"math"

	"quizboard-service/internal/domain"
)

// scoreBaselineSeconds normalizes the time decay. It must stay at 30 to keep
// new scores comparable with historical ones.
const scoreBaselineSeconds = 30.0

// scoreAnswers computes the total score and elapsed time for a submission.
// Answers whose question ID does not resolve within the quiz are skipped and
// contribute neither score nor time. Correct answers earn
// round(points * (1 - min(timeTaken/30, 1))); wrong answers earn nothing but
// their time still counts.
func scoreAnswers(quiz domain.Quiz, answers []domain.Answer) (score int, elapsed float64) {
	for _, answer := range answers {
		question, ok := findQuestion(quiz, answer.QuestionID)
		if !ok {
			continue
		}
		elapsed += answer.TimeTaken
		if !isCorrect(question, answer.SelectedAnswers) {
			continue
		}
		ratio := answer.TimeTaken / scoreBaselineSeconds
		if ratio > 1 {
			ratio = 1
		}
		score += int(math.Round(float64(question.Points) * (1 - ratio)))
	}
	return score, elapsed
}

func findQuestion(quiz domain.Quiz, questionID string) (domain.Question, bool) {
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == questionID {
			return quiz.Questions[i], true
		}
	}
	return domain.Question{}, false
}

func isCorrect(question domain.Question, selected []int) bool {
	if question.Kind == domain.KindSingle {
		return len(selected) == 1 && containsIndex(question.CorrectAnswers, selected[0])
	}
	// Multiple choice: every correct option selected and nothing else.
	for _, correct := range question.CorrectAnswers {
		if !containsIndex(selected, correct) {
			return false
		}
	}
	for _, choice := range selected {
		if !containsIndex(question.CorrectAnswers, choice) {
			return false
		}
	}
	return true
}

func containsIndex(indices []int, want int) bool {
	for _, idx := range indices {
		if idx == want {
			return true
		}
	}
	return false
}
