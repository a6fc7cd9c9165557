package app

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"quizboard-service/internal/domain"
)

// SortOrder enumerates the supported quiz listing orders. The zero value
// sorts by creation time, newest first.
type SortOrder int

const (
	SortByCreatedAt SortOrder = iota
	SortByTitle
	SortByQuestionCount
)

// DefaultPageSize matches the page size the quiz overview renders.
const DefaultPageSize = 6

// ListOptions controls filtering, ordering, and pagination of a user's
// quizzes. Page below 1 is clamped to 1 and PageSize below 1 to
// DefaultPageSize.
type ListOptions struct {
	Page     int
	PageSize int
	Search   string
	Sort     SortOrder
}

// Rankings returns the leaderboard for a quiz: submissions sorted by score
// descending, ties broken by elapsed time ascending, with 1-based positional
// ranks. Equal score and equal time keep submission order.
func (r *Repository) Rankings(quizID string) []domain.RankedSubmission {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rankingsLocked(quizID)
}

func (r *Repository) rankingsLocked(quizID string) []domain.RankedSubmission {
	ranked := make([]domain.RankedSubmission, 0)
	for _, submission := range r.submissions {
		if submission.QuizID == quizID {
			ranked = append(ranked, domain.RankedSubmission{QuizSubmission: submission})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].TimeTaken < ranked[j].TimeTaken
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// UserQuizzes lists quizzes created by userID: optional case-insensitive
// substring search over title and description, ordered per opts.Sort, then
// paginated. Total counts matches before pagination; an out-of-range page
// yields an empty (never nil) slice.
func (r *Repository) UserQuizzes(userID string, opts ListOptions) domain.QuizPage {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]domain.Quiz, 0)
	for _, quiz := range r.quizzes {
		if quiz.CreatorID == userID {
			filtered = append(filtered, quiz)
		}
	}

	if term := strings.ToLower(opts.Search); term != "" {
		matched := filtered[:0]
		for _, quiz := range filtered {
			if strings.Contains(strings.ToLower(quiz.Title), term) ||
				strings.Contains(strings.ToLower(quiz.Description), term) {
				matched = append(matched, quiz)
			}
		}
		filtered = matched
	}

	switch opts.Sort {
	case SortByTitle:
		// Collators keep internal state, so build one per call.
		c := collate.New(language.Und)
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[i].Title, filtered[j].Title) < 0
		})
	case SortByQuestionCount:
		sort.SliceStable(filtered, func(i, j int) bool {
			return len(filtered[i].Questions) > len(filtered[j].Questions)
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	total := len(filtered)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return domain.QuizPage{
		Quizzes:    filtered[start:end],
		Total:      total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}
}
