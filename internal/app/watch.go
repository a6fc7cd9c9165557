package app

import "quizboard-service/internal/domain"

// Watch returns a channel that receives the quiz's rankings: an initial
// snapshot, then an update after every submission. The caller must invoke the
// returned cancel function to avoid leaks. Unknown quizzes yield
// domain.ErrQuizNotFound.
func (r *Repository) Watch(quizID string) (<-chan []domain.RankedSubmission, func(), error) {
	r.mu.Lock()
	if _, ok := r.findQuizLocked(quizID); !ok {
		r.mu.Unlock()
		return nil, nil, domain.ErrQuizNotFound
	}
	ch := make(chan []domain.RankedSubmission, 8)
	if r.watchers[quizID] == nil {
		r.watchers[quizID] = make(map[chan []domain.RankedSubmission]struct{})
	}
	r.watchers[quizID][ch] = struct{}{}
	initial := r.rankingsLocked(quizID)
	r.mu.Unlock()

	ch <- initial

	cancel := func() {
		r.mu.Lock()
		if set, ok := r.watchers[quizID]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
				if len(set) == 0 {
					delete(r.watchers, quizID)
				}
			}
		}
		r.mu.Unlock()
	}
	return ch, cancel, nil
}

func (r *Repository) notifyLocked(quizID string) {
	set := r.watchers[quizID]
	if len(set) == 0 {
		return
	}
	ranked := r.rankingsLocked(quizID)
	for ch := range set {
		select {
		case ch <- ranked:
		default:
			// Drop the stale frame so a slow consumer never blocks submission.
			select {
			case <-ch:
			default:
			}
			ch <- ranked
		}
	}
}
