package memory

import (
	"context"
	"sync"

	"pet-adoption-portal/internal/domain/quiz"
)

type quizRepo struct {
	mu    sync.RWMutex
	items []quiz.Result
}

func NewQuizRepo() quiz.Repository {
	return &quizRepo{}
}

func (r *quizRepo) GetByUser(ctx context.Context, userID string) (quiz.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.items {
		if res.UserID == userID {
			return res, nil
		}
	}
	return quiz.Result{}, quiz.ErrNotFound
}

func (r *quizRepo) Save(ctx context.Context, res quiz.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.items[:0]
	for _, it := range r.items {
		if it.UserID != res.UserID {
			out = append(out, it)
		}
	}
	r.items = append(out, res)
	return nil
}
