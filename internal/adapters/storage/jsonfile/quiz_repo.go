package jsonfile

import (
	"context"

	"pet-adoption-portal/internal/domain/quiz"
)

type QuizRepo struct {
	store *Store
}

func NewQuizRepo(s *Store) *QuizRepo {
	return &QuizRepo{store: s}
}

func (r *QuizRepo) GetByUser(ctx context.Context, userID string) (quiz.Result, error) {
	items, err := list[quiz.Result](r.store, colQuizResults)
	if err != nil {
		return quiz.Result{}, err
	}
	for _, res := range items {
		if res.UserID == userID {
			return res, nil
		}
	}
	return quiz.Result{}, quiz.ErrNotFound
}

// Save reemplaza el resultado previo del usuario (a lo sumo uno por user).
func (r *QuizRepo) Save(ctx context.Context, res quiz.Result) error {
	return update(r.store, colQuizResults, func(items []quiz.Result) ([]quiz.Result, error) {
		out := items[:0]
		for _, it := range items {
			if it.UserID != res.UserID {
				out = append(out, it)
			}
		}
		return append(out, res), nil
	})
}
