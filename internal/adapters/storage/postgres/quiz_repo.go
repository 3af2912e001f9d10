package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption-portal/internal/domain/quiz"
)

type QuizRepo struct {
	db *sql.DB
}

func NewQuizRepo(db *sql.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

func (r *QuizRepo) GetByUser(ctx context.Context, userID string) (quiz.Result, error) {
	var (
		res     quiz.Result
		answers []byte
		matches []byte
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, answers, matches, created_at
		FROM quiz_results
		WHERE user_id = $1
	`, userID).Scan(&res.ID, &res.UserID, &answers, &matches, &res.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return quiz.Result{}, quiz.ErrNotFound
	}
	if err != nil {
		return quiz.Result{}, err
	}

	if err := fromJSON(answers, &res.Answers); err != nil {
		return quiz.Result{}, err
	}
	if err := fromJSON(matches, &res.Matches); err != nil {
		return quiz.Result{}, err
	}
	return res, nil
}

// Save reemplaza el resultado previo del usuario (UNIQUE sobre user_id).
func (r *QuizRepo) Save(ctx context.Context, res quiz.Result) error {
	answers, err := toJSON(res.Answers)
	if err != nil {
		return err
	}
	matches, err := toJSON(res.Matches)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO quiz_results (id, user_id, answers, matches, created_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (user_id) DO UPDATE SET
			id = EXCLUDED.id,
			answers = EXCLUDED.answers,
			matches = EXCLUDED.matches,
			created_at = EXCLUDED.created_at
	`, res.ID, res.UserID, answers, matches, res.CreatedAt)
	return err
}
