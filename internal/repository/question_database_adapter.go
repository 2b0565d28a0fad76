package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id, question, answer, category_id, difficulty`

// likeEscaper neutralizes LIKE metacharacters in user-supplied search
// terms. Postgres treats backslash as the default escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// GetAllQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetAllQuestions(ctx context.Context) ([]domain.Question, error) {
	var rows []models.Question
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id ASC`

	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// GetQuestionByID implements domain.QuestionRepository. A missing question
// is reported as (nil, nil).
func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	var row models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	if err := a.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	question := toDomainQuestion(&row)
	return &question, nil
}

// FindQuestions implements domain.QuestionRepository. The filter clauses
// are combined with AND; the exclusion set is expanded with sqlx.In.
func (a *QuestionDatabaseAdapter) FindQuestions(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions`
	var conds []string
	var args []interface{}

	if filter.CategoryID != nil {
		conds = append(conds, `category_id = ?`)
		args = append(args, *filter.CategoryID)
	}
	if len(filter.ExcludedIDs) > 0 {
		conds = append(conds, `id NOT IN (?)`)
		args = append(args, filter.ExcludedIDs)
	}
	if filter.TextContains != "" {
		conds = append(conds, `question ILIKE ?`)
		args = append(args, "%"+likeEscaper.Replace(filter.TextContains)+"%")
	}

	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY id ASC`

	query, expandedArgs, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build question filter query: %w", err)
	}
	query = a.db.Rebind(query)

	var rows []models.Question
	if err := a.db.SelectContext(ctx, &rows, query, expandedArgs...); err != nil {
		return nil, fmt.Errorf("failed to find questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// InsertQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) InsertQuestion(ctx context.Context, question *domain.Question) (int64, error) {
	query := `INSERT INTO questions (question, answer, category_id, difficulty)
		VALUES ($1, $2, $3, $4) RETURNING id`

	var id int64
	err := a.db.QueryRowxContext(ctx, query,
		question.Question,
		question.Answer,
		question.CategoryID,
		question.Difficulty,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}

	question.ID = id
	return id, nil
}

// DeleteQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM questions WHERE id = $1`

	result, err := a.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// Helper functions for model conversion

func toDomainQuestion(m *models.Question) domain.Question {
	return domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		CategoryID: m.CategoryID,
		Difficulty: m.Difficulty,
	}
}

func toDomainQuestions(rows []models.Question) []domain.Question {
	questions := make([]domain.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, toDomainQuestion(&row))
	}
	return questions
}
