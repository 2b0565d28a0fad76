package service

import (
	"context"
	"math/rand"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNextQuestion_MissingScope(t *testing.T) {
	svc := NewQuizService(new(MockQuestionRepository), new(MockCategoryRepository), nil)

	_, err := svc.NextQuestion(context.Background(), &dto.QuizRequest{})

	assertDomainCode(t, err, domain.CodeUnprocessable)
}

func TestNextQuestion_UnknownCategory(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetCategory", mock.Anything, int64(42)).Return(nil, nil)
	svc := NewQuizService(new(MockQuestionRepository), categoryRepo, nil)

	_, err := svc.NextQuestion(context.Background(), &dto.QuizRequest{
		QuizCategory: &dto.QuizCategory{ID: 42, Type: "Nope"},
	})

	assertDomainCode(t, err, domain.CodeUnprocessable)
}

func TestNextQuestion_AllScopeDraws(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	// Sentinel scope must not restrict the category.
	questionRepo.On("FindQuestions", mock.Anything, domain.QuestionFilter{ExcludedIDs: []int64{2}}).
		Return([]domain.Question{
			{ID: 1, Question: "Q1", Answer: "A1", CategoryID: 1, Difficulty: 1},
			{ID: 3, Question: "Q3", Answer: "A3", CategoryID: 2, Difficulty: 2},
			{ID: 4, Question: "Q4", Answer: "A4", CategoryID: 2, Difficulty: 3},
		}, nil)
	svc := NewQuizService(questionRepo, new(MockCategoryRepository), func(n int) int {
		assert.Equal(t, 3, n)
		return 1
	})

	resp, err := svc.NextQuestion(context.Background(), &dto.QuizRequest{
		PreviousQuestions: []int64{2},
		QuizCategory:      &dto.QuizCategory{ID: 0, Type: "click"},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Question)
	assert.Equal(t, int64(3), resp.Question.ID)
	assert.Equal(t, "Q3", resp.Question.Question)
	assert.Equal(t, int64(2), resp.Question.Category)
}

// A single surviving candidate is reported as exhausted even though one
// question technically remains: three Science questions with two already
// served must not draw the third.
func TestNextQuestion_SingleCandidateIsExhausted(t *testing.T) {
	scienceID := int64(1)
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetCategory", mock.Anything, scienceID).Return(&domain.Category{ID: scienceID, Name: "Science"}, nil)
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("FindQuestions", mock.Anything, domain.QuestionFilter{
		CategoryID:  &scienceID,
		ExcludedIDs: []int64{10, 11},
	}).Return([]domain.Question{
		{ID: 12, Question: "Q12", Answer: "A12", CategoryID: scienceID, Difficulty: 1},
	}, nil)
	svc := NewQuizService(questionRepo, categoryRepo, nil)

	resp, err := svc.NextQuestion(context.Background(), &dto.QuizRequest{
		PreviousQuestions: []int64{10, 11},
		QuizCategory:      &dto.QuizCategory{ID: scienceID, Type: "Science"},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Question)
}

func TestNextQuestion_EmptyScopeIsExhausted(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("FindQuestions", mock.Anything, mock.Anything).Return([]domain.Question{}, nil)
	svc := NewQuizService(questionRepo, new(MockCategoryRepository), nil)

	resp, err := svc.NextQuestion(context.Background(), &dto.QuizRequest{
		QuizCategory: &dto.QuizCategory{ID: 0},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Question)
}

// memoryQuestionRepo serves FindQuestions from a fixed bank, applying the
// exclusion filter the way the storage collaborator would.
type memoryQuestionRepo struct {
	MockQuestionRepository
	bank []domain.Question
}

func (r *memoryQuestionRepo) FindQuestions(_ context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	excluded := make(map[int64]bool, len(filter.ExcludedIDs))
	for _, id := range filter.ExcludedIDs {
		excluded[id] = true
	}
	var out []domain.Question
	for _, q := range r.bank {
		if excluded[q.ID] {
			continue
		}
		if filter.CategoryID != nil && q.CategoryID != *filter.CategoryID {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// Repeated draws with the exclusion set growing caller-side never repeat
// a question, and the run ends exhausted with one question left unseen.
func TestNextQuestion_AccumulatingExclusionsNeverRepeats(t *testing.T) {
	repo := &memoryQuestionRepo{bank: questionBank(6, 1)}
	rng := rand.New(rand.NewSource(1))
	svc := NewQuizService(repo, new(MockCategoryRepository), rng.Intn)

	var previous []int64
	seen := make(map[int64]bool)
	for {
		resp, err := svc.NextQuestion(context.Background(), &dto.QuizRequest{
			PreviousQuestions: previous,
			QuizCategory:      &dto.QuizCategory{ID: 0},
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
		if resp.Question == nil {
			break
		}
		assert.NotContains(t, previous, resp.Question.ID)
		assert.False(t, seen[resp.Question.ID])
		seen[resp.Question.ID] = true
		previous = append(previous, resp.Question.ID)
	}

	// The two-candidate draw threshold always strands one question.
	assert.Len(t, previous, 5)
}
