package store

import (
	"fmt"
	"sort"

	"github.com/osse101/MakeServer_Go/internal/domain"
)

// Quizzes is the quiz table keyed by quiz name
type Quizzes struct {
	byName map[string]domain.Quiz
}

func newQuizzes() *Quizzes {
	return &Quizzes{byName: make(map[string]domain.Quiz)}
}

// Add inserts or replaces a quiz
func (t *Quizzes) Add(q domain.Quiz) error {
	if q.Name == "" {
		return fmt.Errorf("%w: quiz name is required", domain.ErrInvalidInput)
	}
	t.byName[q.Name] = q
	return nil
}

// All returns every quiz ordered by name
func (t *Quizzes) All() []domain.Quiz {
	out := make([]domain.Quiz, 0, len(t.byName))
	for _, q := range t.byName {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
