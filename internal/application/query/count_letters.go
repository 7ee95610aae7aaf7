// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/person-registry/internal/domain/person"
	"github.com/alem-hub/person-registry/internal/domain/shared"
	"github.com/alem-hub/person-registry/internal/domain/student"
	"github.com/alem-hub/person-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// COUNT LETTERS QUERY
// Считает вхождения буквы в фамилиях людей и студентов (без учёта регистра).
// ══════════════════════════════════════════════════════════════════════════════

// CountLettersQuery содержит букву для подсчёта.
type CountLettersQuery struct {
	Letter rune
}

// LetterCount - результат подсчёта для одной записи.
type LetterCount struct {
	Surname string
	Count   int
}

// CountLettersResult содержит результаты в порядке репозиториев.
type CountLettersResult struct {
	Letter   rune
	People   []LetterCount
	Students []LetterCount
}

// CountLettersHandler обрабатывает CountLettersQuery.
// Логгер берётся из контекста.
type CountLettersHandler struct {
	people   person.Repository
	students student.Repository
}

// NewCountLettersHandler создаёт новый обработчик.
func NewCountLettersHandler(people person.Repository, students student.Repository) *CountLettersHandler {
	return &CountLettersHandler{people: people, students: students}
}

// Handle выполняет запрос.
func (h *CountLettersHandler) Handle(ctx context.Context, q CountLettersQuery) (*CountLettersResult, error) {
	people, err := h.people.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count letters: list people: %w", err)
	}
	students, err := h.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count letters: list students: %w", err)
	}

	result := &CountLettersResult{
		Letter:   q.Letter,
		People:   countAll(people, q.Letter),
		Students: countAll(students, q.Letter),
	}

	logger.FromContext(ctx).Debug("letters counted",
		logger.Operation("count_letters"),
		logger.Letter(q.Letter),
		logger.Count(len(result.People)+len(result.Students)),
	)

	return result, nil
}

func countAll[R shared.Record](records []R, letter rune) []LetterCount {
	out := make([]LetterCount, 0, len(records))
	for _, r := range records {
		out = append(out, LetterCount{
			Surname: r.SurnameValue(),
			Count:   r.CountLetterInSurname(letter),
		})
	}
	return out
}
