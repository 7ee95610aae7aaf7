package query

import (
	"context"
	"errors"
	"slices"

	"github.com/alem-hub/person-registry/internal/domain/person"
	"github.com/alem-hub/person-registry/internal/domain/shared"
	"github.com/alem-hub/person-registry/internal/domain/student"
	"github.com/alem-hub/person-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// FIND RECORDS QUERY
// Поиск людей и студентов по имени, фамилии или специальности.
// ══════════════════════════════════════════════════════════════════════════════

// FindRecordsQuery содержит критерии поиска. Должен быть задан ровно один.
type FindRecordsQuery struct {
	// Name ищет и людей, и студентов.
	Name string

	// Surname ищет только среди людей.
	Surname string

	// Specialty ищет только среди студентов.
	Specialty string
}

// Validate проверяет, что задан ровно один критерий.
func (q FindRecordsQuery) Validate() error {
	set := 0
	for _, v := range []string{q.Name, q.Surname, q.Specialty} {
		if !shared.IsBlank(v) {
			set++
		}
	}
	if set != 1 {
		return shared.NewDomainError("query", "FindRecords", shared.ErrPrecondition,
			"exactly one of name, surname or specialty must be given")
	}
	return nil
}

// FindRecordsResult содержит найденные записи в порядке добавления.
type FindRecordsResult struct {
	People   []*person.Person
	Students []*student.Student
}

// Total возвращает общее число найденных записей.
func (r *FindRecordsResult) Total() int {
	return len(r.People) + len(r.Students)
}

// FindRecordsHandler обрабатывает FindRecordsQuery.
type FindRecordsHandler struct {
	people   person.Repository
	students student.Repository
}

// NewFindRecordsHandler создаёт новый обработчик.
func NewFindRecordsHandler(people person.Repository, students student.Repository) *FindRecordsHandler {
	return &FindRecordsHandler{people: people, students: students}
}

// ErrNoMatches возвращается, когда ни одна запись не подошла.
var ErrNoMatches = errors.New("no matching records")

// Handle выполняет поиск.
func (h *FindRecordsHandler) Handle(ctx context.Context, q FindRecordsQuery) (*FindRecordsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	result := &FindRecordsResult{}
	switch {
	case !shared.IsBlank(q.Name):
		result.People = slices.Collect(h.people.FindAllByName(ctx, q.Name))
		result.Students = slices.Collect(h.students.FindAllByName(ctx, q.Name))
	case !shared.IsBlank(q.Surname):
		result.People = slices.Collect(h.people.FindAllBySurname(ctx, q.Surname))
	default:
		result.Students = slices.Collect(h.students.FindAllBySpecialty(ctx, q.Specialty))
	}

	logger.FromContext(ctx).Debug("records found",
		logger.Operation("find_records"),
		logger.Count(result.Total()),
	)

	if result.Total() == 0 {
		return result, ErrNoMatches
	}
	return result, nil
}
