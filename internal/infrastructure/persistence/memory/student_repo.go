package memory

import (
	"context"
	"iter"
	"strings"

	"github.com/alem-hub/person-registry/internal/domain/shared"
	"github.com/alem-hub/person-registry/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// StudentRepository implements student.Repository in memory.
type StudentRepository struct {
	store Store[*student.Student]
}

var _ student.Repository = (*StudentRepository)(nil)

// NewStudentRepository creates an empty StudentRepository.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{}
}

// Add appends a student to the collection.
func (r *StudentRepository) Add(ctx context.Context, s *student.Student) error {
	if s == nil {
		return shared.NewDomainError(student.Domain, "Add", shared.ErrPrecondition, "запис студента відсутній")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.Append(s)
	return nil
}

// GetAll returns a copy of all students in insertion order.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*student.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Snapshot(), nil
}

// FindAllByName lazily yields students whose name matches, ignoring case.
func (r *StudentRepository) FindAllByName(_ context.Context, name string) iter.Seq[*student.Student] {
	name = strings.TrimSpace(name)
	return r.store.Filter(func(s *student.Student) bool {
		return shared.FoldEqual(s.Name(), name)
	})
}

// FindAllBySpecialty lazily yields students of the given specialty, ignoring case.
func (r *StudentRepository) FindAllBySpecialty(_ context.Context, specialty string) iter.Seq[*student.Student] {
	specialty = strings.TrimSpace(specialty)
	return r.store.Filter(func(s *student.Student) bool {
		return shared.FoldEqual(s.Specialty(), specialty)
	})
}

// Count returns the number of students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.store.Len(), nil
}
