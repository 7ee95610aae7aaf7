package memory

import (
	"context"
	"iter"
	"strings"

	"github.com/alem-hub/person-registry/internal/domain/person"
	"github.com/alem-hub/person-registry/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// PERSON REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// PersonRepository implements person.Repository in memory.
type PersonRepository struct {
	store Store[*person.Person]
}

var _ person.Repository = (*PersonRepository)(nil)

// NewPersonRepository creates an empty PersonRepository.
func NewPersonRepository() *PersonRepository {
	return &PersonRepository{}
}

// Add appends a person to the collection.
func (r *PersonRepository) Add(ctx context.Context, p *person.Person) error {
	if p == nil {
		return shared.NewDomainError(person.Domain, "Add", shared.ErrPrecondition, "запис людини відсутній")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.Append(p)
	return nil
}

// GetAll returns a copy of all people in insertion order.
func (r *PersonRepository) GetAll(ctx context.Context) ([]*person.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Snapshot(), nil
}

// FindAllByName lazily yields people whose name matches, ignoring case.
// Surrounding whitespace in name is ignored, as it is for stored values.
func (r *PersonRepository) FindAllByName(_ context.Context, name string) iter.Seq[*person.Person] {
	name = strings.TrimSpace(name)
	return r.store.Filter(func(p *person.Person) bool {
		return shared.FoldEqual(p.Name(), name)
	})
}

// FindAllBySurname lazily yields people whose surname matches, ignoring case.
func (r *PersonRepository) FindAllBySurname(_ context.Context, surname string) iter.Seq[*person.Person] {
	surname = strings.TrimSpace(surname)
	return r.store.Filter(func(p *person.Person) bool {
		return shared.FoldEqual(p.Surname(), surname)
	})
}

// Count returns the number of people.
func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.store.Len(), nil
}
