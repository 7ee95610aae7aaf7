// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"

	"github.com/alem-hub/person-registry/internal/domain/person"
	"github.com/alem-hub/person-registry/internal/domain/shared"
	"github.com/alem-hub/person-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER PERSON COMMAND
// Builds a person through person.Builder and stores it in the repository.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterPersonCommand contains the raw field values of a person.
type RegisterPersonCommand struct {
	Name       string
	Surname    string
	Patronymic string
	BirthMonth int
	BirthYear  int
}

// RegisterPersonResult contains the registered person.
type RegisterPersonResult struct {
	Person *person.Person
}

// RegisterPersonHandler handles the RegisterPersonCommand.
// The logger is taken from the context, see logger.WithContext.
type RegisterPersonHandler struct {
	repo person.Repository
}

// NewRegisterPersonHandler creates a new RegisterPersonHandler.
func NewRegisterPersonHandler(repo person.Repository) *RegisterPersonHandler {
	return &RegisterPersonHandler{repo: repo}
}

// Handle executes the register person command.
// A failed build leaves the repository untouched.
func (h *RegisterPersonHandler) Handle(ctx context.Context, cmd RegisterPersonCommand) (*RegisterPersonResult, error) {
	log := logger.FromContext(ctx).With(logger.Operation("register_person"))

	p, err := person.NewBuilder().
		SetName(cmd.Name).
		SetSurname(cmd.Surname).
		SetPatronymic(cmd.Patronymic).
		SetBirthMonth(cmd.BirthMonth).
		SetBirthYear(cmd.BirthYear).
		Build()
	if err != nil {
		log.Warn("person rejected",
			logger.Surname(cmd.Surname),
			logger.FieldName(shared.FieldOf(err)),
			logger.Err(err),
		)
		return nil, fmt.Errorf("register person %q: %w", cmd.Surname, err)
	}

	if err := h.repo.Add(ctx, p); err != nil {
		return nil, fmt.Errorf("register person %q: %w", cmd.Surname, err)
	}

	log.Info("person registered", logger.RecordKind(person.Domain), logger.FullName(p.FullName()))

	return &RegisterPersonResult{Person: p}, nil
}
