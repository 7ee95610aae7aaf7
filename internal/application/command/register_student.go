package command

import (
	"context"
	"fmt"

	"github.com/alem-hub/person-registry/internal/domain/shared"
	"github.com/alem-hub/person-registry/internal/domain/student"
	"github.com/alem-hub/person-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER STUDENT COMMAND
// Builds a student through student.Builder and stores it in the repository.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterStudentCommand contains the raw field values of a student.
type RegisterStudentCommand struct {
	RegisterPersonCommand

	AdmissionYear int
	Specialty     string
}

// RegisterStudentResult contains the registered student.
type RegisterStudentResult struct {
	Student *student.Student
}

// RegisterStudentHandler handles the RegisterStudentCommand.
// The logger is taken from the context, see logger.WithContext.
type RegisterStudentHandler struct {
	repo student.Repository
}

// NewRegisterStudentHandler creates a new RegisterStudentHandler.
func NewRegisterStudentHandler(repo student.Repository) *RegisterStudentHandler {
	return &RegisterStudentHandler{repo: repo}
}

// Handle executes the register student command.
func (h *RegisterStudentHandler) Handle(ctx context.Context, cmd RegisterStudentCommand) (*RegisterStudentResult, error) {
	log := logger.FromContext(ctx).With(logger.Operation("register_student"))

	s, err := student.NewBuilder().
		SetName(cmd.Name).
		SetSurname(cmd.Surname).
		SetPatronymic(cmd.Patronymic).
		SetBirthMonth(cmd.BirthMonth).
		SetBirthYear(cmd.BirthYear).
		SetAdmissionYear(cmd.AdmissionYear).
		SetSpecialty(cmd.Specialty).
		Build()
	if err != nil {
		log.Warn("student rejected",
			logger.Surname(cmd.Surname),
			logger.FieldName(shared.FieldOf(err)),
			logger.Err(err),
		)
		return nil, fmt.Errorf("register student %q: %w", cmd.Surname, err)
	}

	if err := h.repo.Add(ctx, s); err != nil {
		return nil, fmt.Errorf("register student %q: %w", cmd.Surname, err)
	}

	log.Info("student registered",
		logger.RecordKind(student.Domain),
		logger.FullName(s.FullName()),
		logger.String("specialty", s.Specialty()),
	)

	return &RegisterStudentResult{Student: s}, nil
}
