package command

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/person-registry/internal/domain/shared"
	"github.com/alem-hub/person-registry/internal/infrastructure/persistence/memory"
	"github.com/alem-hub/person-registry/pkg/logger"
)

func quiet() context.Context {
	return logger.WithContext(context.Background(), logger.Nop())
}

func ivan() RegisterPersonCommand {
	return RegisterPersonCommand{
		Name:       "Іван",
		Surname:    "Петренко",
		Patronymic: "Олександрович",
		BirthMonth: 3,
		BirthYear:  1985,
	}
}

func TestRegisterPerson_Success(t *testing.T) {
	ctx := quiet()
	repo := memory.NewPersonRepository()
	h := NewRegisterPersonHandler(repo)

	res, err := h.Handle(ctx, ivan())
	require.NoError(t, err)
	assert.Equal(t, "Петренко", res.Person.Surname())

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRegisterPerson_RejectedIsNotStored(t *testing.T) {
	ctx := quiet()
	repo := memory.NewPersonRepository()

	var logs bytes.Buffer
	h := NewRegisterPersonHandler(repo)
	logged := logger.WithContext(ctx, logger.New(logger.Options{Output: &logs, Level: logger.LevelWarn}))

	cmd := ivan()
	cmd.BirthMonth = 13
	res, err := h.Handle(logged, cmd)
	assert.Nil(t, res)
	assert.True(t, shared.IsValidation(err))
	assert.Contains(t, err.Error(), "Петренко")
	assert.Contains(t, logs.String(), "person rejected")
	assert.Contains(t, logs.String(), "birth_month")
	assert.Contains(t, logs.String(), `"operation":"register_person"`)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRegisterPerson_Incomplete(t *testing.T) {
	h := NewRegisterPersonHandler(memory.NewPersonRepository())

	cmd := ivan()
	cmd.Patronymic = ""
	_, err := h.Handle(quiet(), cmd)
	assert.True(t, shared.IsIncompleteBuilder(err))
}

func TestRegisterStudent_Success(t *testing.T) {
	ctx := quiet()
	repo := memory.NewStudentRepository()
	h := NewRegisterStudentHandler(repo)

	res, err := h.Handle(ctx, RegisterStudentCommand{
		RegisterPersonCommand: RegisterPersonCommand{
			Name:       "Анна",
			Surname:    "Мельник",
			Patronymic: "Петрівна",
			BirthMonth: 12,
			BirthYear:  2004,
		},
		AdmissionYear: 2022,
		Specialty:     "Програмна інженерія",
	})
	require.NoError(t, err)
	assert.Equal(t, "Програмна інженерія", res.Student.Specialty())

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRegisterStudent_AdmissionBeforeBirth(t *testing.T) {
	ctx := quiet()
	repo := memory.NewStudentRepository()
	h := NewRegisterStudentHandler(repo)

	_, err := h.Handle(ctx, RegisterStudentCommand{
		RegisterPersonCommand: RegisterPersonCommand{
			Name:       "Анна",
			Surname:    "Мельник",
			Patronymic: "Петрівна",
			BirthMonth: 12,
			BirthYear:  2004,
		},
		AdmissionYear: 2000,
		Specialty:     "Програмна інженерія",
	})
	assert.ErrorIs(t, err, shared.ErrAdmissionBeforeBirth)

	n, _ := repo.Count(ctx)
	assert.Zero(t, n)
}

func TestRegisterPerson_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(quiet())
	cancel()

	h := NewRegisterPersonHandler(memory.NewPersonRepository())
	_, err := h.Handle(ctx, ivan())
	assert.ErrorIs(t, err, context.Canceled)
}
