package query

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/person-registry/internal/domain/person"
	"github.com/alem-hub/person-registry/internal/domain/shared"
	"github.com/alem-hub/person-registry/internal/domain/student"
	"github.com/alem-hub/person-registry/internal/infrastructure/persistence/memory"
	"github.com/alem-hub/person-registry/pkg/logger"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test fixture
// ─────────────────────────────────────────────────────────────────────────────

var quiet = logger.WithContext(context.Background(), logger.Nop())

func seeded(t *testing.T) (*memory.PersonRepository, *memory.StudentRepository) {
	t.Helper()
	ctx := context.Background()

	people := memory.NewPersonRepository()
	for _, p := range []person.Params{
		{Name: "Іван", Surname: "Петренко", Patronymic: "Олександрович", BirthMonth: 3, BirthYear: 1985},
		{Name: "Марія", Surname: "Коваленко", Patronymic: "Василівна", BirthMonth: 7, BirthYear: 1990},
	} {
		entity, err := person.NewPerson(p)
		require.NoError(t, err)
		require.NoError(t, people.Add(ctx, entity))
	}

	students := memory.NewStudentRepository()
	for _, p := range []student.Params{
		{
			Person:        person.Params{Name: "Олег", Surname: "Шевченко", Patronymic: "Іванович", BirthMonth: 9, BirthYear: 2003},
			AdmissionYear: 2021, Specialty: "Комп'ютерні науки",
		},
		{
			Person:        person.Params{Name: "Анна", Surname: "Мельник", Patronymic: "Петрівна", BirthMonth: 12, BirthYear: 2004},
			AdmissionYear: 2022, Specialty: "Програмна інженерія",
		},
	} {
		entity, err := student.NewStudent(p)
		require.NoError(t, err)
		require.NoError(t, students.Add(ctx, entity))
	}

	return people, students
}

// ─────────────────────────────────────────────────────────────────────────────
// Count letters
// ─────────────────────────────────────────────────────────────────────────────

func TestCountLetters(t *testing.T) {
	people, students := seeded(t)
	h := NewCountLettersHandler(people, students)

	res, err := h.Handle(quiet, CountLettersQuery{Letter: 'Е'})
	require.NoError(t, err)

	assert.Equal(t, 'Е', res.Letter)
	assert.Equal(t, []LetterCount{
		{Surname: "Петренко", Count: 2},
		{Surname: "Коваленко", Count: 1},
	}, res.People)
	assert.Equal(t, []LetterCount{
		{Surname: "Шевченко", Count: 2},
		{Surname: "Мельник", Count: 1},
	}, res.Students)
}

func TestCountLetters_LogsThroughContext(t *testing.T) {
	people, students := seeded(t)

	var logs bytes.Buffer
	ctx := logger.WithContext(context.Background(),
		logger.New(logger.Options{Output: &logs, Level: logger.LevelDebug}).WithRunID("run-7"))

	_, err := NewCountLettersHandler(people, students).Handle(ctx, CountLettersQuery{Letter: 'о'})
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, "letters counted")
	assert.Contains(t, out, `"operation":"count_letters"`)
	assert.Contains(t, out, `"run_id":"run-7"`)
	assert.Contains(t, out, `"count":4`)
}

func TestCountLetters_EmptyRepositories(t *testing.T) {
	h := NewCountLettersHandler(memory.NewPersonRepository(), memory.NewStudentRepository())

	res, err := h.Handle(quiet, CountLettersQuery{Letter: 'a'})
	require.NoError(t, err)
	assert.Empty(t, res.People)
	assert.Empty(t, res.Students)
}

// ─────────────────────────────────────────────────────────────────────────────
// Find records
// ─────────────────────────────────────────────────────────────────────────────

func TestFindRecords_ByName(t *testing.T) {
	people, students := seeded(t)
	h := NewFindRecordsHandler(people, students)

	res, err := h.Handle(quiet, FindRecordsQuery{Name: "іВАН"})
	require.NoError(t, err)
	require.Len(t, res.People, 1)
	assert.Equal(t, "Петренко", res.People[0].Surname())
	assert.Empty(t, res.Students)
}

func TestFindRecords_BySurnameAndSpecialty(t *testing.T) {
	people, students := seeded(t)
	h := NewFindRecordsHandler(people, students)

	res, err := h.Handle(quiet, FindRecordsQuery{Surname: "коваленко"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total())

	res, err = h.Handle(quiet, FindRecordsQuery{Specialty: "ПРОГРАМНА ІНЖЕНЕРІЯ"})
	require.NoError(t, err)
	require.Len(t, res.Students, 1)
	assert.Equal(t, "Анна", res.Students[0].Name())
}

func TestFindRecords_TrimsCriterion(t *testing.T) {
	people, students := seeded(t)
	h := NewFindRecordsHandler(people, students)

	res, err := h.Handle(quiet, FindRecordsQuery{Name: "  іван "})
	require.NoError(t, err)
	require.Len(t, res.People, 1)
	assert.Equal(t, "Петренко", res.People[0].Surname())

	res, err = h.Handle(quiet, FindRecordsQuery{Specialty: " програмна інженерія\n"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total())
}

func TestFindRecords_NoMatches(t *testing.T) {
	people, students := seeded(t)
	h := NewFindRecordsHandler(people, students)

	res, err := h.Handle(quiet, FindRecordsQuery{Name: "Петро"})
	assert.True(t, errors.Is(err, ErrNoMatches))
	assert.Zero(t, res.Total())
}

func TestFindRecords_Validate(t *testing.T) {
	h := NewFindRecordsHandler(memory.NewPersonRepository(), memory.NewStudentRepository())

	_, err := h.Handle(quiet, FindRecordsQuery{})
	assert.True(t, shared.IsPrecondition(err))

	_, err = h.Handle(quiet, FindRecordsQuery{Name: "a", Specialty: "b"})
	assert.True(t, shared.IsPrecondition(err))
}
