package console

import (
	"context"
	"errors"

	"github.com/alem-hub/person-registry/internal/application/command"
	"github.com/alem-hub/person-registry/internal/domain/person"
	"github.com/alem-hub/person-registry/internal/domain/student"
	"github.com/alem-hub/person-registry/pkg/logger"
)

// SamplePeople returns the people registered by the demonstration run.
func SamplePeople() []command.RegisterPersonCommand {
	return []command.RegisterPersonCommand{
		{Name: "Іван", Surname: "Петренко", Patronymic: "Олександрович", BirthMonth: 3, BirthYear: 1985},
		{Name: "Марія", Surname: "Коваленко", Patronymic: "Василівна", BirthMonth: 7, BirthYear: 1990},
	}
}

// SampleStudents returns the students registered by the demonstration run.
func SampleStudents() []command.RegisterStudentCommand {
	return []command.RegisterStudentCommand{
		{
			RegisterPersonCommand: command.RegisterPersonCommand{
				Name: "Олег", Surname: "Шевченко", Patronymic: "Іванович", BirthMonth: 9, BirthYear: 2003,
			},
			AdmissionYear: 2021,
			Specialty:     "Комп'ютерні науки",
		},
		{
			RegisterPersonCommand: command.RegisterPersonCommand{
				Name: "Анна", Surname: "Мельник", Patronymic: "Петрівна", BirthMonth: 12, BirthYear: 2004,
			},
			AdmissionYear: 2022,
			Specialty:     "Програмна інженерія",
		},
	}
}

// Seed registers the sample records into the repositories. Records that fail
// to build are skipped; their errors are joined into the result.
func Seed(ctx context.Context, people person.Repository, students student.Repository, log *logger.Logger) error {
	ctx = logger.WithContext(ctx, log)

	var errs []error
	registerAll(ctx,
		command.NewRegisterPersonHandler(people),
		command.NewRegisterStudentHandler(students),
		SamplePeople(), SampleStudents(),
		func(err error) bool {
			errs = append(errs, err)
			return true
		},
	)
	return errors.Join(errs...)
}
