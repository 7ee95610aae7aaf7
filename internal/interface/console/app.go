// Package console runs the registry demonstration on a terminal: it registers
// the sample records, prints them with computed values, reads one letter and
// reports how often it occurs in every surname.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/alem-hub/person-registry/internal/application/command"
	"github.com/alem-hub/person-registry/internal/application/query"
	"github.com/alem-hub/person-registry/internal/domain/person"
	"github.com/alem-hub/person-registry/internal/domain/student"
	"github.com/alem-hub/person-registry/internal/interface/console/presenter"
	"github.com/alem-hub/person-registry/pkg/logger"
	"github.com/alem-hub/person-registry/pkg/timeutil"
)

// ErrNoLetter is returned when the input ends before a letter is entered.
var ErrNoLetter = errors.New("літеру не введено")

// Options configures a demonstration run.
type Options struct {
	// In provides the letter when Letter is zero.
	In io.Reader

	// Out receives the console text.
	Out io.Writer

	// AsOf is the date used for age calculations. Zero means today.
	AsOf time.Time

	// Letter skips the prompt when non-zero.
	Letter rune

	// IsolateFailures reports a failed record and continues with the rest.
	// When false the first failure ends the run.
	IsolateFailures bool

	// People and Students are the sample records to register.
	// Nil means SamplePeople and SampleStudents.
	People   []command.RegisterPersonCommand
	Students []command.RegisterStudentCommand

	Log *logger.Logger
}

// App is the console orchestrator.
type App struct {
	opts  Options
	in    *bufio.Reader
	out   io.Writer
	runID string
	log   *logger.Logger

	people   person.Repository
	students student.Repository

	registerPerson  *command.RegisterPersonHandler
	registerStudent *command.RegisterStudentHandler
	countLetters    *query.CountLettersHandler
}

// New wires the handlers around the given repositories.
func New(opts Options, people person.Repository, students student.Repository) *App {
	if opts.Log == nil {
		opts.Log = logger.Default()
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.AsOf.IsZero() {
		opts.AsOf = timeutil.Today()
	}
	if opts.People == nil {
		opts.People = SamplePeople()
	}
	if opts.Students == nil {
		opts.Students = SampleStudents()
	}

	runID := uuid.NewString()
	log := opts.Log.WithRunID(runID).With(logger.Component("console"))

	app := &App{
		opts:            opts,
		out:             opts.Out,
		runID:           runID,
		log:             log,
		people:          people,
		students:        students,
		registerPerson:  command.NewRegisterPersonHandler(people),
		registerStudent: command.NewRegisterStudentHandler(students),
		countLetters:    query.NewCountLettersHandler(people, students),
	}
	if opts.In != nil {
		app.in = bufio.NewReader(opts.In)
	}
	return app
}

// RunID returns the identifier attached to every log entry of this run.
func (a *App) RunID() string {
	return a.runID
}

// Run executes the demonstration. Every error is printed to the console;
// the first one is also returned so the caller can pick an exit status.
func (a *App) Run(ctx context.Context) error {
	ctx = logger.WithContext(ctx, a.log)
	start := time.Now()
	a.log.Info("run started", logger.Time("as_of", a.opts.AsOf), logger.Bool("isolate", a.opts.IsolateFailures))

	a.printf("%s\n\n", presenter.Title)

	regErr := a.register(ctx)
	if regErr != nil && !a.opts.IsolateFailures {
		return regErr
	}

	if err := a.demonstrate(ctx); err != nil {
		return a.report(err)
	}

	a.printf("\n%s\n", presenter.Footer)
	a.log.Info("run finished", logger.Latency(time.Since(start)), logger.Err(regErr))
	return regErr
}

// demonstrate prints the registered records, reads a letter and prints
// the letter counts.
func (a *App) demonstrate(ctx context.Context) error {
	if err := a.printRecords(ctx); err != nil {
		return err
	}

	a.printf("\n%s\n", presenter.LettersHeader)
	a.printf("\n%s", presenter.LetterPrompt)
	letter, err := a.readLetter(ctx)
	a.printf("\n")
	if err != nil {
		return err
	}

	res, err := a.countLetters.Handle(ctx, query.CountLettersQuery{Letter: letter})
	if err != nil {
		return err
	}
	a.printf("%s", presenter.FormatLetterReport(res))
	return nil
}

// register adds every sample record. With isolation enabled a failed record
// is reported and skipped; otherwise the first failure stops registration.
func (a *App) register(ctx context.Context) error {
	var firstErr error
	registerAll(ctx, a.registerPerson, a.registerStudent, a.opts.People, a.opts.Students, func(err error) bool {
		a.report(err)
		if firstErr == nil {
			firstErr = err
		}
		return a.opts.IsolateFailures
	})
	return firstErr
}

// registerAll runs the commands through the handlers, people first.
// onFail is called for every rejected record; returning false stops the loop.
func registerAll(
	ctx context.Context,
	registerPerson *command.RegisterPersonHandler,
	registerStudent *command.RegisterStudentHandler,
	people []command.RegisterPersonCommand,
	students []command.RegisterStudentCommand,
	onFail func(error) bool,
) {
	for _, cmd := range people {
		if _, err := registerPerson.Handle(ctx, cmd); err != nil && !onFail(err) {
			return
		}
	}
	for _, cmd := range students {
		if _, err := registerStudent.Handle(ctx, cmd); err != nil && !onFail(err) {
			return
		}
	}
}

func (a *App) printRecords(ctx context.Context) error {
	people, err := a.people.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list people: %w", err)
	}
	a.printf("%s\n", presenter.PeopleHeader)
	for _, p := range people {
		a.printf("%s", presenter.FormatPersonCard(p, a.opts.AsOf))
	}

	students, err := a.students.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list students: %w", err)
	}
	a.printf("\n%s\n", presenter.StudentHeader)
	for _, s := range students {
		a.printf("%s", presenter.FormatStudentCard(s, a.opts.AsOf))
	}
	return nil
}

// readLetter returns the preset letter or reads the first character typed.
// The read blocks; cancellation is only checked before it starts.
func (a *App) readLetter(ctx context.Context) (rune, error) {
	if a.opts.Letter != 0 {
		a.printf("%c", a.opts.Letter)
		return a.opts.Letter, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if a.in == nil {
		return 0, ErrNoLetter
	}

	r, _, err := a.in.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrNoLetter
		}
		return 0, fmt.Errorf("read letter: %w", err)
	}
	if r == '\n' || r == '\r' {
		return 0, ErrNoLetter
	}
	return r, nil
}

func (a *App) report(err error) error {
	a.log.Error("run step failed", logger.Err(err))
	a.printf("%s", presenter.FormatError(err))
	return err
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
