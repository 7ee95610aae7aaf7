// Package presenter formats registry data for console display.
// Presenters convert domain objects into the Ukrainian text shown to the user.
package presenter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alem-hub/person-registry/internal/domain/person"
	"github.com/alem-hub/person-registry/internal/domain/shared"
	"github.com/alem-hub/person-registry/internal/domain/student"
	"github.com/alem-hub/person-registry/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD CARD PRESENTER
// Форматирует карточки людей и студентов: поля записи и вычисляемые значения.
// ══════════════════════════════════════════════════════════════════════════════

// Заголовки разделов консольного вывода.
const (
	Title         = "=== СИСТЕМА ОБЛІКУ ЛЮДЕЙ ТА СТУДЕНТІВ ==="
	PeopleHeader  = ">>> СПИСОК ЛЮДЕЙ:"
	StudentHeader = ">>> СПИСОК СТУДЕНТІВ:"
	LettersHeader = ">>> ПІДРАХУНОК ЛІТЕР У ПРІЗВИЩАХ:"
	LetterPrompt  = "Введіть літеру для підрахунку в прізвищах: "
	Footer        = "=== ЗАВЕРШЕННЯ РОБОТИ ПРОГРАМИ ==="
)

// FormatDetails renders labelled fields, one "Label: value" per line,
// preceded by an empty line.
func FormatDetails(r shared.Record) string {
	var sb strings.Builder
	sb.WriteString("\n")
	for _, d := range r.Details() {
		fmt.Fprintf(&sb, "%s: %s\n", d.Label, d.Value)
	}
	return sb.String()
}

// FormatPersonCard renders a person and the age as of the given date.
func FormatPersonCard(p *person.Person, asOf time.Time) string {
	var sb strings.Builder
	sb.WriteString(FormatDetails(p))
	fmt.Fprintf(&sb, "Повний вік (станом на %s): %d років\n", timeutil.FormatDate(asOf), p.Age(asOf))
	return sb.String()
}

// FormatStudentCard renders a student, the age and years since admission.
func FormatStudentCard(s *student.Student, asOf time.Time) string {
	var sb strings.Builder
	sb.WriteString(FormatDetails(s))
	fmt.Fprintf(&sb, "Повний вік: %d років\n", s.Age(asOf))
	fmt.Fprintf(&sb, "Років з моменту вступу: %d років\n", s.YearsSinceAdmission(asOf))
	return sb.String()
}

// FormatError renders an error the way the console reports failures.
// Domain errors show only their message; wrapping context stays in the logs.
func FormatError(err error) string {
	msg := err.Error()
	var de *shared.DomainError
	if errors.As(err, &de) {
		msg = de.Message
	}
	return fmt.Sprintf("\nПомилка: %s\n", msg)
}
