package student

import (
	"fmt"
	"strings"
	"time"

	"github.com/alem-hub/person-registry/internal/domain/person"
	"github.com/alem-hub/person-registry/internal/domain/shared"
	"github.com/alem-hub/person-registry/pkg/timeutil"
)

// Domain - имя домена в ошибках.
const Domain = "student"

// Поля, которые студент добавляет к полям человека.
const (
	FieldAdmissionYear = "admission_year"
	FieldSpecialty     = "specialty"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - студент: все поля человека плюс год поступления и специальность.
type Student struct {
	person.Fields

	admissionYear shared.Year
	specialty     string
}

var _ shared.Record = (*Student)(nil)

// Params содержит параметры для создания студента.
type Params struct {
	Person        person.Params
	AdmissionYear int
	Specialty     string
}

// NewStudent создаёт студента с валидацией всех полей.
// Сначала проверяются поля человека, затем поля студента.
func NewStudent(p Params) (*Student, error) {
	fields, err := person.NewFields(Domain, p.Person)
	if err != nil {
		return nil, err
	}

	if p.AdmissionYear < p.Person.BirthYear {
		return nil, shared.NewFieldError(Domain, "Create", FieldAdmissionYear,
			shared.ErrAdmissionBeforeBirth, "рік вступу не може бути раніше року народження")
	}
	if err := ValidateAdmissionYear("Create", p.AdmissionYear); err != nil {
		return nil, err
	}
	if shared.IsBlank(p.Specialty) {
		return nil, shared.NewFieldError(Domain, "Create", FieldSpecialty,
			shared.ErrEmptyValue, "спеціальність не може бути порожньою")
	}

	return &Student{
		Fields:        fields,
		admissionYear: shared.Year(p.AdmissionYear),
		specialty:     strings.TrimSpace(p.Specialty),
	}, nil
}

// ValidateAdmissionYear проверяет, что год поступления не в будущем.
func ValidateAdmissionYear(op string, year int) error {
	if year > timeutil.CurrentYear() {
		return shared.NewFieldError(Domain, op, FieldAdmissionYear,
			shared.ErrFutureAdmission, "рік вступу не може бути в майбутньому")
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// AdmissionYear возвращает год поступления.
func (s *Student) AdmissionYear() shared.Year { return s.admissionYear }

// Specialty возвращает специальность.
func (s *Student) Specialty() string { return s.specialty }

// YearsSinceAdmission возвращает число лет с момента поступления.
// В отличие от Age месяц не учитывается.
func (s *Student) YearsSinceAdmission(asOf time.Time) int {
	return asOf.Year() - s.admissionYear.Int()
}

// Details возвращает сначала поля человека, затем год поступления и специальность.
func (s *Student) Details() []shared.Detail {
	return append(s.Fields.Details(),
		shared.Detail{Label: "Рік вступу до ВУЗу", Value: s.admissionYear.String()},
		shared.Detail{Label: "Спеціальність", Value: s.specialty},
	)
}

// String возвращает строковое представление студента для логирования.
func (s *Student) String() string {
	return fmt.Sprintf("Student{%s, admitted: %d, specialty: %s}",
		s.FullName(), s.admissionYear, s.specialty)
}
