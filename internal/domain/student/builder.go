package student

import (
	"github.com/alem-hub/person-registry/internal/domain/person"
	"github.com/alem-hub/person-registry/internal/domain/shared"
)

// Builder пошагово собирает Student.
// Правила те же, что у person.Builder: ранняя проверка месяца и годов,
// первая ошибка запоминается, строитель одноразовый.
type Builder struct {
	params Params
	err    error
	built  bool
}

const (
	msgBuilderConsumed = "будівельник можна використати лише один раз"
	msgFieldNotSet     = "обов'язкове поле не задано: "
)

// NewBuilder создаёт пустой строитель.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetName задаёт имя.
func (b *Builder) SetName(name string) *Builder {
	if b.accepts() {
		b.params.Person.Name = name
	}
	return b
}

// SetSurname задаёт фамилию.
func (b *Builder) SetSurname(surname string) *Builder {
	if b.accepts() {
		b.params.Person.Surname = surname
	}
	return b
}

// SetPatronymic задаёт отчество.
func (b *Builder) SetPatronymic(patronymic string) *Builder {
	if b.accepts() {
		b.params.Person.Patronymic = patronymic
	}
	return b
}

// SetBirthMonth задаёт месяц рождения (1-12).
func (b *Builder) SetBirthMonth(month int) *Builder {
	if !b.accepts() {
		return b
	}
	if err := person.ValidateBirthMonth(Domain, "SetBirthMonth", month); err != nil {
		b.err = err
		return b
	}
	b.params.Person.BirthMonth = month
	return b
}

// SetBirthYear задаёт год рождения (1900..текущий год).
func (b *Builder) SetBirthYear(year int) *Builder {
	if !b.accepts() {
		return b
	}
	if err := person.ValidateBirthYear(Domain, "SetBirthYear", year); err != nil {
		b.err = err
		return b
	}
	b.params.Person.BirthYear = year
	return b
}

// SetAdmissionYear задаёт год поступления; год из будущего отклоняется сразу.
func (b *Builder) SetAdmissionYear(year int) *Builder {
	if !b.accepts() {
		return b
	}
	if err := ValidateAdmissionYear("SetAdmissionYear", year); err != nil {
		b.err = err
		return b
	}
	b.params.AdmissionYear = year
	return b
}

// SetSpecialty задаёт специальность.
func (b *Builder) SetSpecialty(specialty string) *Builder {
	if b.accepts() {
		b.params.Specialty = specialty
	}
	return b
}

// Err возвращает первую ошибку, записанную сеттерами.
func (b *Builder) Err() error {
	return b.err
}

// Build проверяет полноту и создаёт Student через NewStudent,
// где повторно проверяются межполевые инварианты.
func (b *Builder) Build() (*Student, error) {
	if b.built {
		return nil, shared.NewDomainError(Domain, "Build", shared.ErrBuilderConsumed, msgBuilderConsumed)
	}
	b.built = true

	if b.err != nil {
		return nil, b.err
	}
	if field := b.missingField(); field != "" {
		return nil, shared.NewFieldError(Domain, "Build", field, shared.ErrIncompleteBuilder, msgFieldNotSet+field)
	}

	return NewStudent(b.params)
}

func (b *Builder) missingField() string {
	if field := person.MissingField(b.params.Person); field != "" {
		return field
	}
	switch {
	case b.params.AdmissionYear == 0:
		return FieldAdmissionYear
	case b.params.Specialty == "":
		return FieldSpecialty
	default:
		return ""
	}
}

func (b *Builder) accepts() bool {
	if b.built && b.err == nil {
		b.err = shared.NewDomainError(Domain, "Set", shared.ErrBuilderConsumed, msgBuilderConsumed)
	}
	return b.err == nil
}
