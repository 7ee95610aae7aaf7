package person

import (
	"github.com/alem-hub/person-registry/internal/domain/shared"
)

// Builder пошагово собирает Person.
//
// Сеттеры возвращают сам строитель, поэтому вызовы можно объединять в цепочку.
// Месяц и год проверяются сразу; первая ошибка запоминается, последующие
// сеттеры игнорируются, а Build возвращает эту ошибку.
//
// Строитель одноразовый: повторный Build или сеттер после Build
// дают shared.ErrBuilderConsumed.
type Builder struct {
	params Params
	err    error
	built  bool
}

// Сообщения ошибок строителя.
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
		b.params.Name = name
	}
	return b
}

// SetSurname задаёт фамилию.
func (b *Builder) SetSurname(surname string) *Builder {
	if b.accepts() {
		b.params.Surname = surname
	}
	return b
}

// SetPatronymic задаёт отчество.
func (b *Builder) SetPatronymic(patronymic string) *Builder {
	if b.accepts() {
		b.params.Patronymic = patronymic
	}
	return b
}

// SetBirthMonth задаёт месяц рождения (1-12).
func (b *Builder) SetBirthMonth(month int) *Builder {
	if !b.accepts() {
		return b
	}
	if err := ValidateBirthMonth(Domain, "SetBirthMonth", month); err != nil {
		b.err = err
		return b
	}
	b.params.BirthMonth = month
	return b
}

// SetBirthYear задаёт год рождения (1900..текущий год).
func (b *Builder) SetBirthYear(year int) *Builder {
	if !b.accepts() {
		return b
	}
	if err := ValidateBirthYear(Domain, "SetBirthYear", year); err != nil {
		b.err = err
		return b
	}
	b.params.BirthYear = year
	return b
}

// Err возвращает первую ошибку, записанную сеттерами.
func (b *Builder) Err() error {
	return b.err
}

// Build проверяет полноту и создаёт Person через NewPerson.
func (b *Builder) Build() (*Person, error) {
	if b.built {
		return nil, shared.NewDomainError(Domain, "Build", shared.ErrBuilderConsumed, msgBuilderConsumed)
	}
	b.built = true

	if b.err != nil {
		return nil, b.err
	}
	if field := MissingField(b.params); field != "" {
		return nil, shared.NewFieldError(Domain, "Build", field, shared.ErrIncompleteBuilder, msgFieldNotSet+field)
	}

	return NewPerson(b.params)
}

func (b *Builder) accepts() bool {
	if b.built && b.err == nil {
		b.err = shared.NewDomainError(Domain, "Set", shared.ErrBuilderConsumed, msgBuilderConsumed)
	}
	return b.err == nil
}

// MissingField возвращает первое незаданное поле в порядке объявления
// или пустую строку, если заданы все.
func MissingField(p Params) string {
	switch {
	case p.Name == "":
		return FieldName
	case p.Surname == "":
		return FieldSurname
	case p.Patronymic == "":
		return FieldPatronymic
	case p.BirthMonth == 0:
		return FieldBirthMonth
	case p.BirthYear == 0:
		return FieldBirthYear
	default:
		return ""
	}
}
