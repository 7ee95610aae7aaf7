// Package person содержит доменную модель "Людина": набор личных полей,
// сущность Person, её строитель и контракт репозитория.
// Внешних зависимостей, кроме shared, нет.
package person

import (
	"fmt"
	"strings"
	"time"

	"github.com/alem-hub/person-registry/internal/domain/shared"
	"github.com/alem-hub/person-registry/pkg/timeutil"
)

// Domain - имя домена в ошибках.
const Domain = "person"

// Названия полей, используемые в ошибках валидации и строителях.
const (
	FieldName       = "name"
	FieldSurname    = "surname"
	FieldPatronymic = "patronymic"
	FieldBirthMonth = "birth_month"
	FieldBirthYear  = "birth_year"
)

// ══════════════════════════════════════════════════════════════════════════════
// FIELDS
// ══════════════════════════════════════════════════════════════════════════════

// Fields - общий набор полей человека. Встраивается в Person и student.Student.
// После создания не изменяется: поля закрыты, доступ только через методы.
type Fields struct {
	name       string
	surname    string
	patronymic string
	birthMonth shared.Month
	birthYear  shared.Year
}

// Params содержит параметры для создания человека.
type Params struct {
	Name       string
	Surname    string
	Patronymic string
	BirthMonth int
	BirthYear  int
}

// NewFields валидирует параметры и создаёт набор полей.
// domain подставляется в ошибки, чтобы student мог переиспользовать проверки.
func NewFields(domain string, p Params) (Fields, error) {
	const op = "Create"

	if shared.IsBlank(p.Name) {
		return Fields{}, shared.NewFieldError(domain, op, FieldName, shared.ErrEmptyValue, "ім'я не може бути порожнім")
	}
	if shared.IsBlank(p.Surname) {
		return Fields{}, shared.NewFieldError(domain, op, FieldSurname, shared.ErrEmptyValue, "прізвище не може бути порожнім")
	}
	if shared.IsBlank(p.Patronymic) {
		return Fields{}, shared.NewFieldError(domain, op, FieldPatronymic, shared.ErrEmptyValue, "по-батькові не може бути порожнім")
	}
	if err := ValidateBirthMonth(domain, op, p.BirthMonth); err != nil {
		return Fields{}, err
	}
	if err := ValidateBirthYear(domain, op, p.BirthYear); err != nil {
		return Fields{}, err
	}

	return Fields{
		name:       strings.TrimSpace(p.Name),
		surname:    strings.TrimSpace(p.Surname),
		patronymic: strings.TrimSpace(p.Patronymic),
		birthMonth: shared.Month(p.BirthMonth),
		birthYear:  shared.Year(p.BirthYear),
	}, nil
}

// ValidateBirthMonth проверяет, что месяц в диапазоне 1..12.
func ValidateBirthMonth(domain, op string, month int) error {
	if !shared.Month(month).IsValid() {
		return shared.NewFieldError(domain, op, FieldBirthMonth, shared.ErrValueOutOfRange, "місяць має бути від 1 до 12")
	}
	return nil
}

// ValidateBirthYear проверяет, что год рождения в диапазоне 1900..текущий год.
func ValidateBirthYear(domain, op string, year int) error {
	if !shared.Year(year).InRange(shared.MinBirthYear, timeutil.CurrentYear()) {
		return shared.NewFieldError(domain, op, FieldBirthYear, shared.ErrValueOutOfRange, "рік народження некоректний")
	}
	return nil
}

// Name возвращает имя.
func (f Fields) Name() string { return f.name }

// Surname возвращает фамилию.
func (f Fields) Surname() string { return f.surname }

// Patronymic возвращает отчество.
func (f Fields) Patronymic() string { return f.patronymic }

// BirthMonth возвращает месяц рождения.
func (f Fields) BirthMonth() shared.Month { return f.birthMonth }

// BirthYear возвращает год рождения.
func (f Fields) BirthYear() shared.Year { return f.birthYear }

// SurnameValue возвращает фамилию (для shared.Record).
func (f Fields) SurnameValue() string { return f.surname }

// Age возвращает полный возраст на дату asOf.
// Учитывается только месяц: если месяц рождения ещё не наступил, вычитается год.
func (f Fields) Age(asOf time.Time) int {
	age := asOf.Year() - f.birthYear.Int()
	if int(asOf.Month()) < f.birthMonth.Int() {
		age--
	}
	return age
}

// CountLetterInSurname считает вхождения буквы в фамилии без учёта регистра.
func (f Fields) CountLetterInSurname(letter rune) int {
	return shared.CountFold(f.surname, letter)
}

// Details возвращает поля человека в порядке вывода.
func (f Fields) Details() []shared.Detail {
	return []shared.Detail{
		{Label: "Ім'я", Value: f.name},
		{Label: "Прізвище", Value: f.surname},
		{Label: "По-батькові", Value: f.patronymic},
		{Label: "Місяць народження", Value: f.birthMonth.String()},
		{Label: "Рік народження", Value: f.birthYear.String()},
	}
}

// FullName возвращает "Фамилия Имя Отчество".
func (f Fields) FullName() string {
	return f.surname + " " + f.name + " " + f.patronymic
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: PERSON
// ══════════════════════════════════════════════════════════════════════════════

// Person - базовая сущность "Людина".
type Person struct {
	Fields
}

var _ shared.Record = (*Person)(nil)

// NewPerson создаёт человека с валидацией всех полей.
func NewPerson(p Params) (*Person, error) {
	fields, err := NewFields(Domain, p)
	if err != nil {
		return nil, err
	}
	return &Person{Fields: fields}, nil
}

// String возвращает строковое представление для логирования.
func (p *Person) String() string {
	return fmt.Sprintf("Person{%s, born: %02d.%d}", p.FullName(), p.birthMonth, p.birthYear)
}
