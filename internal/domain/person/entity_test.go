package person

import (
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/person-registry/internal/domain/shared"
	"github.com/alem-hub/person-registry/pkg/timeutil"
)

func ivanParams() Params {
	return Params{
		Name:       "Іван",
		Surname:    "Петренко",
		Patronymic: "Олександрович",
		BirthMonth: 3,
		BirthYear:  1985,
	}
}

func TestNewPerson_Valid(t *testing.T) {
	p, err := NewPerson(ivanParams())
	require.NoError(t, err)

	assert.Equal(t, "Іван", p.Name())
	assert.Equal(t, "Петренко", p.Surname())
	assert.Equal(t, "Олександрович", p.Patronymic())
	assert.Equal(t, shared.Month(3), p.BirthMonth())
	assert.Equal(t, shared.Year(1985), p.BirthYear())
}

func TestNewPerson_TrimsFields(t *testing.T) {
	params := ivanParams()
	params.Name = "  Іван "
	p, err := NewPerson(params)
	require.NoError(t, err)
	assert.Equal(t, "Іван", p.Name())
}

func TestNewPerson_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		kind   error
		field  string
	}{
		{"empty name", func(p *Params) { p.Name = "" }, shared.ErrEmptyValue, FieldName},
		{"blank surname", func(p *Params) { p.Surname = " \t" }, shared.ErrEmptyValue, FieldSurname},
		{"blank patronymic", func(p *Params) { p.Patronymic = "\n" }, shared.ErrEmptyValue, FieldPatronymic},
		{"month zero", func(p *Params) { p.BirthMonth = 0 }, shared.ErrValueOutOfRange, FieldBirthMonth},
		{"month thirteen", func(p *Params) { p.BirthMonth = 13 }, shared.ErrValueOutOfRange, FieldBirthMonth},
		{"year too early", func(p *Params) { p.BirthYear = 1899 }, shared.ErrValueOutOfRange, FieldBirthYear},
		{"year in future", func(p *Params) { p.BirthYear = timeutil.CurrentYear() + 1 }, shared.ErrValueOutOfRange, FieldBirthYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := ivanParams()
			tt.mutate(&params)

			p, err := NewPerson(params)
			assert.Nil(t, p)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.True(t, shared.IsValidation(err))
			assert.Equal(t, tt.field, shared.FieldOf(err))
		})
	}
}

func TestNewPerson_BoundaryYears(t *testing.T) {
	params := ivanParams()
	params.BirthYear = 1900
	_, err := NewPerson(params)
	assert.NoError(t, err)

	params.BirthYear = timeutil.CurrentYear()
	_, err = NewPerson(params)
	assert.NoError(t, err)
}

func TestPerson_Age(t *testing.T) {
	p, err := NewPerson(ivanParams())
	require.NoError(t, err)

	assert.Equal(t, 39, p.Age(timeutil.Date(2025, 1, 15)))
	assert.Equal(t, 40, p.Age(timeutil.Date(2025, 4, 1)))
	// Birth month itself counts as reached; days are not considered.
	assert.Equal(t, 40, p.Age(timeutil.Date(2025, 3, 1)))
}

func TestPerson_AgeProperty(t *testing.T) {
	p, err := NewPerson(ivanParams())
	require.NoError(t, err)

	for year := 1990; year <= 2030; year += 7 {
		for month := time.January; month <= time.December; month++ {
			asOf := time.Date(year, month, 10, 0, 0, 0, 0, time.UTC)
			want := year - 1985
			if int(month) < 3 {
				want--
			}
			assert.Equal(t, want, p.Age(asOf), "as of %s", asOf.Format("2006-01"))
		}
	}
}

func naiveCount(s string, letter rune) int {
	n := 0
	for _, r := range s {
		if unicode.ToLower(r) == unicode.ToLower(letter) {
			n++
		}
	}
	return n
}

func TestPerson_CountLetterInSurname(t *testing.T) {
	params := ivanParams()
	params.Surname = "Шевченко"
	p, err := NewPerson(params)
	require.NoError(t, err)

	assert.Equal(t, 2, p.CountLetterInSurname('е'))
	assert.Equal(t, 2, p.CountLetterInSurname('Е'))
	assert.Equal(t, 1, p.CountLetterInSurname('ш'))
	assert.Equal(t, 0, p.CountLetterInSurname('x'))

	for _, r := range "шевченкоШЕВЧЕНКОabc" {
		assert.Equal(t, naiveCount(p.Surname(), r), p.CountLetterInSurname(r), "letter %q", r)
	}
}

func TestFields_CountLetterInEmptySurname(t *testing.T) {
	var f Fields
	assert.Equal(t, 0, f.CountLetterInSurname('x'))
}

func TestPerson_Details(t *testing.T) {
	p, err := NewPerson(ivanParams())
	require.NoError(t, err)

	details := p.Details()
	require.Len(t, details, 5)
	assert.Equal(t, shared.Detail{Label: "Ім'я", Value: "Іван"}, details[0])
	assert.Equal(t, shared.Detail{Label: "Місяць народження", Value: "3"}, details[3])
	assert.Equal(t, shared.Detail{Label: "Рік народження", Value: "1985"}, details[4])
}

func TestPerson_String(t *testing.T) {
	p, err := NewPerson(ivanParams())
	require.NoError(t, err)
	assert.True(t, strings.Contains(p.String(), "Петренко Іван Олександрович"))
}
