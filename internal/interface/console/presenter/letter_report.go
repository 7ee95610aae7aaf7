package presenter

import (
	"fmt"
	"strings"

	"github.com/alem-hub/person-registry/internal/application/query"
)

// ─────────────────────────────────────────────────────────────────────────────
// LETTER REPORT
// ─────────────────────────────────────────────────────────────────────────────

// FormatLetterReport renders the per-surname counts for people and students.
func FormatLetterReport(res *query.CountLettersResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nЛітера '%c' в прізвищах людей:\n", res.Letter)
	writeCounts(&sb, res.People)

	fmt.Fprintf(&sb, "\nЛітера '%c' в прізвищах студентів:\n", res.Letter)
	writeCounts(&sb, res.Students)

	return sb.String()
}

func writeCounts(sb *strings.Builder, counts []query.LetterCount) {
	for _, c := range counts {
		fmt.Fprintf(sb, "%s: %d разів\n", c.Surname, c.Count)
	}
}

// FormatSearchResult renders matches of a registry search.
func FormatSearchResult(res *query.FindRecordsResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Знайдено записів: %d\n", res.Total())
	for _, p := range res.People {
		fmt.Fprintf(&sb, "[людина] %s\n", p.FullName())
	}
	for _, s := range res.Students {
		fmt.Fprintf(&sb, "[студент] %s, %s\n", s.FullName(), s.Specialty())
	}
	return sb.String()
}
