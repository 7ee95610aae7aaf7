package person

import (
	"context"
	"iter"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Реализации находятся в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции над коллекцией людей.
// Порядок добавления сохраняется, уникальность полей не требуется.
type Repository interface {
	// Add добавляет человека в конец коллекции.
	// Возвращает shared.ErrPrecondition, если person == nil.
	Add(ctx context.Context, person *Person) error

	// GetAll возвращает копию коллекции в порядке добавления.
	GetAll(ctx context.Context) ([]*Person, error)

	// FindAllByName лениво отбирает людей с указанным именем (без учёта регистра).
	FindAllByName(ctx context.Context, name string) iter.Seq[*Person]

	// FindAllBySurname лениво отбирает людей с указанной фамилией (без учёта регистра).
	FindAllBySurname(ctx context.Context, surname string) iter.Seq[*Person]

	// Count возвращает количество людей.
	Count(ctx context.Context) (int, error)
}
