package student

import (
	"context"
	"iter"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Эти интерфейсы определяют контракт для работы с хранилищем студентов.
// Реализации находятся в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции над коллекцией студентов.
type Repository interface {
	// Add добавляет студента в конец коллекции.
	// Возвращает shared.ErrPrecondition, если student == nil.
	Add(ctx context.Context, student *Student) error

	// GetAll возвращает копию коллекции в порядке добавления.
	GetAll(ctx context.Context) ([]*Student, error)

	// FindAllByName лениво отбирает студентов с указанным именем (без учёта регистра).
	FindAllByName(ctx context.Context, name string) iter.Seq[*Student]

	// FindAllBySpecialty лениво отбирает студентов указанной специальности.
	FindAllBySpecialty(ctx context.Context, specialty string) iter.Seq[*Student]

	// Count возвращает количество студентов.
	Count(ctx context.Context) (int, error)
}
