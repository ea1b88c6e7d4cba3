package repository

import (
	"context"

	"github.com/conecta-coleta/internal/domain"
)

// DisposalPointRepository определяет методы для работы с каталогом пунктов приёма
type DisposalPointRepository interface {
	// List возвращает пункты каталога; пустая категория - все пункты
	List(ctx context.Context, category domain.DisposalCategory) ([]domain.DisposalPoint, error)

	// GetByID возвращает пункт по ID
	GetByID(ctx context.Context, id string) (*domain.DisposalPoint, error)

	// Upsert создаёт или обновляет пункт
	Upsert(ctx context.Context, point *domain.DisposalPoint) error
}
