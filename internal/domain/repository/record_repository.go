package repository

import (
	"context"

	"github.com/winery-map/internal/domain"
)

// RecordRepository определяет доступ к внешнему хранилищу записей
type RecordRepository interface {
	// FetchRecords возвращает до limit сырых записей коллекции.
	// Отсутствие массива docs в ответе - это ноль записей, а не ошибка.
	FetchRecords(ctx context.Context, limit int) ([]domain.RawRecord, error)
}
