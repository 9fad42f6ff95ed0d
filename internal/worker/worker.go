package worker

import (
	"context"
)

// Worker - фоновая задача с жизненным циклом процесса
type Worker interface {
	// Start блокируется до завершения работы или отмены ctx
	Start(ctx context.Context) error

	// Stop просит воркер завершиться; повторный вызов безопасен
	Stop() error

	Name() string
}
