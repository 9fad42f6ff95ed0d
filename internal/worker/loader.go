package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Loader - источник данных сессии, загружаемый один раз
type Loader interface {
	Load(ctx context.Context)
}

// LoaderWorker выполняет единственную загрузку данных сессии в фоне.
// Stop отменяет запрос к хранилищу, если он ещё идёт.
type LoaderWorker struct {
	name   string
	loader Loader
	logger *zap.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
}

func NewLoaderWorker(name string, loader Loader, logger *zap.Logger) *LoaderWorker {
	return &LoaderWorker{
		name:   name,
		loader: loader,
		logger: logger,
	}
}

func (w *LoaderWorker) Name() string {
	return w.name
}

func (w *LoaderWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	ctx, w.cancel = context.WithCancel(ctx)
	cancel := w.cancel
	w.mu.Unlock()
	defer cancel()

	w.loader.Load(ctx)
	return nil
}

func (w *LoaderWorker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	if w.cancel != nil {
		w.logger.Info("Stopping worker", zap.String("name", w.name))
		w.cancel()
	}
	return nil
}
