package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultShutdownTimeout - сколько ждать воркеры при остановке
const DefaultShutdownTimeout = 30 * time.Second

// Manager запускает зарегистрированные воркеры и останавливает их вместе с сервером
type Manager struct {
	workers []Worker
	logger  *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
	mu      sync.Mutex
}

func NewManager(logger *zap.Logger, timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}
	return &Manager{
		logger:  logger,
		timeout: timeout,
	}
}

func (m *Manager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Debug("Worker registered", zap.String("name", w.Name()))
}

// Start запускает каждый воркер в своей горутине и сразу возвращается
func (m *Manager) Start(ctx context.Context) error {
	workers := m.snapshot()
	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	for _, w := range workers {
		m.wg.Add(1)
		go func(w Worker) {
			defer m.wg.Done()

			if err := w.Start(ctx); err != nil {
				m.logger.Error("Worker failed", zap.String("name", w.Name()), zap.Error(err))
				return
			}
			m.logger.Debug("Worker finished", zap.String("name", w.Name()))
		}(w)
	}

	return nil
}

// Stop сигнализирует всем воркерам и ждёт их не дольше timeout
func (m *Manager) Stop() error {
	for _, w := range m.snapshot() {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker", zap.String("name", w.Name()), zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(m.timeout):
		m.logger.Warn("Workers shutdown timed out", zap.Duration("timeout", m.timeout))
		return fmt.Errorf("workers shutdown timed out after %v", m.timeout)
	}
}

func (m *Manager) snapshot() []Worker {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Worker, len(m.workers))
	copy(out, m.workers)
	return out
}
