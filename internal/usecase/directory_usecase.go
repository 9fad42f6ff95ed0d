package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/winery-map/internal/domain"
	"github.com/winery-map/internal/domain/repository"
	"github.com/winery-map/internal/pkg/errors"
	"go.uber.org/zap"
)

// FetchRecorder получает результат загрузки записей (метрики)
type FetchRecorder interface {
	ObserveFetch(duration time.Duration, records int, err error)
}

// DirectoryUseCase - сессия данных: одна загрузка записей, без повторов.
// Состояние всегда одно из loading, errored, ready.
type DirectoryUseCase struct {
	recordRepo repository.RecordRepository
	normalizer *Normalizer
	recorder   FetchRecorder
	logger     *zap.Logger
	limit      int

	once      sync.Once
	done      chan struct{}
	mu        sync.RWMutex
	sessionID string
	state     domain.LoadState
	records   *domain.RecordSet
	errMsg    string
}

func NewDirectoryUseCase(
	recordRepo repository.RecordRepository,
	normalizer *Normalizer,
	recorder FetchRecorder,
	logger *zap.Logger,
	limit int,
) *DirectoryUseCase {
	return &DirectoryUseCase{
		recordRepo: recordRepo,
		normalizer: normalizer,
		recorder:   recorder,
		logger:     logger,
		limit:      limit,
		done:       make(chan struct{}),
		sessionID:  uuid.NewString(),
		state:      domain.StateLoading,
	}
}

// Load выполняет загрузку ровно один раз за сессию.
// Ошибка загрузки терминальна: повторные вызовы не ходят в хранилище.
func (uc *DirectoryUseCase) Load(ctx context.Context) {
	uc.once.Do(func() {
		defer close(uc.done)
		uc.fetch(ctx)
	})
}

// Wait блокируется до завершения загрузки или отмены ctx
func (uc *DirectoryUseCase) Wait(ctx context.Context) error {
	select {
	case <-uc.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (uc *DirectoryUseCase) fetch(ctx context.Context) {
	log := uc.logger.With(zap.String("session_id", uc.sessionID))
	log.Info("Fetching wineries", zap.Int("limit", uc.limit))

	start := time.Now()
	docs, err := uc.recordRepo.FetchRecords(ctx, uc.limit)
	elapsed := time.Since(start)

	if uc.recorder != nil {
		uc.recorder.ObserveFetch(elapsed, len(docs), err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err != nil {
		log.Error("Failed to fetch wineries", zap.Error(err), zap.Duration("elapsed", elapsed))
		uc.state = domain.StateErrored
		uc.errMsg = errors.ErrFetchFailed.Message
		return
	}

	uc.records = &domain.RecordSet{
		SessionID: uc.sessionID,
		Docs:      docs,
		FetchedAt: time.Now(),
	}
	uc.state = domain.StateReady

	log.Info("Wineries loaded",
		zap.Int("records", len(docs)),
		zap.Duration("elapsed", elapsed))
}

// Snapshot - текущее состояние сессии; коллекция берётся из мемоизированного нормализатора
func (uc *DirectoryUseCase) Snapshot() domain.Snapshot {
	uc.mu.RLock()
	state, records, errMsg := uc.state, uc.records, uc.errMsg
	uc.mu.RUnlock()

	snap := domain.Snapshot{
		SessionID: uc.sessionID,
		State:     state,
		Error:     errMsg,
	}
	if state == domain.StateReady {
		snap.Collection = uc.normalizer.Collection(records)
	}

	return snap
}

// Collection возвращает коллекцию либо ошибку приложения для loading/errored
func (uc *DirectoryUseCase) Collection() (*domain.SpatialCollection, error) {
	snap := uc.Snapshot()

	switch snap.State {
	case domain.StateLoading:
		return nil, errors.ErrDataLoading
	case domain.StateErrored:
		return nil, errors.ErrFetchFailed
	default:
		return snap.Collection, nil
	}
}
