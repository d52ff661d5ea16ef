package app

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/orders/internal/health"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
	"github.com/vladislavdragonenkov/orders/internal/storage/postgres"
)

// storageSet объединяет репозитории и, при наличии, подключение к PostgreSQL.
type storageSet struct {
	Orders   domain.OrderRepository
	Products domain.ProductRepository
	Store    *postgres.Store
}

// initStorage выбирает хранилище: PostgreSQL при непустом DSN (со схемой,
// применённой на старте), иначе in-memory — эталонное поведение сервиса.
func initStorage(ctx context.Context, dsn string, logger *log.Entry) (*storageSet, error) {
	if dsn == "" {
		logger.Info("using in-memory storage")
		return &storageSet{
			Orders:   memory.NewOrderRepository(),
			Products: memory.NewProductRepository(),
		}, nil
	}

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	logger.Info("using postgres storage")
	return &storageSet{
		Orders:   postgres.NewOrderRepository(store),
		Products: postgres.NewProductRepository(store),
		Store:    store,
	}, nil
}

// Close освобождает ресурсы хранилища.
func (s *storageSet) Close(logger *log.Entry) {
	if s.Store == nil {
		return
	}
	if err := s.Store.Close(); err != nil {
		logger.WithError(err).Warn("failed to close postgres store")
	}
}

// registerStorageChecker добавляет ping-проверку PostgreSQL в health handler.
func (s *storageSet) registerStorageChecker(handler *healthcheck.Handler) {
	if s.Store == nil {
		return
	}
	handler.RegisterChecker("postgres", healthcheck.NewSimpleChecker("postgres", func() error {
		return s.Store.Ping(context.Background())
	}))
}
