package catalog

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// Service реализует CRUD и полнотекстовый поиск по каталогу товаров,
// а заодно выступает read-портом domain.Catalog для движка заказов.
type Service struct {
	repo   domain.ProductRepository
	logger *log.Entry
}

// Patch описывает частичное обновление записи каталога: nil-поля не трогаются.
type Patch struct {
	Name        *string
	Price       *float64
	VAT         *float64
	Description *string
}

// NewService конструирует сервис каталога.
func NewService(repo domain.ProductRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "catalog")
	}
	return &Service{repo: repo, logger: logger}
}

// Create валидирует запись, назначает ей свежий product_id и сохраняет.
func (s *Service) Create(product domain.Product) (domain.Product, error) {
	product.ID = uuid.NewString()

	if errs := product.ValidateInvariants(); len(errs) > 0 {
		return domain.Product{}, errors.Join(errs...)
	}

	if err := s.repo.Create(product); err != nil {
		s.logger.WithError(err).WithField("product_id", product.ID).Error("failed to persist product")
		return domain.Product{}, fmt.Errorf("persist product: %w", err)
	}

	return product, nil
}

// Get возвращает товар по идентификатору.
func (s *Service) Get(id string) (domain.Product, error) {
	product, err := s.repo.Get(id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, err)
	}
	return product, nil
}

// Find возвращает товары, чьё имя содержит name без учёта регистра.
// Пустой запрос возвращает весь каталог.
func (s *Service) Find(name string) ([]domain.Product, error) {
	products, err := s.repo.FindByName(name)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	return products, nil
}

// Update накладывает частичные изменения на существующую запись.
func (s *Service) Update(id string, patch Patch) (domain.Product, error) {
	product, err := s.repo.Get(id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, err)
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.VAT != nil {
		product.VAT = *patch.VAT
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}

	if errs := product.ValidateInvariants(); len(errs) > 0 {
		return domain.Product{}, errors.Join(errs...)
	}

	if err := s.repo.Save(product); err != nil {
		s.logger.WithError(err).WithField("product_id", id).Error("failed to save product")
		return domain.Product{}, fmt.Errorf("save product %s: %w", id, err)
	}

	return product, nil
}

// Delete удаляет товар и сообщает, была ли запись удалена. Заказы, уже
// ссылающиеся на товар, не проверяются: их следующее чтение вернёт ошибку.
func (s *Service) Delete(id string) (bool, error) {
	removed, err := s.repo.Delete(id)
	if err != nil {
		return false, fmt.Errorf("delete product %s: %w", id, err)
	}
	return removed, nil
}

// Lookup реализует domain.Catalog для движка заказов.
func (s *Service) Lookup(productID string) (domain.Product, error) {
	return s.repo.Get(productID)
}

var _ domain.Catalog = (*Service)(nil)
