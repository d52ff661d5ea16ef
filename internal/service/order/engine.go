package order

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orders/internal/metrics"
)

// Engine владеет коллекцией заказов и реализует четыре операции ядра:
// создание, чтение расчётного представления, обновление и удаление.
// От каталога Engine зависит только через domain.Catalog.Lookup и никогда
// не изменяет каталог.
type Engine struct {
	// mu сериализует последовательности read-modify-write в Create/Update/
	// Delete: merge → валидация → запись не атомарны относительно
	// конкурентной мутации того же order_id.
	mu sync.Mutex

	repo    domain.OrderRepository
	catalog domain.Catalog
	events  domain.EventPublisher
	metrics *metrics.OrderMetrics
	logger  *log.Entry
}

// NewEngine конструирует движок заказов. events и m опциональны.
func NewEngine(
	repo domain.OrderRepository,
	catalog domain.Catalog,
	events domain.EventPublisher,
	m *metrics.OrderMetrics,
	logger *log.Entry,
) *Engine {
	if logger == nil {
		logger = log.WithField("component", "order-engine")
	}
	return &Engine{
		repo:    repo,
		catalog: catalog,
		events:  events,
		metrics: m,
		logger:  logger,
	}
}

// Create сливает дубликаты позиций, проверяет каждый товар по каталогу,
// сохраняет заказ и возвращает его расчётное представление через Get —
// создание и чтение делят один путь расчёта цен.
func (e *Engine) Create(items []domain.LineItem) (domain.PricedOrder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := time.Now().UTC()
	order := domain.Order{
		ID:        uuid.NewString(),
		Items:     domain.MergeLineItems(items),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		e.recordValidationFailure()
		return domain.PricedOrder{}, errors.Join(errs...)
	}

	if err := e.checkCatalog(order.Items); err != nil {
		e.recordValidationFailure()
		return domain.PricedOrder{}, err
	}

	if err := e.repo.Create(order); err != nil {
		e.logger.WithError(err).WithField("order_id", order.ID).Error("failed to persist order")
		return domain.PricedOrder{}, fmt.Errorf("persist order: %w", err)
	}

	if e.metrics != nil {
		e.metrics.RecordOrderCreated()
	}
	e.publish(kafka.EventTypeOrderCreated, order)

	return e.priceOrder(order)
}

// Get возвращает расчётное представление заказа, перечитывая каждый товар
// из каталога. Цены никогда не кэшируются на заказе: изменение или удаление
// товара в каталоге видно при следующем чтении.
func (e *Engine) Get(id string) (domain.PricedOrder, error) {
	order, err := e.repo.Get(id)
	if err != nil {
		return domain.PricedOrder{}, fmt.Errorf("order %s: %w", id, err)
	}
	return e.priceOrder(order)
}

// Update заменяет позиции заказа целиком, сохраняя order_id.
// Пустой список позиций — no-op: возвращается текущее представление,
// заказ не затирается. Любая ошибка валидации оставляет прежнее
// состояние нетронутым.
func (e *Engine) Update(id string, items []domain.LineItem) (domain.PricedOrder, error) {
	if len(items) == 0 {
		return e.Get(id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	order, err := e.repo.Get(id)
	if err != nil {
		return domain.PricedOrder{}, fmt.Errorf("order %s: %w", id, err)
	}

	candidate := order
	candidate.Items = domain.MergeLineItems(items)
	candidate.UpdatedAt = time.Now().UTC()

	if errs := candidate.ValidateInvariants(); len(errs) > 0 {
		e.recordValidationFailure()
		return domain.PricedOrder{}, errors.Join(errs...)
	}

	if err := e.checkCatalog(candidate.Items); err != nil {
		e.recordValidationFailure()
		return domain.PricedOrder{}, err
	}

	if err := e.repo.Save(candidate); err != nil {
		e.logger.WithError(err).WithField("order_id", id).Error("failed to save order")
		return domain.PricedOrder{}, fmt.Errorf("save order %s: %w", id, err)
	}

	if e.metrics != nil {
		e.metrics.RecordOrderUpdated()
	}
	e.publish(kafka.EventTypeOrderUpdated, candidate)

	return e.priceOrder(candidate)
}

// Delete удаляет заказ, если он есть, и сообщает, произошло ли удаление.
// Отсутствие заказа ошибкой не считается: отображение removed=false в
// not-found — забота транспортного слоя.
func (e *Engine) Delete(id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed, err := e.repo.Delete(id)
	if err != nil {
		e.logger.WithError(err).WithField("order_id", id).Error("failed to delete order")
		return false, fmt.Errorf("delete order %s: %w", id, err)
	}

	if removed {
		if e.metrics != nil {
			e.metrics.RecordOrderDeleted()
		}
		e.publish(kafka.EventTypeOrderDeleted, domain.Order{ID: id})
	}

	return removed, nil
}

// checkCatalog проверяет, что каждый product_id известен каталогу.
// Первый же промах прерывает операцию целиком: частичное применение запрещено.
func (e *Engine) checkCatalog(items []domain.LineItem) error {
	for _, item := range items {
		if _, err := e.catalog.Lookup(item.ProductID); err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return fmt.Errorf("product %s: %w", item.ProductID, domain.ErrProductNotFound)
			}
			return fmt.Errorf("catalog lookup %s: %w", item.ProductID, err)
		}
	}
	return nil
}

// priceOrder вычисляет расчётное представление из актуального каталога.
// НДС округляется на каждой позиции до суммирования; порядок позиций
// сохраняется как в хранимом заказе.
func (e *Engine) priceOrder(order domain.Order) (domain.PricedOrder, error) {
	started := time.Now()

	priced := domain.PricedOrder{
		OrderID: order.ID,
		Items:   make([]domain.PricedLineItem, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		product, err := e.catalog.Lookup(item.ProductID)
		if err != nil {
			// Каталог "уехал" после создания заказа. Наблюдаемое поведение
			// сохраняем: ошибка того же класса, что и некорректный ввод.
			if errors.Is(err, domain.ErrProductNotFound) {
				return domain.PricedOrder{}, fmt.Errorf(
					"order %s references missing product %s: %w",
					order.ID, item.ProductID, domain.ErrProductNotFound,
				)
			}
			return domain.PricedOrder{}, fmt.Errorf("catalog lookup %s: %w", item.ProductID, err)
		}

		linePrice := item.Quantity * product.Price
		lineVAT := domain.Round2(item.Quantity * product.Price * product.VAT)

		priced.Items = append(priced.Items, domain.PricedLineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     linePrice,
			VAT:       lineVAT,
		})
		priced.OrderPrice += linePrice
		priced.OrderVAT += lineVAT
	}

	if e.metrics != nil {
		e.metrics.RecordPricingDuration(time.Since(started))
	}

	return priced, nil
}

func (e *Engine) publish(eventType kafka.EventType, order domain.Order) {
	if e.events == nil {
		return
	}
	event := kafka.NewOrderEvent(eventType, order.ID, len(order.Items))
	if err := e.events.PublishEvent(kafka.TopicOrderEvents, order.ID, event); err != nil {
		e.logger.WithError(err).WithFields(log.Fields{
			"order_id": order.ID,
			"event":    string(eventType),
		}).Warn("failed to publish order event")
	}
}

func (e *Engine) recordValidationFailure() {
	if e.metrics != nil {
		e.metrics.RecordValidationFailure()
	}
}
