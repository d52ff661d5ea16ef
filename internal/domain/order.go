package domain

import (
	"math"
	"time"
)

// LineItem представляет одну позицию заказа в том виде, в котором она хранится:
// ссылка на товар и количество. Цены на позициях никогда не сохраняются.
type LineItem struct {
	// ProductID — внешний идентификатор товара из каталога.
	ProductID string
	// Quantity — количество единиц товара, всегда > 0.
	Quantity float64
}

// Order агрегирует позиции заказа. Инвариант: после записи в хранилище
// ни одна пара позиций не делит product_id — слияние дубликатов выполняется
// при создании и обновлении, а не при чтении.
type Order struct {
	ID        string
	Items     []LineItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PricedLineItem — расчётное представление позиции с ценой и НДС.
// Никогда не сохраняется: вычисляется заново при каждом чтении
// из актуального состояния каталога.
type PricedLineItem struct {
	ProductID string
	Quantity  float64
	// Price = quantity * unit_price, без округления.
	Price float64
	// VAT = Round2(quantity * unit_price * vat_rate), округляется
	// на каждой позиции до суммирования.
	VAT float64
}

// PricedOrder — расчётное представление заказа, возвращаемое вызывающему.
type PricedOrder struct {
	OrderID string
	// OrderPrice — неокруглённая сумма Price по позициям.
	OrderPrice float64
	// OrderVAT — сумма уже округлённых VAT по позициям.
	// Повторное округление после суммирования не применяется.
	OrderVAT float64
	Items    []PricedLineItem
}

// MergeLineItems сливает дубликаты позиций: на каждый product_id остаётся
// одна запись с суммарным количеством. Позиция в результате совпадает с
// позицией первого вхождения product_id во входе; поздние дубликаты
// складываются без смены места. Чистая функция без обращения к каталогу.
func MergeLineItems(items []LineItem) []LineItem {
	merged := make([]LineItem, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		if at, ok := index[item.ProductID]; ok {
			merged[at].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}

	return merged
}

// Round2 округляет до двух десятичных знаков, половина — от нуля.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if len(o.Items) == 0 {
		errs = append(errs, ErrOrderItemsRequired)
	}

	seen := make(map[string]struct{}, len(o.Items))
	for _, item := range o.Items {
		if item.ProductID == "" {
			errs = append(errs, ErrItemProductRequired)
		}
		if math.IsNaN(item.Quantity) || item.Quantity <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if _, dup := seen[item.ProductID]; dup {
			errs = append(errs, ErrItemDuplicateProduct)
		}
		seen[item.ProductID] = struct{}{}
	}

	return errs
}
