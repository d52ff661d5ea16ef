package domain

import "errors"

var (
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderExists сигнализирует о попытке создать заказ с занятым ID.
	ErrOrderExists = errors.New("order already exists")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrOrderItemsRequired = errors.New("order must contain at least one item")
	// Ошибка отсутствующего product_id в позиции.
	ErrItemProductRequired = errors.New("item product_id is required")
	// Ошибка при некорректном количестве товара (<= 0 или NaN).
	ErrItemQtyInvalid = errors.New("item quantity must be greater than zero")
	// Ошибка, если две сохранённые позиции делят один product_id.
	ErrItemDuplicateProduct = errors.New("order items must not share a product_id")

	// ErrProductNotFound возвращается каталогом, если товара с таким ID нет.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductExists сигнализирует о попытке создать товар с занятым ID.
	ErrProductExists = errors.New("product already exists")
	// Ошибка отсутствующего имени товара.
	ErrProductNameRequired = errors.New("product name is required")
	// Ошибка отрицательной цены товара.
	ErrProductPriceNegative = errors.New("product price must be non-negative")
	// Ошибка отрицательной ставки НДС.
	ErrProductVATNegative = errors.New("product vat must be non-negative")
)

// IsNotFound сообщает, относится ли ошибка к классу "ресурс не найден".
// Отсутствие товара, на который ссылается уже сохранённый заказ, сюда
// намеренно не входит: при чтении оно трактуется как некорректный ввод.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound)
}

// IsBadInput сообщает, относится ли ошибка к классу "некорректный ввод".
func IsBadInput(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrOrderItemsRequired) ||
		errors.Is(err, ErrItemProductRequired) ||
		errors.Is(err, ErrItemQtyInvalid) ||
		errors.Is(err, ErrItemDuplicateProduct) ||
		errors.Is(err, ErrProductNameRequired) ||
		errors.Is(err, ErrProductPriceNegative) ||
		errors.Is(err, ErrProductVATNegative)
}
