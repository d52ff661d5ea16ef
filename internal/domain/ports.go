package domain

// Catalog — единственная граница, через которую движок заказов читает каталог.
// Движок никогда не изменяет каталог и не кэширует его записи: каждая операция
// чтения или валидации выполняет свежий Lookup.
type Catalog interface {
	// Lookup возвращает товар или ErrProductNotFound, если его нет.
	Lookup(productID string) (Product, error)
}

// EventPublisher публикует события жизненного цикла заказов во внешнюю шину.
// Публикация best-effort: ошибки логируются и не влияют на результат операции.
type EventPublisher interface {
	PublishEvent(topic, key string, event any) error
}
