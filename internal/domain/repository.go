package domain

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ. Возвращает ErrOrderExists, если ID уже занят.
	Create(order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(id string) (Order, error)
	// Save целиком перезаписывает позиции существующего заказа.
	Save(order Order) error
	// Delete удаляет заказ и сообщает, была ли запись на самом деле удалена.
	// Отсутствие заказа ошибкой не считается.
	Delete(id string) (bool, error)
}

// ProductRepository описывает требования к хранилищу каталога товаров.
type ProductRepository interface {
	// Create сохраняет новую запись каталога.
	Create(product Product) error
	// Get возвращает товар по идентификатору или ErrProductNotFound.
	Get(id string) (Product, error)
	// FindByName возвращает товары, чьё имя содержит подстроку name
	// без учёта регистра; пустая строка означает "все товары".
	FindByName(name string) ([]Product, error)
	// Save перезаписывает существующую запись каталога.
	Save(product Product) error
	// Delete удаляет товар и сообщает, была ли запись удалена.
	Delete(id string) (bool, error)
}
