package httpapi

import "github.com/vladislavdragonenkov/orders/internal/domain"

// Форма запросов и ответов повторяет публичный REST-контракт сервиса:
// заказ приходит обёрнутым в {"order": {"items": [...]}}.

type lineItemPayload struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

type orderItemsPayload struct {
	Items []lineItemPayload `json:"items" binding:"required,min=1,dive"`
}

type createOrderRequest struct {
	Order orderItemsPayload `json:"order" binding:"required"`
}

// updateOrderRequest допускает отсутствие order/items: в этом случае
// обновление — no-op, возвращается текущее расчётное представление.
type updateOrderRequest struct {
	Order *updateOrderItemsPayload `json:"order"`
}

type updateOrderItemsPayload struct {
	Items []lineItemPayload `json:"items" binding:"omitempty,dive"`
}

type pricedLineItemResponse struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	VAT       float64 `json:"vat"`
}

type pricedOrderResponse struct {
	OrderID    string                   `json:"order_id"`
	OrderPrice float64                  `json:"order_price"`
	OrderVAT   float64                  `json:"order_vat"`
	Items      []pricedLineItemResponse `json:"items"`
}

type createProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	VAT         *float64 `json:"vat" binding:"required,gte=0"`
	Description string   `json:"description"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	VAT         *float64 `json:"vat" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

type productResponse struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	VAT         float64 `json:"vat"`
	Description string  `json:"description,omitempty"`
}

func toLineItems(payload []lineItemPayload) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(payload))
	for _, item := range payload {
		items = append(items, domain.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return items
}

func toPricedOrderResponse(order domain.PricedOrder) pricedOrderResponse {
	items := make([]pricedLineItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, pricedLineItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			VAT:       item.VAT,
		})
	}
	return pricedOrderResponse{
		OrderID:    order.OrderID,
		OrderPrice: order.OrderPrice,
		OrderVAT:   order.OrderVAT,
		Items:      items,
	}
}

func toProductResponse(product domain.Product) productResponse {
	return productResponse{
		ProductID:   product.ID,
		Name:        product.Name,
		Price:       product.Price,
		VAT:         product.VAT,
		Description: product.Description,
	}
}
