package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// createOrder обрабатывает POST /orders.
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	priced, err := s.engine.Create(toLineItems(req.Order.Items))
	if err != nil {
		s.writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPricedOrderResponse(priced))
}

// getOrder обрабатывает GET /orders/:id.
func (s *Server) getOrder(c *gin.Context) {
	priced, err := s.engine.Get(c.Param("id"))
	if err != nil {
		s.writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPricedOrderResponse(priced))
}

// updateOrder обрабатывает PUT /orders/:id. Контракт исторический:
// успешное обновление отвечает 201, пустой список позиций — no-op.
func (s *Server) updateOrder(c *gin.Context) {
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var items []domain.LineItem
	if req.Order != nil {
		items = toLineItems(req.Order.Items)
	}

	priced, err := s.engine.Update(c.Param("id"), items)
	if err != nil {
		s.writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPricedOrderResponse(priced))
}

// deleteOrder обрабатывает DELETE /orders/:id: removed=false транслируется в 404.
func (s *Server) deleteOrder(c *gin.Context) {
	removed, err := s.engine.Delete(c.Param("id"))
	if err != nil {
		s.writeDomainError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrOrderNotFound.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
