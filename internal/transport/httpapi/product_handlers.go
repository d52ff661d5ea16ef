package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/service/catalog"
)

// createProduct обрабатывает POST /products.
func (s *Server) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := s.catalog.Create(domain.Product{
		Name:        req.Name,
		Price:       *req.Price,
		VAT:         *req.VAT,
		Description: req.Description,
	})
	if err != nil {
		s.writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(product))
}

// findProducts обрабатывает GET /products?name=...
func (s *Server) findProducts(c *gin.Context) {
	products, err := s.catalog.Find(c.Query("name"))
	if err != nil {
		s.writeDomainError(c, err)
		return
	}

	result := make([]productResponse, 0, len(products))
	for _, product := range products {
		result = append(result, toProductResponse(product))
	}

	c.JSON(http.StatusOK, result)
}

// getProduct обрабатывает GET /products/:id.
func (s *Server) getProduct(c *gin.Context) {
	product, err := s.catalog.Get(c.Param("id"))
	if err != nil {
		s.writeProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// updateProduct обрабатывает PUT /products/:id c частичным payload.
func (s *Server) updateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := s.catalog.Update(c.Param("id"), catalog.Patch{
		Name:        req.Name,
		Price:       req.Price,
		VAT:         req.VAT,
		Description: req.Description,
	})
	if err != nil {
		s.writeProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// writeProductError отличает прямой запрос несуществующего товара (404)
// от промаха каталога при расчёте цен заказа, который остаётся 400.
func (s *Server) writeProductError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.writeDomainError(c, err)
}

// deleteProduct обрабатывает DELETE /products/:id.
func (s *Server) deleteProduct(c *gin.Context) {
	removed, err := s.catalog.Delete(c.Param("id"))
	if err != nil {
		s.writeDomainError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrProductNotFound.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
