package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apexgrid/gridwear/internal/search"
)

// listCategories returns every category in catalog order, clickable or not;
// the client renders non-clickable ones as "coming soon" tiles.
func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.catalog.Categories()})
}

// getCategory returns a category and its product list, optionally filtered
// by the q query parameter. Unknown and non-clickable categories are not
// errors: they come back as a coming-soon placeholder.
func (s *Server) getCategory(c *gin.Context) {
	id := c.Param("id")

	cat, err := s.catalog.CategoryByID(id)
	if err != nil || !cat.Clickable {
		c.JSON(http.StatusOK, gin.H{
			"category_id": id,
			"coming_soon": true,
			"products":    []any{},
		})
		return
	}

	products := s.catalog.ProductsByCategory(id)
	if q := c.Query("q"); q != "" && s.sessions.Features().Search {
		products = search.Filter(products, q)
	}

	c.JSON(http.StatusOK, gin.H{
		"category": cat,
		"products": products,
	})
}

// getProduct returns a single product by numeric id.
func (s *Server) getProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	p, err := s.catalog.ProductByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}
