package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apexgrid/gridwear/internal/store"
)

type addItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

type updateItemRequest struct {
	// Pointer so an explicit zero is distinguishable from a missing field;
	// zero and negative quantities remove the line item.
	Quantity *int `json:"quantity" binding:"required"`
}

func cartResponse(st *store.Store) gin.H {
	return gin.H{
		"items":          st.Cart.Items(),
		"subtotal":       st.Cart.Subtotal(),
		"total_quantity": st.Cart.TotalQuantity(),
	}
}

// getCart returns the session's cart with its subtotal.
func (s *Server) getCart(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}
	st.Lock()
	defer st.Unlock()
	c.JSON(http.StatusOK, cartResponse(st))
}

// addCartItem adds one unit of the product, incrementing an existing row.
func (s *Server) addCartItem(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := s.catalog.ProductByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	st.Lock()
	defer st.Unlock()
	st.Cart.Add(*p)
	c.JSON(http.StatusOK, cartResponse(st))
}

// updateCartItem sets a row's quantity exactly; zero or below removes it.
func (s *Server) updateCartItem(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}

	pid, err := strconv.Atoi(c.Param("pid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st.Lock()
	defer st.Unlock()
	st.Cart.UpdateQuantity(pid, *req.Quantity)
	c.JSON(http.StatusOK, cartResponse(st))
}

// removeCartItem deletes a row; an absent product id is a no-op.
func (s *Server) removeCartItem(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}

	pid, err := strconv.Atoi(c.Param("pid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	st.Lock()
	defer st.Unlock()
	st.Cart.Remove(pid)
	c.JSON(http.StatusOK, cartResponse(st))
}

// clearCart empties the session's cart.
func (s *Server) clearCart(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}

	st.Lock()
	defer st.Unlock()
	st.Cart.Clear()
	c.JSON(http.StatusOK, cartResponse(st))
}
