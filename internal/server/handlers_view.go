package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apexgrid/gridwear/internal/store"
	"github.com/apexgrid/gridwear/internal/view"
)

type navigateRequest struct {
	Page       view.Page `json:"page" binding:"required"`
	CategoryID string    `json:"category_id"`
	ProductID  int       `json:"product_id"`
}

func viewResponse(st *store.Store) gin.H {
	resp := gin.H{"page": st.View.Page()}
	if cat := st.View.SelectedCategory(); cat != "" {
		resp["selected_category"] = cat
	}
	if p := st.View.SelectedProduct(); p != nil {
		resp["selected_product"] = p
	}
	return resp
}

// getView returns the current page and selections.
func (s *Server) getView(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}
	st.Lock()
	defer st.Unlock()
	c.JSON(http.StatusOK, viewResponse(st))
}

// navigate drives the view-state machine. Category and product pages need
// their selection in the request; every other page just switches.
func (s *Server) navigate(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}

	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st.Lock()
	defer st.Unlock()

	switch req.Page {
	case view.PageHome:
		st.View.GoHome()
	case view.PageCategory:
		if req.CategoryID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category_id is required for the category page"})
			return
		}
		st.View.GoToCategory(req.CategoryID)
	case view.PageProduct:
		p, err := s.catalog.ProductByID(req.ProductID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		st.View.GoToProduct(*p)
	case view.PageCart:
		st.View.GoToCart()
	case view.PageLogin:
		st.View.GoToLogin()
	case view.PageSignup:
		st.View.GoToSignup()
	case view.PageForgotPassword:
		st.View.GoToForgotPassword()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown page: " + string(req.Page)})
		return
	}

	c.JSON(http.StatusOK, viewResponse(st))
}

// navigateBack returns to the selected category when set, else home.
func (s *Server) navigateBack(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}
	st.Lock()
	defer st.Unlock()
	st.View.Back()
	c.JSON(http.StatusOK, viewResponse(st))
}
