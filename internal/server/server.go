package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/apexgrid/gridwear/internal/auth"
	"github.com/apexgrid/gridwear/internal/catalog"
	"github.com/apexgrid/gridwear/internal/store"
)

type Server struct {
	router   *gin.Engine
	catalog  *catalog.Catalog
	sessions *store.Sessions
	auth     *auth.Service
	log      *logrus.Logger
}

// NewServer creates a new server instance
func NewServer(cat *catalog.Catalog, sessions *store.Sessions, authSvc *auth.Service, log *logrus.Logger) *Server {
	router := gin.Default()

	server := &Server{
		router:   router,
		catalog:  cat,
		sessions: sessions,
		auth:     authSvc,
		log:      log,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)

		cat := api.Group("/catalog")
		{
			cat.GET("/categories", s.listCategories)
			cat.GET("/categories/:id", s.getCategory)
			cat.GET("/products/:id", s.getProduct)
		}

		api.POST("/sessions", s.createSession)

		sess := api.Group("/sessions/:sid")
		{
			sess.DELETE("", s.dropSession)

			sess.GET("/cart", s.getCart)
			sess.POST("/cart/items", s.addCartItem)
			sess.PUT("/cart/items/:pid", s.updateCartItem)
			sess.DELETE("/cart/items/:pid", s.removeCartItem)
			sess.DELETE("/cart", s.clearCart)

			sess.GET("/view", s.getView)
			sess.POST("/view/navigate", s.navigate)
			sess.POST("/view/back", s.navigateBack)

			authGroup := sess.Group("/auth")
			{
				authGroup.POST("/login", s.login)
				authGroup.POST("/signup", s.signup)
				authGroup.POST("/forgot-password/send", s.resetSendCode)
				authGroup.POST("/forgot-password/resend", s.resetResend)
				authGroup.POST("/forgot-password/verify", s.resetVerifyCode)
				authGroup.POST("/forgot-password/reset", s.resetPassword)
			}
		}
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "gridwear",
		"version":  "0.1.0",
		"products": s.catalog.Len(),
		"sessions": s.sessions.Len(),
	})
}

// createSession starts a fresh browsing session: empty cart, home page.
func (s *Server) createSession(c *gin.Context) {
	id, st := s.sessions.Create()
	s.log.WithField("session", id).Info("session created")

	st.Lock()
	defer st.Unlock()
	c.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"page":       st.View.Page(),
	})
}

// dropSession destroys the session and everything in it.
func (s *Server) dropSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("sid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}
	s.sessions.Drop(id)
	c.Status(http.StatusNoContent)
}

// sessionStore resolves the :sid path parameter to a live store. It writes
// the error response itself; callers bail out on nil.
func (s *Server) sessionStore(c *gin.Context) *store.Store {
	id, err := uuid.Parse(c.Param("sid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return nil
	}
	st, err := s.sessions.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil
	}
	return st
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	s.log.WithField("addr", addr).Info("starting server")
	return s.router.Run(addr)
}

// Router exposes the underlying gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
