package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apexgrid/gridwear/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type signupRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type sendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type verifyCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type resetPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// login runs the simulated login flow. Any well-formed credentials succeed
// after the artificial delay.
func (s *Server) login(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.auth.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		s.writeAuthError(c, err)
		return
	}

	st.Lock()
	st.View.GoHome()
	st.Unlock()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "email": req.Email})
}

// signup runs the simulated signup flow and reports it to analytics.
func (s *Server) signup(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}

	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form := auth.SignupForm{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	if err := s.auth.Signup(c.Request.Context(), form, req.ConfirmPassword); err != nil {
		s.writeAuthError(c, err)
		return
	}

	st.Lock()
	st.View.GoHome()
	st.Unlock()
	c.JSON(http.StatusCreated, gin.H{"status": "ok", "email": req.Email})
}

// resetSendCode starts (or restarts) the password-reset flow and sends the
// verification code.
func (s *Server) resetSendCode(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}

	var req sendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st.Lock()
	if st.Reset == nil || st.Reset.Step() == auth.StepDone {
		st.Reset = s.auth.NewResetFlow()
	}
	flow := st.Reset
	st.Unlock()

	// Code delivery blocks for the delivery delay. The flow synchronizes
	// itself, so the store lock only guards the st.Reset pointer above.
	ch, err := flow.SubmitEmail(c.Request.Context(), req.Email)
	if err != nil {
		s.writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"step":      flow.Step(),
		"challenge": ch,
	})
}

// resetResend steps back so a fresh code can be requested.
func (s *Server) resetResend(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}

	st.Lock()
	defer st.Unlock()
	if st.Reset == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no reset flow in progress"})
		return
	}
	if err := st.Reset.Resend(); err != nil {
		s.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": st.Reset.Step()})
}

// resetVerifyCode checks the entered code against the outstanding challenge.
func (s *Server) resetVerifyCode(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}

	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st.Lock()
	defer st.Unlock()
	if st.Reset == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no reset flow in progress"})
		return
	}
	if err := st.Reset.SubmitCode(req.Code); err != nil {
		s.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": st.Reset.Step()})
}

// resetPassword completes the flow with the new password.
func (s *Server) resetPassword(c *gin.Context) {
	st := s.sessionStore(c)
	if st == nil {
		return
	}

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st.Lock()
	defer st.Unlock()
	if st.Reset == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no reset flow in progress"})
		return
	}
	if err := s.auth.CompleteReset(st.Reset, req.Password, req.ConfirmPassword); err != nil {
		s.writeAuthError(c, err)
		return
	}

	st.View.GoToLogin()
	c.JSON(http.StatusOK, gin.H{"step": st.Reset.Step(), "page": st.View.Page()})
}

// writeAuthError maps auth validation failures to 400s, which the web
// client surfaces as blocking alerts.
func (s *Server) writeAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidCode),
		errors.Is(err, auth.ErrChallengeExpired),
		errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, auth.ErrEmailRequired),
		errors.Is(err, auth.ErrPasswordRequired),
		errors.Is(err, auth.ErrWrongStep):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
