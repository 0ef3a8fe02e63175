package handlers

import (
	"net/http"

	"release-management-service/internal/adapters/primary/http/dto"
	"release-management-service/internal/adapters/primary/http/middleware"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Login accepts JSON or a urlencoded form.
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		log.WithError(err).WithField("username", req.Username).Warn("login failed")
		mapDomainError(c, err)
		return
	}

	token := session.ID.String()
	if h.authSvc.Stateless() {
		token = session.AccessToken
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    session.Username,
		ExpiresAt:   session.ExpiresAt,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), session.ID); err != nil {
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CurrentUser(c *gin.Context) {
	user, err := h.authSvc.CurrentUser(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
