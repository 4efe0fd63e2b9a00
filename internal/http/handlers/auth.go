package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"busbooking/internal/auth"
	"busbooking/internal/http/middleware"
	"busbooking/internal/utils"
)

const tokenTTL = 24 * time.Hour

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := h.Users.Register(req.Email, req.Name, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", "email="+user.Email)
	c.JSON(http.StatusCreated, gin.H{"email": user.Email, "name": user.Name})
}

func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	token, err := auth.NewToken(h.Env.JWTSecret, user.Email, tokenTTL)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "email": user.Email, "name": user.Name})
}
