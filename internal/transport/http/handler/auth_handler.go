package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booknest/internal/domain"
	"booknest/internal/service"
	resp "booknest/internal/transport/http/response"
)

type AuthHandler struct {
	users *service.UserService
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type registerIn struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.InvalidInput("invalid JSON payload"))
		return
	}
	id, err := h.users.Register(in.Username, in.Email, in.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusCreated, gin.H{"id": id})
}

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginOut struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.InvalidInput("invalid JSON payload"))
		return
	}
	if in.Email == "" || in.Password == "" {
		resp.Fail(c, domain.InvalidInput("email and password are required"))
		return
	}
	token, u, err := h.users.Authenticate(in.Email, in.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, loginOut{Token: token, User: viewUser(u)})
}
