package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booknest/internal/domain"
	"booknest/internal/service"
	mdw "booknest/internal/transport/http/middleware"
	resp "booknest/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.users.Profile(mdw.CallerID(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, viewUser(u))
}

type updateMeIn struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UpdateMe handles PATCH /users/me. A password change is re-hashed; the raw
// password is never stored.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var in updateMeIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.InvalidInput("invalid JSON payload"))
		return
	}
	u, err := h.users.UpdateProfile(mdw.CallerID(c), service.ProfileUpdate{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, viewUser(u))
}

// List handles GET /users/all (admin).
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	out := make([]userView, 0, len(users))
	for i := range users {
		out = append(out, viewUser(&users[i]))
	}
	resp.JSON(c, http.StatusOK, out)
}

type createUserIn struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// Create handles POST /users/ (admin).
func (h *UserHandler) Create(c *gin.Context) {
	var in createUserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.InvalidInput("invalid JSON payload"))
		return
	}
	id, err := h.users.CreateUser(in.Username, in.Email, in.Password, in.IsAdmin)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusCreated, gin.H{"id": id})
}

type adminUpdateIn struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	IsAdmin  *bool   `json:"is_admin"`
}

// Update handles PATCH /users/:id (admin).
func (h *UserHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.Fail(c, err)
		return
	}
	var in adminUpdateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.InvalidInput("invalid JSON payload"))
		return
	}
	u, err := h.users.UpdateUser(id, service.AdminUpdate{
		Username: in.Username,
		Email:    in.Email,
		IsAdmin:  in.IsAdmin,
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, viewUser(u))
}

// Delete handles DELETE /users/:id (admin). Cascades loans and reading list.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if err := h.users.DeleteUser(id); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, gin.H{"id": id})
}

type promoteIn struct {
	IsAdmin bool `json:"is_admin"`
}

// Promote handles PATCH /users/:id/promote (admin). Sets the flag both ways.
func (h *UserHandler) Promote(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.Fail(c, err)
		return
	}
	var in promoteIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.InvalidInput("invalid JSON payload"))
		return
	}
	if err := h.users.SetAdminFlag(id, in.IsAdmin); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, gin.H{"id": id, "is_admin": in.IsAdmin})
}
