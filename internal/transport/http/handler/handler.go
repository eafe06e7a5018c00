package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"booknest/internal/domain"
)

// paramID parses a numeric path parameter.
func paramID(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		return 0, domain.InvalidInput("invalid id")
	}
	return uint(v), nil
}

// userView is the public shape of a user, everywhere it appears.
type userView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

func viewUser(u *domain.User) userView {
	return userView{ID: u.ID, Username: u.Username, Email: u.Email, IsAdmin: u.IsAdmin}
}

// bookSummary rides along on loan and reading-list rows.
type bookSummary struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}
