package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booknest/internal/domain"
	"booknest/internal/service"
	resp "booknest/internal/transport/http/response"
)

type BookHandler struct {
	books *service.BookService
}

func NewBookHandler(books *service.BookService) *BookHandler {
	return &BookHandler{books: books}
}

// List handles GET /books/.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.books.List()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, books)
}

// Search handles GET /books/search?title&author&genre.
func (h *BookHandler) Search(c *gin.Context) {
	books, err := h.books.Search(domain.BookFilter{
		Title:  c.Query("title"),
		Author: c.Query("author"),
		Genre:  c.Query("genre"),
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, books)
}

type bookIn struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// Create handles POST /books/ (admin).
func (h *BookHandler) Create(c *gin.Context) {
	var in bookIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.InvalidInput("invalid JSON payload"))
		return
	}
	b, err := h.books.Create(in.Title, in.Author, in.Genre)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusCreated, b)
}

type bookUpdateIn struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Genre  *string `json:"genre"`
}

// Update handles PATCH /books/:id (admin). Unspecified fields stay unchanged.
func (h *BookHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.Fail(c, err)
		return
	}
	var in bookUpdateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.InvalidInput("invalid JSON payload"))
		return
	}
	b, err := h.books.Update(id, service.BookUpdate{
		Title:  in.Title,
		Author: in.Author,
		Genre:  in.Genre,
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, b)
}

// Delete handles DELETE /books/:id (admin). Cascades loans and entries.
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if err := h.books.Delete(id); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, gin.H{"id": id})
}
