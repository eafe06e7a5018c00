package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booknest/internal/domain"
	"booknest/internal/service"
	mdw "booknest/internal/transport/http/middleware"
	resp "booknest/internal/transport/http/response"
)

type ReadingListHandler struct {
	list *service.ReadingListService
}

func NewReadingListHandler(list *service.ReadingListService) *ReadingListHandler {
	return &ReadingListHandler{list: list}
}

type addEntryIn struct {
	BookID uint   `json:"book_id"`
	Note   string `json:"note"`
}

// Add handles POST /reading-list/.
func (h *ReadingListHandler) Add(c *gin.Context) {
	var in addEntryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.InvalidInput("invalid JSON payload"))
		return
	}
	e, err := h.list.Add(mdw.CallerID(c), in.BookID, in.Note)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusCreated, e)
}

type entryView struct {
	ID     uint        `json:"id"`
	BookID uint        `json:"book_id"`
	Note   string      `json:"note"`
	Book   bookSummary `json:"book"`
}

// List handles GET /reading-list/.
func (h *ReadingListHandler) List(c *gin.Context) {
	rows, err := h.list.List(mdw.CallerID(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	out := make([]entryView, 0, len(rows))
	for _, r := range rows {
		out = append(out, entryView{
			ID:     r.ID,
			BookID: r.BookID,
			Note:   r.Note,
			Book:   bookSummary{Title: r.BookTitle, Author: r.BookAuthor, Genre: r.BookGenre},
		})
	}
	resp.JSON(c, http.StatusOK, out)
}

type updateNoteIn struct {
	Note *string `json:"note"`
}

// UpdateNote handles PATCH /reading-list/:id. An absent note field leaves the
// note unchanged.
func (h *ReadingListHandler) UpdateNote(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.Fail(c, err)
		return
	}
	var in updateNoteIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.InvalidInput("invalid JSON payload"))
		return
	}
	e, err := h.list.UpdateNote(id, mdw.CallerID(c), in.Note)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, e)
}

// Remove handles DELETE /reading-list/:id.
func (h *ReadingListHandler) Remove(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if err := h.list.Remove(id, mdw.CallerID(c)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, gin.H{"id": id})
}
