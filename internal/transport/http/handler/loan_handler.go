package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"booknest/internal/domain"
	"booknest/internal/service"
	mdw "booknest/internal/transport/http/middleware"
	resp "booknest/internal/transport/http/response"
)

type LoanHandler struct {
	loans *service.LoanService
}

func NewLoanHandler(loans *service.LoanService) *LoanHandler {
	return &LoanHandler{loans: loans}
}

type borrowIn struct {
	BookID uint `json:"book_id"`
}

// Borrow handles POST /loans/.
func (h *LoanHandler) Borrow(c *gin.Context) {
	var in borrowIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, domain.InvalidInput("invalid JSON payload"))
		return
	}
	l, err := h.loans.Borrow(mdw.CallerID(c), in.BookID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusCreated, l)
}

// Return handles PATCH /loans/:id.
func (h *LoanHandler) Return(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.Fail(c, err)
		return
	}
	l, err := h.loans.Return(id, mdw.CallerID(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, l)
}

// Delete handles DELETE /loans/:id. Owner or admin.
func (h *LoanHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if err := h.loans.Delete(id, mdw.CallerID(c), mdw.CallerIsAdmin(c)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, gin.H{"id": id})
}

// ListAll handles GET /loans/ (admin), denormalized with user/book summary.
func (h *LoanHandler) ListAll(c *gin.Context) {
	rows, err := h.loans.ListAll()
	if err != nil {
		resp.Fail(c, err)
		return
	}
	for i := range rows {
		if rows[i].UserEmail == "" {
			rows[i].UserEmail = "Unknown"
		}
		if rows[i].BookTitle == "" {
			rows[i].BookTitle = "Unknown"
		}
	}
	resp.JSON(c, http.StatusOK, rows)
}

type myLoanView struct {
	ID         uint        `json:"id"`
	BookID     uint        `json:"book_id"`
	BorrowedAt time.Time   `json:"borrowed_at"`
	DueDate    time.Time   `json:"due_date"`
	ReturnedAt *time.Time  `json:"returned_at"`
	Book       bookSummary `json:"book"`
}

// ListMine handles GET /loans/my.
func (h *LoanHandler) ListMine(c *gin.Context) {
	rows, err := h.loans.ListMine(mdw.CallerID(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	out := make([]myLoanView, 0, len(rows))
	for _, r := range rows {
		out = append(out, myLoanView{
			ID:         r.ID,
			BookID:     r.BookID,
			BorrowedAt: r.BorrowedAt,
			DueDate:    r.DueDate,
			ReturnedAt: r.ReturnedAt,
			Book:       bookSummary{Title: r.BookTitle, Author: r.BookAuthor, Genre: r.BookGenre},
		})
	}
	resp.JSON(c, http.StatusOK, out)
}
