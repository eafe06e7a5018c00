package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"booknest/internal/core/auth"
	"booknest/internal/transport/http/handler"
	mdw "booknest/internal/transport/http/middleware"
)

// Handlers bundles the per-resource handlers for engine assembly.
type Handlers struct {
	Auth        *handler.AuthHandler
	Users       *handler.UserHandler
	Books       *handler.BookHandler
	Loans       *handler.LoanHandler
	ReadingList *handler.ReadingListHandler
}

// NewAPIEngine wires middleware and the tiered route groups: public, self
// (valid token) and admin (valid token with the admin claim).
func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to BookNest API!"})
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// public
	authGrp := r.Group("/auth")
	authGrp.Use(mdw.RateLimitPerIP(5, 10))
	authGrp.POST("/register", h.Auth.Register)
	authGrp.POST("/login", h.Auth.Login)

	// everything below requires a valid bearer token
	users := r.Group("/users", mdw.AuthJWT(jwter))
	users.GET("/me", h.Users.Me)
	users.PATCH("/me", h.Users.UpdateMe)
	usersAdmin := users.Group("", mdw.RequireAdmin())
	usersAdmin.GET("/all", h.Users.List)
	usersAdmin.POST("/", h.Users.Create)
	usersAdmin.PATCH("/:id", h.Users.Update)
	usersAdmin.DELETE("/:id", h.Users.Delete)
	usersAdmin.PATCH("/:id/promote", h.Users.Promote)

	books := r.Group("/books", mdw.AuthJWT(jwter))
	books.GET("/", h.Books.List)
	books.GET("/search", h.Books.Search)
	booksAdmin := books.Group("", mdw.RequireAdmin())
	booksAdmin.POST("/", h.Books.Create)
	booksAdmin.PATCH("/:id", h.Books.Update)
	booksAdmin.DELETE("/:id", h.Books.Delete)

	loans := r.Group("/loans", mdw.AuthJWT(jwter))
	loans.GET("/my", h.Loans.ListMine)
	loans.POST("/", h.Loans.Borrow)
	loans.PATCH("/:id", h.Loans.Return)
	loans.DELETE("/:id", h.Loans.Delete) // owner-or-admin, checked in the service
	loans.GET("/", mdw.RequireAdmin(), h.Loans.ListAll)

	reading := r.Group("/reading-list", mdw.AuthJWT(jwter))
	reading.GET("/", h.ReadingList.List)
	reading.POST("/", h.ReadingList.Add)
	reading.PATCH("/:id", h.ReadingList.UpdateNote)
	reading.DELETE("/:id", h.ReadingList.Remove)

	return r
}
