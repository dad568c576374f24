package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/pkg/auth"
	md "github.com/Astemirdum/library-membership/pkg/middleware"
	_ "github.com/Astemirdum/library-membership/swagger"
)

type Handler struct {
	svc    Services
	issuer *auth.Issuer
	now    func() time.Time
	log    *zap.Logger
}

type Option func(h *Handler)

// WithAuth guards every mutating route with a bearer token signed by issuer.
func WithAuth(issuer *auth.Issuer) Option {
	return func(h *Handler) {
		h.issuer = issuer
	}
}

func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

func New(svc Services, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc: svc,
		now: time.Now,
		log: log.Named("handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.JSONSerializer = jsonSerializer{}
	e.HTTPErrorHandler = h.HTTPErrorHandler
	e.Validator = model.NewValidator()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	var guard []echo.MiddlewareFunc
	if h.issuer != nil {
		guard = append(guard, md.JwtAuthentication(h.issuer))
	}

	api.POST("/authorize", h.Authorize)
	api.POST("/users", h.RegisterUser, guard...)
	api.GET("/users", h.ListUsers, guard...)
	api.GET("/users/:id", h.GetUser, guard...)

	api.GET("/books", h.ListBooks)
	api.GET("/books/listAvailable", h.ListAvailableBooks)
	api.GET("/books/:id", h.GetBook)
	api.GET("/books/:id/copies", h.ListCopiesOfBook)
	api.POST("/books", h.AddBook, guard...)
	api.PUT("/books/:id", h.UpdateBook, guard...)
	api.DELETE("/books/:id", h.DeleteBook, guard...)

	api.GET("/bookCopies", h.ListBookCopies)
	api.GET("/bookCopies/listAvailable", h.ListAvailableBookCopies)
	api.GET("/bookCopies/:id", h.GetBookCopy)
	api.POST("/bookCopies", h.AddBookCopy, guard...)
	api.PUT("/bookCopies/:id", h.UpdateBookCopy, guard...)
	api.DELETE("/bookCopies/:id", h.DeleteBookCopy, guard...)

	api.GET("/customers", h.ListCustomers)
	api.GET("/customers/listAvailable", h.ListAvailableCustomers)
	api.GET("/customers/:id", h.GetCustomer)
	api.POST("/customers", h.AddCustomer, guard...)
	api.PUT("/customers/:id", h.UpdateCustomer, guard...)
	api.DELETE("/customers/:id", h.DeleteCustomer, guard...)

	api.GET("/members", h.ListMembers)
	api.GET("/members/listAvailable", h.ListAvailableMembers)
	api.GET("/members/:id", h.GetMember)
	api.POST("/members", h.AddMember, guard...)
	api.PUT("/members/:id", h.UpdateMember, guard...)
	api.PATCH("/members/:id", h.PatchMember, guard...)
	api.DELETE("/members/:id", h.DeleteMember, guard...)

	api.GET("/memberships", h.ListMemberships)
	api.GET("/memberships/listAvailable", h.ListAvailableMemberships)
	api.GET("/memberships/:id", h.GetMembership)
	api.GET("/memberships/:id/members", h.ListMembershipMembers)
	api.POST("/memberships", h.AddMembership, guard...)
	api.PUT("/memberships/:id", h.UpdateMembership, guard...)
	api.DELETE("/memberships/:id", h.DeleteMembership, guard...)

	api.GET("/membershipTypes", h.ListMembershipTypes)
	api.GET("/membershipTypes/listAvailable", h.ListAvailableMembershipTypes)
	api.GET("/membershipTypes/:id", h.GetMembershipType)
	api.POST("/membershipTypes", h.AddMembershipType, guard...)
	api.PUT("/membershipTypes/:id", h.UpdateMembershipType, guard...)
	api.DELETE("/membershipTypes/:id", h.DeleteMembershipType, guard...)

	return e
}

// Health godoc
// @Summary liveness check
// @Tags manage
// @Success 200 {string} string "OK"
// @Router /manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
