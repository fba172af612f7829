package http

import (
	"time"

	"pet-adoption-backend/internal/adapter/middleware"
	"pet-adoption-backend/internal/usecase/adoption"
	"pet-adoption-backend/internal/usecase/catalog"
	"pet-adoption-backend/internal/usecase/identity"
	"pet-adoption-backend/internal/usecase/questionnaire"
	"pet-adoption-backend/pkg/id"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deps wires usecases into the router. Redis is optional; nil disables idempotency.
type Deps struct {
	Identity       *identity.Usecase
	Catalog        *catalog.Usecase
	Questionnaires *questionnaire.Usecase
	Adoptions      *adoption.Usecase
	Reviews        Dispatcher
	Redis          *redis.Client
	IdempotencyTTL time.Duration
	Log            *zap.Logger
}

func NewRouter(d Deps) *echo.Echo {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewErrorHandler(d.Log)

	e.Use(
		echomw.Recover(),
		echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: id.NewID32}),
		middleware.RequestLogger(d.Log),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowHeaders: []string{
				echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept,
				middleware.HeaderAdminUsername, middleware.HeaderIdempotencyKey,
			},
		}),
	)
	if d.Redis != nil {
		e.Use(middleware.Idempotency(d.Redis, d.IdempotencyTTL, d.Log))
	}

	h := NewHandler()
	e.GET("/health", h.Health)

	api := e.Group("/api")

	ih := NewIdentityHandler(d.Identity)
	api.POST("/register", ih.Register)
	api.POST("/login", ih.Login)
	api.POST("/admin/login", ih.AdminLogin)

	ph := NewPetHandler(d.Catalog)
	api.GET("/pets", ph.List)
	api.GET("/pets/:id", ph.Get)

	qh := NewQuestionnaireHandler(d.Questionnaires)
	api.POST("/questionnaire", qh.Submit)
	api.GET("/questionnaire/:username", qh.GetByUser)

	ah := NewAdoptionHandler(d.Adoptions)
	api.POST("/adoptions", ah.Request)
	api.GET("/adoptions/:username", ah.ListByUser)

	rh := NewReviewHandler(d.Reviews)
	admin := api.Group("/admin", middleware.RequireAdmin(d.Identity))
	admin.GET("/questionnaires", qh.List)
	admin.POST("/questionnaires/:id/:action", rh.Questionnaire)
	admin.GET("/adoptions", ah.List)
	admin.POST("/adoptions/:id/:action", rh.Adoption)

	return e
}
