package http

import (
	"context"
	"log/slog"

	"github.com/geocoder89/mealshare/internal/auth"
	"github.com/geocoder89/mealshare/internal/cache"
	"github.com/geocoder89/mealshare/internal/config"
	"github.com/geocoder89/mealshare/internal/http/handlers"
	"github.com/geocoder89/mealshare/internal/http/middlewares"
	"github.com/geocoder89/mealshare/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const maxBodyBytes = 1 << 20

// UsersStore is what both the users routes and the admin gate need.
type UsersStore interface {
	handlers.UsersRepo
	middlewares.RoleReader
}

// Deps carries everything the routes are built from. Prom, Gatherer, Cache
// and Ping may be nil.
type Deps struct {
	Tokens       *auth.Manager
	Users        UsersStore
	Meals        handlers.MealsRepo
	Upcoming     handlers.UpcomingRepo
	Reviews      handlers.ReviewsRepo
	MealRequests handlers.MealRequestsRepo
	About        handlers.AboutRepo
	Packages     handlers.PackagesRepo
	Payments     handlers.IntentCreator

	Cache    cache.Cache
	Prom     *observability.Prom
	Gatherer prometheus.Gatherer
	Ping     func(ctx context.Context) error
}

func NewRouter(log *slog.Logger, cfg config.Config, deps Deps) *gin.Engine {
	if cfg.Env != "dev" && cfg.Env != "test" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(observability.ServiceName))
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))
	r.Use(middlewares.RequireJSON())
	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
	}

	// health
	h := handlers.NewHealthHandler(deps.Ping)
	r.GET("/", h.Root)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// gates
	var rec middlewares.DecisionRecorder
	if deps.Prom != nil {
		rec = deps.Prom
	}
	authMW := middlewares.NewAuthMiddleware(deps.Tokens, rec)
	requireAuth := authMW.RequireAuth()
	requireAdmin := authMW.RequireAdmin(deps.Users)

	// wire up handlers
	tokenHandler := handlers.NewTokenHandler(deps.Tokens)
	usersHandler := handlers.NewUsersHandler(deps.Users)
	mealsHandler := handlers.NewMealsHandler(deps.Meals)
	upcomingHandler := handlers.NewUpcomingHandler(deps.Upcoming)
	reviewsHandler := handlers.NewReviewsHandler(deps.Reviews)
	requestsHandler := handlers.NewMealRequestsHandler(deps.MealRequests)
	aboutHandler := handlers.NewAboutHandler(deps.About)
	packagesHandler := handlers.NewPackagesHandler(deps.Packages, deps.Cache, log)
	paymentsHandler := handlers.NewPaymentsHandler(deps.Payments)

	r.POST("/jwt", tokenHandler.Issue)

	// users
	r.GET("/users", usersHandler.List)
	r.GET("/users/:email", usersHandler.GetByEmail)
	r.POST("/users", usersHandler.Create)
	r.GET("/users/admin/:email", requireAuth, usersHandler.IsAdmin)
	r.PATCH("/users/admin/:id", requireAuth, requireAdmin, usersHandler.Promote)
	r.PATCH("/users/:email", usersHandler.UpdateProfile)

	// meals
	r.GET("/meals", mealsHandler.List)
	r.GET("/meals/:id", mealsHandler.GetByID)
	r.POST("/meals", mealsHandler.Create)
	r.PATCH("/meals/:id", mealsHandler.UpdateReviews)
	r.PATCH("/meals/like/:id", mealsHandler.Like)
	r.DELETE("/meals/:id", mealsHandler.Delete)

	r.GET("/upcoming", upcomingHandler.List)
	r.POST("/upcoming", upcomingHandler.Create)
	r.PATCH("/upcoming/:id", upcomingHandler.Like)

	r.GET("/reviews", reviewsHandler.List)
	r.GET("/reviews/:email", reviewsHandler.ListByEmail)
	r.POST("/reviews", reviewsHandler.Create)
	r.DELETE("/reviews/:id", reviewsHandler.Delete)

	r.GET("/packages", packagesHandler.List)

	r.GET("/mealRequest", requestsHandler.List)
	r.GET("/mealRequest/:email", requestsHandler.ListByEmail)
	r.POST("/mealRequest", requestsHandler.Create)
	r.PATCH("/mealRequest/:id", requestsHandler.UpdateStatus)
	r.DELETE("/mealRequest/:id", requestsHandler.Delete)

	r.GET("/about/:email", aboutHandler.GetByEmail)
	r.POST("/about", aboutHandler.Create)

	r.POST("/create-payment-intent", paymentsHandler.CreateIntent)

	return r
}
