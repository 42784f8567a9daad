package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"
	"time"

	_ "github.com/GlebRadaev/codequiz/docs"
	authhandlers "github.com/GlebRadaev/codequiz/internal/handlers/auth"
	leaderboardhandlers "github.com/GlebRadaev/codequiz/internal/handlers/leaderboard"
	progresshandlers "github.com/GlebRadaev/codequiz/internal/handlers/progress"
	rewardhandlers "github.com/GlebRadaev/codequiz/internal/handlers/reward"
	userhandlers "github.com/GlebRadaev/codequiz/internal/handlers/user"
	"github.com/GlebRadaev/codequiz/internal/service"
	"github.com/GlebRadaev/codequiz/pkg/auth"
	"github.com/GlebRadaev/codequiz/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	GetLastClaim(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
}

type ProgressHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaderboardHandler interface {
	GetRankings(w http.ResponseWriter, r *http.Request)
}

type Options struct {
	JWTService         auth.JWTServiceInterface
	Location           *time.Location
	RateLimitPerMinute int
	AllowedOrigins     []string
	// TrustProxy takes the client IP from X-Forwarded-For and X-Real-IP.
	// Enable it only behind a proxy that overwrites those headers.
	TrustProxy bool
}

type Handlers struct {
	AuthHandler        AuthHandler
	UserHandler        UserHandler
	RewardHandler      RewardHandler
	ProgressHandler    ProgressHandler
	LeaderboardHandler LeaderboardHandler

	jwtService     auth.JWTServiceInterface
	limiter        *ratelimit.Limiter
	allowedOrigins []string
	trustProxy     bool
}

func New(s *service.Services, opts Options) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		UserHandler:        userhandlers.New(s.UserService),
		RewardHandler:      rewardhandlers.New(s.RewardService, opts.Location),
		ProgressHandler:    progresshandlers.New(s.ProgressService),
		LeaderboardHandler: leaderboardhandlers.New(s.Leaderboard),
		jwtService:         opts.JWTService,
		limiter:            ratelimit.New(opts.RateLimitPerMinute, ratelimit.ByIP),
		allowedOrigins:     opts.AllowedOrigins,
		trustProxy:         opts.TrustProxy,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	if h.trustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.With(h.limiter.Middleware).Post("/register", h.AuthHandler.Register)
			r.With(h.limiter.Middleware).Post("/login", h.AuthHandler.Login)
			r.With(auth.Middleware(h.jwtService)).Get("/profile", h.UserHandler.GetProfile)
		})

		r.Get("/rankings", h.LeaderboardHandler.GetRankings)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/daily-reward/{userID}", func(r chi.Router) {
				r.Get("/last-claim", h.RewardHandler.GetLastClaim)
				r.With(h.limiter.Middleware).Post("/claim", h.RewardHandler.Claim)
			})
			r.Route("/progress", func(r chi.Router) {
				r.Get("/", h.ProgressHandler.List)
				r.With(h.limiter.Middleware).Post("/", h.ProgressHandler.Submit)
			})
		})
	})

	return r
}
