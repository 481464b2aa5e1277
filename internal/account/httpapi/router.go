// Package httpapi exposes the account operations as a JSON/HTTP gateway on chi.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"account-service/internal/account/handler"
	"account-service/internal/logger"
	"account-service/internal/security"
	"account-service/internal/server/interceptors"
)

// Pinger reports datastore readiness for /healthz. May be nil.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves the account HTTP routes.
type Handler struct {
	svc    handler.AccountService
	tokens interceptors.TokenValidator
	db     Pinger
	logger *zap.Logger
}

// NewHandler returns an HTTP handler over svc. Every /v1 route requires a Bearer access token.
func NewHandler(svc handler.AccountService, tokens interceptors.TokenValidator, db Pinger, log *zap.Logger) *Handler {
	return &Handler{svc: svc, tokens: tokens, db: db, logger: logger.OrNop(log)}
}

// Routes builds the chi router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.healthz)

	r.Route("/v1/account", func(pr chi.Router) {
		pr.Use(h.authenticate)
		pr.Post("/2fa", h.setTwoFA)
		pr.Post("/2fa/disable/confirm", h.disableTwoFAVerification)
		pr.Post("/phone/verify", h.verifyPhone)
		pr.Post("/phone/verify/confirm", h.validatePhoneVerification)
		pr.Get("/me", h.getUserInfo)
	})
	return r
}

// authenticate resolves the Bearer token to the caller and stores it the same way the gRPC
// interceptor does, so handlers read identity with interceptors.GetUserID.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := security.BearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing or invalid authorization")
			return
		}
		userID, sessionID, err := h.tokens.ValidateAccess(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "missing or invalid authorization")
			return
		}
		next.ServeHTTP(w, r.WithContext(interceptors.WithIdentity(r.Context(), userID, sessionID)))
	})
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
