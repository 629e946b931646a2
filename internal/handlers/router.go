package handlers

import (
	"net/http"
	"time"

	"github.com/a2sh3r/stablex/internal/middleware"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/a2sh3r/stablex/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const tokenTTL = 24 * time.Hour

// Services groups the workflows exposed over HTTP.
type Services struct {
	Users         service.UserService
	Wallets       service.WalletService
	Deposits      service.DepositService
	Withdrawals   service.WithdrawalService
	Notifications service.NotificationService
	Restrictions  service.RestrictionService
	Settings      service.SettingsService
}

// SocketServer upgrades an authenticated request to a realtime connection.
type SocketServer interface {
	Serve(w http.ResponseWriter, r *http.Request, userID int64)
}

type Handler struct {
	userService         service.UserService
	walletService       service.WalletService
	depositService      service.DepositService
	withdrawalService   service.WithdrawalService
	notificationService service.NotificationService
	restrictionService  service.RestrictionService
	settingsService     service.SettingsService
	sockets             SocketServer
	secretKey           string
}

func NewHandler(s Services, sockets SocketServer, secretKey string) *Handler {
	return &Handler{
		userService:         s.Users,
		walletService:       s.Wallets,
		depositService:      s.Deposits,
		withdrawalService:   s.Withdrawals,
		notificationService: s.Notifications,
		restrictionService:  s.Restrictions,
		settingsService:     s.Settings,
		sockets:             sockets,
		secretKey:           secretKey,
	}
}

type RouterOptions struct {
	CORSOrigins []string
	Limiter     *middleware.UserLimiter
}

func NewRouter(handler *Handler, secretKey string, opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewLoggingMiddleware())
	r.Use(chimw.Recoverer)
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", middleware.HashHeader},
			ExposedHeaders: []string{"Authorization", middleware.HashHeader},
			MaxAge:         300,
		}))
	}
	r.Use(middleware.NewGzipMiddleware())
	r.Use(middleware.NewHashMiddleware(secretKey))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	authenticated := func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secretKey))
		if opts.Limiter != nil {
			r.Use(middleware.RateLimitMiddleware(opts.Limiter))
		}
	}
	can := middleware.RequireCapability

	r.Get("/api/settings", handler.GetSettings)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)

		r.Group(func(r chi.Router) {
			authenticated(r)
			r.Use(can(models.CapViewOwn))

			r.Get("/me", handler.Me)
			r.Get("/balance", handler.GetBalance)
			r.Get("/balance/history", handler.GetBalanceHistory)
			r.Get("/deposits", handler.ListMyDeposits)
			r.Get("/withdrawals", handler.ListMyWithdrawals)
			r.Get("/restrictions/{type}", handler.CheckRestriction)
			r.Get("/notifications", handler.ListNotifications)
			r.Post("/notifications/{id}/read", handler.MarkNotificationRead)

			r.With(can(models.CapCreateRequests)).Post("/deposits", handler.CreateDeposit)
			r.With(can(models.CapCreateRequests)).Post("/withdrawals", handler.CreateWithdrawal)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		authenticated(r)

		r.Group(func(r chi.Router) {
			r.Use(can(models.CapApproveRequests))
			r.Get("/deposits", handler.AdminListDeposits)
			r.Post("/deposits/{id}/approve", handler.ApproveDeposit)
			r.Post("/deposits/{id}/reject", handler.RejectDeposit)
			r.Get("/deposits/{id}/bonus-audit", handler.DepositBonusAudit)
			r.Get("/withdrawals", handler.AdminListWithdrawals)
			r.Post("/withdrawals/{id}/approve", handler.ApproveWithdrawal)
			r.Post("/withdrawals/{id}/reject", handler.RejectWithdrawal)
		})

		r.With(can(models.CapDeleteRequests)).Delete("/deposits/{id}", handler.DeleteDeposit)
		r.With(can(models.CapDeleteRequests)).Delete("/withdrawals/{id}", handler.DeleteWithdrawal)

		r.With(can(models.CapManageBalances)).Put("/users/{id}/balance", handler.SetBalance)
		r.With(can(models.CapManageBalances)).Get("/users/{id}/balance/history", handler.AdminBalanceHistory)

		r.With(can(models.CapSendNotifications)).Post("/notifications", handler.CreateNotification)

		r.Group(func(r chi.Router) {
			r.Use(can(models.CapManageRestrictions))
			r.Get("/restrictions", handler.ListRestrictions)
			r.Put("/restrictions", handler.UpsertRestriction)
			r.Delete("/restrictions/{id}", handler.DeleteRestriction)
		})

		r.Group(func(r chi.Router) {
			r.Use(can(models.CapManageSettings))
			r.Put("/settings", handler.UpdateSettings)
			r.Put("/settings/referral-reward", handler.SetReferralReward)
			r.Post("/settings/refresh-price", handler.RefreshReferencePrice)
		})
	})

	r.With(middleware.JWTMiddleware(secretKey)).Get("/ws", handler.ServeWS)

	return r
}
