package router

import (
	"github.com/denmor86/profit-gainer/internal/config"
	"github.com/denmor86/profit-gainer/internal/network/handlers"
	"github.com/denmor86/profit-gainer/internal/network/middleware"
	"github.com/denmor86/profit-gainer/internal/services"
	"github.com/denmor86/profit-gainer/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config   config.Config
	Identity services.IdentityService
	Ledger   services.LedgerService
	Reports  services.ReportsService
	Pricing  services.PricingService
}

func NewRouter(config config.Config, storage storage.Storage) *Router {
	pricing := services.NewPricing(config.Pricing)
	return &Router{
		Config:   config,
		Identity: services.NewIdentity(config, storage.Users),
		Ledger:   services.NewLedger(storage, pricing),
		Reports:  services.NewReports(storage),
		Pricing:  pricing,
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateUserHandler(router.Identity))
		})
		// операции, доступные только авторизованным пользователям
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Put("/user/profile", handlers.UpdateUserNameHandler(router.Identity))
			r.Get("/wallet", handlers.GetWalletHandler(router.Ledger))
			r.Post("/wallet/withdraw", handlers.WithdrawHandler(router.Ledger))
			r.Get("/investments", handlers.GetInvestmentsHandler(router.Reports))
			r.Post("/investments", handlers.AddInvestmentHandler(router.Ledger))
			r.Get("/deposits", handlers.GetDepositsHandler(router.Reports))
			r.Post("/deposits", handlers.AddDepositHandler(router.Ledger))
			r.Get("/fund-requests", handlers.GetFundRequestStatsHandler(router.Reports))
			r.Post("/fund-requests", handlers.AddFundRequestHandler(router.Ledger))
			// операции администратора
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/dashboard", handlers.AdminDashboardHandler(router.Reports))
				r.Post("/bonus", handlers.AddBonusHandler(router.Ledger))
				r.Post("/deposits/{id}/approve", handlers.ApproveDepositHandler(router.Ledger))
				r.Post("/deposits/{id}/reject", handlers.RejectDepositHandler(router.Ledger))
				r.Post("/fund-requests/{id}/approve", handlers.ApproveFundRequestHandler(router.Ledger))
				r.Post("/fund-requests/{id}/reject", handlers.RejectFundRequestHandler(router.Ledger))
				r.Delete("/users/{id}", handlers.DeleteUserHandler(router.Ledger))
			})
		})
	})
	return r
}
