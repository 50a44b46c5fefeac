package api

import (
	"net/http"
	"time"

	"tracker/src/api/controllers"
	"tracker/src/api/handlers"
	"tracker/src/clients/broker"
	"tracker/src/config"
	"tracker/src/database"
	"tracker/src/repositories"
	"tracker/src/services"
	"tracker/src/utils"
	"tracker/src/vault"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler

	cfg    *config.Config
	logger *logrus.Logger
}

func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	portfolioRepo := repositories.NewPortfolioRepository(db)
	positionRepo := repositories.NewPositionRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	credentialRepo := repositories.NewBrokerCredentialRepository(db)

	credentialVault := vault.New(cfg.Security.EncryptionKey, logger)
	brokers := broker.NewRegistry(
		broker.NewZerodhaClient(cfg.Brokers.Zerodha.BaseURL),
	)

	portfolioService := services.NewPortfolioService(portfolioRepo, positionRepo, transactionRepo)
	syncService := services.NewSyncService(portfolioService, positionRepo, transactionRepo, credentialRepo, brokers, credentialVault)
	dashboardService := services.NewDashboardService(portfolioRepo, positionRepo)

	controller := controllers.NewController(portfolioService, syncService, dashboardService)

	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handlers.NewHandler(controller),
		cfg:     cfg,
		logger:  logger,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(utils.WithLogger(r.Context(), s.logger)))
		})
	})

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/portfolios", func(r chi.Router) {
		r.Get("/", s.Handler.GetPortfolios)
		r.Post("/", s.Handler.CreatePortfolio)
		r.Get("/{id}", s.Handler.GetPortfolioByID)
		r.Put("/{id}", s.Handler.UpdatePortfolio)
		r.Delete("/{id}", s.Handler.DeletePortfolio)
		r.Get("/{id}/summary", s.Handler.GetPortfolioSummary)

		r.Post("/{id}/assets", s.Handler.AddAsset)
		r.Delete("/{id}/assets/{symbol}", s.Handler.RemoveAsset)

		r.Get("/{id}/transactions", s.Handler.GetTransactions)
		r.Post("/{id}/transactions", s.Handler.CreateTransaction)
	})

	s.Router.Route("/api/brokers", func(r chi.Router) {
		r.Get("/", s.Handler.GetBrokerCredentials)
		r.Post("/{broker}/credentials", s.Handler.SaveBrokerCredentials)
		r.Delete("/{broker}/credentials", s.Handler.DeleteBrokerCredentials)
		r.Post("/{broker}/sync-holdings", s.Handler.SyncHoldings)
		r.Post("/{broker}/sync-trades", s.Handler.SyncTrades)
	})

	s.Router.Get("/api/dashboard/stats", s.Handler.GetDashboardStats)
}

func NewHTTPServer(server *Server) *http.Server {
	return &http.Server{
		Addr:         ":" + server.cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
