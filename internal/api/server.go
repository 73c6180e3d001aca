package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/raffleworks/crypto-raffle-api/docs"
	v1 "github.com/raffleworks/crypto-raffle-api/internal/api/handler/v1"
	"github.com/raffleworks/crypto-raffle-api/internal/api/middleware"
	"github.com/raffleworks/crypto-raffle-api/internal/config"
	"github.com/raffleworks/crypto-raffle-api/internal/repository"
	"github.com/raffleworks/crypto-raffle-api/internal/repository/dao"
	"github.com/raffleworks/crypto-raffle-api/internal/scheduler"
	"github.com/raffleworks/crypto-raffle-api/internal/service"
	"github.com/raffleworks/crypto-raffle-api/internal/wallet"
)

type Server struct {
	Config    *config.AppConfig
	Router    *gin.Engine
	Scheduler *scheduler.Scheduler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	// Postgres is the primary store; the in-memory DAO catches reads
	// and writes when it is unavailable, so the API keeps serving.
	repo := repository.NewRaffleRepositoryWithFallback(dao.NewRaffleDAO(db), dao.NewMemoryDAO())

	// One stats service backs both the handler and the scheduler, so the
	// periodic refresh lands in the cache requests actually read.
	statsSvc := service.NewStatsService(repo, conf.Raffle.StatsInterval)

	raffleHandler := s.initRaffleHandler(repo)
	winnerHandler := s.initWinnerHandler(repo)
	statsHandler := v1.NewStatsHandler(statsSvc)
	adminHandler := v1.NewAdminHandler(conf.API)
	s.MountHandlers(raffleHandler, winnerHandler, statsHandler, adminHandler)

	s.Scheduler = s.initScheduler(repo, statsSvc)

	return s
}

func (s *Server) walletClient() service.WalletClient {
	if url := s.Config.Raffle.RPCURL; url != "" {
		return wallet.NewRPCClient(url)
	}

	return wallet.StaticClient{Confirmed: true}
}

func (s *Server) initRaffleHandler(repo *repository.RaffleRepository) *v1.RaffleHandler {
	payments := service.NewPaymentService(s.walletClient(), s.Config.Raffle.ConfirmAttempts, s.Config.Raffle.ConfirmBackoff)
	svc := service.NewRaffleService(repo, payments)
	handler := v1.NewRaffleHandler(svc)

	return handler
}

func (s *Server) initWinnerHandler(repo *repository.RaffleRepository) *v1.WinnerHandler {
	svc := service.NewWinnerService(repo)
	handler := v1.NewWinnerHandler(svc)

	return handler
}

func (s *Server) initScheduler(repo *repository.RaffleRepository, statsSvc *service.StatsService) *scheduler.Scheduler {
	drawSvc := service.NewDrawService(repo, s.Config.Raffle.MinParticipants)

	sched := scheduler.New()
	sched.Add("expired-raffle-sweep", s.Config.Raffle.CheckInterval, drawSvc.CheckExpiredRaffles)
	sched.Add("stats-refresh", s.Config.Raffle.StatsInterval, func(ctx context.Context) error {
		statsSvc.Refresh(ctx)
		return nil
	})

	return sched
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(raffleHandler *v1.RaffleHandler, winnerHandler *v1.WinnerHandler, statsHandler *v1.StatsHandler, adminHandler *v1.AdminHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/admin/login", adminHandler.HandleAdminLogin)

		public.GET("/raffles", raffleHandler.HandleListRaffles)
		public.GET("/raffles/active", raffleHandler.HandleListActiveRaffles)
		public.GET("/raffles/:raffleID", raffleHandler.HandleGetRaffle)
		public.GET("/raffles/:raffleID/participants", raffleHandler.HandleListParticipants)
		public.POST("/raffles/:raffleID/entries", raffleHandler.HandleEnterRaffle)
		public.GET("/raffles/:raffleID/transactions", raffleHandler.HandleListTransactions)

		public.GET("/winners", winnerHandler.HandleListWinners)
		public.GET("/winners/pending", winnerHandler.HandleListPendingWinners)

		public.GET("/stats", statsHandler.HandleGetStats)
		public.GET("/activity", statsHandler.HandleRecentActivity)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.POST("/raffles", raffleHandler.HandleCreateRaffle)
		admin.PUT("/raffles/:raffleID", raffleHandler.HandleUpdateRaffle)
		admin.DELETE("/raffles/:raffleID", raffleHandler.HandleDeleteRaffle)
		admin.GET("/participants", raffleHandler.HandleListAllParticipants)
		admin.PUT("/winners/:raffleID/paid", winnerHandler.HandleMarkWinnerPaid)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Crypto Raffle API"
	docs.SwaggerInfo.Description = "Raffle lifecycle, entries, draws and winner payouts."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
