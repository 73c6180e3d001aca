package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	v1 "github.com/raffleworks/crypto-raffle-api/internal/api/handler/v1"
	"github.com/raffleworks/crypto-raffle-api/internal/config"
	"github.com/raffleworks/crypto-raffle-api/internal/domain"
	"github.com/raffleworks/crypto-raffle-api/internal/repository"
	"github.com/raffleworks/crypto-raffle-api/internal/repository/dao"
	"github.com/raffleworks/crypto-raffle-api/internal/service"
)

func TestStatsRefreshFeedsHandlerCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	s := &Server{
		Config: &config.AppConfig{
			API: &config.APIConfig{},
			Gin: &config.GinConfig{Mode: gin.TestMode},
			Raffle: &config.RaffleConfig{
				MinParticipants: 2,
				CheckInterval:   time.Second,
				StatsInterval:   time.Minute,
			},
		},
		Router: gin.New(),
	}

	repo := repository.NewRaffleRepository(dao.NewMemoryDAO())
	statsSvc := service.NewStatsService(repo, time.Minute)
	s.Router.GET("/stats", v1.NewStatsHandler(statsSvc).HandleGetStats)

	sched := s.initScheduler(repo, statsSvc)

	_, err := repo.AddWinnerPayment(ctx, domain.WinnerPayment{
		RaffleID:      "raffle_1",
		RaffleTitle:   "First",
		WinnerAddress: "0xaaa",
		PrizeAmount:   1,
		DrawnAt:       1000,
		PaymentStatus: domain.PaymentStatusPending,
	})
	require.NoError(t, err)

	sched.Tick(ctx)

	// A write after the refresh must not show up while the cache is warm:
	// the handler reads the same cache the scheduler filled.
	_, err = repo.AddWinnerPayment(ctx, domain.WinnerPayment{
		RaffleID:      "raffle_2",
		RaffleTitle:   "Second",
		WinnerAddress: "0xbbb",
		PrizeAmount:   1,
		DrawnAt:       2000,
		PaymentStatus: domain.PaymentStatusPending,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	s.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Equal(t, 1, stats.PendingWinners)
}
