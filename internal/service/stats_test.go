package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raffleworks/crypto-raffle-api/internal/domain"
	"github.com/raffleworks/crypto-raffle-api/internal/repository"
	"github.com/raffleworks/crypto-raffle-api/internal/repository/dao"
)

type brokenStatsRepo struct{}

var errStorageDown = errors.New("storage down")

func (brokenStatsRepo) ListRaffles(context.Context) ([]domain.Raffle, error) {
	return nil, errStorageDown
}

func (brokenStatsRepo) ListAllParticipants(context.Context) ([]domain.Participant, error) {
	return nil, errStorageDown
}

func (brokenStatsRepo) ListAllTransactions(context.Context) ([]domain.Transaction, error) {
	return nil, errStorageDown
}

func (brokenStatsRepo) ListPendingWinnerPayments(context.Context) ([]domain.WinnerPayment, error) {
	return nil, errStorageDown
}

type countingStatsRepo struct {
	StatsRepository
	listCalls int
}

func (c *countingStatsRepo) ListRaffles(ctx context.Context) ([]domain.Raffle, error) {
	c.listCalls++
	return c.StatsRepository.ListRaffles(ctx)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	now := int64(100_000)

	repo := repository.NewRaffleRepository(dao.NewMemoryDAO())

	_, err := repo.CreateRaffle(ctx, domain.Raffle{
		ID: "raffle_live", TotalSpots: 10, MaxPerWallet: 1, EndTime: now + 1000, CreatedAt: 1,
	})
	require.NoError(t, err)
	_, err = repo.CreateRaffle(ctx, domain.Raffle{
		ID: "raffle_done", Status: domain.RaffleStatusCompleted, TotalSpots: 10, MaxPerWallet: 1, EndTime: now - 1000, CreatedAt: 1,
	})
	require.NoError(t, err)

	_, err = repo.AddParticipant(ctx, domain.Participant{RaffleID: "raffle_live", Address: "0xaaa", TxHash: "0xh1"})
	require.NoError(t, err)
	_, err = repo.AddParticipant(ctx, domain.Participant{RaffleID: "raffle_done", Address: "0xbbb", TxHash: "0xh2"})
	require.NoError(t, err)

	_, err = repo.AddTransaction(ctx, domain.Transaction{RaffleID: "raffle_live", From: "0xaaa", Amount: 0.1, TxHash: "0xh1"})
	require.NoError(t, err)
	_, err = repo.AddTransaction(ctx, domain.Transaction{RaffleID: "raffle_done", From: "0xbbb", Amount: 0.25, TxHash: "0xh2"})
	require.NoError(t, err)

	_, err = repo.AddWinnerPayment(ctx, domain.WinnerPayment{
		RaffleID: "raffle_done", WinnerAddress: "0xbbb", PaymentStatus: domain.PaymentStatusPending,
	})
	require.NoError(t, err)

	svc := NewStatsService(repo, time.Second)
	svc.now = func() int64 { return now }

	stats := svc.Refresh(ctx)
	assert.Equal(t, 1, stats.ActiveRaffles)
	assert.Equal(t, 2, stats.TotalParticipants)
	assert.InDelta(t, 0.35, stats.TotalRevenue, 1e-9)
	assert.Equal(t, 1, stats.PendingWinners)
}

func TestRefresh_DegradesToZeros(t *testing.T) {
	svc := NewStatsService(brokenStatsRepo{}, time.Second)

	stats := svc.Refresh(context.Background())
	assert.Equal(t, domain.Stats{}, stats)
}

func TestGetStats_CachesWithinTTL(t *testing.T) {
	ctx := context.Background()
	now := int64(100_000)

	counting := &countingStatsRepo{StatsRepository: repository.NewRaffleRepository(dao.NewMemoryDAO())}
	svc := NewStatsService(counting, 5*time.Second)
	svc.now = func() int64 { return now }

	svc.GetStats(ctx)
	svc.GetStats(ctx)
	assert.Equal(t, 1, counting.listCalls)

	// Advance past the TTL; the next read recomputes.
	now += 6_000
	svc.GetStats(ctx)
	assert.Equal(t, 2, counting.listCalls)
}

func TestRecentActivity(t *testing.T) {
	ctx := context.Background()

	repo := repository.NewRaffleRepository(dao.NewMemoryDAO())

	_, err := repo.CreateRaffle(ctx, domain.Raffle{ID: "raffle_1", Title: "Genesis", TotalSpots: 10, MaxPerWallet: 5, EndTime: 10, CreatedAt: 1})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = repo.AddParticipant(ctx, domain.Participant{
			RaffleID:  "raffle_1",
			Address:   "0xaaa",
			Avatar:    "🎲",
			Timestamp: int64(100 + i),
			TxHash:    string(rune('a' + i)),
		})
		require.NoError(t, err)
	}

	svc := NewStatsService(repo, time.Second)

	activity, err := svc.RecentActivity(ctx, 2)
	require.NoError(t, err)
	require.Len(t, activity, 2)
	assert.Equal(t, "Genesis", activity[0].RaffleTitle)
	// Newest first.
	assert.Equal(t, int64(102), activity[0].Timestamp)
	assert.Equal(t, int64(101), activity[1].Timestamp)
}
