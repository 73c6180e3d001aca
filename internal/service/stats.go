package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/raffleworks/crypto-raffle-api/internal/domain"
)

type StatsRepository interface {
	ListRaffles(ctx context.Context) ([]domain.Raffle, error)
	ListAllParticipants(ctx context.Context) ([]domain.Participant, error)
	ListAllTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListPendingWinnerPayments(ctx context.Context) ([]domain.WinnerPayment, error)
}

// StatsService derives the dashboard rollup on demand. Results are cached
// for a short TTL; a failing read degrades that stat to zero instead of
// failing the dashboard.
type StatsService struct {
	repo StatsRepository
	ttl  time.Duration

	now func() int64

	mu       sync.Mutex
	cached   domain.Stats
	cachedAt int64
}

func NewStatsService(repo StatsRepository, ttl time.Duration) *StatsService {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}

	return &StatsService{
		repo: repo,
		ttl:  ttl,
		now:  func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *StatsService) GetStats(ctx context.Context) domain.Stats {
	now := s.now()

	s.mu.Lock()
	if s.cachedAt != 0 && now-s.cachedAt < s.ttl.Milliseconds() {
		stats := s.cached
		s.mu.Unlock()
		return stats
	}
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh recomputes the rollup, bypassing the cache.
func (s *StatsService) Refresh(ctx context.Context) domain.Stats {
	now := s.now()
	var stats domain.Stats

	raffles, err := s.repo.ListRaffles(ctx)
	if err != nil {
		zap.L().Warn("stats: raffle count unavailable", zap.Error(err))
	}
	for _, r := range raffles {
		if r.IsActive(now) {
			stats.ActiveRaffles++
		}
	}

	participants, err := s.repo.ListAllParticipants(ctx)
	if err != nil {
		zap.L().Warn("stats: participant count unavailable", zap.Error(err))
	}
	stats.TotalParticipants = len(participants)

	transactions, err := s.repo.ListAllTransactions(ctx)
	if err != nil {
		zap.L().Warn("stats: revenue unavailable", zap.Error(err))
	}
	for _, t := range transactions {
		stats.TotalRevenue += t.Amount
	}

	pending, err := s.repo.ListPendingWinnerPayments(ctx)
	if err != nil {
		zap.L().Warn("stats: pending winner count unavailable", zap.Error(err))
	}
	stats.PendingWinners = len(pending)

	s.mu.Lock()
	s.cached = stats
	s.cachedAt = now
	s.mu.Unlock()

	return stats
}

// RecentActivity returns the latest entries across all raffles, newest
// first, for the admin live feed.
func (s *StatsService) RecentActivity(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = 10
	}

	participants, err := s.repo.ListAllParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAllParticipants -> %w", err)
	}

	raffles, err := s.repo.ListRaffles(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListRaffles -> %w", err)
	}

	titles := make(map[string]string, len(raffles))
	for _, r := range raffles {
		titles[r.ID] = r.Title
	}

	if len(participants) > limit {
		participants = participants[:limit]
	}

	activities := make([]domain.Activity, len(participants))
	for i, p := range participants {
		activities[i] = domain.Activity{
			RaffleID:    p.RaffleID,
			RaffleTitle: titles[p.RaffleID],
			Address:     p.Address,
			Avatar:      p.Avatar,
			Timestamp:   p.Timestamp,
		}
	}

	return activities, nil
}
