package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/raffleworks/crypto-raffle-api/internal/domain"
	"github.com/raffleworks/crypto-raffle-api/internal/repository"
)

type DrawRepository interface {
	ListRaffles(ctx context.Context) ([]domain.Raffle, error)
	GetRaffle(ctx context.Context, id string) (domain.Raffle, error)
	ListParticipants(ctx context.Context, raffleID string) ([]domain.Participant, error)
	CompleteRaffle(ctx context.Context, id string, completion domain.RaffleCompletion) error
	AddWinnerPayment(ctx context.Context, payment domain.WinnerPayment) (domain.WinnerPayment, error)
	GetWinnerPayment(ctx context.Context, raffleID string) (domain.WinnerPayment, error)
}

// DrawService moves expired raffles to their terminal state and selects
// winners. The transition is guarded by a conditional status update in the
// repository, so overlapping sweeps never draw twice.
type DrawService struct {
	repo            DrawRepository
	minParticipants int

	intn func(n int) int
	now  func() int64
}

func NewDrawService(repo DrawRepository, minParticipants int) *DrawService {
	if minParticipants < 2 {
		minParticipants = 2
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return &DrawService{
		repo:            repo,
		minParticipants: minParticipants,
		intn:            rng.Intn,
		now:             func() int64 { return time.Now().UnixMilli() },
	}
}

// CheckExpiredRaffles sweeps every raffle whose end time has passed while
// still active. A failure on one raffle is logged and does not stop the
// sweep for the others.
func (s *DrawService) CheckExpiredRaffles(ctx context.Context) error {
	now := s.now()

	raffles, err := s.repo.ListRaffles(ctx)
	if err != nil {
		return fmt.Errorf("s.repo.ListRaffles -> %w", err)
	}

	for _, raffle := range raffles {
		if raffle.Status == domain.RaffleStatusCompleted && raffle.Winner != "" {
			// A completed raffle with a winner must carry a payment row.
			// Re-create it if an earlier sweep crashed between the status
			// transition and the insert.
			if err := s.ensureWinnerPayment(ctx, raffle); err != nil {
				zap.L().Error("winner payment reconciliation failed",
					zap.String("raffleID", raffle.ID),
					zap.Error(err))
			}

			continue
		}

		if !raffle.IsExpired(now) {
			continue
		}
		if !raffle.AutoDrawEnabled {
			// Expired but undrawn is a valid resting state, left for the
			// operator.
			continue
		}

		if err := s.drawRaffle(ctx, raffle, now); err != nil {
			zap.L().Error("raffle draw failed",
				zap.String("raffleID", raffle.ID),
				zap.Error(err))
		}
	}

	return nil
}

// drawRaffle performs the terminal transition for a single expired raffle.
// Running it against an already-completed raffle is a silent no-op.
func (s *DrawService) drawRaffle(ctx context.Context, raffle domain.Raffle, now int64) error {
	// Re-check right before committing; another sweep may have won already.
	current, err := s.repo.GetRaffle(ctx, raffle.ID)
	if err != nil {
		return fmt.Errorf("s.repo.GetRaffle -> %w", err)
	}
	if current.Status != domain.RaffleStatusActive {
		return nil
	}

	participants, err := s.repo.ListParticipants(ctx, raffle.ID)
	if err != nil {
		return fmt.Errorf("s.repo.ListParticipants -> %w", err)
	}

	if len(participants) < s.minParticipants {
		err := s.repo.CompleteRaffle(ctx, raffle.ID, domain.RaffleCompletion{CompletedAt: now})
		if err != nil {
			if errors.Is(err, repository.ErrRaffleAlreadyCompleted) {
				return nil
			}

			return fmt.Errorf("s.repo.CompleteRaffle -> %w", err)
		}

		zap.L().Info("raffle completed without winner",
			zap.String("raffleID", raffle.ID),
			zap.Int("participants", len(participants)))

		return nil
	}

	winnerIndex := s.intn(len(participants))
	winner := participants[winnerIndex]
	drawnAt := now

	err = s.repo.CompleteRaffle(ctx, raffle.ID, domain.RaffleCompletion{
		Winner:        winner.Address,
		WinnerAvatar:  winner.Avatar,
		CompletedAt:   now,
		WinnerDrawnAt: &drawnAt,
	})
	if err != nil {
		// The conditional update affected no rows: another runner drew this
		// raffle between the re-check and the commit.
		if errors.Is(err, repository.ErrRaffleAlreadyCompleted) {
			return nil
		}

		return fmt.Errorf("s.repo.CompleteRaffle -> %w", err)
	}

	payment := domain.WinnerPayment{
		RaffleID:          raffle.ID,
		RaffleTitle:       raffle.Title,
		WinnerAddress:     winner.Address,
		PrizeAmount:       raffle.PrizePool,
		DrawnAt:           drawnAt,
		PaymentStatus:     domain.PaymentStatusPending,
		ParticipantNumber: winnerIndex + 1,
		TotalParticipants: len(participants),
	}

	// The raffle is already completed at this point, so a lost insert would
	// strand the winner outside the payout ledger. One idempotent retry
	// here; the sweep reconciles anything that still slips through.
	if _, err := s.repo.AddWinnerPayment(ctx, payment); err != nil &&
		!errors.Is(err, repository.ErrWinnerPaymentExists) {
		if _, err = s.repo.AddWinnerPayment(ctx, payment); err != nil &&
			!errors.Is(err, repository.ErrWinnerPaymentExists) {
			return fmt.Errorf("s.repo.AddWinnerPayment -> %w", err)
		}
	}

	zap.L().Info("winner drawn",
		zap.String("raffleID", raffle.ID),
		zap.String("winner", winner.Address),
		zap.Int("participantNumber", winnerIndex+1),
		zap.Int("totalParticipants", len(participants)))

	return nil
}

// ensureWinnerPayment re-creates the payment row for a drawn raffle that is
// missing one. The winner snapshot lives on the raffle itself, so the row
// can be rebuilt from the stored participant list.
func (s *DrawService) ensureWinnerPayment(ctx context.Context, raffle domain.Raffle) error {
	_, err := s.repo.GetWinnerPayment(ctx, raffle.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrWinnerPaymentNotFound) {
		return fmt.Errorf("s.repo.GetWinnerPayment -> %w", err)
	}

	participants, err := s.repo.ListParticipants(ctx, raffle.ID)
	if err != nil {
		return fmt.Errorf("s.repo.ListParticipants -> %w", err)
	}

	participantNumber := 0
	for i, p := range participants {
		if strings.EqualFold(p.Address, raffle.Winner) {
			participantNumber = i + 1
			break
		}
	}

	drawnAt := int64(0)
	if raffle.WinnerDrawnAt != nil {
		drawnAt = *raffle.WinnerDrawnAt
	} else if raffle.CompletedAt != nil {
		drawnAt = *raffle.CompletedAt
	}

	payment := domain.WinnerPayment{
		RaffleID:          raffle.ID,
		RaffleTitle:       raffle.Title,
		WinnerAddress:     raffle.Winner,
		PrizeAmount:       raffle.PrizePool,
		DrawnAt:           drawnAt,
		PaymentStatus:     domain.PaymentStatusPending,
		ParticipantNumber: participantNumber,
		TotalParticipants: len(participants),
	}

	if _, err := s.repo.AddWinnerPayment(ctx, payment); err != nil &&
		!errors.Is(err, repository.ErrWinnerPaymentExists) {
		return fmt.Errorf("s.repo.AddWinnerPayment -> %w", err)
	}

	zap.L().Warn("restored missing winner payment",
		zap.String("raffleID", raffle.ID),
		zap.String("winner", raffle.Winner))

	return nil
}
