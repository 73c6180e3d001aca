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

var (
	ErrRaffleNotFound        = repository.ErrRaffleNotFound
	ErrWinnerPaymentNotFound = repository.ErrWinnerPaymentNotFound
	ErrWinnerAlreadyPaid     = repository.ErrWinnerAlreadyPaid

	ErrRaffleNotActive     = errors.New("raffle is not active")
	ErrCapacityExceeded    = errors.New("raffle has no spots left")
	ErrWalletLimitExceeded = errors.New("wallet reached its entry limit")
	ErrInvalidEndTime      = errors.New("end time must be in the future")
	ErrInvalidCapacity     = errors.New("total spots and max per wallet must be at least 1")
)

// Participant avatars assigned when an entry arrives without one.
var avatars = []string{"🎭", "🎨", "🎪", "🎯", "🎲", "🎸", "🎺", "🎻", "🎬", "🎮", "🎰", "🎳"}

type RaffleRepository interface {
	ListRaffles(ctx context.Context) ([]domain.Raffle, error)
	ListActiveRaffles(ctx context.Context, now int64) ([]domain.Raffle, error)
	GetRaffle(ctx context.Context, id string) (domain.Raffle, error)
	CreateRaffle(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error)
	UpdateRaffle(ctx context.Context, id string, update domain.RaffleUpdate) (domain.Raffle, error)
	DeleteRaffle(ctx context.Context, id string) error
	ListParticipants(ctx context.Context, raffleID string) ([]domain.Participant, error)
	ListAllParticipants(ctx context.Context) ([]domain.Participant, error)
	AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	ListTransactions(ctx context.Context, raffleID string) ([]domain.Transaction, error)
	AddTransaction(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
}

// RaffleService owns the raffle lifecycle up to expiry: creation, operator
// edits, entry validation, and the paired participant/transaction write.
type RaffleService struct {
	repo     RaffleRepository
	payments *PaymentService

	now func() int64
}

func NewRaffleService(repo RaffleRepository, payments *PaymentService) *RaffleService {
	return &RaffleService{
		repo:     repo,
		payments: payments,
		now:      func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *RaffleService) ListRaffles(ctx context.Context) ([]domain.Raffle, error) {
	raffles, err := s.repo.ListRaffles(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListRaffles -> %w", err)
	}

	return raffles, nil
}

func (s *RaffleService) ListActiveRaffles(ctx context.Context) ([]domain.Raffle, error) {
	raffles, err := s.repo.ListActiveRaffles(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListActiveRaffles -> %w", err)
	}

	return raffles, nil
}

func (s *RaffleService) GetRaffle(ctx context.Context, id string) (domain.Raffle, error) {
	raffle, err := s.repo.GetRaffle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRaffleNotFound) {
			return domain.Raffle{}, ErrRaffleNotFound
		}

		return domain.Raffle{}, fmt.Errorf("s.repo.GetRaffle -> %w", err)
	}

	return raffle, nil
}

func (s *RaffleService) CreateRaffle(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	now := s.now()

	if raffle.ID == "" {
		raffle.ID = fmt.Sprintf("raffle_%d", now)
	}
	if raffle.CreatedAt == 0 {
		raffle.CreatedAt = now
	}

	// New raffles always start active with the winner fields cleared.
	raffle.Status = domain.RaffleStatusActive
	raffle.Winner = ""
	raffle.WinnerAvatar = ""
	raffle.CompletedAt = nil
	raffle.WinnerDrawnAt = nil

	if raffle.EndTime <= raffle.CreatedAt {
		return domain.Raffle{}, ErrInvalidEndTime
	}
	if raffle.TotalSpots < 1 || raffle.MaxPerWallet < 1 {
		return domain.Raffle{}, ErrInvalidCapacity
	}

	created, err := s.repo.CreateRaffle(ctx, raffle)
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("s.repo.CreateRaffle -> %w", err)
	}

	return created, nil
}

func (s *RaffleService) UpdateRaffle(ctx context.Context, id string, update domain.RaffleUpdate) (domain.Raffle, error) {
	if update.EndTime != nil && *update.EndTime <= s.now() {
		return domain.Raffle{}, ErrInvalidEndTime
	}
	if update.TotalSpots != nil && *update.TotalSpots < 1 {
		return domain.Raffle{}, ErrInvalidCapacity
	}
	if update.MaxPerWallet != nil && *update.MaxPerWallet < 1 {
		return domain.Raffle{}, ErrInvalidCapacity
	}

	updated, err := s.repo.UpdateRaffle(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrRaffleNotFound) {
			return domain.Raffle{}, ErrRaffleNotFound
		}

		return domain.Raffle{}, fmt.Errorf("s.repo.UpdateRaffle -> %w", err)
	}

	return updated, nil
}

func (s *RaffleService) DeleteRaffle(ctx context.Context, id string) error {
	if err := s.repo.DeleteRaffle(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRaffleNotFound) {
			return ErrRaffleNotFound
		}

		return fmt.Errorf("s.repo.DeleteRaffle -> %w", err)
	}

	return nil
}

func (s *RaffleService) ListParticipants(ctx context.Context, raffleID string) ([]domain.Participant, error) {
	if _, err := s.GetRaffle(ctx, raffleID); err != nil {
		return nil, err
	}

	participants, err := s.repo.ListParticipants(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListParticipants -> %w", err)
	}

	return participants, nil
}

func (s *RaffleService) ListAllParticipants(ctx context.Context) ([]domain.Participant, error) {
	participants, err := s.repo.ListAllParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAllParticipants -> %w", err)
	}

	return participants, nil
}

func (s *RaffleService) ListTransactions(ctx context.Context, raffleID string) ([]domain.Transaction, error) {
	if _, err := s.GetRaffle(ctx, raffleID); err != nil {
		return nil, err
	}

	transactions, err := s.repo.ListTransactions(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListTransactions -> %w", err)
	}

	return transactions, nil
}

// ValidateEntry checks entry eligibility against the current participant
// list. It is pure: no reads, no writes, no clock access beyond the given
// now, so the rules are independently testable.
func ValidateEntry(raffle domain.Raffle, address string, participants []domain.Participant, now int64) error {
	if !raffle.IsActive(now) {
		return ErrRaffleNotActive
	}

	if len(participants) >= raffle.TotalSpots {
		return ErrCapacityExceeded
	}

	walletEntries := 0
	for _, p := range participants {
		if strings.EqualFold(p.Address, address) {
			walletEntries++
		}
	}
	if walletEntries >= raffle.MaxPerWallet {
		return ErrWalletLimitExceeded
	}

	return nil
}

// EnterRaffle validates and records one paid entry. Every accepted entry
// produces exactly one Participant and one Transaction sharing the txHash;
// the two writes are not atomic, so each is idempotent on txHash and the
// second is retried once on failure.
func (s *RaffleService) EnterRaffle(ctx context.Context, raffleID string, entry domain.Participant) (domain.Participant, error) {
	raffle, err := s.GetRaffle(ctx, raffleID)
	if err != nil {
		return domain.Participant{}, err
	}

	if s.payments != nil {
		if err := s.payments.WaitForConfirmation(ctx, entry.TxHash); err != nil {
			if !errors.Is(err, ErrPaymentUnconfirmed) {
				return domain.Participant{}, err
			}
			// Known weak point: the entry is still recorded.
			zap.L().Warn("recording entry without payment confirmation",
				zap.String("raffleID", raffleID),
				zap.String("txHash", entry.TxHash))
		}
	}

	participants, err := s.repo.ListParticipants(ctx, raffleID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.ListParticipants -> %w", err)
	}

	if err := ValidateEntry(raffle, entry.Address, participants, s.now()); err != nil {
		return domain.Participant{}, err
	}

	entry.RaffleID = raffleID
	entry.Timestamp = s.now()
	if entry.Entries == 0 {
		entry.Entries = 1
	}
	if entry.Avatar == "" {
		entry.Avatar = avatars[rand.Intn(len(avatars))]
	}

	created, err := s.repo.AddParticipant(ctx, entry)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			// Retried submission; the entry is already on record.
			for _, p := range participants {
				if p.TxHash == entry.TxHash {
					return p, nil
				}
			}
			return entry, nil
		}

		return domain.Participant{}, fmt.Errorf("s.repo.AddParticipant -> %w", err)
	}

	transaction := domain.Transaction{
		RaffleID:  raffleID,
		From:      entry.Address,
		Amount:    raffle.EntryFee,
		Timestamp: created.Timestamp,
		TxHash:    entry.TxHash,
	}

	if _, err := s.repo.AddTransaction(ctx, transaction); err != nil {
		if !errors.Is(err, repository.ErrDuplicateTransaction) {
			// One idempotent retry keeps the participant/transaction pairing
			// intact when the second write hiccups.
			if _, err = s.repo.AddTransaction(ctx, transaction); err != nil &&
				!errors.Is(err, repository.ErrDuplicateTransaction) {
				return domain.Participant{}, fmt.Errorf("s.repo.AddTransaction -> %w", err)
			}
		}
	}

	return created, nil
}
