package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/raffleworks/crypto-raffle-api/internal/domain"
	"github.com/raffleworks/crypto-raffle-api/internal/repository/dao"
)

var (
	ErrRaffleNotFound         = dao.ErrRaffleNotFound
	ErrRaffleAlreadyCompleted = dao.ErrRaffleAlreadyCompleted
	ErrDuplicateEntry         = dao.ErrDuplicateEntry
	ErrDuplicateTransaction   = dao.ErrDuplicateTransaction
	ErrWinnerPaymentExists    = dao.ErrWinnerPaymentExists
	ErrWinnerPaymentNotFound  = dao.ErrWinnerPaymentNotFound
	ErrWinnerAlreadyPaid      = dao.ErrWinnerAlreadyPaid
)

// RaffleDAO is the storage contract for all raffle entities. It is
// implemented by the gorm-backed dao.RaffleDAO and by dao.MemoryDAO; the
// repository never depends on storage mechanics beyond this interface.
type RaffleDAO interface {
	ListRaffles(ctx context.Context) ([]dao.Raffle, error)
	ListActiveRaffles(ctx context.Context, now int64) ([]dao.Raffle, error)
	GetRaffle(ctx context.Context, id string) (dao.Raffle, error)
	InsertRaffle(ctx context.Context, raffle dao.Raffle) (dao.Raffle, error)
	UpdateRaffle(ctx context.Context, id string, update dao.RaffleUpdate) (dao.Raffle, error)
	DeleteRaffle(ctx context.Context, id string) error
	CompleteRaffle(ctx context.Context, id string, completion dao.RaffleCompletion) error
	ListParticipants(ctx context.Context, raffleID string) ([]dao.Participant, error)
	ListAllParticipants(ctx context.Context) ([]dao.Participant, error)
	InsertParticipant(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	ListTransactions(ctx context.Context, raffleID string) ([]dao.Transaction, error)
	ListAllTransactions(ctx context.Context) ([]dao.Transaction, error)
	InsertTransaction(ctx context.Context, transaction dao.Transaction) (dao.Transaction, error)
	InsertWinnerPayment(ctx context.Context, payment dao.WinnerPayment) (dao.WinnerPayment, error)
	GetWinnerPayment(ctx context.Context, raffleID string) (dao.WinnerPayment, error)
	ListWinnerPayments(ctx context.Context) ([]dao.WinnerPayment, error)
	ListPendingWinnerPayments(ctx context.Context) ([]dao.WinnerPayment, error)
	MarkWinnerPaid(ctx context.Context, raffleID string, paidAt int64) (dao.WinnerPayment, error)
}

// RaffleRepository maps between domain and storage shapes. When a secondary
// DAO is configured, a storage failure on the primary triggers exactly one
// retry against it before the error surfaces.
type RaffleRepository struct {
	dao      RaffleDAO
	fallback RaffleDAO
}

func NewRaffleRepository(dao RaffleDAO) *RaffleRepository {
	return &RaffleRepository{
		dao: dao,
	}
}

// NewRaffleRepositoryWithFallback wires a secondary storage backend behind
// the same contract.
func NewRaffleRepositoryWithFallback(primary, fallback RaffleDAO) *RaffleRepository {
	return &RaffleRepository{
		dao:      primary,
		fallback: fallback,
	}
}

// expectedErr reports whether err is part of the storage contract rather
// than a backend failure. Contract errors never trigger the fallback.
func expectedErr(err error) bool {
	for _, sentinel := range []error{
		dao.ErrRaffleNotFound,
		dao.ErrRaffleAlreadyCompleted,
		dao.ErrDuplicateEntry,
		dao.ErrDuplicateTransaction,
		dao.ErrWinnerPaymentExists,
		dao.ErrWinnerPaymentNotFound,
		dao.ErrWinnerAlreadyPaid,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

func (r *RaffleRepository) shouldFallback(op string, err error) bool {
	if err == nil || r.fallback == nil || expectedErr(err) {
		return false
	}

	zap.L().Warn("primary storage unavailable, retrying against fallback",
		zap.String("op", op),
		zap.Error(err))

	return true
}

func (r *RaffleRepository) ListRaffles(ctx context.Context) ([]domain.Raffle, error) {
	raffles, err := r.dao.ListRaffles(ctx)
	if r.shouldFallback("ListRaffles", err) {
		raffles, err = r.fallback.ListRaffles(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListRaffles -> %w", err)
	}

	return rafflesDAOToDomain(raffles), nil
}

func (r *RaffleRepository) ListActiveRaffles(ctx context.Context, now int64) ([]domain.Raffle, error) {
	raffles, err := r.dao.ListActiveRaffles(ctx, now)
	if r.shouldFallback("ListActiveRaffles", err) {
		raffles, err = r.fallback.ListActiveRaffles(ctx, now)
	}
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListActiveRaffles -> %w", err)
	}

	return rafflesDAOToDomain(raffles), nil
}

func (r *RaffleRepository) GetRaffle(ctx context.Context, id string) (domain.Raffle, error) {
	raffle, err := r.dao.GetRaffle(ctx, id)
	if r.shouldFallback("GetRaffle", err) {
		raffle, err = r.fallback.GetRaffle(ctx, id)
	}
	if err != nil {
		if errors.Is(err, dao.ErrRaffleNotFound) {
			return domain.Raffle{}, ErrRaffleNotFound
		}

		return domain.Raffle{}, fmt.Errorf("r.dao.GetRaffle -> %w", err)
	}

	return raffleDAOToDomain(raffle), nil
}

func (r *RaffleRepository) CreateRaffle(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	created, err := r.dao.InsertRaffle(ctx, raffleDomainToDAO(raffle))
	if r.shouldFallback("CreateRaffle", err) {
		created, err = r.fallback.InsertRaffle(ctx, raffleDomainToDAO(raffle))
	}
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("r.dao.InsertRaffle -> %w", err)
	}

	return raffleDAOToDomain(created), nil
}

func (r *RaffleRepository) UpdateRaffle(ctx context.Context, id string, update domain.RaffleUpdate) (domain.Raffle, error) {
	daoUpdate := dao.RaffleUpdate{
		Title:           update.Title,
		Description:     update.Description,
		WalletAddress:   update.WalletAddress,
		PrizePool:       update.PrizePool,
		EntryFee:        update.EntryFee,
		TotalSpots:      update.TotalSpots,
		MaxPerWallet:    update.MaxPerWallet,
		EndTime:         update.EndTime,
		AutoDrawEnabled: update.AutoDrawEnabled,
	}

	updated, err := r.dao.UpdateRaffle(ctx, id, daoUpdate)
	if r.shouldFallback("UpdateRaffle", err) {
		updated, err = r.fallback.UpdateRaffle(ctx, id, daoUpdate)
	}
	if err != nil {
		if errors.Is(err, dao.ErrRaffleNotFound) {
			return domain.Raffle{}, ErrRaffleNotFound
		}

		return domain.Raffle{}, fmt.Errorf("r.dao.UpdateRaffle -> %w", err)
	}

	return raffleDAOToDomain(updated), nil
}

func (r *RaffleRepository) DeleteRaffle(ctx context.Context, id string) error {
	err := r.dao.DeleteRaffle(ctx, id)
	if r.shouldFallback("DeleteRaffle", err) {
		err = r.fallback.DeleteRaffle(ctx, id)
	}
	if err != nil {
		if errors.Is(err, dao.ErrRaffleNotFound) {
			return ErrRaffleNotFound
		}

		return fmt.Errorf("r.dao.DeleteRaffle -> %w", err)
	}

	return nil
}

func (r *RaffleRepository) CompleteRaffle(ctx context.Context, id string, completion domain.RaffleCompletion) error {
	daoCompletion := dao.RaffleCompletion{
		Winner:        completion.Winner,
		WinnerAvatar:  completion.WinnerAvatar,
		CompletedAt:   completion.CompletedAt,
		WinnerDrawnAt: completion.WinnerDrawnAt,
	}

	err := r.dao.CompleteRaffle(ctx, id, daoCompletion)
	if r.shouldFallback("CompleteRaffle", err) {
		err = r.fallback.CompleteRaffle(ctx, id, daoCompletion)
	}
	if err != nil {
		if errors.Is(err, dao.ErrRaffleNotFound) {
			return ErrRaffleNotFound
		}
		if errors.Is(err, dao.ErrRaffleAlreadyCompleted) {
			return ErrRaffleAlreadyCompleted
		}

		return fmt.Errorf("r.dao.CompleteRaffle -> %w", err)
	}

	return nil
}

func (r *RaffleRepository) ListParticipants(ctx context.Context, raffleID string) ([]domain.Participant, error) {
	participants, err := r.dao.ListParticipants(ctx, raffleID)
	if r.shouldFallback("ListParticipants", err) {
		participants, err = r.fallback.ListParticipants(ctx, raffleID)
	}
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListParticipants -> %w", err)
	}

	return participantsDAOToDomain(participants), nil
}

func (r *RaffleRepository) ListAllParticipants(ctx context.Context) ([]domain.Participant, error) {
	participants, err := r.dao.ListAllParticipants(ctx)
	if r.shouldFallback("ListAllParticipants", err) {
		participants, err = r.fallback.ListAllParticipants(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAllParticipants -> %w", err)
	}

	return participantsDAOToDomain(participants), nil
}

func (r *RaffleRepository) AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.InsertParticipant(ctx, participantDomainToDAO(participant))
	if r.shouldFallback("AddParticipant", err) {
		created, err = r.fallback.InsertParticipant(ctx, participantDomainToDAO(participant))
	}
	if err != nil {
		if errors.Is(err, dao.ErrDuplicateEntry) {
			return domain.Participant{}, ErrDuplicateEntry
		}

		return domain.Participant{}, fmt.Errorf("r.dao.InsertParticipant -> %w", err)
	}

	return participantDAOToDomain(created), nil
}

func (r *RaffleRepository) ListTransactions(ctx context.Context, raffleID string) ([]domain.Transaction, error) {
	transactions, err := r.dao.ListTransactions(ctx, raffleID)
	if r.shouldFallback("ListTransactions", err) {
		transactions, err = r.fallback.ListTransactions(ctx, raffleID)
	}
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListTransactions -> %w", err)
	}

	return transactionsDAOToDomain(transactions), nil
}

func (r *RaffleRepository) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := r.dao.ListAllTransactions(ctx)
	if r.shouldFallback("ListAllTransactions", err) {
		transactions, err = r.fallback.ListAllTransactions(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAllTransactions -> %w", err)
	}

	return transactionsDAOToDomain(transactions), nil
}

func (r *RaffleRepository) AddTransaction(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	created, err := r.dao.InsertTransaction(ctx, transactionDomainToDAO(transaction))
	if r.shouldFallback("AddTransaction", err) {
		created, err = r.fallback.InsertTransaction(ctx, transactionDomainToDAO(transaction))
	}
	if err != nil {
		if errors.Is(err, dao.ErrDuplicateTransaction) {
			return domain.Transaction{}, ErrDuplicateTransaction
		}

		return domain.Transaction{}, fmt.Errorf("r.dao.InsertTransaction -> %w", err)
	}

	return transactionDAOToDomain(created), nil
}

func (r *RaffleRepository) AddWinnerPayment(ctx context.Context, payment domain.WinnerPayment) (domain.WinnerPayment, error) {
	created, err := r.dao.InsertWinnerPayment(ctx, paymentDomainToDAO(payment))
	if r.shouldFallback("AddWinnerPayment", err) {
		created, err = r.fallback.InsertWinnerPayment(ctx, paymentDomainToDAO(payment))
	}
	if err != nil {
		if errors.Is(err, dao.ErrWinnerPaymentExists) {
			return domain.WinnerPayment{}, ErrWinnerPaymentExists
		}

		return domain.WinnerPayment{}, fmt.Errorf("r.dao.InsertWinnerPayment -> %w", err)
	}

	return paymentDAOToDomain(created), nil
}

func (r *RaffleRepository) GetWinnerPayment(ctx context.Context, raffleID string) (domain.WinnerPayment, error) {
	payment, err := r.dao.GetWinnerPayment(ctx, raffleID)
	if r.shouldFallback("GetWinnerPayment", err) {
		payment, err = r.fallback.GetWinnerPayment(ctx, raffleID)
	}
	if err != nil {
		if errors.Is(err, dao.ErrWinnerPaymentNotFound) {
			return domain.WinnerPayment{}, ErrWinnerPaymentNotFound
		}

		return domain.WinnerPayment{}, fmt.Errorf("r.dao.GetWinnerPayment -> %w", err)
	}

	return paymentDAOToDomain(payment), nil
}

func (r *RaffleRepository) ListWinnerPayments(ctx context.Context) ([]domain.WinnerPayment, error) {
	payments, err := r.dao.ListWinnerPayments(ctx)
	if r.shouldFallback("ListWinnerPayments", err) {
		payments, err = r.fallback.ListWinnerPayments(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListWinnerPayments -> %w", err)
	}

	return paymentsDAOToDomain(payments), nil
}

func (r *RaffleRepository) ListPendingWinnerPayments(ctx context.Context) ([]domain.WinnerPayment, error) {
	payments, err := r.dao.ListPendingWinnerPayments(ctx)
	if r.shouldFallback("ListPendingWinnerPayments", err) {
		payments, err = r.fallback.ListPendingWinnerPayments(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListPendingWinnerPayments -> %w", err)
	}

	return paymentsDAOToDomain(payments), nil
}

func (r *RaffleRepository) MarkWinnerPaid(ctx context.Context, raffleID string, paidAt int64) (domain.WinnerPayment, error) {
	payment, err := r.dao.MarkWinnerPaid(ctx, raffleID, paidAt)
	if r.shouldFallback("MarkWinnerPaid", err) {
		payment, err = r.fallback.MarkWinnerPaid(ctx, raffleID, paidAt)
	}
	if err != nil {
		if errors.Is(err, dao.ErrWinnerPaymentNotFound) {
			return domain.WinnerPayment{}, ErrWinnerPaymentNotFound
		}
		if errors.Is(err, dao.ErrWinnerAlreadyPaid) {
			return paymentDAOToDomain(payment), ErrWinnerAlreadyPaid
		}

		return domain.WinnerPayment{}, fmt.Errorf("r.dao.MarkWinnerPaid -> %w", err)
	}

	return paymentDAOToDomain(payment), nil
}
