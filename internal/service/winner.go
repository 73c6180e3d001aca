package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raffleworks/crypto-raffle-api/internal/domain"
	"github.com/raffleworks/crypto-raffle-api/internal/repository"
)

type WinnerRepository interface {
	GetWinnerPayment(ctx context.Context, raffleID string) (domain.WinnerPayment, error)
	ListWinnerPayments(ctx context.Context) ([]domain.WinnerPayment, error)
	ListPendingWinnerPayments(ctx context.Context) ([]domain.WinnerPayment, error)
	MarkWinnerPaid(ctx context.Context, raffleID string, paidAt int64) (domain.WinnerPayment, error)
}

// WinnerService exposes the payout ledger written by the draw engine and
// the single operator mutation: marking a prize as paid.
type WinnerService struct {
	repo WinnerRepository

	now func() int64
}

func NewWinnerService(repo WinnerRepository) *WinnerService {
	return &WinnerService{
		repo: repo,
		now:  func() int64 { return time.Now().UnixMilli() },
	}
}

func (s *WinnerService) ListWinners(ctx context.Context) ([]domain.WinnerPayment, error) {
	payments, err := s.repo.ListWinnerPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListWinnerPayments -> %w", err)
	}

	return payments, nil
}

func (s *WinnerService) ListPendingWinners(ctx context.Context) ([]domain.WinnerPayment, error) {
	payments, err := s.repo.ListPendingWinnerPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListPendingWinnerPayments -> %w", err)
	}

	return payments, nil
}

// MarkWinnerPaid transitions the payment from pending to paid. A second
// call reports ErrWinnerAlreadyPaid and never overwrites paidAt.
func (s *WinnerService) MarkWinnerPaid(ctx context.Context, raffleID string) (domain.WinnerPayment, error) {
	payment, err := s.repo.MarkWinnerPaid(ctx, raffleID, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrWinnerPaymentNotFound) {
			return domain.WinnerPayment{}, ErrWinnerPaymentNotFound
		}
		if errors.Is(err, repository.ErrWinnerAlreadyPaid) {
			return payment, ErrWinnerAlreadyPaid
		}

		return domain.WinnerPayment{}, fmt.Errorf("s.repo.MarkWinnerPaid -> %w", err)
	}

	return payment, nil
}
