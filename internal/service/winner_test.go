package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raffleworks/crypto-raffle-api/internal/domain"
	"github.com/raffleworks/crypto-raffle-api/internal/repository"
	"github.com/raffleworks/crypto-raffle-api/internal/repository/dao"
)

func TestMarkWinnerPaid(t *testing.T) {
	ctx := context.Background()

	repo := repository.NewRaffleRepository(dao.NewMemoryDAO())
	_, err := repo.AddWinnerPayment(ctx, domain.WinnerPayment{
		RaffleID:      "raffle_1",
		RaffleTitle:   "Genesis",
		WinnerAddress: "0xaaa",
		PrizeAmount:   2.5,
		DrawnAt:       1000,
		PaymentStatus: domain.PaymentStatusPending,
	})
	require.NoError(t, err)

	svc := NewWinnerService(repo)
	svc.now = func() int64 { return 2000 }

	t.Run("transitions pending to paid", func(t *testing.T) {
		paid, err := svc.MarkWinnerPaid(ctx, "raffle_1")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, paid.PaymentStatus)
		require.NotNil(t, paid.PaidAt)
		assert.Equal(t, int64(2000), *paid.PaidAt)

		pending, err := svc.ListPendingWinners(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("second call reports already paid", func(t *testing.T) {
		svc.now = func() int64 { return 9999 }

		payment, err := svc.MarkWinnerPaid(ctx, "raffle_1")
		assert.ErrorIs(t, err, ErrWinnerAlreadyPaid)
		// Original paid timestamp survives the retry.
		require.NotNil(t, payment.PaidAt)
		assert.Equal(t, int64(2000), *payment.PaidAt)
	})

	t.Run("unknown raffle", func(t *testing.T) {
		_, err := svc.MarkWinnerPaid(ctx, "raffle_missing")
		assert.ErrorIs(t, err, ErrWinnerPaymentNotFound)
	})
}
