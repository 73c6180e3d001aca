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

func newRaffleFixture(t *testing.T, nowMs int64) (*RaffleService, *repository.RaffleRepository) {
	t.Helper()

	repo := repository.NewRaffleRepository(dao.NewMemoryDAO())
	svc := NewRaffleService(repo, nil)
	svc.now = func() int64 { return nowMs }

	return svc, repo
}

func TestValidateEntry(t *testing.T) {
	now := int64(10_000)
	raffle := domain.Raffle{
		ID:           "raffle_1",
		Status:       domain.RaffleStatusActive,
		TotalSpots:   3,
		MaxPerWallet: 2,
		EndTime:      now + 1000,
	}

	participant := func(addr string) domain.Participant {
		return domain.Participant{RaffleID: "raffle_1", Address: addr}
	}

	tests := []struct {
		name         string
		raffle       domain.Raffle
		address      string
		participants []domain.Participant
		wantErr      error
	}{
		{
			name:    "accepts first entry",
			raffle:  raffle,
			address: "0xaaa",
		},
		{
			name:    "rejects completed raffle",
			raffle:  domain.Raffle{Status: domain.RaffleStatusCompleted, TotalSpots: 3, MaxPerWallet: 2, EndTime: now + 1000},
			address: "0xaaa",
			wantErr: ErrRaffleNotActive,
		},
		{
			name:    "rejects past end time",
			raffle:  domain.Raffle{Status: domain.RaffleStatusActive, TotalSpots: 3, MaxPerWallet: 2, EndTime: now - 1},
			address: "0xaaa",
			wantErr: ErrRaffleNotActive,
		},
		{
			name:         "rejects full raffle",
			raffle:       raffle,
			address:      "0xddd",
			participants: []domain.Participant{participant("0xaaa"), participant("0xbbb"), participant("0xccc")},
			wantErr:      ErrCapacityExceeded,
		},
		{
			name:         "rejects wallet at limit",
			raffle:       raffle,
			address:      "0xaaa",
			participants: []domain.Participant{participant("0xaaa"), participant("0xAAA")},
			wantErr:      ErrWalletLimitExceeded,
		},
		{
			name:         "not-active outranks capacity",
			raffle:       domain.Raffle{Status: domain.RaffleStatusActive, TotalSpots: 2, MaxPerWallet: 1, EndTime: now - 1},
			address:      "0xaaa",
			participants: []domain.Participant{participant("0xaaa"), participant("0xbbb")},
			wantErr:      ErrRaffleNotActive,
		},
		{
			name:         "capacity outranks wallet limit",
			raffle:       domain.Raffle{Status: domain.RaffleStatusActive, TotalSpots: 2, MaxPerWallet: 1, EndTime: now + 1000},
			address:      "0xaaa",
			participants: []domain.Participant{participant("0xaaa"), participant("0xbbb")},
			wantErr:      ErrCapacityExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.raffle, tt.address, tt.participants, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateRaffle(t *testing.T) {
	ctx := context.Background()
	now := int64(50_000)
	svc, _ := newRaffleFixture(t, now)

	t.Run("fills defaults", func(t *testing.T) {
		created, err := svc.CreateRaffle(ctx, domain.Raffle{
			Title:        "Launch",
			TotalSpots:   10,
			MaxPerWallet: 2,
			EndTime:      now + 60_000,
			// Client-supplied winner state must be discarded.
			Status: domain.RaffleStatusCompleted,
			Winner: "0xcheat",
		})
		require.NoError(t, err)

		assert.Equal(t, "raffle_50000", created.ID)
		assert.Equal(t, now, created.CreatedAt)
		assert.Equal(t, domain.RaffleStatusActive, created.Status)
		assert.Empty(t, created.Winner)
		assert.Nil(t, created.CompletedAt)
	})

	t.Run("rejects end time in the past", func(t *testing.T) {
		_, err := svc.CreateRaffle(ctx, domain.Raffle{
			Title:        "Expired on arrival",
			TotalSpots:   10,
			MaxPerWallet: 2,
			EndTime:      now - 1,
		})
		assert.ErrorIs(t, err, ErrInvalidEndTime)
	})

	t.Run("rejects zero capacity", func(t *testing.T) {
		_, err := svc.CreateRaffle(ctx, domain.Raffle{
			Title:   "No spots",
			EndTime: now + 60_000,
		})
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})
}

func TestEnterRaffle(t *testing.T) {
	ctx := context.Background()
	now := int64(50_000)

	newEntered := func(t *testing.T) (*RaffleService, *repository.RaffleRepository, domain.Raffle) {
		svc, repo := newRaffleFixture(t, now)
		raffle, err := svc.CreateRaffle(ctx, domain.Raffle{
			Title:        "Launch",
			EntryFee:     0.05,
			TotalSpots:   2,
			MaxPerWallet: 1,
			EndTime:      now + 60_000,
		})
		require.NoError(t, err)
		return svc, repo, raffle
	}

	t.Run("records participant and transaction pair", func(t *testing.T) {
		svc, repo, raffle := newEntered(t)

		entered, err := svc.EnterRaffle(ctx, raffle.ID, domain.Participant{
			Address: "0xaaa",
			TxHash:  "0xhash1",
		})
		require.NoError(t, err)

		assert.Equal(t, raffle.ID, entered.RaffleID)
		assert.Equal(t, 1, entered.Entries)
		assert.NotEmpty(t, entered.Avatar)
		assert.Equal(t, now, entered.Timestamp)

		transactions, err := repo.ListTransactions(ctx, raffle.ID)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "0xaaa", transactions[0].From)
		assert.Equal(t, 0.05, transactions[0].Amount)
		assert.Equal(t, "0xhash1", transactions[0].TxHash)
	})

	t.Run("duplicate txHash keeps single entry", func(t *testing.T) {
		svc, repo, raffle := newEntered(t)

		first, err := svc.EnterRaffle(ctx, raffle.ID, domain.Participant{
			Address: "0xaaa",
			TxHash:  "0xhash1",
		})
		require.NoError(t, err)

		// Retried client submission with the same payment proof.
		second, err := svc.EnterRaffle(ctx, raffle.ID, domain.Participant{
			Address: "0xbbb",
			TxHash:  "0xhash1",
		})
		require.NoError(t, err)
		assert.Equal(t, first.TxHash, second.TxHash)

		participants, err := repo.ListParticipants(ctx, raffle.ID)
		require.NoError(t, err)
		assert.Len(t, participants, 1)

		transactions, err := repo.ListTransactions(ctx, raffle.ID)
		require.NoError(t, err)
		assert.Len(t, transactions, 1)
	})

	t.Run("rejects entry over wallet limit", func(t *testing.T) {
		svc, _, raffle := newEntered(t)

		_, err := svc.EnterRaffle(ctx, raffle.ID, domain.Participant{Address: "0xaaa", TxHash: "0xhash1"})
		require.NoError(t, err)

		_, err = svc.EnterRaffle(ctx, raffle.ID, domain.Participant{Address: "0xAAA", TxHash: "0xhash2"})
		assert.ErrorIs(t, err, ErrWalletLimitExceeded)
	})

	t.Run("rejects entry when full", func(t *testing.T) {
		svc, _, raffle := newEntered(t)

		_, err := svc.EnterRaffle(ctx, raffle.ID, domain.Participant{Address: "0xaaa", TxHash: "0xhash1"})
		require.NoError(t, err)
		_, err = svc.EnterRaffle(ctx, raffle.ID, domain.Participant{Address: "0xbbb", TxHash: "0xhash2"})
		require.NoError(t, err)

		_, err = svc.EnterRaffle(ctx, raffle.ID, domain.Participant{Address: "0xccc", TxHash: "0xhash3"})
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("unknown raffle", func(t *testing.T) {
		svc, _, _ := newEntered(t)

		_, err := svc.EnterRaffle(ctx, "raffle_missing", domain.Participant{Address: "0xaaa", TxHash: "0xhash9"})
		assert.ErrorIs(t, err, ErrRaffleNotFound)
	})
}
