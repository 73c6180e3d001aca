package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupPostgres spins up a disposable postgres container. Tests calling it
// are skipped on machines without a Docker daemon.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("skipping, could not construct docker pool: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("skipping, docker daemon unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=raffles_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})
	_ = resource.Expire(120)

	dsn := fmt.Sprintf("host=localhost port=%s user=test password=test dbname=raffles_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	pool.MaxWait = 60 * time.Second
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db))

	return db
}

func TestRaffleDAO_Postgres(t *testing.T) {
	ctx := context.Background()
	db := setupPostgres(t)
	d := NewRaffleDAO(db)

	drawnAt := int64(900)

	t.Run("raffle round trip", func(t *testing.T) {
		inserted, err := d.InsertRaffle(ctx, Raffle{
			ID:            "raffle_pg",
			Title:         "Postgres",
			WalletAddress: "0x0000000000000000000000000000000000000001",
			PrizePool:     1.25,
			TotalSpots:    5,
			MaxPerWallet:  1,
			EndTime:       800,
			CreatedAt:     100,
		})
		require.NoError(t, err)
		assert.Equal(t, "active", inserted.Status)

		got, err := d.GetRaffle(ctx, "raffle_pg")
		require.NoError(t, err)
		assert.Equal(t, "Postgres", got.Title)
		assert.Equal(t, 1.25, got.PrizePool)

		_, err = d.GetRaffle(ctx, "raffle_missing")
		assert.ErrorIs(t, err, ErrRaffleNotFound)
	})

	t.Run("conditional completion", func(t *testing.T) {
		err := d.CompleteRaffle(ctx, "raffle_pg", RaffleCompletion{
			Winner:        "0xaaa",
			WinnerAvatar:  "🎯",
			CompletedAt:   900,
			WinnerDrawnAt: &drawnAt,
		})
		require.NoError(t, err)

		err = d.CompleteRaffle(ctx, "raffle_pg", RaffleCompletion{Winner: "0xbbb", CompletedAt: 950})
		assert.ErrorIs(t, err, ErrRaffleAlreadyCompleted)

		got, err := d.GetRaffle(ctx, "raffle_pg")
		require.NoError(t, err)
		assert.Equal(t, "completed", got.Status)
		assert.Equal(t, "0xaaa", got.Winner)
		require.NotNil(t, got.WinnerDrawnAt)
		assert.Equal(t, drawnAt, *got.WinnerDrawnAt)

		err = d.CompleteRaffle(ctx, "raffle_missing", RaffleCompletion{CompletedAt: 1})
		assert.ErrorIs(t, err, ErrRaffleNotFound)
	})

	t.Run("participant txHash unique", func(t *testing.T) {
		_, err := d.InsertParticipant(ctx, Participant{RaffleID: "raffle_pg", Address: "0xaaa", Entries: 1, TxHash: "0xdup"})
		require.NoError(t, err)

		_, err = d.InsertParticipant(ctx, Participant{RaffleID: "raffle_pg", Address: "0xbbb", Entries: 1, TxHash: "0xdup"})
		assert.ErrorIs(t, err, ErrDuplicateEntry)
	})

	t.Run("one payment per raffle", func(t *testing.T) {
		_, err := d.InsertWinnerPayment(ctx, WinnerPayment{
			RaffleID: "raffle_pg", WinnerAddress: "0xaaa", DrawnAt: 900, PaymentStatus: "pending",
		})
		require.NoError(t, err)

		_, err = d.InsertWinnerPayment(ctx, WinnerPayment{
			RaffleID: "raffle_pg", WinnerAddress: "0xbbb", DrawnAt: 950, PaymentStatus: "pending",
		})
		assert.ErrorIs(t, err, ErrWinnerPaymentExists)

		paid, err := d.MarkWinnerPaid(ctx, "raffle_pg", 1000)
		require.NoError(t, err)
		assert.Equal(t, "paid", paid.PaymentStatus)

		_, err = d.MarkWinnerPaid(ctx, "raffle_pg", 1100)
		assert.ErrorIs(t, err, ErrWinnerAlreadyPaid)
	})

	t.Run("delete cascades", func(t *testing.T) {
		_, err := d.InsertTransaction(ctx, Transaction{RaffleID: "raffle_pg", FromAddress: "0xaaa", Amount: 0.1, TxHash: "0xdup"})
		require.NoError(t, err)

		require.NoError(t, d.DeleteRaffle(ctx, "raffle_pg"))

		_, err = d.GetRaffle(ctx, "raffle_pg")
		assert.ErrorIs(t, err, ErrRaffleNotFound)

		participants, err := d.ListAllParticipants(ctx)
		require.NoError(t, err)
		assert.Empty(t, participants)

		transactions, err := d.ListAllTransactions(ctx)
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})
}
