package dao

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrDuplicateTransaction = errors.New("transaction already recorded")

type Transaction struct {
	ID       uint   `gorm:"primaryKey"`
	RaffleID string `gorm:"index;not null"`

	// "from" is a reserved word, so the column carries the full name.
	FromAddress string  `gorm:"column:from_address;not null"`
	Amount      float64 `gorm:"not null"`
	Timestamp   int64   `gorm:"not null"`
	TxHash      string  `gorm:"uniqueIndex;not null"`
}

func (d *RaffleDAO) ListTransactions(ctx context.Context, raffleID string) ([]Transaction, error) {
	var transactions []Transaction

	result := d.db.WithContext(ctx).
		Where("raffle_id = ?", raffleID).
		Order("timestamp DESC").
		Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

func (d *RaffleDAO) ListAllTransactions(ctx context.Context) ([]Transaction, error) {
	var transactions []Transaction

	result := d.db.WithContext(ctx).Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

// InsertTransaction is append-only. Re-inserting the same txHash reports
// ErrDuplicateTransaction, which makes the entry dual write safe to retry.
func (d *RaffleDAO) InsertTransaction(ctx context.Context, transaction Transaction) (Transaction, error) {
	result := d.db.WithContext(ctx).Create(&transaction)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "idx_transactions_tx_hash") {
			return Transaction{}, ErrDuplicateTransaction
		}

		return Transaction{}, result.Error
	}

	return transaction, nil
}
