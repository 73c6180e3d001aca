package dao

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrWinnerPaymentExists   = errors.New("winner payment already exists")
	ErrWinnerPaymentNotFound = errors.New("winner payment not found")
	ErrWinnerAlreadyPaid     = errors.New("winner already paid")
)

type WinnerPayment struct {
	ID uint `gorm:"primaryKey"`

	// One payment per raffle, enforced by the database.
	RaffleID string `gorm:"uniqueIndex;not null"`

	RaffleTitle   string  `gorm:"not null"`
	WinnerAddress string  `gorm:"not null"`
	PrizeAmount   float64 `gorm:"not null"`
	DrawnAt       int64   `gorm:"not null"`
	PaymentStatus string  `gorm:"not null;default:pending"`
	PaidAt        *int64

	ParticipantNumber int `gorm:"not null"`
	TotalParticipants int `gorm:"not null"`
}

func (d *RaffleDAO) InsertWinnerPayment(ctx context.Context, payment WinnerPayment) (WinnerPayment, error) {
	result := d.db.WithContext(ctx).Create(&payment)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "idx_winner_payments_raffle_id") {
			return WinnerPayment{}, ErrWinnerPaymentExists
		}

		return WinnerPayment{}, result.Error
	}

	return payment, nil
}

func (d *RaffleDAO) GetWinnerPayment(ctx context.Context, raffleID string) (WinnerPayment, error) {
	var payment WinnerPayment

	result := d.db.WithContext(ctx).Where("raffle_id = ?", raffleID).First(&payment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return WinnerPayment{}, ErrWinnerPaymentNotFound
		}

		return WinnerPayment{}, result.Error
	}

	return payment, nil
}

func (d *RaffleDAO) ListWinnerPayments(ctx context.Context) ([]WinnerPayment, error) {
	var payments []WinnerPayment

	result := d.db.WithContext(ctx).Order("drawn_at DESC").Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

func (d *RaffleDAO) ListPendingWinnerPayments(ctx context.Context) ([]WinnerPayment, error) {
	var payments []WinnerPayment

	result := d.db.WithContext(ctx).
		Where("payment_status = ?", "pending").
		Order("drawn_at DESC").
		Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

// MarkWinnerPaid flips pending to paid. The update is conditioned on the
// current status, so a repeated call never overwrites paidAt.
func (d *RaffleDAO) MarkWinnerPaid(ctx context.Context, raffleID string, paidAt int64) (WinnerPayment, error) {
	result := d.db.WithContext(ctx).
		Model(&WinnerPayment{}).
		Where("raffle_id = ? AND payment_status = ?", raffleID, "pending").
		Updates(map[string]any{
			"payment_status": "paid",
			"paid_at":        paidAt,
		})
	if result.Error != nil {
		return WinnerPayment{}, result.Error
	}

	if result.RowsAffected == 0 {
		payment, err := d.GetWinnerPayment(ctx, raffleID)
		if err != nil {
			return WinnerPayment{}, err
		}

		return payment, ErrWinnerAlreadyPaid
	}

	return d.GetWinnerPayment(ctx, raffleID)
}
