package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrRaffleNotFound         = errors.New("raffle not found")
	ErrRaffleAlreadyCompleted = errors.New("raffle already completed")
)

type Raffle struct {
	ID            string `gorm:"primaryKey"`
	Title         string `gorm:"not null"`
	Description   string
	WalletAddress string  `gorm:"not null"`
	PrizePool     float64 `gorm:"not null"`
	EntryFee      float64 `gorm:"not null"`
	TotalSpots    int     `gorm:"not null"`
	MaxPerWallet  int     `gorm:"not null"`

	// Millisecond epoch timestamps, matching the wire format.
	EndTime   int64 `gorm:"not null"`
	CreatedAt int64 `gorm:"not null"`

	Status          string `gorm:"not null;default:active"`
	Winner          string
	WinnerAvatar    string
	CompletedAt     *int64
	WinnerDrawnAt   *int64
	AutoDrawEnabled bool `gorm:"not null;default:true"`
}

// RaffleUpdate carries the operator-editable fields. Nil means unchanged.
type RaffleUpdate struct {
	Title           *string
	Description     *string
	WalletAddress   *string
	PrizePool       *float64
	EntryFee        *float64
	TotalSpots      *int
	MaxPerWallet    *int
	EndTime         *int64
	AutoDrawEnabled *bool
}

// RaffleCompletion is the terminal-state update applied by the draw engine.
// Winner fields stay empty for a completion without a winner.
type RaffleCompletion struct {
	Winner        string
	WinnerAvatar  string
	CompletedAt   int64
	WinnerDrawnAt *int64
}

type RaffleDAO struct {
	db *gorm.DB
}

func NewRaffleDAO(db *gorm.DB) *RaffleDAO {
	return &RaffleDAO{
		db: db,
	}
}

func (d *RaffleDAO) ListRaffles(ctx context.Context) ([]Raffle, error) {
	var raffles []Raffle

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&raffles)
	if result.Error != nil {
		return nil, result.Error
	}

	return raffles, nil
}

func (d *RaffleDAO) ListActiveRaffles(ctx context.Context, now int64) ([]Raffle, error) {
	var raffles []Raffle

	result := d.db.WithContext(ctx).
		Where("status = ? AND end_time > ?", "active", now).
		Order("end_time ASC").
		Find(&raffles)
	if result.Error != nil {
		return nil, result.Error
	}

	return raffles, nil
}

func (d *RaffleDAO) GetRaffle(ctx context.Context, id string) (Raffle, error) {
	var raffle Raffle

	result := d.db.WithContext(ctx).Where("id = ?", id).First(&raffle)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Raffle{}, ErrRaffleNotFound
		}

		return Raffle{}, result.Error
	}

	return raffle, nil
}

func (d *RaffleDAO) InsertRaffle(ctx context.Context, raffle Raffle) (Raffle, error) {
	result := d.db.WithContext(ctx).Create(&raffle)
	if result.Error != nil {
		return Raffle{}, result.Error
	}

	return raffle, nil
}

func (d *RaffleDAO) UpdateRaffle(ctx context.Context, id string, update RaffleUpdate) (Raffle, error) {
	updates := map[string]any{}
	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.WalletAddress != nil {
		updates["wallet_address"] = *update.WalletAddress
	}
	if update.PrizePool != nil {
		updates["prize_pool"] = *update.PrizePool
	}
	if update.EntryFee != nil {
		updates["entry_fee"] = *update.EntryFee
	}
	if update.TotalSpots != nil {
		updates["total_spots"] = *update.TotalSpots
	}
	if update.MaxPerWallet != nil {
		updates["max_per_wallet"] = *update.MaxPerWallet
	}
	if update.EndTime != nil {
		updates["end_time"] = *update.EndTime
	}
	if update.AutoDrawEnabled != nil {
		updates["auto_draw_enabled"] = *update.AutoDrawEnabled
	}

	if len(updates) > 0 {
		result := d.db.WithContext(ctx).Model(&Raffle{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return Raffle{}, result.Error
		}
		if result.RowsAffected == 0 {
			return Raffle{}, ErrRaffleNotFound
		}
	}

	return d.GetRaffle(ctx, id)
}

// DeleteRaffle removes the raffle and cascades to its participants and
// transactions in one database transaction.
func (d *RaffleDAO) DeleteRaffle(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&Raffle{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRaffleNotFound
		}

		if err := tx.Where("raffle_id = ?", id).Delete(&Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("raffle_id = ?", id).Delete(&Transaction{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// CompleteRaffle moves a raffle from active to completed. The update is
// conditioned on the status still being active, so a concurrent or repeated
// transition affects zero rows and reports ErrRaffleAlreadyCompleted.
func (d *RaffleDAO) CompleteRaffle(ctx context.Context, id string, completion RaffleCompletion) error {
	updates := map[string]any{
		"status":       "completed",
		"completed_at": completion.CompletedAt,
	}
	if completion.Winner != "" {
		updates["winner"] = completion.Winner
		updates["winner_avatar"] = completion.WinnerAvatar
		updates["winner_drawn_at"] = completion.WinnerDrawnAt
	}

	result := d.db.WithContext(ctx).
		Model(&Raffle{}).
		Where("id = ? AND status = ?", id, "active").
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := d.db.WithContext(ctx).Model(&Raffle{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrRaffleNotFound
		}

		return ErrRaffleAlreadyCompleted
	}

	return nil
}
