package dao

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrDuplicateEntry = errors.New("entry already recorded")

type Participant struct {
	ID       uint   `gorm:"primaryKey"`
	RaffleID string `gorm:"index;not null"`
	Address  string `gorm:"not null"`
	Entries  int    `gorm:"not null;default:1"`
	Avatar   string

	Timestamp int64 `gorm:"not null"`

	// Payment proof, shared with the matching Transaction row. Unique so a
	// retried dual write cannot record the same entry twice.
	TxHash string `gorm:"uniqueIndex;not null"`
}

// ListParticipants returns a raffle's participants in insertion order. The
// draw engine relies on this ordering to snapshot participant numbers.
func (d *RaffleDAO) ListParticipants(ctx context.Context, raffleID string) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).
		Where("raffle_id = ?", raffleID).
		Order("id ASC").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *RaffleDAO) ListAllParticipants(ctx context.Context) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Order("timestamp DESC").Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *RaffleDAO) InsertParticipant(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "idx_participants_tx_hash") {
			return Participant{}, ErrDuplicateEntry
		}

		return Participant{}, result.Error
	}

	return participant, nil
}
