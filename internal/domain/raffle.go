package domain

const (
	RaffleStatusActive    = "active"
	RaffleStatusCompleted = "completed"
)

// Raffle is a time-bounded prize pool. Timestamps are milliseconds since
// epoch, amounts are ETH.
type Raffle struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	WalletAddress   string  `json:"walletAddress"`
	PrizePool       float64 `json:"prizePool"`
	EntryFee        float64 `json:"entryFee"`
	TotalSpots      int     `json:"totalSpots"`
	MaxPerWallet    int     `json:"maxPerWallet"`
	EndTime         int64   `json:"endTime"`
	CreatedAt       int64   `json:"createdAt"`
	Status          string  `json:"status"`
	Winner          string  `json:"winner,omitempty"`
	WinnerAvatar    string  `json:"winnerAvatar,omitempty"`
	CompletedAt     *int64  `json:"completedAt,omitempty"`
	WinnerDrawnAt   *int64  `json:"winnerDrawnAt,omitempty"`
	AutoDrawEnabled bool    `json:"autoDrawEnabled"`
}

// IsActive reports whether the raffle still accepts entries at the given
// time. A completed raffle is never active, regardless of its end time.
func (r Raffle) IsActive(now int64) bool {
	return r.Status == RaffleStatusActive && now < r.EndTime
}

// IsExpired reports whether the raffle has passed its end time but has not
// been completed yet. An expired raffle with auto-draw disabled is a valid
// resting state left for manual handling.
func (r Raffle) IsExpired(now int64) bool {
	return r.Status == RaffleStatusActive && r.EndTime <= now
}

// RaffleCompletion is the terminal transition applied by the draw engine.
// Winner fields stay empty when the raffle completes without a draw.
type RaffleCompletion struct {
	Winner        string
	WinnerAvatar  string
	CompletedAt   int64
	WinnerDrawnAt *int64
}

// RaffleUpdate holds the operator-editable raffle fields. Nil fields are
// left unchanged.
type RaffleUpdate struct {
	Title           *string  `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	WalletAddress   *string  `json:"walletAddress,omitempty"`
	PrizePool       *float64 `json:"prizePool,omitempty"`
	EntryFee        *float64 `json:"entryFee,omitempty"`
	TotalSpots      *int     `json:"totalSpots,omitempty"`
	MaxPerWallet    *int     `json:"maxPerWallet,omitempty"`
	EndTime         *int64   `json:"endTime,omitempty"`
	AutoDrawEnabled *bool    `json:"autoDrawEnabled,omitempty"`
}
