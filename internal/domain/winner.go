package domain

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// WinnerPayment tracks prize disbursement to a drawn winner. At most one
// exists per raffle, created by the draw engine with status pending and
// moved to paid exactly once by an operator.
type WinnerPayment struct {
	ID            uint    `json:"id"`
	RaffleID      string  `json:"raffleId"`
	RaffleTitle   string  `json:"raffleTitle"`
	WinnerAddress string  `json:"winnerAddress"`
	PrizeAmount   float64 `json:"prizeAmount"`
	DrawnAt       int64   `json:"drawnAt"`
	PaymentStatus string  `json:"paymentStatus"`
	PaidAt        *int64  `json:"paidAt,omitempty"`

	// ParticipantNumber is the winner's 1-based position in the participant
	// list as enumerated at draw time; TotalParticipants is the count at the
	// same moment.
	ParticipantNumber int `json:"participantNumber"`
	TotalParticipants int `json:"totalParticipants"`
}
