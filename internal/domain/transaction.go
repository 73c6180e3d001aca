package domain

// Transaction records the economic side of a raffle entry. Exactly one
// Transaction corresponds to one Participant, sharing the same TxHash.
type Transaction struct {
	ID        uint    `json:"id"`
	RaffleID  string  `json:"raffleId"`
	From      string  `json:"from"`
	Amount    float64 `json:"amount"`
	Timestamp int64   `json:"timestamp"`
	TxHash    string  `json:"txHash"`
}
