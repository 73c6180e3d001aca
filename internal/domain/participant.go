package domain

// Participant is one accepted paid slot in a raffle, tied to a wallet
// address. TxHash is the payment proof shared with the matching Transaction.
type Participant struct {
	ID        uint   `json:"id"`
	RaffleID  string `json:"raffleId"`
	Address   string `json:"address"`
	Entries   int    `json:"entries"`
	Avatar    string `json:"avatar"`
	Timestamp int64  `json:"timestamp"`
	TxHash    string `json:"txHash"`
}
