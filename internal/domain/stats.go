package domain

// Stats is the read-only dashboard rollup. It is derived on demand from the
// repository and carries no state of its own.
type Stats struct {
	ActiveRaffles     int     `json:"activeRaffles"`
	TotalParticipants int     `json:"totalParticipants"`
	TotalRevenue      float64 `json:"totalRevenue"`
	PendingWinners    int     `json:"pendingWinners"`
}

// Activity is one line of the admin live-activity feed.
type Activity struct {
	RaffleID    string `json:"raffleId"`
	RaffleTitle string `json:"raffleTitle"`
	Address     string `json:"address"`
	Avatar      string `json:"avatar"`
	Timestamp   int64  `json:"timestamp"`
}
