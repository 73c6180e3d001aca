package dao

import (
	"context"
	"sort"
	"sync"
)

// MemoryDAO is an insertion-ordered, in-process implementation of the same
// contract as RaffleDAO. It backs the storage fallback path and tests.
type MemoryDAO struct {
	mu sync.RWMutex

	raffles      []Raffle
	participants []Participant
	transactions []Transaction
	payments     []WinnerPayment

	nextParticipantID uint
	nextTransactionID uint
	nextPaymentID     uint
}

func NewMemoryDAO() *MemoryDAO {
	return &MemoryDAO{
		nextParticipantID: 1,
		nextTransactionID: 1,
		nextPaymentID:     1,
	}
}

func (d *MemoryDAO) ListRaffles(ctx context.Context) ([]Raffle, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	raffles := make([]Raffle, len(d.raffles))
	copy(raffles, d.raffles)
	sort.SliceStable(raffles, func(i, j int) bool {
		return raffles[i].CreatedAt > raffles[j].CreatedAt
	})

	return raffles, nil
}

func (d *MemoryDAO) ListActiveRaffles(ctx context.Context, now int64) ([]Raffle, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var raffles []Raffle
	for _, r := range d.raffles {
		if r.Status == "active" && r.EndTime > now {
			raffles = append(raffles, r)
		}
	}
	sort.SliceStable(raffles, func(i, j int) bool {
		return raffles[i].EndTime < raffles[j].EndTime
	})

	return raffles, nil
}

func (d *MemoryDAO) GetRaffle(ctx context.Context, id string) (Raffle, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, r := range d.raffles {
		if r.ID == id {
			return r, nil
		}
	}

	return Raffle{}, ErrRaffleNotFound
}

func (d *MemoryDAO) InsertRaffle(ctx context.Context, raffle Raffle) (Raffle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Same default the postgres column carries.
	if raffle.Status == "" {
		raffle.Status = "active"
	}

	d.raffles = append(d.raffles, raffle)

	return raffle, nil
}

func (d *MemoryDAO) UpdateRaffle(ctx context.Context, id string, update RaffleUpdate) (Raffle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.raffles {
		if d.raffles[i].ID != id {
			continue
		}

		r := &d.raffles[i]
		if update.Title != nil {
			r.Title = *update.Title
		}
		if update.Description != nil {
			r.Description = *update.Description
		}
		if update.WalletAddress != nil {
			r.WalletAddress = *update.WalletAddress
		}
		if update.PrizePool != nil {
			r.PrizePool = *update.PrizePool
		}
		if update.EntryFee != nil {
			r.EntryFee = *update.EntryFee
		}
		if update.TotalSpots != nil {
			r.TotalSpots = *update.TotalSpots
		}
		if update.MaxPerWallet != nil {
			r.MaxPerWallet = *update.MaxPerWallet
		}
		if update.EndTime != nil {
			r.EndTime = *update.EndTime
		}
		if update.AutoDrawEnabled != nil {
			r.AutoDrawEnabled = *update.AutoDrawEnabled
		}

		return *r, nil
	}

	return Raffle{}, ErrRaffleNotFound
}

func (d *MemoryDAO) DeleteRaffle(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	found := false
	raffles := d.raffles[:0]
	for _, r := range d.raffles {
		if r.ID == id {
			found = true
			continue
		}
		raffles = append(raffles, r)
	}
	if !found {
		return ErrRaffleNotFound
	}
	d.raffles = raffles

	participants := d.participants[:0]
	for _, p := range d.participants {
		if p.RaffleID != id {
			participants = append(participants, p)
		}
	}
	d.participants = participants

	transactions := d.transactions[:0]
	for _, t := range d.transactions {
		if t.RaffleID != id {
			transactions = append(transactions, t)
		}
	}
	d.transactions = transactions

	return nil
}

func (d *MemoryDAO) CompleteRaffle(ctx context.Context, id string, completion RaffleCompletion) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.raffles {
		if d.raffles[i].ID != id {
			continue
		}

		r := &d.raffles[i]
		if r.Status != "active" {
			return ErrRaffleAlreadyCompleted
		}

		r.Status = "completed"
		completedAt := completion.CompletedAt
		r.CompletedAt = &completedAt
		if completion.Winner != "" {
			r.Winner = completion.Winner
			r.WinnerAvatar = completion.WinnerAvatar
			r.WinnerDrawnAt = completion.WinnerDrawnAt
		}

		return nil
	}

	return ErrRaffleNotFound
}

func (d *MemoryDAO) ListParticipants(ctx context.Context, raffleID string) ([]Participant, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var participants []Participant
	for _, p := range d.participants {
		if p.RaffleID == raffleID {
			participants = append(participants, p)
		}
	}

	return participants, nil
}

func (d *MemoryDAO) ListAllParticipants(ctx context.Context) ([]Participant, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	participants := make([]Participant, len(d.participants))
	copy(participants, d.participants)
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].Timestamp > participants[j].Timestamp
	})

	return participants, nil
}

func (d *MemoryDAO) InsertParticipant(ctx context.Context, participant Participant) (Participant, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, p := range d.participants {
		if p.TxHash == participant.TxHash {
			return Participant{}, ErrDuplicateEntry
		}
	}

	participant.ID = d.nextParticipantID
	d.nextParticipantID++
	d.participants = append(d.participants, participant)

	return participant, nil
}

func (d *MemoryDAO) ListTransactions(ctx context.Context, raffleID string) ([]Transaction, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var transactions []Transaction
	for _, t := range d.transactions {
		if t.RaffleID == raffleID {
			transactions = append(transactions, t)
		}
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp > transactions[j].Timestamp
	})

	return transactions, nil
}

func (d *MemoryDAO) ListAllTransactions(ctx context.Context) ([]Transaction, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	transactions := make([]Transaction, len(d.transactions))
	copy(transactions, d.transactions)

	return transactions, nil
}

func (d *MemoryDAO) InsertTransaction(ctx context.Context, transaction Transaction) (Transaction, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, t := range d.transactions {
		if t.TxHash == transaction.TxHash {
			return Transaction{}, ErrDuplicateTransaction
		}
	}

	transaction.ID = d.nextTransactionID
	d.nextTransactionID++
	d.transactions = append(d.transactions, transaction)

	return transaction, nil
}

func (d *MemoryDAO) InsertWinnerPayment(ctx context.Context, payment WinnerPayment) (WinnerPayment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, p := range d.payments {
		if p.RaffleID == payment.RaffleID {
			return WinnerPayment{}, ErrWinnerPaymentExists
		}
	}

	payment.ID = d.nextPaymentID
	d.nextPaymentID++
	d.payments = append(d.payments, payment)

	return payment, nil
}

func (d *MemoryDAO) GetWinnerPayment(ctx context.Context, raffleID string) (WinnerPayment, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, p := range d.payments {
		if p.RaffleID == raffleID {
			return p, nil
		}
	}

	return WinnerPayment{}, ErrWinnerPaymentNotFound
}

func (d *MemoryDAO) ListWinnerPayments(ctx context.Context) ([]WinnerPayment, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	payments := make([]WinnerPayment, len(d.payments))
	copy(payments, d.payments)
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].DrawnAt > payments[j].DrawnAt
	})

	return payments, nil
}

func (d *MemoryDAO) ListPendingWinnerPayments(ctx context.Context) ([]WinnerPayment, error) {
	payments, err := d.ListWinnerPayments(ctx)
	if err != nil {
		return nil, err
	}

	pending := payments[:0]
	for _, p := range payments {
		if p.PaymentStatus == "pending" {
			pending = append(pending, p)
		}
	}

	return pending, nil
}

func (d *MemoryDAO) MarkWinnerPaid(ctx context.Context, raffleID string, paidAt int64) (WinnerPayment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.payments {
		if d.payments[i].RaffleID != raffleID {
			continue
		}

		p := &d.payments[i]
		if p.PaymentStatus != "pending" {
			return *p, ErrWinnerAlreadyPaid
		}

		p.PaymentStatus = "paid"
		paid := paidAt
		p.PaidAt = &paid

		return *p, nil
	}

	return WinnerPayment{}, ErrWinnerPaymentNotFound
}
