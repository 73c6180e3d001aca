package service

import (
	"context"
	"errors"
	"time"
)

// ErrPaymentUnconfirmed means the entry fee transfer could not be confirmed
// within the bounded polling window. It is deliberately non-fatal: the entry
// is still recorded, mirroring the payment flow this service fronts.
var ErrPaymentUnconfirmed = errors.New("payment not confirmed")

// WalletClient reports the confirmation status of a value transfer submitted
// by a participant's wallet.
type WalletClient interface {
	TransactionConfirmed(ctx context.Context, txHash string) (bool, error)
}

// PaymentService polls the wallet provider for transaction confirmation with
// a fixed attempt budget and backoff.
type PaymentService struct {
	wallet   WalletClient
	attempts int
	backoff  time.Duration
}

func NewPaymentService(wallet WalletClient, attempts int, backoff time.Duration) *PaymentService {
	if attempts <= 0 {
		attempts = 30
	}
	if backoff <= 0 {
		backoff = 2 * time.Second
	}

	return &PaymentService{
		wallet:   wallet,
		attempts: attempts,
		backoff:  backoff,
	}
}

// WaitForConfirmation returns nil once the transaction is confirmed, or
// ErrPaymentUnconfirmed after the attempt budget is exhausted. Provider
// errors are retried like unconfirmed polls.
func (s *PaymentService) WaitForConfirmation(ctx context.Context, txHash string) error {
	for attempt := 0; attempt < s.attempts; attempt++ {
		confirmed, err := s.wallet.TransactionConfirmed(ctx, txHash)
		if err == nil && confirmed {
			return nil
		}

		if attempt == s.attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.backoff):
		}
	}

	return ErrPaymentUnconfirmed
}
