package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedWallet struct {
	calls   int
	answers []bool
	err     error
}

func (w *scriptedWallet) TransactionConfirmed(ctx context.Context, txHash string) (bool, error) {
	defer func() { w.calls++ }()

	if w.err != nil {
		return false, w.err
	}
	if w.calls < len(w.answers) {
		return w.answers[w.calls], nil
	}

	return false, nil
}

func TestWaitForConfirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms on later attempt", func(t *testing.T) {
		wallet := &scriptedWallet{answers: []bool{false, false, true}}
		svc := NewPaymentService(wallet, 5, time.Millisecond)

		require.NoError(t, svc.WaitForConfirmation(ctx, "0xhash"))
		assert.Equal(t, 3, wallet.calls)
	})

	t.Run("gives up after attempt budget", func(t *testing.T) {
		wallet := &scriptedWallet{}
		svc := NewPaymentService(wallet, 3, time.Millisecond)

		err := svc.WaitForConfirmation(ctx, "0xhash")
		assert.ErrorIs(t, err, ErrPaymentUnconfirmed)
		assert.Equal(t, 3, wallet.calls)
	})

	t.Run("provider errors are retried", func(t *testing.T) {
		wallet := &scriptedWallet{err: errors.New("rpc down")}
		svc := NewPaymentService(wallet, 2, time.Millisecond)

		err := svc.WaitForConfirmation(ctx, "0xhash")
		assert.ErrorIs(t, err, ErrPaymentUnconfirmed)
		assert.Equal(t, 2, wallet.calls)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		wallet := &scriptedWallet{}
		svc := NewPaymentService(wallet, 30, time.Minute)

		err := svc.WaitForConfirmation(cancelled, "0xhash")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
