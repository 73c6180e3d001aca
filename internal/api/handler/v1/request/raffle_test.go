package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRaffleRequest_Validate(t *testing.T) {
	valid := CreateRaffleRequest{
		Title:         "Launch",
		WalletAddress: "0x1234567890abcdef1234567890ABCDEF12345678",
		PrizePool:     1.5,
		EntryFee:      0.05,
		TotalSpots:    100,
		MaxPerWallet:  3,
		EndTime:       1_700_000_000_000,
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		req := valid
		req.Title = ""
		assert.Error(t, req.Validate())
	})

	t.Run("malformed wallet address", func(t *testing.T) {
		for _, addr := range []string{
			"1234567890abcdef1234567890abcdef12345678",
			"0x1234",
			"0x1234567890abcdef1234567890abcdef1234567z",
			"",
		} {
			req := valid
			req.WalletAddress = addr
			assert.Error(t, req.Validate(), "address %q should be rejected", addr)
		}
	})

	t.Run("zero capacity", func(t *testing.T) {
		req := valid
		req.TotalSpots = 0
		assert.Error(t, req.Validate())
	})
}

func TestEnterRaffleRequest_Validate(t *testing.T) {
	valid := EnterRaffleRequest{
		Address: "0x1234567890abcdef1234567890abcdef12345678",
		TxHash:  "0x" + "ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12",
		Amount:  0.05,
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("short tx hash", func(t *testing.T) {
		req := valid
		req.TxHash = "0xabc"
		assert.Error(t, req.Validate())
	})

	t.Run("missing address", func(t *testing.T) {
		req := valid
		req.Address = ""
		assert.Error(t, req.Validate())
	})
}

func TestUpdateRaffleRequest_Validate(t *testing.T) {
	t.Run("empty update passes", func(t *testing.T) {
		req := UpdateRaffleRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("bad wallet address pointer", func(t *testing.T) {
		bad := "not-an-address"
		req := UpdateRaffleRequest{WalletAddress: &bad}
		assert.Error(t, req.Validate())
	})
}
