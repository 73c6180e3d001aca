package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

const ethAddressPattern = `^0x[0-9a-fA-F]{40}$`

var (
	ethAddressExp = regexp2.MustCompile(ethAddressPattern, regexp2.None)

	errInvalidETHAddress = errors.New("must be a valid ethereum address (0x followed by 40 hex characters)")
	errInvalidTxHash     = errors.New("must be a valid transaction hash (0x followed by 64 hex characters)")

	txHashExp = regexp2.MustCompile(`^0x[0-9a-fA-F]{64}$`, regexp2.None)
)

func validETHAddress(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	ok, err := ethAddressExp.MatchString(s)
	if err != nil || !ok {
		return errInvalidETHAddress
	}

	return nil
}

func validTxHash(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	ok, err := txHashExp.MatchString(s)
	if err != nil || !ok {
		return errInvalidTxHash
	}

	return nil
}

type CreateRaffleRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	WalletAddress   string  `json:"walletAddress"`
	PrizePool       float64 `json:"prizePool"`
	EntryFee        float64 `json:"entryFee"`
	TotalSpots      int     `json:"totalSpots"`
	MaxPerWallet    int     `json:"maxPerWallet"`
	EndTime         int64   `json:"endTime"`
	AutoDrawEnabled *bool   `json:"autoDrawEnabled"`
}

func (req *CreateRaffleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.WalletAddress, validation.Required, validation.By(validETHAddress)),
		validation.Field(&req.PrizePool, validation.Min(0.0)),
		validation.Field(&req.EntryFee, validation.Min(0.0)),
		validation.Field(&req.TotalSpots, validation.Required, validation.Min(1)),
		validation.Field(&req.MaxPerWallet, validation.Required, validation.Min(1)),
		validation.Field(&req.EndTime, validation.Required, validation.Min(1)),
	)
}

type UpdateRaffleRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	WalletAddress   *string  `json:"walletAddress"`
	PrizePool       *float64 `json:"prizePool"`
	EntryFee        *float64 `json:"entryFee"`
	TotalSpots      *int     `json:"totalSpots"`
	MaxPerWallet    *int     `json:"maxPerWallet"`
	EndTime         *int64   `json:"endTime"`
	AutoDrawEnabled *bool    `json:"autoDrawEnabled"`
}

func (req *UpdateRaffleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Length(1, 200)),
		validation.Field(&req.WalletAddress, validation.By(validETHAddressPtr)),
		validation.Field(&req.TotalSpots, validation.Min(1)),
		validation.Field(&req.MaxPerWallet, validation.Min(1)),
		validation.Field(&req.EndTime, validation.Min(1)),
	)
}

func validETHAddressPtr(value interface{}) error {
	p, _ := value.(*string)
	if p == nil {
		return nil
	}

	return validETHAddress(*p)
}

type EnterRaffleRequest struct {
	Address string  `json:"address"`
	Entries int     `json:"entries"`
	Avatar  string  `json:"avatar"`
	TxHash  string  `json:"txHash"`
	Amount  float64 `json:"amount"`
}

func (req *EnterRaffleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Address, validation.Required, validation.By(validETHAddress)),
		validation.Field(&req.Entries, validation.Min(0)),
		validation.Field(&req.TxHash, validation.Required, validation.By(validTxHash)),
		validation.Field(&req.Amount, validation.Min(0.0)),
	)
}
