package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AdminLoginRequest struct {
	Address string `json:"address"`
}

func (req *AdminLoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Address, validation.Required, validation.By(validETHAddress)),
	)
}
