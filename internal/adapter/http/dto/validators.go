package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	ethAddressRe = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	nameRe       = regexp.MustCompile(`^[a-z0-9][a-z0-9\-]*\.(celo|eth)$`)
	hex32Re      = regexp.MustCompile(`^(0x)?[a-fA-F0-9]{64}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("eth_address", validateEthAddress)
		_ = v.RegisterValidation("recipient", validateRecipient)
		_ = v.RegisterValidation("hex32", validateHex32)
	}
}

// validateEthAddress accepts a 0x-prefixed 40-hex-digit address.
func validateEthAddress(fl validator.FieldLevel) bool {
	return ethAddressRe.MatchString(fl.Field().String())
}

// validateRecipient accepts either an address or a resolvable name.
func validateRecipient(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return ethAddressRe.MatchString(s) || nameRe.MatchString(s)
}

// validateHex32 accepts a 32-byte hex string, with or without 0x prefix.
func validateHex32(fl validator.FieldLevel) bool {
	return hex32Re.MatchString(fl.Field().String())
}
