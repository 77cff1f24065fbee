package domain

import "math/big"

// RelayAuthorization is a recipient's off-chain signed consent for a third
// party to move vault funds on their behalf. Single-use per nonce; invalid
// once Deadline (unix seconds) has elapsed.
type RelayAuthorization struct {
	UserAddress Address  `json:"user_address"`
	ToAddress   Address  `json:"to_address"`
	Amount      *big.Int `json:"amount"` // Smallest-unit stable token
	Nonce       uint64   `json:"nonce"`
	Deadline    int64    `json:"deadline"`
	V           uint8    `json:"v"`
	R           [32]byte `json:"-"`
	S           [32]byte `json:"-"`
}
