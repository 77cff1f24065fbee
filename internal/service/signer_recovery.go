package service

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"

	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

// EthSignerRecovery implements ports.SignerRecovery for secp256k1
// personal-sign authorizations. The digest matches what the vault contract
// verifies on-chain: keccak256 over the packed authorization fields, wrapped
// in the "\x19Ethereum Signed Message:\n32" envelope.
type EthSignerRecovery struct{}

// NewEthSignerRecovery creates a new EthSignerRecovery.
func NewEthSignerRecovery() *EthSignerRecovery {
	return &EthSignerRecovery{}
}

// Recover derives the signing address from the authorization fields and its
// (v, r, s) signature components.
func (e *EthSignerRecovery) Recover(auth domain.RelayAuthorization) (domain.Address, error) {
	digest, err := authorizationDigest(auth)
	if err != nil {
		return "", err
	}

	v := auth.V
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return "", fmt.Errorf("invalid recovery id %d", auth.V)
	}

	// RecoverCompact wants the header byte first: 27 + recovery id.
	sig := make([]byte, 65)
	sig[0] = 27 + v
	copy(sig[1:33], auth.R[:])
	copy(sig[33:65], auth.S[:])

	pub, _, err := secpecdsa.RecoverCompact(sig, digest)
	if err != nil {
		return "", fmt.Errorf("recovering signer: %w", err)
	}

	// Address = last 20 bytes of keccak256(uncompressed pubkey minus prefix).
	pubBytes := pub.SerializeUncompressed()
	hash := keccak256(pubBytes[1:])
	return domain.NormalizeAddress("0x" + hex.EncodeToString(hash[12:])), nil
}

// authorizationDigest builds the signed digest for a relay authorization:
// keccak256 over the user and to addresses followed by the 32-byte big-endian
// amount, nonce and deadline, wrapped in the signed-message envelope.
func authorizationDigest(auth domain.RelayAuthorization) ([]byte, error) {
	user, err := addressBytes(auth.UserAddress)
	if err != nil {
		return nil, err
	}
	to, err := addressBytes(auth.ToAddress)
	if err != nil {
		return nil, err
	}
	if auth.Amount == nil {
		return nil, fmt.Errorf("authorization amount is nil")
	}

	message := keccak256(
		user,
		to,
		leftPad32(auth.Amount.Bytes()),
		leftPad32(new(big.Int).SetUint64(auth.Nonce).Bytes()),
		leftPad32(big.NewInt(auth.Deadline).Bytes()),
	)
	return keccak256([]byte("\x19Ethereum Signed Message:\n32"), message), nil
}

func addressBytes(a domain.Address) ([]byte, error) {
	s := strings.TrimPrefix(strings.TrimSpace(string(a)), "0x")
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 20 {
		return nil, fmt.Errorf("invalid address %q", a)
	}
	return b, nil
}

func leftPad32(b []byte) []byte {
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	padded := make([]byte, 32)
	copy(padded[32-len(b):], b)
	return padded
}

func keccak256(chunks ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}
