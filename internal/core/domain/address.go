package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Network identifies the target chain for address validation and name resolution.
type Network string

const (
	NetworkCelo          Network = "celo"
	NetworkCeloAlfajores Network = "celo-alfajores"
)

// StableTokenDecimals is the fixed-point scale of the stable token (cUSD).
const StableTokenDecimals = 18

var hexAddressRe = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// Address is a checksummed-or-lowercase 0x-prefixed account address.
type Address string

// IsHexAddress reports whether s already has canonical address syntax.
func IsHexAddress(s string) bool {
	return hexAddressRe.MatchString(strings.TrimSpace(s))
}

// IsNameIdentifier reports whether s looks like a resolvable naming-system
// name (.celo or .eth suffix). It does not guarantee the name is registered.
func IsNameIdentifier(s string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	return strings.HasSuffix(trimmed, ".celo") || strings.HasSuffix(trimmed, ".eth")
}

// NormalizeAddress lowercases a hex address for comparison and storage.
func NormalizeAddress(s string) Address {
	return Address(strings.ToLower(strings.TrimSpace(s)))
}

// Equal compares two addresses case-insensitively.
func (a Address) Equal(other Address) bool {
	return strings.EqualFold(string(a), string(other))
}

func (a Address) String() string { return string(a) }

// ToBaseUnits converts a decimal token amount string (e.g. "100.5") to an
// integer in the token's smallest unit. The conversion is string-based so
// amounts survive the trip without float rounding. Fails on negative values,
// malformed input, or more fractional digits than the token supports.
func ToBaseUnits(amount string, decimals int) (*big.Int, error) {
	s := strings.TrimSpace(amount)
	if s == "" || strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("amount %q exceeds %d decimal places", amount, decimals)
	}
	frac += strings.Repeat("0", decimals-len(frac))

	result, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}
	return result, nil
}

// FloatToBaseUnits converts a parsed amount to smallest units via its decimal
// string form. Spreadsheet cells arrive as float64; formatting with 'f' keeps
// the conversion exact for the magnitudes a payroll carries.
func FloatToBaseUnits(amount float64, decimals int) (*big.Int, error) {
	return ToBaseUnits(strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.9f", amount), "0"), "."), decimals)
}
