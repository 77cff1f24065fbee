package service

import (
	"fmt"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ClaimTokenService implements ports.ClaimTokenCodec as an HS256 JWT binding
// (payroll, entry, period). The HMAC signature makes the token tamper-evident
// and unforgeable without the secret; the triple itself is not confidential.
// Tokens carry no expiry: validity against the payroll's period range is the
// ledger's concern, not the token's.
type ClaimTokenService struct {
	secret []byte
	issuer string
}

// NewClaimTokenService creates a claim token codec with the given signing secret.
func NewClaimTokenService(secret string, issuer string) *ClaimTokenService {
	return &ClaimTokenService{secret: []byte(secret), issuer: issuer}
}

// Mint produces a URL-safe token for a claim binding.
func (s *ClaimTokenService) Mint(binding domain.ClaimBinding) (string, error) {
	claims := jwt.MapClaims{
		"pid": binding.PayrollID.String(),
		"eid": binding.EntryID.String(),
		"per": binding.Period.Format(binding.Cadence),
		"iat": time.Now().Unix(),
		"iss": s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing claim token: %w", err)
	}
	return signed, nil
}

// Decode validates the token's integrity and recovers the exact minted
// binding. Any mutation of the token string fails here; it can never yield a
// different triple than the one minted.
func (s *ClaimTokenService) Decode(tokenString string) (*domain.ClaimBinding, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, apperror.ErrInvalidClaimToken()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperror.ErrInvalidClaimToken()
	}

	pid, ok := claims["pid"].(string)
	if !ok {
		return nil, apperror.ErrInvalidClaimToken()
	}
	eid, ok := claims["eid"].(string)
	if !ok {
		return nil, apperror.ErrInvalidClaimToken()
	}
	per, ok := claims["per"].(string)
	if !ok {
		return nil, apperror.ErrInvalidClaimToken()
	}

	payrollID, err := uuid.Parse(pid)
	if err != nil {
		return nil, apperror.ErrInvalidClaimToken()
	}
	entryID, err := uuid.Parse(eid)
	if err != nil {
		return nil, apperror.ErrInvalidClaimToken()
	}
	period, cadence, err := domain.ParsePeriod(per)
	if err != nil {
		return nil, apperror.ErrInvalidClaimToken()
	}

	return &domain.ClaimBinding{
		PayrollID: payrollID,
		EntryID:   entryID,
		Period:    period,
		Cadence:   cadence,
	}, nil
}
