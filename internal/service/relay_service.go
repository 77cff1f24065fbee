package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/domain"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"
	"github.com/EthGlobal-BA-Builders/gotagota/pkg/apperror"

	"github.com/rs/zerolog"
)

// relayNonceTTL bounds how long a used nonce is remembered locally. The
// custody layer tracks nonces authoritatively on-chain; this store only
// spares the relay wasted submissions.
const relayNonceTTL = 24 * time.Hour

// RelayServiceImpl implements ports.RelayService. Local checks run in a
// fixed order, cheapest first: deadline, then signature recovery, then nonce.
// They are an optimization to avoid burning network fees, never a substitute
// for on-chain enforcement.
type RelayServiceImpl struct {
	recovery ports.SignerRecovery
	nonces   ports.NonceStore
	custody  ports.CustodyClient
	log      zerolog.Logger
	now      func() time.Time
}

// NewRelayService creates a new RelayServiceImpl.
func NewRelayService(recovery ports.SignerRecovery, nonces ports.NonceStore, custody ports.CustodyClient, log zerolog.Logger) *RelayServiceImpl {
	return &RelayServiceImpl{
		recovery: recovery,
		nonces:   nonces,
		custody:  custody,
		log:      log,
		now:      time.Now,
	}
}

// RelayTransfer verifies the authorization and submits the transfer. Either
// a transaction reference comes back (submission succeeded; confirmation is
// the custody layer's concern) or a typed failure before submission.
func (s *RelayServiceImpl) RelayTransfer(ctx context.Context, auth domain.RelayAuthorization) (string, error) {
	if auth.Amount == nil || auth.Amount.Sign() <= 0 {
		return "", apperror.ErrInvalidAmount()
	}

	// Deadline first: no signature-recovery work for a dead authorization.
	if auth.Deadline <= s.now().Unix() {
		return "", apperror.ErrExpiredAuthorization()
	}

	signer, err := s.recovery.Recover(auth)
	if err != nil {
		s.log.Debug().Err(err).Str("user", auth.UserAddress.String()).Msg("signature recovery failed")
		return "", apperror.ErrInvalidSignature()
	}
	if !signer.Equal(auth.UserAddress) {
		return "", apperror.ErrInvalidSignature()
	}

	nonceKey := fmt.Sprintf("%d", auth.Nonce)
	nonceHeld := false
	fresh, err := s.nonces.CheckAndSet(ctx, auth.UserAddress.String(), auth.Nonce, relayNonceTTL)
	if err != nil {
		// The chain re-checks nonces; degrade to submission rather than
		// failing the transfer on a store hiccup.
		s.log.Warn().Err(err).Str("nonce", nonceKey).Msg("nonce store error, deferring to on-chain check")
	} else if !fresh {
		return "", apperror.ErrNonceReused()
	} else {
		nonceHeld = true
	}

	txRef, err := s.custody.GaslessTransfer(ctx, auth)
	if err != nil {
		// The submission never landed, so the nonce must not stay burned:
		// the caller is allowed to retry the same authorization and the
		// chain remains the authority on actual nonce consumption.
		if nonceHeld {
			if relErr := s.nonces.Release(ctx, auth.UserAddress.String(), auth.Nonce); relErr != nil {
				s.log.Warn().Err(relErr).Str("nonce", nonceKey).Msg("nonce release failed after submission error")
			}
		}
		// Custody adapters return typed errors (insufficient funds, network);
		// anything else surfaces as a network failure with its cause intact.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return "", appErr
		}
		return "", apperror.ErrNetwork(err)
	}

	s.log.Info().
		Str("user", auth.UserAddress.String()).
		Str("to", auth.ToAddress.String()).
		Str("amount", auth.Amount.String()).
		Str("tx_ref", txRef).
		Msg("gasless transfer relayed")

	return txRef, nil
}
