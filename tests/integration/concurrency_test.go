package integration

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/http/dto"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Racing claims for the same (entry, period) must settle as exactly one
// success; the ledger's compare-and-set is the gate and the custody layer
// sees exactly one release.
func TestConcurrentClaims_SingleWinner(t *testing.T) {
	env := newTestEnv(t)

	data := env.createPayroll(t, []dto.PaymentRecordDTO{aliceRecord()})
	entry := data["entries"].([]interface{})[0].(map[string]interface{})
	claimLink := entry["claim_link"].(string)

	const racers = 16
	codes := make([]int, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			w := env.doJSON(t, http.MethodPost, claimLink, nil)
			codes[idx] = w.Code
		}(i)
	}
	wg.Wait()

	var won, conflicted int
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			won++
		case http.StatusConflict:
			conflicted++
		default:
			t.Fatalf("unexpected status %d", code)
		}
	}

	assert.Equal(t, 1, won, "exactly one racer claims the period")
	assert.Equal(t, racers-1, conflicted)
	assert.Equal(t, 1, env.custody.claimCalls, "custody releases funds once")
}

// A nonce admits exactly one relayed transfer, no matter how many identical
// submissions race through the relay.
func TestConcurrentRelay_NonceAdmitsOne(t *testing.T) {
	env := newTestEnv(t)

	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	req := signedRelayRequest(t, key, 9, time.Now().Add(time.Hour).Unix())

	const racers = 10
	codes := make([]int, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			w := env.doJSON(t, http.MethodPost, "/api/v1/transfers/relay", req)
			codes[idx] = w.Code
		}(i)
	}
	wg.Wait()

	var submitted, rejected int
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			submitted++
		case http.StatusConflict:
			rejected++
		default:
			t.Fatalf("unexpected status %d", code)
		}
	}

	assert.Equal(t, 1, submitted)
	assert.Equal(t, racers-1, rejected)
	assert.Equal(t, 1, env.custody.transfers)
}

// Entries for different recipients claim independently even when their
// requests interleave.
func TestConcurrentClaims_DistinctEntries(t *testing.T) {
	env := newTestEnv(t)

	bob := dto.PaymentRecordDTO{
		Name:                "Bob",
		Email:               "bob@example.com",
		RecipientIdentifier: bobAddr,
		ResolvedAddress:     bobAddr,
		Amount:              900,
		Monthly:             true,
	}
	data := env.createPayroll(t, []dto.PaymentRecordDTO{aliceRecord(), bob})
	entries := data["entries"].([]interface{})
	require.Len(t, entries, 2)

	links := make([]string, len(entries))
	for i, e := range entries {
		links[i] = e.(map[string]interface{})["claim_link"].(string)
	}

	codes := make([]int, len(links))
	var wg sync.WaitGroup
	for i, link := range links {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			w := env.doJSON(t, http.MethodPost, path, nil)
			codes[idx] = w.Code
		}(i, link)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "entry %d claim", i)
	}
	assert.Equal(t, 2, env.custody.claimCalls)
}
