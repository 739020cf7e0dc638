package signing_test

import (
	"context"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tss-gg18/signer/keygen"
	"github.com/tss-gg18/signer/signing"
)

const (
	testParticipants = 3
	testThreshold    = 2
)

// runKeygen drives a full keygen session to produce real SaveData for every
// party, the same way keygen_test.go does.
func runKeygen(t *testing.T) []*keygen.SaveData {
	t.Helper()
	ctx := context.Background()
	uuid := "signing-test-uuid"

	parties := make([]*keygen.Context, testParticipants)
	for i := range parties {
		parties[i] = keygen.NewContext(keygen.Params{
			PartyNumInt: i + 1,
			ShareCount:  testParticipants,
			Threshold:   testThreshold,
			UUID:        uuid,
		})
	}

	r1 := make(map[int]*keygen.Round1Result, testParticipants)
	for i, p := range parties {
		res, err := p.Round1(ctx)
		require.NoError(t, err)
		r1[i+1] = res
	}

	r2 := make(map[int]*keygen.Round2Result, testParticipants)
	for i, p := range parties {
		res, err := p.Round2()
		require.NoError(t, err)
		r2[i+1] = res
	}

	r3 := make([]map[int]*keygen.Round3Message, testParticipants)
	for i, p := range parties {
		peerR1 := withoutSelf(r1, i+1)
		peerR2 := withoutSelf(r2, i+1)
		out, err := p.Round3(peerR1, peerR2)
		require.NoError(t, err)
		r3[i] = out
	}

	r4 := make(map[int]*keygen.Round4Result, testParticipants)
	for i, p := range parties {
		inbound := make(map[int]*keygen.Round3Message, testParticipants)
		for j := range parties {
			if j == i {
				continue
			}
			inbound[j+1] = r3[j][i+1]
		}
		res, err := p.Round4(inbound)
		require.NoError(t, err)
		r4[i+1] = res
	}

	saves := make([]*keygen.SaveData, testParticipants)
	for i, p := range parties {
		peerR4 := withoutSelf(r4, i+1)
		save, err := p.Round5(peerR4)
		require.NoError(t, err)
		saves[i] = save
	}
	return saves
}

// TestFullSigning drives a quorum of testThreshold+1 parties through every
// signing round and checks they all arrive at the same signature.
func TestFullSigning(t *testing.T) {
	saves := runKeygen(t)

	quorum := []int{1, 2, 3}[:testThreshold+1]
	message := sha256.Sum256([]byte("gg18 signing test message"))

	ctxs := make(map[int]*signing.Context, len(quorum))
	for _, partyNum := range quorum {
		ctxs[partyNum] = signing.NewContext(signing.Params{
			PartyNumInt: partyNum,
			Quorum:      quorum,
			UUID:        "signing-test-uuid",
		}, saves[partyNum-1], message[:])
	}

	r1 := make(map[int]*signing.Round1Result, len(quorum))
	for _, partyNum := range quorum {
		res, err := ctxs[partyNum].Round1()
		require.NoError(t, err)
		r1[partyNum] = res
	}

	r2 := make(map[int]map[int]*signing.Round2Message, len(quorum)) // r2[sender][recipient]
	for _, partyNum := range quorum {
		out, err := ctxs[partyNum].Round2()
		require.NoError(t, err)
		r2[partyNum] = out
	}

	r3 := make(map[int]map[int]*signing.Round3Message, len(quorum)) // r3[sender][recipient]
	for _, partyNum := range quorum {
		inbound := make(map[int]*signing.Round2Message, len(quorum)-1)
		for _, other := range quorum {
			if other == partyNum {
				continue
			}
			inbound[other] = r2[other][partyNum]
		}
		out, err := ctxs[partyNum].Round3(inbound)
		require.NoError(t, err)
		r3[partyNum] = out
	}

	r4 := make(map[int]*signing.Round4Result, len(quorum))
	for _, partyNum := range quorum {
		inbound := make(map[int]*signing.Round3Message, len(quorum)-1)
		for _, other := range quorum {
			if other == partyNum {
				continue
			}
			inbound[other] = r3[other][partyNum]
		}
		res, err := ctxs[partyNum].Round4(inbound)
		require.NoError(t, err)
		r4[partyNum] = res
	}

	r5 := make(map[int]*signing.Round5Result, len(quorum))
	for _, partyNum := range quorum {
		res, err := ctxs[partyNum].Round5(withoutSelf(r4, partyNum))
		require.NoError(t, err)
		r5[partyNum] = res
	}

	r6 := make(map[int]*signing.Round6Result, len(quorum))
	for _, partyNum := range quorum {
		res, err := ctxs[partyNum].Round6(withoutSelf(r1, partyNum), withoutSelf(r5, partyNum))
		require.NoError(t, err)
		r6[partyNum] = res
	}

	r7 := make(map[int]*signing.Round7Result, len(quorum))
	for _, partyNum := range quorum {
		res, err := ctxs[partyNum].Round7()
		require.NoError(t, err)
		r7[partyNum] = res
	}

	r8 := make(map[int]*signing.Round8Result, len(quorum))
	for _, partyNum := range quorum {
		res, err := ctxs[partyNum].Round8(withoutSelf(r6, partyNum), withoutSelf(r7, partyNum))
		require.NoError(t, err)
		r8[partyNum] = res
	}

	r9 := make(map[int]*signing.Round9Result, len(quorum))
	for _, partyNum := range quorum {
		r9[partyNum] = ctxs[partyNum].Round9()
	}

	sigs := make(map[int]*signing.Signature, len(quorum))
	for _, partyNum := range quorum {
		sig, err := ctxs[partyNum].Round10(withoutSelf(r8, partyNum), withoutSelf(r9, partyNum))
		require.NoError(t, err)
		sigs[partyNum] = sig
	}

	first := sigs[quorum[0]]
	require.NotNil(t, first)
	for _, partyNum := range quorum[1:] {
		assert.Equal(t, first.R, sigs[partyNum].R)
		assert.Equal(t, first.S, sigs[partyNum].S)
		assert.Equal(t, first.Recovery, sigs[partyNum].Recovery)
	}
}

func withoutSelf[T any](m map[int]*T, self int) map[int]*T {
	out := make(map[int]*T, len(m)-1)
	for k, v := range m {
		if k == self {
			continue
		}
		out[k] = v
	}
	return out
}
