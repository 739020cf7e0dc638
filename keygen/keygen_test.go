package keygen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tss-gg18/signer/keygen"
)

const (
	testParticipants = 3
	testThreshold    = 2
)

func TestFullKeygen(t *testing.T) {
	ctx := context.Background()
	uuid := "test-uuid"

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

	// party i's round3 output for party j is the share addressed to j
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

	var saves []*keygen.SaveData
	for i, p := range parties {
		peerR4 := withoutSelf(r4, i+1)
		save, err := p.Round5(peerR4)
		require.NoError(t, err)
		saves = append(saves, save)
	}

	for i := 1; i < len(saves); i++ {
		assert.Equal(t, saves[0].Y.X(), saves[i].Y.X())
		assert.Equal(t, saves[0].Y.Y(), saves[i].Y.Y())
		assert.Equal(t, saves[0].Address, saves[i].Address)
	}
	assert.NotEmpty(t, saves[0].Address)
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
