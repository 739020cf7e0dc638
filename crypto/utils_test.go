// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package crypto

import (
	"crypto/elliptic"
	"reflect"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
)

func TestSecondaryPoint(t *testing.T) {
	type args struct {
		curve elliptic.Curve
		label string
	}
	tests := []struct {
		name          string
		args          args
		wantIsOnCurve bool
		wantErr       bool
	}{{
		name:          "Deterministically produces a point on secp256k1 for a given label",
		args:          args{btcec.S256(), "gg18-signing-round5-secondary-point"},
		wantIsOnCurve: true,
	}, {
		name:          "Deterministically produces a point on P-256 for a given label",
		args:          args{elliptic.P256(), "gg18-signing-round5-secondary-point"},
		wantIsOnCurve: true,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPt, err := SecondaryPoint(tt.args.curve, tt.args.label)
			if (err != nil) != tt.wantErr {
				t.Errorf("SecondaryPoint() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if gotPt == nil {
				t.Fatalf("SecondaryPoint() gotPt == nil")
			}
			if tt.wantIsOnCurve && !gotPt.IsOnCurve() {
				t.Error("SecondaryPoint() not on curve, wantIsOnCurve = true")
			}

			gotPtAgain, err := SecondaryPoint(tt.args.curve, tt.args.label)
			if err != nil {
				t.Fatalf("SecondaryPoint() second call error = %v", err)
			}
			if !reflect.DeepEqual(gotPt, gotPtAgain) {
				t.Errorf("SecondaryPoint() repeat invocation did not return a deep equal result")
			}
		})
	}

	t.Run("Different labels produce different points", func(t *testing.T) {
		pt1, err := SecondaryPoint(btcec.S256(), "label-one")
		if err != nil {
			t.Fatalf("SecondaryPoint() error = %v", err)
		}
		pt2, err := SecondaryPoint(btcec.S256(), "label-two")
		if err != nil {
			t.Fatalf("SecondaryPoint() error = %v", err)
		}
		if reflect.DeepEqual(pt1, pt2) {
			t.Errorf("SecondaryPoint() distinct labels produced the same point")
		}
	})
}
