// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package signing

import (
	"fmt"
)

// roundError attributes a failure to the round it happened in and, when
// applicable, the peer whose contribution caused it.
type roundError struct {
	cause   error
	round   int
	culprit int // peer's original party number, or 0 if not attributable to one peer
}

func newRoundError(cause error, round int, culprit int) *roundError {
	return &roundError{cause: cause, round: round, culprit: culprit}
}

func (e *roundError) Error() string {
	if e.culprit != 0 {
		return fmt.Sprintf("signing round %d: culprit party %d: %s", e.round, e.culprit, e.cause)
	}
	return fmt.Sprintf("signing round %d: %s", e.round, e.cause)
}

func (e *roundError) Unwrap() error { return e.cause }
