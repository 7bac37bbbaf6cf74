package cli

import (
	"context"
	"fmt"
	"io"
	"iter"
	"math/big"

	"github.com/briandowns/spinner"

	"github.com/agbru/numlab/internal/fibonacci"
)

// CollectSequence pulls count terms from seq, checking ctx between terms.
// When showSpinner is set and count reaches SpinnerThreshold, a spinner
// written to out reports the number of terms generated so far.
func CollectSequence(ctx context.Context, seq iter.Seq[*big.Int], count int, out io.Writer, showSpinner bool) ([]*big.Int, error) {
	var s Spinner
	if showSpinner && count >= SpinnerThreshold {
		s = newSpinner(spinner.WithWriter(out))
		s.UpdateSuffix(fmt.Sprintf(" Generating %d terms...", count))
		s.Start()
		defer s.Stop()
	}

	terms := make([]*big.Int, 0, fibonacci.CapacityHint(count))
	for v := range seq {
		if err := ctx.Err(); err != nil {
			return terms, err
		}
		terms = append(terms, v)
		if s != nil && len(terms)%SpinnerUpdateEvery == 0 {
			s.UpdateSuffix(fmt.Sprintf(" Generating terms: %d/%d", len(terms), count))
		}
	}
	return terms, nil
}
