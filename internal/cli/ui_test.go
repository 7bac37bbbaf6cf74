package cli

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"slices"
	"strings"
	"testing"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/numlab/internal/cli/mocks"
	"github.com/agbru/numlab/internal/fibonacci"
)

// withMockSpinner swaps the spinner factory for the duration of a test.
// Tests using it must not run in parallel.
func withMockSpinner(t *testing.T, s Spinner) {
	t.Helper()
	original := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return s }
	t.Cleanup(func() { newSpinner = original })
}

func TestCollectSequence_ShowsSpinnerForLongRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockSpinner(ctrl)
	withMockSpinner(t, mock)

	count := SpinnerThreshold
	gomock.InOrder(
		mock.EXPECT().UpdateSuffix(gomock.Any()),
		mock.EXPECT().Start(),
	)
	mock.EXPECT().UpdateSuffix(gomock.Any()).Times(count / SpinnerUpdateEvery)
	mock.EXPECT().Stop()

	seq, err := fibonacci.Generate(count)
	if err != nil {
		t.Fatal(err)
	}
	terms, err := CollectSequence(context.Background(), seq, count, &bytes.Buffer{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(terms) != count {
		t.Errorf("got %d terms, want %d", len(terms), count)
	}
}

func TestCollectSequence_NoSpinnerForShortRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockSpinner(ctrl)
	withMockSpinner(t, mock)
	// No expectations: any spinner call fails the test.

	seq, err := fibonacci.Generate(10)
	if err != nil {
		t.Fatal(err)
	}
	terms, err := CollectSequence(context.Background(), seq, 10, &bytes.Buffer{}, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	got := make([]int64, len(terms))
	for i, v := range terms {
		got[i] = v.Int64()
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCollectSequence_QuietSkipsSpinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	withMockSpinner(t, mocks.NewMockSpinner(ctrl))

	seq, err := fibonacci.Generate(SpinnerThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := CollectSequence(context.Background(), seq, SpinnerThreshold, &bytes.Buffer{}, false); err != nil {
		t.Fatal(err)
	}
}

func TestCollectSequence_Canceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	seq := func(yield func(*big.Int) bool) {
		for i := 0; ; i++ {
			if i == 3 {
				cancel()
			}
			if !yield(big.NewInt(int64(i))) {
				return
			}
		}
	}
	terms, err := CollectSequence(ctx, seq, 100, &bytes.Buffer{}, false)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if len(terms) != 3 {
		t.Errorf("collected %d terms before cancel, want 3", len(terms))
	}
}

func TestCollectSequence_HugeCount(t *testing.T) {
	t.Parallel()
	const count = 1 << 62
	seq, err := fibonacci.Generate(count)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	stopAfter := func(yield func(*big.Int) bool) {
		n := 0
		for v := range seq {
			if n++; n > 3 {
				cancel()
			}
			if !yield(v) {
				return
			}
		}
	}
	terms, err := CollectSequence(ctx, stopAfter, count, &bytes.Buffer{}, false)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if got := toDecimal(terms); got != "1 1 2" {
		t.Errorf("terms = %q, want %q", got, "1 1 2")
	}
}

func toDecimal(terms []*big.Int) string {
	parts := make([]string, len(terms))
	for i, v := range terms {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

func TestCLIColorProvider(t *testing.T) {
	withNoColor(t)
	var p CLIColorProvider
	if p.Red()+p.Yellow()+p.Reset() != "" {
		t.Error("colour provider should be empty under NoColorTheme")
	}
}
