package transform

import (
	"errors"
	"iter"
	"slices"
	"testing"

	apperrors "github.com/agbru/numlab/internal/errors"
)

type lengthTransformer struct{}

func containsDigit(t *testing.T, d int) Predicate[int64] {
	t.Helper()
	p, err := ContainsDigit(d)
	if err != nil {
		t.Fatalf("ContainsDigit(%d): %v", d, err)
	}
	return p
}

func (lengthTransformer) TransformTo(s string) int { return len(s) }

func TestFilter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		items []int64
		pred  Predicate[int64]
		want  []int64
	}{
		{"even", []int64{1, 26, 24, 5, -78, 1}, IsEven, []int64{26, 24, -78}},
		{"zero is not even", []int64{0, 2, 0}, IsEven, []int64{2}},
		{"odd", []int64{1, 26, 24, 5, -78, 1}, IsOdd, []int64{1, 5, 1}},
		{"contains three", []int64{13, 22, -312, 4}, containsDigit(t, 3), []int64{13, -312}},
		{"contains zero", []int64{10, 7, -205}, containsDigit(t, 0), []int64{10, -205}},
		{"no match", []int64{1, 3}, IsEven, []int64{}},
		{"empty input", []int64{}, IsEven, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Filter(tt.items, tt.pred)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil {
				t.Fatal("Filter returned nil slice")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsDigit(t *testing.T) {
	t.Parallel()
	for d := 0; d <= 9; d++ {
		p := containsDigit(t, d)
		n := int64(-11 * d)
		if !p.IsMatch(n) {
			t.Errorf("ContainsDigit(%d).IsMatch(%d) = false", d, n)
		}
		if d != 7 && p.IsMatch(7) {
			t.Errorf("ContainsDigit(%d).IsMatch(7) = true", d)
		}
	}
	for _, d := range []int{-1, 10, 53} {
		if _, err := ContainsDigit(d); !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Errorf("ContainsDigit(%d) error = %v, want ErrInvalidArgument", d, err)
		}
	}
}

func TestFilter_Strings(t *testing.T) {
	t.Parallel()
	items := []string{"apple", "ant", "banana", "a", "avocado"}

	got, err := Filter(items, HasPrefix("a"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"apple", "ant", "a", "avocado"}; !slices.Equal(got, want) {
		t.Errorf("HasPrefix: got %v, want %v", got, want)
	}

	got, err = Filter(items, LongerThan(3))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"apple", "banana", "avocado"}; !slices.Equal(got, want) {
		t.Errorf("LongerThan: got %v, want %v", got, want)
	}
}

func TestTransform(t *testing.T) {
	t.Parallel()
	got, err := Transform([]string{"a", "abc", ""}, lengthTransformer{})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 3, 0}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	doubled, err := Transform([]int{1, 2, 3}, TransformerFunc[int, int](func(n int) int { return n * 2 }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2, 4, 6}; !slices.Equal(doubled, want) {
		t.Errorf("got %v, want %v", doubled, want)
	}
}

func TestIEEE754Transformer(t *testing.T) {
	t.Parallel()
	got, err := Transform([]float64{255.255}, Transformer[float64, string](IEEE754Transformer{}))
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != "0100000001101111111010000010100011110101110000101000111101011100" {
		t.Errorf("got %s", got[0])
	}
}

func TestArgumentValidation(t *testing.T) {
	t.Parallel()
	var nilFunc TransformerFunc[int, int]
	var nilPred PredicateFunc[int]

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"transform nil items", func() error { _, err := Transform[int, int](nil, Identity[int]()); return err }, apperrors.ErrNilArgument},
		{"transform nil strategy", func() error { _, err := Transform[int, int]([]int{1}, nil); return err }, apperrors.ErrNilArgument},
		{"transform nil func", func() error { _, err := Transform([]int{1}, Transformer[int, int](nilFunc)); return err }, apperrors.ErrNilArgument},
		{"transform empty", func() error { _, err := Transform([]int{}, Identity[int]()); return err }, apperrors.ErrInvalidArgument},
		{"filter nil items", func() error { _, err := Filter(nil, Always[int]()); return err }, apperrors.ErrNilArgument},
		{"filter nil predicate", func() error { _, err := Filter[int]([]int{1}, nil); return err }, apperrors.ErrNilArgument},
		{"filter nil func", func() error { _, err := Filter([]int{1}, Predicate[int](nilPred)); return err }, apperrors.ErrNilArgument},
		{"transform seq nil", func() error { _, err := TransformSeq[int, int](nil, Identity[int]()); return err }, apperrors.ErrNilArgument},
		{"filter seq nil", func() error { _, err := FilterSeq[int](nil, Always[int]()); return err }, apperrors.ErrNilArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSeqHelpersAreLazy(t *testing.T) {
	t.Parallel()
	pulled := 0
	source := func(yield func(int64) bool) {
		for i := int64(1); ; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}

	evens, err := FilterSeq(iter.Seq[int64](source), IsEven)
	if err != nil {
		t.Fatal(err)
	}
	squares, err := TransformSeq(evens, TransformerFunc[int64, int64](func(n int64) int64 { return n * n }))
	if err != nil {
		t.Fatal(err)
	}
	if pulled != 0 {
		t.Fatalf("source pulled %d times before ranging", pulled)
	}

	var got []int64
	for v := range squares {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	if want := []int64{4, 16, 36}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if pulled != 6 {
		t.Errorf("source pulled %d times, want 6", pulled)
	}
}

func TestSeqHelpersEmpty(t *testing.T) {
	t.Parallel()
	seq, err := TransformSeq(slices.Values([]int{}), Identity[int]())
	if err != nil {
		t.Fatal(err)
	}
	if got := slices.Collect(seq); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestNot(t *testing.T) {
	t.Parallel()
	got, err := Filter([]string{"a", "bb", "ccc"}, Not(LongerThan(1)))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"a"}) {
		t.Errorf("got %v", got)
	}
}
