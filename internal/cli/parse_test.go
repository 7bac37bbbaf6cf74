package cli

import (
	"errors"
	"math"
	"slices"
	"testing"

	apperrors "github.com/agbru/numlab/internal/errors"
)

func TestParseIntegers(t *testing.T) {
	t.Parallel()
	got, err := ParseIntegers([]string{"-1512", "0,0", " -45", "789,"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int64{-1512, 0, 0, -45, 789}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := ParseIntegers([]string{"12", "x"}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("error = %v, want invalid argument", err)
	}
}

func TestParseFloats(t *testing.T) {
	t.Parallel()
	got, err := ParseFloats([]string{"-23.809", "1e15", "NaN", "-Inf"})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != -23.809 || got[1] != 1e15 || !math.IsNaN(got[2]) || !math.IsInf(got[3], -1) {
		t.Errorf("got %v", got)
	}
	if _, err := ParseFloats([]string{"twelve"}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("error = %v, want invalid argument", err)
	}
}

func TestSplitLists(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   []string
		want [][]string
	}{
		{"single", []string{"12", "18"}, [][]string{{"12", "18"}}},
		{"comma", []string{"12", "18", ",", "7", "14"}, [][]string{{"12", "18"}, {"7", "14"}}},
		{"dashes", []string{"12", "18", "--", "7", "14"}, [][]string{{"12", "18"}, {"7", "14"}}},
		{"trailing comma", []string{"12", "18,", "7", "14"}, [][]string{{"12", "18"}, {"7", "14"}}},
		{"empty lists dropped", []string{",", "--", "5", "10", ","}, [][]string{{"5", "10"}}},
		{"nothing", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitLists(tt.in)
			if !slices.EqualFunc(got, tt.want, slices.Equal[[]string]) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
