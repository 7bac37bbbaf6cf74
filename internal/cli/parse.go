package cli

import (
	"strconv"
	"strings"

	apperrors "github.com/agbru/numlab/internal/errors"
)

// ParseIntegers converts command arguments to int64 values. Commas are
// accepted as separators inside an argument ("1,2" or "1, 2").
func ParseIntegers(args []string) ([]int64, error) {
	fields := splitArgs(args)
	numbers := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, apperrors.InvalidArgument("numbers", "%q is not an integer", f)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// ParseFloats converts command arguments to float64 values. NaN and
// infinities are accepted in the spellings understood by strconv.
func ParseFloats(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, apperrors.InvalidArgument("values", "%q is not a number", a)
		}
		values = append(values, f)
	}
	return values, nil
}

// SplitLists splits compare arguments into separate lists at "," or "--"
// separators. Empty lists are dropped.
func SplitLists(args []string) [][]string {
	var lists [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			lists = append(lists, current)
		}
		current = nil
	}
	for _, a := range args {
		switch {
		case a == "," || a == "--":
			flush()
		case strings.HasSuffix(a, ",") && a != ",":
			current = append(current, strings.TrimSuffix(a, ","))
			flush()
		default:
			current = append(current, a)
		}
	}
	flush()
	return lists
}

func splitArgs(args []string) []string {
	var fields []string
	for _, a := range args {
		for _, f := range strings.Split(a, ",") {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
	}
	return fields
}
