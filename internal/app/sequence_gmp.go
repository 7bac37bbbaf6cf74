//go:build gmp

package app

import "github.com/agbru/numlab/internal/fibonacci"

func init() {
	generateSequence = fibonacci.GenerateGMP
}
