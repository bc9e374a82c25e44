package service

import (
	crypto "crypto/rand"
	"math/big"
	"math/rand/v2"
)

func randomIndex(n int) int {
	v, err := crypto.Int(crypto.Reader, big.NewInt(int64(n)))
	if err != nil {
		return rand.IntN(n)
	}
	return int(v.Int64())
}
