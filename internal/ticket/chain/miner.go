package chain

import (
	"context"
	"fmt"
	"strings"
)

// DefaultDifficulty is the number of leading zero hex characters a mined
// block's hash must carry. Fixed for the lifetime of a chain.
const DefaultDifficulty = 2

// cancelCheckStride bounds how many hash attempts run between context checks.
const cancelCheckStride = 4096

// Mine brute-forces the draft's nonce, starting from zero, until the hash has
// difficulty leading zero hex characters. There is no shortcut: the search is
// exhaustive increment-and-check, which is what makes rewriting history
// expensive. Returns the satisfying hash; the caller seals the draft with it.
// Cancelling the context aborts the search with the context's error and
// leaves nothing appended anywhere.
func Mine(ctx context.Context, d *Draft, difficulty int) (string, error) {
	if difficulty < 0 {
		return "", fmt.Errorf("difficulty %d is negative", difficulty)
	}
	prefix := strings.Repeat("0", difficulty)

	d.Nonce = 0
	for attempt := 0; ; attempt++ {
		if attempt%cancelCheckStride == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}
		hash := d.ComputeHash()
		if strings.HasPrefix(hash, prefix) {
			return hash, nil
		}
		d.Nonce++
	}
}

// SatisfiesDifficulty reports whether a hash meets the leading-zero
// requirement.
func SatisfiesDifficulty(hash string, difficulty int) bool {
	if difficulty <= 0 {
		return true
	}
	return strings.HasPrefix(hash, strings.Repeat("0", difficulty))
}
