package store

import "errors"

const rankAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RankSequence returns n strictly increasing, fixed-width, lowercase base36
// ranks spread evenly over the key space, so a caller can later insert
// between any two neighbors without renumbering.
//
// The ordering is purely lexicographic.
func RankSequence(n int) ([]string, error) {
	if n < 0 {
		return nil, errors.New("negative rank count")
	}
	if n == 0 {
		return []string{}, nil
	}
	// Smallest width that leaves at least one free slot around every rank.
	width := 1
	space := uint64(len(rankAlphabet))
	for space < uint64(n+1)*2 {
		if width == 12 {
			return nil, errors.New("too many ranks")
		}
		width++
		space *= uint64(len(rankAlphabet))
	}
	step := space / uint64(n+1)
	out := make([]string, n)
	for i := range n {
		out[i] = formatRank(uint64(i+1)*step, width)
	}
	return out, nil
}

func formatRank(v uint64, width int) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = rankAlphabet[v%uint64(len(rankAlphabet))]
		v /= uint64(len(rankAlphabet))
	}
	return string(buf)
}
