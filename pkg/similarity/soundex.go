package similarity

import "strings"

// SoundexCode returns a 4-character phonetic fingerprint of a single token.
//
// This is a simplified Soundex: the first letter is kept, the remaining
// letters map to articulation-class digits, adjacent duplicate digits are
// collapsed, zero markers (vowels, h, w, y and anything non-alphabetic) are
// dropped, and the result is padded or truncated to 4 characters. Unlike
// classic Soundex, h and w do not merge the consonants around them; they are
// plain zero markers here. Returns "" for an empty token.
func SoundexCode(token string) string {
	runes := []rune(strings.ToLower(token))
	if len(runes) == 0 {
		return ""
	}

	digits := make([]byte, 0, 3)
	prev := byte(0)
	for _, r := range runes[1:] {
		d := soundexDigit(r)
		if d == prev {
			continue
		}
		prev = d
		if d != '0' {
			digits = append(digits, d)
		}
		if len(digits) == 3 {
			break
		}
	}
	for len(digits) < 3 {
		digits = append(digits, '0')
	}
	return string(runes[0]) + string(digits)
}

func soundexDigit(r rune) byte {
	switch r {
	case 'b', 'f', 'p', 'v':
		return '1'
	case 'c', 'g', 'j', 'k', 'q', 's', 'x', 'z':
		return '2'
	case 'd', 't':
		return '3'
	case 'l':
		return '4'
	case 'm', 'n':
		return '5'
	case 'r':
		return '6'
	default:
		// Vowels, h, w, y, digits, anything else: zero marker.
		return '0'
	}
}

// Phonetic scores two multi-word strings by how many of their tokens share an
// equal phonetic code, counted as a code multiset intersection, over the
// longer token count. 1.0 if both strings have no tokens, 0.0 if one does.
func Phonetic(a, b string) float64 {
	toksA := strings.Fields(a)
	toksB := strings.Fields(b)
	if len(toksA) == 0 && len(toksB) == 0 {
		return 1.0
	}
	if len(toksA) == 0 || len(toksB) == 0 {
		return 0.0
	}

	codesA := make(map[string]int, len(toksA))
	for _, t := range toksA {
		codesA[SoundexCode(t)]++
	}
	codesB := make(map[string]int, len(toksB))
	for _, t := range toksB {
		codesB[SoundexCode(t)]++
	}

	matched := 0
	for code, na := range codesA {
		if nb, ok := codesB[code]; ok {
			matched += min(na, nb)
		}
	}

	maxLen := len(toksA)
	if len(toksB) > maxLen {
		maxLen = len(toksB)
	}
	return float64(matched) / float64(maxLen)
}
