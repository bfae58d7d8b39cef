package engine

// Tokenize splits text into maximal runs of ASCII digits or ASCII lower-case
// letters, in order. Every other character separates tokens and is dropped.
//
// Tokenize does not case-fold: upper-case letters are separators. Callers on
// the free-text path lower-case first.
func Tokenize(text string) []string {
	var tokens []string
	start := -1
	var class byte

	for i := 0; i < len(text); i++ {
		c := charClass(text[i])
		if c == class && c != 0 {
			continue
		}
		if start >= 0 {
			tokens = append(tokens, text[start:i])
			start = -1
		}
		class = c
		if c != 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}

	return tokens
}

const (
	classDigit  byte = 1
	classLetter byte = 2
)

func charClass(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return classDigit
	case b >= 'a' && b <= 'z':
		return classLetter
	default:
		return 0
	}
}
