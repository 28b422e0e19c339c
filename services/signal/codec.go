package signal

import (
	"morselink-go/types"
	"morselink-go/x/strconvx"
)

// Wire codes. One decimal integer per line; anything else is noise.
const (
	wireShort = 1
	wireDash  = 2
)

// Encode returns the wire line for a symbol. SymbolNone is not encodable;
// the arbiter only encodes symbols the classifier actually produced.
func Encode(s types.Symbol) (string, bool) {
	switch s {
	case types.SymbolShort:
		return "1", true
	case types.SymbolDash:
		return "2", true
	default:
		return "", false
	}
}

// Decode maps one inbound line to a symbol. Decoding is best effort: the
// line is parsed with leading-digit integer semantics (optional sign, then
// digits, trailing content ignored, no digits at all reads as 0) and any
// value other than the defined codes degrades to SymbolNone, never to a
// fault.
func Decode(line string) types.Symbol {
	switch leadingInt(line) {
	case wireShort:
		return types.SymbolShort
	case wireDash:
		return types.SymbolDash
	default:
		return types.SymbolNone
	}
}

func leadingInt(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, err := strconvx.Atoi(s[start:i])
	if err != nil {
		return 0
	}
	return n
}
