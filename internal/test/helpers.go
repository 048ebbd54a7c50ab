package test

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// ValidLeis is a set of real-world LEIs with correct check digits
var ValidLeis = []string{
	"YZ83GD8L7GG84979J516",
	"5493001KJTIIGC8Y1R12",
	"HWUPKR0MPOU8FGXBT394",
	"7LTWFZYICNSX8D621K86",
	"549300MLUDYVRQOOXS22",
	"529900T8BM49AURSDO55",
}

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// ReferenceCheckDigits computes MOD 97-10 check digits for an uppercase alphanumeric prefix
// using arbitrary precision arithmetic over the full expanded number. It shares no code with
// the lei package, which makes it usable as an oracle in tests
func ReferenceCheckDigits(prefix string) int {
	var sb strings.Builder
	for _, c := range prefix {
		switch {
		case c >= 'A' && c <= 'Z':
			fmt.Fprintf(&sb, "%d", c-'A'+10)
		case c >= '0' && c <= '9':
			sb.WriteRune(c)
		default:
			panic(fmt.Sprintf("unexpected character in prefix: %q", c))
		}
	}
	sb.WriteString("00")
	val, ok := new(big.Int).SetString(sb.String(), 10)
	if !ok {
		panic("could not parse expanded prefix: " + sb.String())
	}
	rem := new(big.Int).Mod(val, big.NewInt(97))
	return 98 - int(rem.Int64())
}
