// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lei

import "unsafe"

const (
	// LeiSize is the length in bytes of a Legal Entity Identifier
	LeiSize = 20
	// LouSize is the length of the issuer (Local Operating Unit) prefix
	LouSize = 4
	// EntityIdSize is the length of the entity identifier that follows the LOU prefix
	EntityIdSize = 14
	// PrefixSize is the length of the portion covered by the check digits
	PrefixSize = LouSize + EntityIdSize

	louStart     = 0
	louEnd       = louStart + LouSize
	entityStart  = louEnd
	entityEnd    = entityStart + EntityIdSize
	checkTensPos = 18
	checkOnesPos = 19

	// Every prefix character expands to at most two digits, plus the "00" placeholder
	scratchSize = PrefixSize*2 + 2
)

// Validate checks that b is a syntactically valid LEI with matching ISO/IEC 7064
// MOD 97-10 check digits. The returned error, if any, implements Error
func Validate(b []byte) error {
	if err := validate(b); err != nil {
		return err
	}
	return nil
}

// ValidateString is Validate for a string. It does not copy s
func ValidateString(s string) error {
	return Validate(stringBytes(s))
}

// CheckDigits computes the check digits for an 18 byte LOU and entity identifier prefix
func CheckDigits(prefix []byte) (uint8, error) {
	if len(prefix) != PrefixSize {
		return 0, InvalidLengthError{Actual: len(prefix), Expected: PrefixSize}
	}
	check, err := computeCheckDigits(prefix)
	if err != nil {
		return 0, err
	}
	return check, nil
}

func validate(b []byte) Error {
	if len(b) != LeiSize {
		return InvalidLengthError{Actual: len(b), Expected: LeiSize}
	}
	check, err := computeCheckDigits(b[:PrefixSize])
	if err != nil {
		return err
	}
	if b[checkTensPos] != '0'+check/10 || b[checkOnesPos] != '0'+check%10 {
		return CheckDigitFailError{}
	}
	return nil
}

func computeCheckDigits(prefix []byte) (uint8, Error) {
	var scratch [scratchSize]byte
	pos := 0
	for i, c := range prefix {
		switch {
		case c >= 'A' && c <= 'Z':
			// A=10 ... Z=35
			val := c - 'A' + 10
			scratch[pos] = '0' + val/10
			scratch[pos+1] = '0' + val%10
			pos += 2
		case c >= '0' && c <= '9':
			scratch[pos] = c
			pos++
		default:
			return 0, InvalidCharacterError{Position: i}
		}
	}
	// Placeholder for the check digits themselves
	scratch[pos] = '0'
	scratch[pos+1] = '0'
	pos += 2
	rem, err := mod97(scratch[:pos])
	if err != nil {
		return 0, err
	}
	check := 98 - rem
	if check < 1 || check > 98 {
		return 0, CheckDigitFailError{}
	}
	return uint8(check), nil
}

// mod97 reduces a decimal digit string modulo 97 one digit at a time, which avoids
// needing an integer wide enough to hold the whole expanded string
func mod97(digits []byte) (uint32, Error) {
	if len(digits) == 0 {
		return 0, CheckDigitParseError{}
	}
	var acc uint32
	for _, d := range digits {
		if d < '0' || d > '9' {
			return 0, CheckDigitParseError{}
		}
		acc = (acc*10 + uint32(d-'0')) % 97
	}
	return acc, nil
}

// parseCheckDigits reads the two trailing check digits of an already validated LEI
func parseCheckDigits(b []byte) uint8 {
	tens, ones := b[checkTensPos], b[checkOnesPos]
	if tens < '0' || tens > '9' || ones < '0' || ones > '9' {
		panic("unparseable LEI check digits passed validation")
	}
	return (tens-'0')*10 + (ones - '0')
}

func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
