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

import (
	"cmp"
	"errors"
	"fmt"
)

// Kind identifies one of the closed set of validation failures. Kinds are ordered
// by the stage of validation that produces them
type Kind uint8

const (
	KindInvalidLength Kind = iota + 1
	KindInvalidCharacter
	KindCheckDigitParse
	KindCheckDigitFail
)

func (k Kind) String() string {
	switch k {
	case KindInvalidLength:
		return "InvalidLength"
	case KindInvalidCharacter:
		return "InvalidCharacter"
	case KindCheckDigitParse:
		return "CheckDigitParse"
	case KindCheckDigitFail:
		return "CheckDigitFail"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is implemented by every error returned from validation
type Error interface {
	error
	Kind() Kind
}

// Sentinel errors so callers can use errors.Is without caring about the error details
var (
	ErrInvalidLength    = errors.New("invalid LEI length")
	ErrInvalidCharacter = errors.New("invalid LEI character")
	ErrCheckDigitParse  = errors.New("LEI check digits could not be parsed")
	ErrCheckDigitFail   = errors.New("LEI check digits did not validate")
)

// InvalidLengthError indicates input of the wrong length
type InvalidLengthError struct {
	Actual   int
	Expected int
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf(
		"invalid LEI length: got %d bytes, expected %d",
		e.Actual,
		e.Expected,
	)
}

func (InvalidLengthError) Kind() Kind { return KindInvalidLength }

func (InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// InvalidCharacterError indicates a byte outside A-Z and 0-9. Position is the
// offset in the original input
type InvalidCharacterError struct {
	Position int
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid LEI character at position %d", e.Position)
}

func (InvalidCharacterError) Kind() Kind { return KindInvalidCharacter }

func (InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// CheckDigitParseError indicates that the expanded check string could not be read as a number
type CheckDigitParseError struct{}

func (CheckDigitParseError) Error() string {
	return ErrCheckDigitParse.Error()
}

func (CheckDigitParseError) Kind() Kind { return KindCheckDigitParse }

func (CheckDigitParseError) Is(target error) bool {
	return target == ErrCheckDigitParse
}

// CheckDigitFailError indicates that the check digits do not match the computed value
type CheckDigitFailError struct{}

func (CheckDigitFailError) Error() string {
	return ErrCheckDigitFail.Error()
}

func (CheckDigitFailError) Kind() Kind { return KindCheckDigitFail }

func (CheckDigitFailError) Is(target error) bool {
	return target == ErrCheckDigitFail
}

// CompareErrors orders validation errors by kind and then by their fields. It returns
// -1, 0 or +1. A nil error sorts before any non-nil error
func CompareErrors(a, b Error) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	switch ea := a.(type) {
	case InvalidLengthError:
		eb, ok := b.(InvalidLengthError)
		if !ok {
			return 0
		}
		if c := cmp.Compare(ea.Actual, eb.Actual); c != 0 {
			return c
		}
		return cmp.Compare(ea.Expected, eb.Expected)
	case InvalidCharacterError:
		eb, ok := b.(InvalidCharacterError)
		if !ok {
			return 0
		}
		return cmp.Compare(ea.Position, eb.Position)
	}
	return 0
}
