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
	"bytes"
	"fmt"
)

// Lei is an owned Legal Entity Identifier. A non-zero Lei always holds a valid LEI.
// Lei values are comparable and can be used as map keys
type Lei struct {
	b [LeiSize]byte
}

// FromBytes validates b and copies it into a new Lei
func FromBytes(b []byte) (Lei, error) {
	if err := validate(b); err != nil {
		return Lei{}, err
	}
	return fromBytesUnchecked(b), nil
}

// FromByteArray validates a fixed size array and returns it as a Lei
func FromByteArray(a [LeiSize]byte) (Lei, error) {
	if err := validate(a[:]); err != nil {
		return Lei{}, err
	}
	return Lei{b: a}, nil
}

// FromView copies an already validated View into a new Lei
func FromView(v View) Lei {
	if v.IsZero() {
		return Lei{}
	}
	return fromBytesUnchecked(v.b)
}

// Parse validates s and copies it into a new Lei
func Parse(s string) (Lei, error) {
	return FromBytes(stringBytes(s))
}

// MustParse is like Parse but panics on an invalid LEI. It is meant for constants and tests
func MustParse(s string) Lei {
	l, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("lei: MustParse(%q): %s", s, err))
	}
	return l
}

// New builds an LEI from its issuer prefix and entity identifier, computing the check digits.
// A part of the wrong size is reported against the size of that part
func New(lou string, entityId string) (Lei, error) {
	if len(lou) != LouSize {
		return Lei{}, InvalidLengthError{Actual: len(lou), Expected: LouSize}
	}
	if len(entityId) != EntityIdSize {
		return Lei{}, InvalidLengthError{
			Actual:   len(entityId),
			Expected: EntityIdSize,
		}
	}
	var ret Lei
	copy(ret.b[louStart:louEnd], lou)
	copy(ret.b[entityStart:entityEnd], entityId)
	check, err := computeCheckDigits(ret.b[:PrefixSize])
	if err != nil {
		return Lei{}, err
	}
	ret.b[checkTensPos] = '0' + check/10
	ret.b[checkOnesPos] = '0' + check%10
	return ret, nil
}

// fromBytesUnchecked copies b without validating it. Callers must have validated b already
func fromBytesUnchecked(b []byte) Lei {
	var ret Lei
	copy(ret.b[:], b)
	return ret
}

// View returns a zero-copy View over the receiver's bytes
func (l *Lei) View() View {
	if l.IsZero() {
		return View{}
	}
	return View{b: l.b[:]}
}

// IsZero reports whether l is the zero value, which is not a valid LEI
func (l Lei) IsZero() bool {
	return l == Lei{}
}

func (l Lei) Bytes() []byte {
	if l.IsZero() {
		return nil
	}
	return l.b[:]
}

func (l Lei) Array() [LeiSize]byte {
	return l.b
}

func (l Lei) String() string {
	if l.IsZero() {
		return ""
	}
	return string(l.b[:])
}

// Lou returns the 4 character issuer prefix
func (l Lei) Lou() string {
	return l.View().Lou()
}

// EntityId returns the 14 character entity identifier
func (l Lei) EntityId() string {
	return l.View().EntityId()
}

// CheckDigits returns the numeric value of the two trailing check digits
func (l Lei) CheckDigits() uint8 {
	return l.View().CheckDigits()
}

// Split returns the issuer prefix, entity identifier and check digits
func (l Lei) Split() (string, string, uint8) {
	return l.View().Split()
}

// Compare orders LEIs byte-wise and returns -1, 0 or +1
func (l Lei) Compare(other Lei) int {
	return bytes.Compare(l.b[:], other.b[:])
}
