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
	"encoding/json"
	"strings"

	"github.com/blinklabs-io/iso17442/cbor"
)

// View is a validated, zero-copy reference to an LEI held in a caller-provided buffer.
//
// A View does not own its bytes. The backing buffer must outlive the View and must not
// be modified while the View is in use. Use Lei to get an independent copy
type View struct {
	b []byte
}

// ViewBytes validates b and returns a View over it without copying
func ViewBytes(b []byte) (View, error) {
	if err := validate(b); err != nil {
		return View{}, err
	}
	// Limit the capacity so that appending to Bytes() can never write into the caller's buffer
	return View{b: b[:LeiSize:LeiSize]}, nil
}

// ViewString validates s and returns a View over its bytes without copying
func ViewString(s string) (View, error) {
	return ViewBytes(stringBytes(s))
}

// IsZero reports whether v is the zero View, which does not reference an LEI
func (v View) IsZero() bool {
	return v.b == nil
}

// Bytes returns the backing buffer. It must not be modified. For a View built with
// ViewString the buffer is the string's own memory, and writing to it will fault
func (v View) Bytes() []byte {
	return v.b
}

func (v View) String() string {
	return string(v.b)
}

// Lou returns the 4 character issuer prefix
func (v View) Lou() string {
	if v.IsZero() {
		return ""
	}
	return string(v.b[louStart:louEnd])
}

// EntityId returns the 14 character entity identifier
func (v View) EntityId() string {
	if v.IsZero() {
		return ""
	}
	return string(v.b[entityStart:entityEnd])
}

// CheckDigits returns the numeric value of the two trailing check digits
func (v View) CheckDigits() uint8 {
	if v.IsZero() {
		return 0
	}
	return parseCheckDigits(v.b)
}

// Split returns the issuer prefix, entity identifier and check digits
func (v View) Split() (string, string, uint8) {
	return v.Lou(), v.EntityId(), v.CheckDigits()
}

// Lei copies the viewed bytes into an owned LEI. No validation is repeated
func (v View) Lei() Lei {
	return FromView(v)
}

// Equal reports whether both views reference the same LEI text
func (v View) Equal(other View) bool {
	return bytes.Equal(v.b, other.b)
}

// Compare orders views byte-wise and returns -1, 0 or +1
func (v View) Compare(other View) int {
	return bytes.Compare(v.b, other.b)
}

func (v View) MarshalText() ([]byte, error) {
	if v.IsZero() {
		return nil, ErrZeroValue
	}
	return bytes.Clone(v.b), nil
}

// UnmarshalText validates text and points v at a private copy of it
func (v *View) UnmarshalText(text []byte) error {
	tmp, err := decodeView(FormatText, text)
	if err != nil {
		return err
	}
	*v = tmp
	return nil
}

func (v View) MarshalJSON() ([]byte, error) {
	if v.IsZero() {
		return nil, ErrZeroValue
	}
	return json.Marshal(v.String())
}

func (v *View) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		return nil
	}
	var tmpStr string
	if err := json.Unmarshal(data, &tmpStr); err != nil {
		return err
	}
	tmp, err := decodeView(FormatJSON, []byte(tmpStr))
	if err != nil {
		return err
	}
	*v = tmp
	return nil
}

func (v View) MarshalCBOR() ([]byte, error) {
	if v.IsZero() {
		return nil, ErrZeroValue
	}
	return cbor.EncodeTextString(v.b)
}

// UnmarshalCBOR accepts either a CBOR text string or byte string
func (v *View) UnmarshalCBOR(data []byte) error {
	content, err := cbor.DecodeString(data)
	if err != nil {
		return err
	}
	tmp, err := decodeView(FormatCBOR, content)
	if err != nil {
		return err
	}
	*v = tmp
	return nil
}
