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
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/blinklabs-io/iso17442/cbor"
)

const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatCBOR    = "cbor"
	FormatMsgpack = "msgpack"
	FormatYAML    = "yaml"
)

const expectingLei = "20 ASCII digits and upper-case characters"

// ErrZeroValue is returned when encoding a zero Lei or View
var ErrZeroValue = errors.New("cannot encode zero value LEI")

// DecodeError reports an LEI that was rejected while decoding a structured format.
// It unwraps to the underlying validation Error
type DecodeError struct {
	Format string
	Input  []byte
	Err    Error
}

func newDecodeError(format string, input []byte, err Error) *DecodeError {
	return &DecodeError{
		Format: format,
		Input:  bytes.Clone(input),
		Err:    err,
	}
}

func (e *DecodeError) Error() string {
	var detail string
	switch err := e.Err.(type) {
	case InvalidLengthError:
		detail = fmt.Sprintf(
			"invalid length %d, expected %s",
			err.Actual,
			expectingLei,
		)
	case InvalidCharacterError:
		detail = fmt.Sprintf(
			"invalid value: %s, expected A-Z, 0-9",
			describeChar(e.Input, err.Position),
		)
	case CheckDigitParseError:
		detail = fmt.Sprintf(
			"invalid value: %q, expected %s that correctly generate check digits",
			e.Input,
			expectingLei,
		)
	case CheckDigitFailError:
		detail = fmt.Sprintf(
			"invalid value: %q, expected %s with matching check digits",
			e.Input,
			expectingLei,
		)
	default:
		detail = e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Format, detail)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// describeChar names the offending character at pos, decoding a full UTF-8 sequence
// where there is one
func describeChar(input []byte, pos int) string {
	if pos < 0 || pos >= len(input) {
		return fmt.Sprintf("character at position %d", pos)
	}
	r, size := utf8.DecodeRune(input[pos:])
	if r == utf8.RuneError && size <= 1 {
		return fmt.Sprintf("byte 0x%02x at position %d", input[pos], pos)
	}
	return fmt.Sprintf("character %q at position %d", r, pos)
}

func decodeLei(format string, data []byte) (Lei, error) {
	if err := validate(data); err != nil {
		return Lei{}, newDecodeError(format, data, err)
	}
	return fromBytesUnchecked(data), nil
}

// decodeView validates data and returns a View over a private copy of it, since
// decoders commonly reuse their buffers
func decodeView(format string, data []byte) (View, error) {
	tmp := bytes.Clone(data)
	if err := validate(tmp); err != nil {
		return View{}, newDecodeError(format, tmp, err)
	}
	return View{b: tmp[:LeiSize:LeiSize]}, nil
}

func (l Lei) MarshalText() ([]byte, error) {
	if l.IsZero() {
		return nil, ErrZeroValue
	}
	return l.b[:], nil
}

func (l *Lei) UnmarshalText(text []byte) error {
	tmp, err := decodeLei(FormatText, text)
	if err != nil {
		return err
	}
	*l = tmp
	return nil
}

func (l Lei) MarshalJSON() ([]byte, error) {
	if l.IsZero() {
		return nil, ErrZeroValue
	}
	return json.Marshal(l.String())
}

func (l *Lei) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		return nil
	}
	var tmpStr string
	if err := json.Unmarshal(data, &tmpStr); err != nil {
		return err
	}
	tmp, err := decodeLei(FormatJSON, []byte(tmpStr))
	if err != nil {
		return err
	}
	*l = tmp
	return nil
}

func (l Lei) MarshalCBOR() ([]byte, error) {
	if l.IsZero() {
		return nil, ErrZeroValue
	}
	return cbor.EncodeTextString(l.b[:])
}

// UnmarshalCBOR accepts either a CBOR text string or byte string
func (l *Lei) UnmarshalCBOR(data []byte) error {
	content, err := cbor.DecodeString(data)
	if err != nil {
		return err
	}
	tmp, err := decodeLei(FormatCBOR, content)
	if err != nil {
		return err
	}
	*l = tmp
	return nil
}
