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

package cbor

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode returns a cached DecMode, initializing it on first use.
// Returns the cached error if initialization failed.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			ExtraReturnErrors: _cbor.ExtraDecErrorUnknownField,
			// Identifiers are short strings, so there is no reason to accept deep nesting
			MaxNestedLevels: 16,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

func Decode(dataBytes []byte, dest any) (int, error) {
	data := bytes.NewReader(dataBytes)
	decMode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	if decMode == nil {
		return 0, errors.New("CBOR decoder mode not initialized")
	}
	dec := decMode.NewDecoder(data)
	err = dec.Decode(dest)
	return dec.NumBytesRead(), err
}

// DecodeString decodes a single CBOR text string or byte string and returns its content.
// Any other major type is an error
func DecodeString(cborData []byte) ([]byte, error) {
	majorType, err := MajorType(cborData)
	if err != nil {
		return nil, err
	}
	switch majorType {
	case CBOR_TYPE_TEXT_STRING:
		var tmp string
		if _, err := Decode(cborData, &tmp); err != nil {
			return nil, err
		}
		return []byte(tmp), nil
	case CBOR_TYPE_BYTE_STRING:
		var tmp []byte
		if _, err := Decode(cborData, &tmp); err != nil {
			return nil, err
		}
		return tmp, nil
	default:
		return nil, fmt.Errorf(
			"expected CBOR text or byte string, found major type 0x%x",
			majorType,
		)
	}
}
