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

package lei_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/blinklabs-io/iso17442/lei"
	"github.com/stretchr/testify/assert"
)

func TestErrorSentinels(t *testing.T) {
	testDefs := []struct {
		err      lei.Error
		sentinel error
		kind     lei.Kind
	}{
		{
			err:      lei.InvalidLengthError{Actual: 3, Expected: 20},
			sentinel: lei.ErrInvalidLength,
			kind:     lei.KindInvalidLength,
		},
		{
			err:      lei.InvalidCharacterError{Position: 7},
			sentinel: lei.ErrInvalidCharacter,
			kind:     lei.KindInvalidCharacter,
		},
		{
			err:      lei.CheckDigitParseError{},
			sentinel: lei.ErrCheckDigitParse,
			kind:     lei.KindCheckDigitParse,
		},
		{
			err:      lei.CheckDigitFailError{},
			sentinel: lei.ErrCheckDigitFail,
			kind:     lei.KindCheckDigitFail,
		},
	}
	allSentinels := []error{
		lei.ErrInvalidLength,
		lei.ErrInvalidCharacter,
		lei.ErrCheckDigitParse,
		lei.ErrCheckDigitFail,
	}
	for _, testDef := range testDefs {
		t.Run(testDef.kind.String(), func(t *testing.T) {
			assert.Equal(t, testDef.kind, testDef.err.Kind())
			wrapped := fmt.Errorf("wrapped: %w", testDef.err)
			for _, sentinel := range allSentinels {
				assert.Equal(
					t,
					sentinel == testDef.sentinel,
					errors.Is(wrapped, sentinel),
				)
			}
			assert.NotEmpty(t, testDef.err.Error())
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(
		t,
		"invalid LEI length: got 18 bytes, expected 20",
		lei.InvalidLengthError{Actual: 18, Expected: 20}.Error(),
	)
	assert.Equal(
		t,
		"invalid LEI character at position 14",
		lei.InvalidCharacterError{Position: 14}.Error(),
	)
}

func TestErrorEqualityIsStructural(t *testing.T) {
	assert.True(t, lei.InvalidLengthError{Actual: 1, Expected: 20} == lei.InvalidLengthError{Actual: 1, Expected: 20})
	assert.False(t, lei.InvalidLengthError{Actual: 1, Expected: 20} == lei.InvalidLengthError{Actual: 2, Expected: 20})
	var a, b error = lei.CheckDigitFailError{}, lei.CheckDigitFailError{}
	assert.True(t, a == b)
}

func TestCompareErrors(t *testing.T) {
	ordered := []lei.Error{
		nil,
		lei.InvalidLengthError{Actual: 0, Expected: 20},
		lei.InvalidLengthError{Actual: 18, Expected: 18},
		lei.InvalidLengthError{Actual: 18, Expected: 20},
		lei.InvalidCharacterError{Position: 0},
		lei.InvalidCharacterError{Position: 17},
		lei.CheckDigitParseError{},
		lei.CheckDigitFailError{},
	}
	for i := range ordered {
		for j := range ordered {
			var expected int
			switch {
			case i < j:
				expected = -1
			case i > j:
				expected = 1
			}
			assert.Equal(
				t,
				expected,
				lei.CompareErrors(ordered[i], ordered[j]),
				"compare %v and %v",
				ordered[i],
				ordered[j],
			)
		}
	}
	shuffled := slices.Clone(ordered)
	slices.Reverse(shuffled)
	slices.SortFunc(shuffled, lei.CompareErrors)
	assert.Equal(t, ordered, shuffled)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "InvalidLength", lei.KindInvalidLength.String())
	assert.Equal(t, "CheckDigitFail", lei.KindCheckDigitFail.String())
	assert.Equal(t, "Kind(0)", lei.Kind(0).String())
}
