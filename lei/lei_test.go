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
	"slices"
	"testing"

	"github.com/blinklabs-io/iso17442/internal/test"
	"github.com/blinklabs-io/iso17442/lei"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeiConstructors(t *testing.T) {
	const leiStr = "YZ83GD8L7GG84979J516"
	fromStr, err := lei.Parse(leiStr)
	require.NoError(t, err)
	fromBytes, err := lei.FromBytes([]byte(leiStr))
	require.NoError(t, err)
	var arr [lei.LeiSize]byte
	copy(arr[:], leiStr)
	fromArray, err := lei.FromByteArray(arr)
	require.NoError(t, err)
	v, err := lei.ViewString(leiStr)
	require.NoError(t, err)
	fromView := lei.FromView(v)
	for _, l := range []lei.Lei{fromStr, fromBytes, fromArray, fromView} {
		assert.Equal(t, fromStr, l)
		assert.Equal(t, leiStr, l.String())
		assert.Equal(t, []byte(leiStr), l.Bytes())
		assert.Equal(t, arr, l.Array())
	}
	assert.Equal(t, fromStr, lei.MustParse(leiStr))
}

func TestLeiConstructorErrors(t *testing.T) {
	_, err := lei.Parse("")
	assert.Equal(t, lei.InvalidLengthError{Actual: 0, Expected: 20}, err)
	_, err = lei.FromBytes([]byte("YZ83GD8L7GG84979J563"))
	assert.Equal(t, lei.CheckDigitFailError{}, err)
	var zeroArr [lei.LeiSize]byte
	_, err = lei.FromByteArray(zeroArr)
	assert.Equal(t, lei.InvalidCharacterError{Position: 0}, err)
	assert.Panics(t, func() {
		lei.MustParse("315700K7NYVSQJNTN401")
	})
}

func TestLeiAccessors(t *testing.T) {
	l := lei.MustParse("HWUPKR0MPOU8FGXBT394")
	assert.Equal(t, "HWUP", l.Lou())
	assert.Equal(t, "KR0MPOU8FGXBT3", l.EntityId())
	assert.Equal(t, uint8(94), l.CheckDigits())
	lou, entityId, check := l.Split()
	assert.Equal(t, "HWUP", lou)
	assert.Equal(t, "KR0MPOU8FGXBT3", entityId)
	assert.Equal(t, uint8(94), check)
}

func TestLeiRoundTrip(t *testing.T) {
	for _, s := range test.ValidLeis {
		owned, err := lei.Parse(s)
		require.NoError(t, err)
		v := owned.View()
		assert.Equal(t, s, v.String())
		assert.Equal(t, owned, v.Lei())
		borrowed, err := lei.ViewString(s)
		require.NoError(t, err)
		assert.True(t, borrowed.Equal(owned.View()))
	}
}

func TestLeiViewIsZeroCopy(t *testing.T) {
	l := lei.MustParse("YZ83GD8L7GG84979J516")
	v1 := l.View()
	v2 := l.View()
	assert.Same(t, &v1.Bytes()[0], &v2.Bytes()[0])
}

func TestLeiZeroValue(t *testing.T) {
	var l lei.Lei
	assert.True(t, l.IsZero())
	assert.Equal(t, "", l.String())
	assert.Nil(t, l.Bytes())
	assert.Equal(t, "", l.Lou())
	assert.Equal(t, uint8(0), l.CheckDigits())
	assert.True(t, l.View().IsZero())
	assert.False(t, lei.MustParse("YZ83GD8L7GG84979J516").IsZero())
}

func TestLeiComparable(t *testing.T) {
	a := lei.MustParse("YZ83GD8L7GG84979J516")
	b := lei.MustParse("5493001KJTIIGC8Y1R12")
	assert.True(t, a == lei.MustParse("YZ83GD8L7GG84979J516"))
	assert.False(t, a == b)
	seen := map[lei.Lei]int{a: 1, b: 2}
	assert.Equal(t, 1, seen[lei.MustParse("YZ83GD8L7GG84979J516")])
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	sorted := []lei.Lei{a, b}
	slices.SortFunc(sorted, lei.Lei.Compare)
	assert.Equal(t, []lei.Lei{b, a}, sorted)
}

func TestNew(t *testing.T) {
	testDefs := []struct {
		lou         string
		entityId    string
		expected    string
		expectedErr error
	}{
		{
			lou:      "YZ83",
			entityId: "GD8L7GG84979J5",
			expected: "YZ83GD8L7GG84979J516",
		},
		{
			lou:      "ABCD",
			entityId: "00000000000000",
			expected: "ABCD0000000000000081",
		},
		{
			lou:      "3157",
			entityId: "00K7NYVSQJNTN4",
			expected: "315700K7NYVSQJNTN498",
		},
		{
			lou:         "YZ8",
			entityId:    "GD8L7GG84979J5",
			expectedErr: lei.InvalidLengthError{Actual: 3, Expected: 4},
		},
		{
			// Parts are each the wrong size but still add up to 18
			lou:         "YZ83G",
			entityId:    "D8L7GG84979J5",
			expectedErr: lei.InvalidLengthError{Actual: 5, Expected: 4},
		},
		{
			lou:         "YZ83",
			entityId:    "GD8L7GG84979J",
			expectedErr: lei.InvalidLengthError{Actual: 13, Expected: 14},
		},
		{
			lou:         "YZ83",
			entityId:    "GD8L7GG84979j5",
			expectedErr: lei.InvalidCharacterError{Position: 16},
		},
	}
	for _, testDef := range testDefs {
		l, err := lei.New(testDef.lou, testDef.entityId)
		if testDef.expectedErr != nil {
			assert.Equal(t, testDef.expectedErr, err)
			assert.True(t, l.IsZero())
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, testDef.expected, l.String())
		assert.Equal(t, l, lei.MustParse(testDef.expected))
	}
}
