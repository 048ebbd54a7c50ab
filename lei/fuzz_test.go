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

//go:build go1.18

package lei_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/iso17442/internal/test"
	"github.com/blinklabs-io/iso17442/lei"
)

// FuzzValidate checks that validation never panics, that it always classifies failures,
// and that anything accepted round-trips through both representations
func FuzzValidate(f *testing.F) {
	for _, s := range test.ValidLeis {
		f.Add([]byte(s))
	}
	f.Add([]byte(""))
	f.Add([]byte("315700K7NYVSQJNTN401"))
	f.Add([]byte("YZ83GD8L7GG849💩16"))
	f.Add([]byte("yz83gd8l7gg84979j516"))
	f.Add([]byte{0x00, 0x01, 0x02})

	f.Fuzz(func(t *testing.T, input []byte) {
		err := lei.Validate(input)
		if err != nil {
			var leiErr lei.Error
			if !errors.As(err, &leiErr) {
				t.Fatalf("unclassified error: %v", err)
			}
			if len(input) != lei.LeiSize && leiErr.Kind() != lei.KindInvalidLength {
				t.Fatalf("expected length error for %d bytes, got %v", len(input), err)
			}
			if _, err := lei.FromBytes(input); err == nil {
				t.Fatal("owned constructor accepted input the validator rejected")
			}
			return
		}
		v, err := lei.ViewBytes(input)
		if err != nil {
			t.Fatalf("view rejected validated input: %v", err)
		}
		owned := v.Lei()
		if owned.String() != string(input) {
			t.Fatalf("round trip changed value: %q -> %q", input, owned.String())
		}
		check := v.CheckDigits()
		if int(check) != test.ReferenceCheckDigits(owned.Lou()+owned.EntityId()) {
			t.Fatalf("check digits %d disagree with reference for %q", check, input)
		}
	})
}
