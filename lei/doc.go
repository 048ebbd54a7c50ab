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

// Package lei validates and represents ISO 17442 Legal Entity Identifiers.
//
// An LEI is 20 ASCII characters: a 4 character issuer (LOU) prefix, a 14 character
// entity identifier, both drawn from A-Z and 0-9, and 2 decimal check digits computed
// with ISO/IEC 7064 MOD 97-10. Only the syntax and check digits are verified; whether
// the identifier is actually registered is out of scope.
//
// Two types share one validator:
//   - View: a zero-copy reference to a validated LEI in a caller's buffer
//   - Lei: an owned, fixed size, comparable copy
//
// Neither type can be constructed with invalid contents outside this package. The zero
// value of each is "no LEI" and is rejected by the encoders.
//
// Validation failures are one of InvalidLengthError, InvalidCharacterError,
// CheckDigitParseError or CheckDigitFailError. Each matches its sentinel with errors.Is.
// Decoding from text, JSON, CBOR, MessagePack or YAML wraps the validation error in a
// *DecodeError that describes the failure for that variant.
package lei
