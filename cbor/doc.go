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

// Package cbor provides the CBOR encoding and decoding used for LEI values.
//
// It wraps github.com/fxamacker/cbor/v2 with cached modes:
//   - Encode uses core deterministic map key ordering, so equal values always
//     produce identical bytes
//   - Decode rejects unknown struct fields and limits nesting depth
//
// EncodeTextString encodes raw bytes as a text string through the same cached mode.
// DecodeString accepts either a text string or a byte string, since both appear in
// the wild for identifiers.
package cbor
