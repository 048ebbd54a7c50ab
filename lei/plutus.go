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
	"github.com/blinklabs-io/plutigo/data"
)

// ToPlutusData returns the LEI text as a Plutus byte string, the form used when an LEI
// is carried in an on-chain datum. The zero Lei becomes an empty byte string
func (l Lei) ToPlutusData() data.PlutusData {
	return data.NewByteString(l.Bytes())
}
