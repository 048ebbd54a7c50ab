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
	"github.com/vmihailenco/msgpack/v5"
)

func (l Lei) EncodeMsgpack(enc *msgpack.Encoder) error {
	if l.IsZero() {
		return ErrZeroValue
	}
	return enc.EncodeString(l.String())
}

// DecodeMsgpack accepts either a MessagePack str or bin value
func (l *Lei) DecodeMsgpack(dec *msgpack.Decoder) error {
	tmpStr, err := dec.DecodeString()
	if err != nil {
		return err
	}
	tmp, err := decodeLei(FormatMsgpack, []byte(tmpStr))
	if err != nil {
		return err
	}
	*l = tmp
	return nil
}

func (v View) EncodeMsgpack(enc *msgpack.Encoder) error {
	if v.IsZero() {
		return ErrZeroValue
	}
	return enc.EncodeString(v.String())
}

func (v *View) DecodeMsgpack(dec *msgpack.Decoder) error {
	tmpStr, err := dec.DecodeString()
	if err != nil {
		return err
	}
	tmp, err := decodeView(FormatMsgpack, []byte(tmpStr))
	if err != nil {
		return err
	}
	*v = tmp
	return nil
}
