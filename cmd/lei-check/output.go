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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/blinklabs-io/iso17442/cbor"
	"github.com/blinklabs-io/iso17442/lei"
)

type result struct {
	Input       string   `json:"input"                  cbor:"input"`
	Valid       bool     `json:"valid"                  cbor:"valid"`
	Lei         *lei.Lei `json:"lei,omitempty"          cbor:"lei,omitempty"`
	Lou         string   `json:"lou,omitempty"          cbor:"lou,omitempty"`
	EntityId    string   `json:"entity_id,omitempty"    cbor:"entity_id,omitempty"`
	CheckDigits uint8    `json:"check_digits,omitempty" cbor:"check_digits,omitempty"`
	ErrorKind   string   `json:"error_kind,omitempty"   cbor:"error_kind,omitempty"`
	Error       string   `json:"error,omitempty"        cbor:"error,omitempty"`
}

func newResult(input string, l lei.Lei, err error) result {
	ret := result{
		Input: input,
	}
	if err != nil {
		ret.Error = err.Error()
		var leiErr lei.Error
		if errors.As(err, &leiErr) {
			ret.ErrorKind = leiErr.Kind().String()
		}
		return ret
	}
	lou, entityId, check := l.Split()
	ret.Valid = true
	ret.Lei = &l
	ret.Lou = lou
	ret.EntityId = entityId
	ret.CheckDigits = check
	return ret
}

type resultWriter interface {
	Write(result) error
}

func newResultWriter(format string, w io.Writer, quiet bool) (resultWriter, error) {
	switch format {
	case outputFormatText:
		return &textWriter{w: w, quiet: quiet}, nil
	case outputFormatJSON:
		return &jsonWriter{enc: json.NewEncoder(w)}, nil
	case outputFormatCBOR:
		return &cborWriter{w: w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
}

type textWriter struct {
	w     io.Writer
	quiet bool
}

func (t *textWriter) Write(r result) error {
	var err error
	switch {
	case !r.Valid:
		_, err = fmt.Fprintf(t.w, "INVALID %q: %s\n", r.Input, r.Error)
	case !t.quiet:
		_, err = fmt.Fprintf(
			t.w,
			"VALID %s lou=%s entity=%s check=%02d\n",
			r.Lei,
			r.Lou,
			r.EntityId,
			r.CheckDigits,
		)
	}
	return err
}

// jsonWriter writes one JSON document per line
type jsonWriter struct {
	enc *json.Encoder
}

func (j *jsonWriter) Write(r result) error {
	return j.enc.Encode(r)
}

// cborWriter writes a CBOR sequence (RFC 8742) of result maps
type cborWriter struct {
	w io.Writer
}

func (c *cborWriter) Write(r result) error {
	cborData, err := cbor.Encode(r)
	if err != nil {
		return err
	}
	_, err = c.w.Write(cborData)
	return err
}
