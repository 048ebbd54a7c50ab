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
	"fmt"

	"gopkg.in/yaml.v3"
)

func (l Lei) MarshalYAML() (any, error) {
	if l.IsZero() {
		return nil, ErrZeroValue
	}
	return l.String(), nil
}

func (l *Lei) UnmarshalYAML(value *yaml.Node) error {
	if err := checkYAMLScalar(value); err != nil {
		return err
	}
	tmp, err := decodeLei(FormatYAML, []byte(value.Value))
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*l = tmp
	return nil
}

func (v View) MarshalYAML() (any, error) {
	if v.IsZero() {
		return nil, ErrZeroValue
	}
	return v.String(), nil
}

func (v *View) UnmarshalYAML(value *yaml.Node) error {
	if err := checkYAMLScalar(value); err != nil {
		return err
	}
	tmp, err := decodeView(FormatYAML, []byte(value.Value))
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*v = tmp
	return nil
}

func checkYAMLScalar(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf(
			"yaml: line %d: expected LEI scalar, found node kind %d",
			value.Line,
			value.Kind,
		)
	}
	return nil
}
