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
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/BurntSushi/toml"
)

const (
	outputFormatText = "text"
	outputFormatJSON = "json"
	outputFormatCBOR = "cbor"
)

var outputFormats = []string{outputFormatText, outputFormatJSON, outputFormatCBOR}

type Config struct {
	Format   string `toml:"format"`
	LogLevel string `toml:"log_level"`
	FailFast bool   `toml:"fail_fast"`
	Quiet    bool   `toml:"quiet"`
}

func DefaultConfig() Config {
	return Config{
		Format:   outputFormatText,
		LogLevel: "warn",
	}
}

// LoadConfig reads a TOML config file over the defaults. Unknown keys are rejected
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf(
			"config parse failed (%s): unknown key %q",
			path,
			undecoded[0].String(),
		)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !slices.Contains(outputFormats, c.Format) {
		return fmt.Errorf("unsupported output format: %q", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.New("invalid log level: " + c.LogLevel)
	}
	return level, nil
}
