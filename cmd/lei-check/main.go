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
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/blinklabs-io/iso17442/lei"
)

const (
	exitOk      = 0
	exitInvalid = 1
	exitUsage   = 2
)

type globalFlags struct {
	flagset    *flag.FlagSet
	configFile string
	format     string
	generate   bool
	failFast   bool
	quiet      bool
	debug      bool
}

func newGlobalFlags(name string, output io.Writer) *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(name, flag.ContinueOnError),
	}
	f.flagset.SetOutput(output)
	f.flagset.Usage = func() {
		fmt.Fprintf(
			output,
			"Usage: %s [options] [LEI ...]\n\nValidates ISO 17442 LEIs given as arguments, or one per line on stdin.\n\nOptions:\n",
			name,
		)
		f.flagset.PrintDefaults()
	}
	f.flagset.StringVar(
		&f.configFile,
		"config",
		"",
		"path to TOML config file",
	)
	f.flagset.StringVar(
		&f.format,
		"format",
		outputFormatText,
		"output format (text, json, cbor)",
	)
	f.flagset.BoolVar(
		&f.generate,
		"generate",
		false,
		"treat inputs as 18 character prefixes and output the full LEI with computed check digits",
	)
	f.flagset.BoolVar(
		&f.failFast,
		"fail-fast",
		false,
		"stop at the first invalid input",
	)
	f.flagset.BoolVar(
		&f.quiet,
		"quiet",
		false,
		"only report invalid inputs (text format)",
	)
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	return f
}

// config merges the config file (if any) with explicitly set flags, which take precedence
func (f *globalFlags) config() (Config, error) {
	cfg := DefaultConfig()
	if f.configFile != "" {
		var err error
		cfg, err = LoadConfig(f.configFile)
		if err != nil {
			return Config{}, err
		}
	}
	f.flagset.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "format":
			cfg.Format = f.format
		case "fail-fast":
			cfg.FailFast = f.failFast
		case "quiet":
			cfg.Quiet = f.quiet
		case "debug":
			if f.debug {
				cfg.LogLevel = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(name string, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	f := newGlobalFlags(name, stderr)
	if err := f.flagset.Parse(args); err != nil {
		return exitUsage
	}
	cfg, err := f.config()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %s\n", err)
		return exitUsage
	}
	level, _ := cfg.Level()
	logger := slog.New(
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	)
	writer, err := newResultWriter(cfg.Format, stdout, cfg.Quiet)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return exitUsage
	}
	c := &checker{
		logger:   logger,
		writer:   writer,
		generate: f.generate,
		failFast: cfg.FailFast,
	}
	if f.flagset.NArg() > 0 {
		err = c.checkAll(f.flagset.Args())
	} else {
		err = c.checkReader(stdin)
	}
	if err != nil {
		logger.Error("failed to check input", "error", err)
		return exitUsage
	}
	logger.Info(
		"finished checking inputs",
		"total", c.total,
		"invalid", c.invalid,
	)
	if c.invalid > 0 {
		return exitInvalid
	}
	return exitOk
}

type checker struct {
	logger   *slog.Logger
	writer   resultWriter
	generate bool
	failFast bool
	total    int
	invalid  int
}

func (c *checker) checkAll(inputs []string) error {
	for _, input := range inputs {
		stop, err := c.check(input)
		if err != nil || stop {
			return err
		}
	}
	return nil
}

func (c *checker) checkReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		c.logger.Debug("read input", "line", lineNum, "input", input)
		stop, err := c.check(input)
		if err != nil || stop {
			return err
		}
	}
	return scanner.Err()
}

// check validates a single input and writes its result. It returns true when checking
// should stop
func (c *checker) check(input string) (bool, error) {
	c.total++
	var l lei.Lei
	var err error
	if c.generate {
		l, err = generate(input)
	} else {
		l, err = lei.Parse(input)
	}
	if err != nil {
		c.invalid++
		c.logger.Debug("invalid input", "input", input, "error", err)
	}
	if writeErr := c.writer.Write(newResult(input, l, err)); writeErr != nil {
		return true, fmt.Errorf("write result: %w", writeErr)
	}
	return err != nil && c.failFast, nil
}

// generate builds a full LEI from an 18 character LOU and entity identifier prefix
func generate(prefix string) (lei.Lei, error) {
	if len(prefix) != lei.PrefixSize {
		return lei.Lei{}, lei.InvalidLengthError{
			Actual:   len(prefix),
			Expected: lei.PrefixSize,
		}
	}
	return lei.New(prefix[:lei.LouSize], prefix[lei.LouSize:])
}
