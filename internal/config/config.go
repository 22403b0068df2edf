/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"errors"
	"fmt"

	"d7y.io/popularity/internal/dferrors"
)

const (
	// TextOutput prints the replay report as plain text.
	TextOutput = "text"

	// JSONOutput prints the replay report as JSON.
	JSONOutput = "json"

	// YAMLOutput prints the replay report as YAML.
	YAMLOutput = "yaml"
)

const (
	// DefaultTopK is the default number of the most frequent items reported.
	DefaultTopK = 10

	// DefaultMetricsAddr is the default address of the metrics server.
	DefaultMetricsAddr = ":8000"
)

type Config struct {
	// Console prints logs to the console instead of files.
	Console bool `yaml:"console" mapstructure:"console"`

	// Verbose enables debug logs.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// LogDir is the directory of the log files.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Replay configuration.
	Replay ReplayConfig `yaml:"replay" mapstructure:"replay"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ReplayConfig struct {
	// Strict aborts the replay on the first malformed line,
	// otherwise malformed lines are skipped and reported.
	Strict bool `yaml:"strict" mapstructure:"strict"`

	// TopK is the number of the most frequent items reported.
	TopK int `yaml:"topK" mapstructure:"topK"`

	// Output is the report format, one of text, json and yaml.
	Output string `yaml:"output" mapstructure:"output"`
}

type MetricsConfig struct {
	// Enable serves prometheus metrics.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Addr is the listen address of the metrics server.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// Serve keeps the metrics server running after the replay until interrupted.
	Serve bool `yaml:"serve" mapstructure:"serve"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Console: true,
		Replay: ReplayConfig{
			TopK:   DefaultTopK,
			Output: TextOutput,
		},
		Metrics: MetricsConfig{
			Addr: DefaultMetricsAddr,
		},
	}
}

func (cfg *Config) Validate() error {
	if !cfg.Console && cfg.LogDir == "" {
		return errors.New("file logging requires parameter logDir")
	}

	if cfg.Replay.TopK < 0 {
		return fmt.Errorf("replay topK %d: %w", cfg.Replay.TopK, dferrors.ErrInvalidArgument)
	}

	switch cfg.Replay.Output {
	case TextOutput, JSONOutput, YAMLOutput:
	default:
		return fmt.Errorf("replay output %q: %w", cfg.Replay.Output, dferrors.ErrInvalidArgument)
	}

	if cfg.Metrics.Enable && cfg.Metrics.Addr == "" {
		return errors.New("metrics requires parameter addr")
	}

	if cfg.Metrics.Serve && !cfg.Metrics.Enable {
		return errors.New("metrics serve requires parameter enable")
	}

	return nil
}
