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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"d7y.io/popularity/internal/config"
	logger "d7y.io/popularity/internal/dflog"
	"d7y.io/popularity/internal/metrics"
	"d7y.io/popularity/internal/replay"
	"d7y.io/popularity/pkg/container/frequency"
)

const (
	// stdinSource is the file argument reading the operation log from stdin.
	stdinSource = "-"

	shutdownTimeout = 5 * time.Second
)

var replayDescription = `
replay applies the operation logs given as arguments, in order, to one tracker
and prints a report of the resulting counts. With no argument, or "-", the log
is read from stdin.
`

var replayCmd = &cobra.Command{
	Use:               "replay [file...]",
	Short:             "replay operation logs and report the most frequent items.",
	Long:              replayDescription,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := logger.InitFreqtrack(cfg.Verbose, cfg.Console, cfg.LogDir); err != nil {
			return fmt.Errorf("init freqtrack logger: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runReplay(ctx, cfg, args, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	flags := replayCmd.Flags()
	flags.Bool("strict", cfg.Replay.Strict, "abort on the first malformed line instead of skipping it")
	flags.Int("top-k", cfg.Replay.TopK, "number of the most frequent items to report")
	flags.StringP("output", "o", cfg.Replay.Output, "report format, one of text, json and yaml")
	flags.Bool("metrics", cfg.Metrics.Enable, "serve prometheus metrics")
	flags.String("metrics-addr", cfg.Metrics.Addr, "listen address of the metrics server")
	flags.Bool("serve", cfg.Metrics.Serve, "keep serving metrics after the replay until interrupted")

	for key, name := range map[string]string{
		"replay.strict":  "strict",
		"replay.topK":    "top-k",
		"replay.output":  "output",
		"metrics.enable": "metrics",
		"metrics.addr":   "metrics-addr",
		"metrics.serve":  "serve",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// runReplay replays every source into one tracker and writes the report of
// the last one, which covers the accumulated counts.
func runReplay(ctx context.Context, cfg *config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	if cfg.Metrics.Enable {
		server := metrics.New(&cfg.Metrics)
		go func() {
			logger.Infof("started metrics server at %s", server.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("metrics server closed unexpect: %s", err)
			}
		}()

		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Errorf("shutdown metrics server failed: %s", err)
			}
		}()
	}

	if len(args) == 0 {
		args = []string{stdinSource}
	}

	var (
		report   *replay.Report
		replayer = replay.New(frequency.NewSafe[string]())
	)
	for _, source := range args {
		var err error
		if report, err = replaySource(ctx, replayer, source, stdin, cfg.Replay); err != nil {
			return err
		}

		if err := report.Err(); err != nil {
			logger.WithSource(source).Warnf("skipped %d malformed lines", report.Skipped)
		}
	}

	if err := printReport(stdout, report, cfg.Replay.Output); err != nil {
		return err
	}

	if cfg.Metrics.Enable && cfg.Metrics.Serve {
		logger.Infof("serving metrics at %s until interrupted", cfg.Metrics.Addr)
		<-ctx.Done()
	}

	return nil
}

func replaySource(ctx context.Context, replayer *replay.Replayer, source string, stdin io.Reader, cfg config.ReplayConfig) (*replay.Report, error) {
	opts := replay.Options{
		Source: source,
		Strict: cfg.Strict,
		TopK:   cfg.TopK,
	}

	if source == stdinSource {
		opts.Source = "stdin"
		return replayer.Replay(ctx, stdin, opts)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return replayer.Replay(ctx, f, opts)
}
