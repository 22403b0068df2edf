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

package replay

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"d7y.io/popularity/internal/dferrors"
	logger "d7y.io/popularity/internal/dflog"
	"d7y.io/popularity/internal/metrics"
	"d7y.io/popularity/pkg/container/frequency"
)

const (
	// maxLineSize is the longest line accepted in an operation log.
	maxLineSize = 1024 * 1024
)

// Options controls a single replay.
type Options struct {
	// Source names the operation log in logs and reports.
	Source string

	// Strict aborts on the first malformed line.
	Strict bool

	// TopK is the number of the most frequent items reported.
	TopK int
}

// Report summarizes the tracker after a replay.
type Report struct {
	Source       string                    `json:"source" yaml:"source"`
	Increases    uint64                    `json:"increases" yaml:"increases"`
	Decreases    uint64                    `json:"decreases" yaml:"decreases"`
	Skipped      uint64                    `json:"skipped" yaml:"skipped"`
	TrackedItems uint                      `json:"trackedItems" yaml:"trackedItems"`
	MostFrequent *frequency.Entry[string]  `json:"mostFrequent,omitempty" yaml:"mostFrequent,omitempty"`
	Top          []frequency.Entry[string] `json:"top,omitempty" yaml:"top,omitempty"`
	Malformed    []string                  `json:"malformed,omitempty" yaml:"malformed,omitempty"`

	errs *multierror.Error
}

// Err returns the malformed lines skipped by a lenient replay, nil if none.
func (r *Report) Err() error {
	return r.errs.ErrorOrNil()
}

// Replayer applies operation logs to a tracker. Several logs may be replayed
// into the same tracker, each report covers the accumulated counts.
type Replayer struct {
	tracker frequency.SafeTracker[string]
}

// New returns a replayer applying operations to tracker.
func New(tracker frequency.SafeTracker[string]) *Replayer {
	return &Replayer{
		tracker: tracker,
	}
}

// Tracker returns the tracker operations are applied to.
func (r *Replayer) Tracker() frequency.SafeTracker[string] {
	return r.tracker
}

// Replay applies every operation read from reader.
func (r *Replayer) Replay(ctx context.Context, reader io.Reader, opts Options) (*Report, error) {
	log := logger.WithSource(opts.Source)
	report := &Report{Source: opts.Source}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	var line int
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			log.Warnf("replay canceled at line %d", line)
			return nil, ctx.Err()
		default:
		}

		line++
		text := scanner.Text()
		op, item, ok, err := ParseLine(text)
		if err != nil {
			lineErr := &dferrors.LineError{Line: line, Text: text, Err: err}
			if opts.Strict {
				log.Errorf("abort on malformed line: %s", lineErr)
				return nil, fmt.Errorf("replay %s: %w", opts.Source, lineErr)
			}

			logger.WithSourceAndLine(opts.Source, line).Warnf("skip malformed line: %s", err)
			metrics.MalformedLineCount.Inc()
			report.errs = multierror.Append(report.errs, lineErr)
			report.Malformed = append(report.Malformed, lineErr.Error())
			report.Skipped++
			continue
		}

		if !ok {
			continue
		}

		r.apply(op, item)
		logger.ReplayLogger.Debugf("%s %s", op, item)
		switch op {
		case Increase:
			report.Increases++
		case Decrease:
			report.Decreases++
		}
	}

	if err := scanner.Err(); err != nil {
		log.Errorf("read failed after line %d: %s", line, err)
		return nil, fmt.Errorf("read %s: %w", opts.Source, err)
	}

	r.summarize(report, opts.TopK)
	log.Infof("replayed %d lines, %d increases, %d decreases, %d skipped",
		line, report.Increases, report.Decreases, report.Skipped)
	return report, nil
}

func (r *Replayer) apply(op Operation, item string) {
	switch op {
	case Increase:
		r.tracker.Increase(item)
		metrics.OperationCount.WithLabelValues(metrics.IncreaseOperation).Inc()
	case Decrease:
		r.tracker.Decrease(item)
		metrics.OperationCount.WithLabelValues(metrics.DecreaseOperation).Inc()
	}
}

func (r *Replayer) summarize(report *Report, topK int) {
	report.TrackedItems = r.tracker.Len()
	report.Top = r.tracker.TopK(topK)
	metrics.TrackedItemGauge.Set(float64(report.TrackedItems))

	item, ok := r.tracker.MostFrequent()
	if !ok {
		metrics.MaxCountGauge.Set(0)
		return
	}

	// Count is zero when a concurrent writer dropped the item in between.
	count, _ := r.tracker.Count(item)
	report.MostFrequent = &frequency.Entry[string]{Item: item, Count: count}
	metrics.MaxCountGauge.Set(float64(count))
}
