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
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"d7y.io/popularity/internal/config"
	"d7y.io/popularity/internal/replay"
)

// printReport writes report to w in the given output format.
func printReport(w io.Writer, report *replay.Report, output string) error {
	switch output {
	case config.JSONOutput:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case config.YAMLOutput:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return err
		}
		return encoder.Close()
	case config.TextOutput:
		return printText(w, report)
	default:
		return fmt.Errorf("unknown output %q", output)
	}
}

func printText(w io.Writer, report *replay.Report) error {
	fmt.Fprintf(w, "increases: %d, decreases: %d, skipped: %d\n", report.Increases, report.Decreases, report.Skipped)
	fmt.Fprintf(w, "tracked items: %d\n", report.TrackedItems)
	if report.MostFrequent == nil {
		fmt.Fprintln(w, "most frequent: none")
	} else {
		fmt.Fprintf(w, "most frequent: %s (%d)\n", report.MostFrequent.Item, report.MostFrequent.Count)
	}

	for i, entry := range report.Top {
		fmt.Fprintf(w, "%3d. %s %d\n", i+1, entry.Item, entry.Count)
	}

	for _, line := range report.Malformed {
		if _, err := fmt.Fprintf(w, "malformed: %s\n", line); err != nil {
			return err
		}
	}

	return nil
}
