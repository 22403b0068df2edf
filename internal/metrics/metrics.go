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

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"d7y.io/popularity/internal/config"
	"d7y.io/popularity/version"
)

const (
	// Namespace is the prometheus namespace of every metric.
	Namespace = "popularity"

	// FreqtrackSubsystem is the prometheus subsystem of the freqtrack command.
	FreqtrackSubsystem = "freqtrack"
)

var (
	// IncreaseOperation is the label of applied increase operations.
	IncreaseOperation = "increase"

	// DecreaseOperation is the label of applied decrease operations.
	DecreaseOperation = "decrease"
)

// Variables declared for metrics.
var (
	OperationCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: FreqtrackSubsystem,
		Name:      "operation_total",
		Help:      "Counter of the number of the applied operations.",
	}, []string{"type"})

	MalformedLineCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: FreqtrackSubsystem,
		Name:      "malformed_line_total",
		Help:      "Counter of the number of the skipped malformed lines.",
	})

	TrackedItemGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: FreqtrackSubsystem,
		Name:      "tracked_item",
		Help:      "Gauge of the number of the tracked items.",
	})

	MaxCountGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: FreqtrackSubsystem,
		Name:      "max_count",
		Help:      "Gauge of the highest count among the tracked items.",
	})

	VersionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: FreqtrackSubsystem,
		Name:      "version",
		Help:      "Version info of the service.",
	}, []string{"major", "minor", "git_version", "git_commit", "platform", "build_time", "go_version"})
)

// New returns the metrics server, it serves /metrics on cfg.Addr.
func New(cfg *config.MetricsConfig) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	VersionGauge.WithLabelValues(version.Major, version.Minor, version.GitVersion, version.GitCommit, version.Platform, version.BuildTime, version.GoVersion).Set(1)
	return &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}
}
