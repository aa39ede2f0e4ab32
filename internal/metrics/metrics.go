// metrics.go
//
// Multi-view database engine and data service for the jam-build second brain
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jam-build-viewdb.
// jam-build-viewdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jam-build-viewdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jam-build-viewdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package metrics holds the service's own Prometheus collectors. They are
// registered on the default registry, which fiberprometheus serves at
// /metrics alongside the HTTP metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "viewdb"

var (
	renders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "renders_total",
		Help:      "View renders by result kind.",
	}, []string{"kind"})

	renderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "render_duration_seconds",
		Help:      "Time spent shaping records for a view.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}, []string{"kind"})

	renderRecords = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "render_records",
		Help:      "Records read per render.",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
	}, []string{"kind"})

	visibilityMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "visibility_mutations_total",
		Help:      "Visibility intents by intent and outcome.",
	}, []string{"intent", "outcome"})
)

// ObserveRender records one render pass.
func ObserveRender(kind string, records int, elapsed time.Duration) {
	renders.WithLabelValues(kind).Inc()
	renderDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
	renderRecords.WithLabelValues(kind).Observe(float64(records))
}

// CountVisibility records the outcome of a visibility intent: "applied",
// "rejected", "conflict" or "error".
func CountVisibility(intent, outcome string) {
	visibilityMutations.WithLabelValues(intent, outcome).Inc()
}
