// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package database

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	indexOutput  = "output"
	indexMachine = "machine"

	resultHit  = "hit"
	resultMiss = "miss"
)

var (
	indexRebuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aic_database_index_rebuilds_total",
			Help: "Total number of recipe index rebuilds",
		},
	)
	indexRebuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aic_database_index_rebuild_duration_seconds",
			Help:    "Duration of recipe index rebuilds in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)
	indexedRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "aic_database_indexed_recipes",
			Help: "Number of recipes in the most recently built index",
		},
	)
	indexLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aic_database_index_lookups_total",
			Help: "Total number of recipe index lookups by index and result",
		},
		[]string{"index", "result"},
	)
)

func recordRebuild(recipes int, d time.Duration) {
	indexRebuilds.Inc()
	indexRebuildDuration.Observe(d.Seconds())
	indexedRecipes.Set(float64(recipes))
}

func recordLookup(which string, hit bool) {
	result := resultMiss
	if hit {
		result = resultHit
	}
	indexLookups.WithLabelValues(which, result).Inc()
}
