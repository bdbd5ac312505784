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

package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	catalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aic_catalog_load_duration_seconds",
			Help:    "Duration of catalog loads in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)
	catalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aic_catalog_loads_total",
			Help: "Total number of catalog loads by outcome",
		},
		[]string{"outcome"},
	)
	catalogProblems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aic_catalog_problems_total",
			Help: "Total number of skipped definitions by document and error code",
		},
		[]string{"document", "code"},
	)

	// Default catalog cache metrics
	catalogCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aic_catalog_cache_hits_total",
			Help: "Total number of default catalog cache hits",
		},
	)
	catalogCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aic_catalog_cache_misses_total",
			Help: "Total number of default catalog cache misses (initial loads)",
		},
	)
)
