// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rtrie

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRIB wraps a RIB and records its operations as prometheus
// counters, mirroring the RIB's own Stats counters but exported for
// scraping rather than point-in-time snapshotting.
type MetricsRIB struct {
	rib *RIB

	adds    prometheus.Counter
	deletes prometheus.Counter
	changes prometheus.Counter
	lookups prometheus.Counter
	hits    prometheus.Counter
	misses  prometheus.Counter
}

// NewMetricsRIB wraps rib, registering its counters under the rtrie_
// namespace.
func NewMetricsRIB(rib *RIB) *MetricsRIB {
	return &MetricsRIB{
		rib: rib,

		adds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rtrie_route_adds_total",
			Help: "number of routes successfully added",
		}),
		deletes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rtrie_route_deletes_total",
			Help: "number of routes successfully deleted",
		}),
		changes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rtrie_route_changes_total",
			Help: "number of routes successfully changed",
		}),
		lookups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rtrie_lookups_total",
			Help: "number of longest-prefix-match lookups performed",
		}),
		hits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rtrie_lookup_hits_total",
			Help: "number of lookups that matched a route",
		}),
		misses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rtrie_lookup_misses_total",
			Help: "number of lookups that matched no route",
		}),
	}
}

func (m *MetricsRIB) Add(spec RouteSpec) error {
	err := m.rib.Add(spec)
	if err == nil {
		m.adds.Inc()
	}
	return err
}

func (m *MetricsRIB) Delete(dst, mask KeyView) error {
	err := m.rib.Delete(dst, mask)
	if err == nil {
		m.deletes.Inc()
	}
	return err
}

func (m *MetricsRIB) Change(spec RouteSpec) error {
	err := m.rib.Change(spec)
	if err == nil {
		m.changes.Inc()
		m.adds.Inc()
		m.deletes.Inc()
	}
	return err
}

func (m *MetricsRIB) Lookup(key KeyView) (RouteInfo, error) {
	info, err := m.rib.Lookup(key)
	if errors.Is(err, EINVAL) {
		return info, err
	}
	m.lookups.Inc()
	if err == nil {
		m.hits.Inc()
	} else {
		m.misses.Inc()
	}
	return info, err
}

func (m *MetricsRIB) Walk(visit func(RouteInfo) bool) int {
	return m.rib.Walk(visit)
}

func (m *MetricsRIB) Stats() Snapshot {
	return m.rib.Stats()
}

func (m *MetricsRIB) Destroy() error {
	return m.rib.Destroy()
}
