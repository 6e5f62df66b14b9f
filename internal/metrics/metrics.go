// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the application and the
// helpers used to record events on them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Result labels.
const (
	ResultSuccess   = "success"
	ResultDuplicate = "duplicate"
	ResultInvalid   = "invalid"
	ResultRejected  = "rejected"
	ResultError     = "error"
)

// Gate decision labels.
const (
	DecisionAllow = "allow"
	DecisionDeny  = "deny"
)

// Registrations counts registration attempts by result.
var Registrations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "secrets_registrations_total",
		Help: "Total number of registration attempts",
	},
	[]string{"result"},
)

// Logins counts login attempts by result.
var Logins = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "secrets_logins_total",
		Help: "Total number of login attempts",
	},
	[]string{"result"},
)

// GateDecisions counts access gate verdicts.
var GateDecisions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "secrets_gate_decisions_total",
		Help: "Total number of access gate decisions",
	},
	[]string{"decision"},
)

// SessionsPurged counts expired sessions removed by the sweeper.
var SessionsPurged = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "secrets_sessions_purged_total",
		Help: "Total number of expired sessions removed by the sweeper",
	},
)

// RegisterMetrics registers the application collectors with reg.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(Registrations)
	reg.MustRegister(Logins)
	reg.MustRegister(GateDecisions)
	reg.MustRegister(SessionsPurged)
}

// NewRegistry returns a registry carrying the Go runtime and process
// collectors together with the application collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	RegisterMetrics(registry)
	return registry
}

// RecordRegistration increments the registration counter.
func RecordRegistration(result string) {
	Registrations.WithLabelValues(result).Inc()
}

// RecordLogin increments the login counter.
func RecordLogin(result string) {
	Logins.WithLabelValues(result).Inc()
}

// RecordGateDecision increments the gate decision counter.
func RecordGateDecision(allowed bool) {
	if allowed {
		GateDecisions.WithLabelValues(DecisionAllow).Inc()
		return
	}
	GateDecisions.WithLabelValues(DecisionDeny).Inc()
}

// RecordSessionsPurged adds n to the purged sessions counter.
func RecordSessionsPurged(n int64) {
	if n <= 0 {
		return
	}
	SessionsPurged.Add(float64(n))
}
