// Package metrics exposes Prometheus instrumentation for the breakpoint
// search, the GTEN build and static flow runs. Each Registry owns a private
// prometheus.Registry; a nil *Registry records nothing.
package metrics
