// Package metrics records release-signing gate outcomes.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default; PrometheusRecorder registers counters and a histogram on a
// private registry and can dump them in the Prometheus text exposition format
// so CI runners can hand the file to node_exporter's textfile collector:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	g := gate.New(gate.WithRecorder(rec))
//	// ...
//	_ = rec.WriteTextfile("/var/lib/node_exporter/signgate.prom")
package metrics
