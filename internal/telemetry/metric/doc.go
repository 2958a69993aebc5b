// Package metric provides Prometheus metrics for buildmeta.
//
//   - prometheus.go: registry, build gauges, textfile export
//
// buildmeta is a short-lived command, so metrics are not served over HTTP.
// They are written in the text exposition format to a file that
// node_exporter's textfile collector picks up.
//
// Metrics:
//
//   - buildmeta_info{revision,branch,version,build_dir}: always 1
//   - buildmeta_probe_result{package}: 1 if the probe passed, else 0
//   - buildmeta_last_run_timestamp_seconds: when the file was written
package metric
