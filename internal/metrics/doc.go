// Package metrics collects numlab's Prometheus metrics in a private
// registry and snapshots runtime memory usage.
//
// numlab has no network listener; the registry is dumped in the text
// exposition format with WriteTextfile, suitable for the node exporter's
// textfile collector.
package metrics
