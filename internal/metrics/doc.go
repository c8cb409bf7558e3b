// Package metrics records counters for one events-digest run.
//
// Metrics live in a private Prometheus registry and are written once, at the
// end of the run, in text exposition format so a node-exporter textfile
// collector can pick them up.
package metrics
