/*
Package observability wires the engine's lifecycle hooks to Prometheus
counters, so hosts embedding the engine can scrape pass, match and mutation
totals without the core depending on a metrics library.
*/
package observability
