// Package dot reads and writes visual graphs as Graphviz DOT.
//
// # Overview
//
// A [Writer] turns a [visual.Graph] into a single graph or digraph block. A
// [Reader] parses DOT source, which may hold several graphs, and rebuilds one
// visual graph per block together with its style defaults and per-element
// overrides.
//
// # Style Defaults and Overrides
//
// Graph attributes become the network defaults and node [...] / edge [...]
// statements the node and edge defaults, each laid over the Graphviz
// built-in values. An element only records the properties whose resolved
// value differs from those defaults. The writer mirrors this: it emits the
// default statements first and then, per element, only what the element
// overrides.
//
// # Usage
//
//	var r dot.Reader
//	graphs, report, err := r.Read(ctx, src)
//	if err != nil {
//	    return err // invalid DOT, nothing was imported
//	}
//	for _, line := range report.Summary() {
//	    logger.Warn(line)
//	}
//
//	w := dot.Writer{LabelLocation: dot.LabelExternal}
//	report, err = w.Write(ctx, out, graphs[0])
//
// # Errors
//
// Unparseable attribute values and renamed identifiers are not errors; they
// are collected in the [Report]. Invalid DOT syntax fails the whole read with
// an INVALID_DOT error. A graph whose edges reference missing nodes is
// skipped with a MODEL_INTEGRITY warning while the other graphs of the file
// are still returned.
//
// # Concurrency
//
// Element resolution is pure once the defaults of a graph are known, so
// [Reader.Workers] may resolve nodes and edges in parallel. Cancellation is
// checked between elements.
package dot
