// Package io reads and writes visual graphs as DOT files and JSON snapshots.
//
// # Overview
//
// DOT is the exchange format; the JSON snapshot is a lossless dump of the
// in-memory [visual.Graph] used to:
//
//   - Inspect what an import produced, property by property
//   - Edit styles with external tools and export them back to DOT
//   - Cache imported graphs between CLI runs
//
// # JSON Format
//
// A snapshot holds one entry per graph of the source file:
//
//	{
//	  "graphs": [
//	    {
//	      "name": "G",
//	      "defaults": {
//	        "network": {"NETWORK_BACKGROUND_PAINT": "#FFFFFFFF", ...},
//	        "node": {"NODE_SHAPE": "ELLIPSE", ...},
//	        "edge": {...}
//	      },
//	      "nodes": [{"id": "a", "overrides": {"NODE_SHAPE": "DIAMOND"}}],
//	      "edges": [{"source": "a", "target": "b", "directed": true}]
//	    }
//	  ]
//	}
//
// Properties are keyed by their registry ID. Colors are "#RRGGBBAA" strings,
// gradients are objects with kind, stops, angle and center, and bends are
// arrays of {"x", "y"} points. Unmapped DOT attributes are kept verbatim
// under "unmapped".
//
// # DOT Files
//
// [ImportDOT] and [ExportDOT] wrap [dot.Reader] and [dot.Writer] with file
// handling. A missing input file is reported with the FILE_NOT_FOUND code;
// an export that fails leaves no file behind.
//
// # Concurrency
//
// The functions in this package keep no state. The graphs returned by
// [ReadJSON] and [ImportDOT] are independent of their input.
package io
