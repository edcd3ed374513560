// Package render projects arena-backed graphs into Graphviz DOT text
// and renders that text to SVG or PNG.
//
// # DOT Projection
//
// [ToDOT] emits one edge line per (node, child) pair:
//
//	digraph {
//	"0v1" -> "1v1"
//	}
//
// Node identifiers are the debug form of their arena keys, quoted; no
// further escaping is performed. Edge order follows the graph's arena
// iteration order and, within a node, the node's own children order.
// The projection is read-only and purely diagnostic: the key rendering
// is not a stable persisted identifier.
//
// # Rendering
//
// [RenderSVG] and [RenderPNG] feed the DOT text through
// [github.com/goccy/go-graphviz] in process; no external Graphviz
// installation is required.
package render
