// Package io reads and writes graph documents: human-editable TOML or
// JSON descriptions of a directed graph, loaded into an arena-backed
// [graph.Graph] for traversal and export.
//
// # Document Format
//
// A document is a flat list of named nodes, each declaring its outgoing
// edges by name. TOML:
//
//	[[node]]
//	name = "app"
//	children = ["lib", "core"]
//
//	[[node]]
//	name = "lib"
//	children = ["core"]
//
//	[[node]]
//	name = "core"
//
// JSON:
//
//	{"nodes": [
//	  {"name": "app", "children": ["lib"]},
//	  {"name": "lib"}
//	]}
//
// Names must be unique and non-empty, and every child must name a node
// declared in the same document. Loading resolves names to arena keys
// in two passes, so declaration order does not matter.
//
// The loaded payload type is [Node], which satisfies the graph package's
// node capability. Arena keys are an in-memory identity only — exports
// write names, never keys.
package io
