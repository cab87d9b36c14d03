// Package model provides the core data structures shared by all pipeline
// stages: geometry primitives, text spans as reported by the page decoder,
// and the outline result types.
//
// # Coordinate System
//
// All geometry uses the PDF coordinate system: the origin is at the
// bottom-left of the page and Y increases upward. "Vertical position
// ascending" in reading order therefore means Y descending.
//
// # Ownership
//
// Spans are immutable once produced by the decoder. Each pipeline stage
// owns and fully replaces its input representation; model types carry no
// shared mutable state across stage boundaries.
package model
