// Package svgbob recognizes box-drawing ASCII/Unicode diagrams and converts
// them into a positioned set of vector fragments (lines, arcs, circles,
// rectangles, polygons, text) suitable for rendering as SVG.
//
// The pipeline is: grid (cells) -> spans (8-connected components) ->
// property table lookup -> local fragment emission -> fragment merging ->
// shape endorsement -> absolute positioning/scaling -> SVG rendering.
// Every stage is synchronous and single-threaded; the only shared state is
// a handful of process-wide static tables built once at package load or on
// first use.
package svgbob
