// Package geom implements the integer geometry used by the component tree:
// points, extents, rectangles and the disjoint region sets that collect
// invalidated screen areas between repaints.
//
// Types are re-exported through the root tui package for public consumption.
// A rectangle with zero or negative width or height is empty and behaves as
// "nothing" everywhere: it never intersects, never contributes to a
// [RegionSet] and is pruned from every slicing result.
package geom
