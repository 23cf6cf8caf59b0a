// Package graphical provides a plane-sweep core for 2D computational geometry.
//
// The library is built around three primitive types and one engine. The primitives are
// [point.Point], [linesegment.LineSegment] and [polygon.Polygon]; the engine is the
// Bentley–Ottmann-style sweep in the [sweep] package, which answers three related
// questions over bags of straight-line segments:
//
//   - Existence: do any two segments cross properly? ([sweep.Sweep.HasIntersection])
//   - Enumeration: report every proper intersection point and every shared
//     sub-segment. ([sweep.Sweep.Intersections])
//   - Boolean overlay: intersect, union or subtract two simple polygons.
//     ([sweep.Sweep.ComputeBoolean])
//
// # Coordinate System
//
// The library assumes a standard right-handed Cartesian coordinate system: the x-axis
// increases to the right and the y-axis increases upward. Orientation predicates
// (clockwise, counterclockwise) follow this convention.
//
// # Precision
//
// All comparisons are tolerance-aware. The tolerance is the compile-time constant
// [Epsilon], consumed through the helpers in the [numeric] package. It is deliberately
// not a runtime knob: geometry produced under one tolerance is not comparable to
// geometry produced under another, so the constant is fixed for the module.
//
// # Acknowledgments
//
// The boolean overlay follows the algorithm of Martínez et al.,
// [A simple algorithm for Boolean operations on polygons]. The segment intersection
// enumeration is a variant of the Bentley–Ottmann plane sweep.
//
// [A simple algorithm for Boolean operations on polygons]: https://doi.org/10.1016/j.advengsoft.2013.04.004
package graphical

// Epsilon is the tolerance used for floating-point comparisons throughout the
// library. Coordinate differences at or below Epsilon are treated as zero.
const Epsilon = 1e-9
