package linesegment

// FindIntersectionsNaive performs a brute-force O(n²) scan for proper intersections
// among the given segments: every pair is tested directly.
//
// A pair contributes a result when its segments cross at a point that is not an
// endpoint of both, or when they share a collinear sub-segment of positive length.
// Duplicate geometries (the same point or sub-segment discovered through different
// pairs) are reported once.
//
// This is the reference the sweep implementation is tested against; for large
// inputs prefer the sweep.
func FindIntersectionsNaive(segments []LineSegment) []IntersectionResult {
	results := make([]IntersectionResult, 0)

	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			res := segments[i].Intersection(segments[j])
			switch res.IntersectionType {
			case IntersectionPoint:
				if segments[i].HasEndpoint(res.IntersectionPoint) && segments[j].HasEndpoint(res.IntersectionPoint) {
					continue
				}
			case IntersectionNone:
				continue
			}

			duplicate := false
			for _, seen := range results {
				if seen.IntersectionType != res.IntersectionType {
					continue
				}
				switch res.IntersectionType {
				case IntersectionPoint:
					duplicate = seen.IntersectionPoint.Eq(res.IntersectionPoint)
				case IntersectionOverlappingSegment:
					duplicate = seen.OverlappingSegment.Eq(res.OverlappingSegment)
				}
				if duplicate {
					break
				}
			}
			if !duplicate {
				results = append(results, res)
			}
		}
	}

	return results
}
