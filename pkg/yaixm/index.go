package yaixm

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Index provides fast spatial queries over converted features using an
// R-tree. Build it once and query from any number of goroutines.
type Index struct {
	rtree    *rtreego.Rtree
	features []Feature
	bound    orb.Bound
}

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature Feature
	bound   orb.Bound
}

// Bounds implements the rtreego.Spatial interface.
func (f *indexedFeature) Bounds() rtreego.Rect {
	return boundToRect(f.bound)
}

// boundToRect converts an orb bound to an R-tree rectangle. The R-tree
// requires non-zero extents, so degenerate bounds are padded by a small
// epsilon (~11 m at the equator).
func boundToRect(bound orb.Bound) rtreego.Rect {
	point := rtreego.Point{bound.Min[0], bound.Min[1]}

	lonLength := bound.Max[0] - bound.Min[0]
	latLength := bound.Max[1] - bound.Min[1]

	const epsilon = 0.0001
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	lengths := []float64{lonLength, latLength}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// NewIndex builds a spatial index over converted features.
func NewIndex(features []Feature) *Index {
	// 2D tree, 25..50 children per node.
	rtree := rtreego.NewTree(2, 25, 50)

	var bound orb.Bound
	for i, feature := range features {
		fb := feature.Geometry.Bound()
		rtree.Insert(&indexedFeature{feature: feature, bound: fb})
		if i == 0 {
			bound = fb
		} else {
			bound = bound.Union(fb)
		}
	}

	return &Index{
		rtree:    rtree,
		features: features,
		bound:    bound,
	}
}

// Features returns all indexed features in input order.
func (ix *Index) Features() []Feature {
	return ix.features
}

// Bound returns the bounding box covering every indexed feature.
func (ix *Index) Bound() orb.Bound {
	return ix.bound
}

// FeaturesInBound returns the features whose bounding boxes intersect the
// given viewport.
func (ix *Index) FeaturesInBound(bound orb.Bound) []Feature {
	spatials := ix.rtree.SearchIntersect(boundToRect(bound))

	result := make([]Feature, 0, len(spatials))
	for _, spatial := range spatials {
		indexed := spatial.(*indexedFeature)
		result = append(result, indexed.feature)
	}
	return result
}

// FeaturesAt returns the features whose polygons contain the given point.
// Candidates come from the R-tree; the exact polygon test runs only on the
// handful of bounding-box hits.
func (ix *Index) FeaturesAt(point orb.Point) []Feature {
	probe := orb.Bound{Min: point, Max: point}
	spatials := ix.rtree.SearchIntersect(boundToRect(probe))

	var result []Feature
	for _, spatial := range spatials {
		indexed := spatial.(*indexedFeature)
		if planar.PolygonContains(indexed.feature.Geometry, point) {
			result = append(result, indexed.feature)
		}
	}
	return result
}
