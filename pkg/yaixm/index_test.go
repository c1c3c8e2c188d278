package yaixm

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aberdeenFeatures(t *testing.T) []Feature {
	t.Helper()
	doc, err := Decode([]byte(aberdeenDocument))
	require.NoError(t, err)
	features, err := NewConverter().ConvertWithOptions(doc, testOptions())
	require.NoError(t, err)
	return features
}

func TestIndexFeaturesInBound(t *testing.T) {
	index := NewIndex(aberdeenFeatures(t))

	// A viewport around Aberdeen hits everything.
	aberdeen := orb.Bound{Min: orb.Point{-3.0, 56.7}, Max: orb.Point{-1.5, 57.5}}
	assert.Len(t, index.FeaturesInBound(aberdeen), 3)

	// A viewport over London hits nothing.
	london := orb.Bound{Min: orb.Point{-0.5, 51.3}, Max: orb.Point{0.3, 51.7}}
	assert.Empty(t, index.FeaturesInBound(london))
}

func TestIndexFeaturesAt(t *testing.T) {
	features := aberdeenFeatures(t)
	index := NewIndex(features)

	// Between the southern line at 572100N and the northern arc of CTA-1.
	inside := orb.Point{-2.267, 57.42}
	hits := index.FeaturesAt(inside)
	require.NotEmpty(t, hits)
	names := make([]string, len(hits))
	for i, hit := range hits {
		names[i] = hit.Name
	}
	assert.Contains(t, names, "ABERDEEN CTA-1")

	// Far outside every volume.
	assert.Empty(t, index.FeaturesAt(orb.Point{0, 51}))
}

func TestIndexBound(t *testing.T) {
	features := aberdeenFeatures(t)
	index := NewIndex(features)

	bound := index.Bound()
	for _, feature := range features {
		fb := feature.Geometry.Bound()
		assert.True(t, bound.Contains(fb.Min))
		assert.True(t, bound.Contains(fb.Max))
	}

	assert.Len(t, index.Features(), len(features))
}
