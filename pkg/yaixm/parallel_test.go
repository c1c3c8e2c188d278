package yaixm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertParallelMatchesSerial(t *testing.T) {
	doc, err := Decode([]byte(aberdeenDocument))
	require.NoError(t, err)

	// Pad the document with extra copies so the pool has real work.
	for i := 0; i < 7; i++ {
		clone := doc.Airspace[0]
		doc.Airspace = append(doc.Airspace, clone)
	}

	serial, err := NewConverter().ConvertWithOptions(doc, testOptions())
	require.NoError(t, err)

	popts := DefaultParallelOptions()
	popts.Workers = 4
	parallel, err := ConvertParallel(doc, testOptions(), popts)
	require.NoError(t, err)

	require.Len(t, parallel, len(serial))
	for i := range serial {
		assert.Equal(t, serial[i].Name, parallel[i].Name)
		assert.Equal(t, serial[i].Geometry, parallel[i].Geometry)
	}
}

func TestConvertParallelProgress(t *testing.T) {
	doc, err := Decode([]byte(aberdeenDocument))
	require.NoError(t, err)
	doc.Airspace = append(doc.Airspace, doc.Airspace[0], doc.Airspace[0])

	calls := 0
	popts := ParallelOptions{
		Workers: 2,
		Progress: func(converted, total int) {
			calls++
			assert.Equal(t, 3, total)
			assert.LessOrEqual(t, converted, total)
		},
	}

	_, err = ConvertParallel(doc, testOptions(), popts)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestConvertParallelFirstErrorWins(t *testing.T) {
	doc, err := Decode([]byte(aberdeenDocument))
	require.NoError(t, err)

	broken := doc.Airspace[0]
	broken.Name = "BROKEN"
	broken.ID = ""
	broken.Geometry = nil
	doc.Airspace = append(doc.Airspace, broken)

	_, err = ConvertParallel(doc, testOptions(), DefaultParallelOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BROKEN")
}

func TestConvertParallelEmpty(t *testing.T) {
	features, err := ConvertParallel(&Document{}, testOptions(), DefaultParallelOptions())
	require.NoError(t, err)
	assert.Empty(t, features)
}
