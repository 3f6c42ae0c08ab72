package convexhull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAll(t *testing.T) {
	clusters := [][]*testVertex{
		makeVertices(cubeCorners()...),
		makeVertices([]float64{0}, []float64{1}, []float64{2}),
		randomCloud(9, 200, 3),
		makeVertices([]float64{1, 1, 1}, []float64{1, 1, 1}, []float64{1, 1, 1}, []float64{1, 1, 1}),
		randomCloud(10, 100, 4),
	}

	for _, workers := range []int{0, 1, 2, 16} {
		hulls, err := CreateAll(clusters, nil, workers)
		require.Error(t, err)
		require.Len(t, hulls, len(clusters))

		assert.ErrorIs(t, err, ErrInvalidDimension)
		assert.ErrorIs(t, err, ErrSingularInput)
		assert.Contains(t, err.Error(), "cluster 1")
		assert.Contains(t, err.Error(), "cluster 3")

		assert.Nil(t, hulls[1])
		assert.Nil(t, hulls[3])

		require.NotNil(t, hulls[0])
		assert.Len(t, hulls[0].Faces, 12)
		for _, i := range []int{2, 4} {
			require.NotNil(t, hulls[i])
			requireValidHull(t, hulls[i], clusters[i], 10*DefaultPlaneDistanceTolerance)
		}
	}
}

func TestCreateAllSuccess(t *testing.T) {
	clusters := make([][]*testVertex, 10)
	for i := range clusters {
		clusters[i] = randomCloud(uint64(i), 50, 3)
	}

	hulls, err := CreateAll(clusters, nil, 4)
	require.NoError(t, err)
	for i, hull := range hulls {
		require.NotNil(t, hull, "cluster %d", i)

		single, err := Create(clusters[i], nil)
		require.NoError(t, err)
		assert.Len(t, hull.Faces, len(single.Faces), "cluster %d", i)
	}
}

func TestCreateAllEmpty(t *testing.T) {
	hulls, err := CreateAll[Point](nil, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, hulls)
}

func TestTask(t *testing.T) {
	for _, workers := range []int{1, 3, 7, 100} {
		data := make([]int, 50)
		for i := range data {
			data[i] = i
		}

		seen := make([]int, len(data))
		task(workers, data, func(i int) {
			seen[i]++
		})

		for i, n := range seen {
			assert.Equal(t, 1, n, "workers=%d: item %d visited %d times", workers, i, n)
		}
	}
}
