package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("distance is symmetric", func(t *testing.T) {
		pairs := [][4]float64{
			{40.7580, -73.9855, 40.7527, -73.9772},
			{-7.7829, 110.3671, -6.1754, 106.8272},
			{0, 0, 0, 180},
			{89.9, 10, -89.9, -170},
		}
		for _, p := range pairs {
			ab := HaversineDistance(p[0], p[1], p[2], p[3])
			ba := HaversineDistance(p[2], p[3], p[0], p[1])
			assert.Equal(t, ab, ba)
		}
	})

	t.Run("distance to self is zero", func(t *testing.T) {
		d := HaversineDistance(40.7580, -73.9855, 40.7580, -73.9855)
		assert.Equal(t, 0.0, d)
	})

	t.Run("times square to grand central", func(t *testing.T) {
		// pins the haversine constant, must stay around 700-750 m
		d := HaversineDistance(40.7580, -73.9855, 40.7527, -73.9772)
		assert.Greater(t, d, 700.0)
		assert.Less(t, d, 750.0)
	})

	t.Run("small separation stays positive and tiny", func(t *testing.T) {
		d := HaversineDistance(40.75800, -73.98550, 40.75801, -73.98551)
		assert.Greater(t, d, 0.0)
		assert.Less(t, d, 5.0)
	})

	t.Run("antipodal points are half the circumference", func(t *testing.T) {
		d := HaversineDistance(0, 0, 0, 180)
		assert.InDelta(t, 2.00151e7, d, 1e4)
	})
}
