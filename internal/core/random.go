package core

import (
	"math/rand"
	"time"
)

// RandomSource provides the random draws used to synthesize fleet attributes
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a random source. A zero seed uses the current time.
func NewRandomSource(seed int64) *RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Uniform returns a uniform random value in [min, max)
func (rs *RandomSource) Uniform(min, max float64) float64 {
	return min + rs.rng.Float64()*(max-min)
}

// UniformInt returns a uniform random integer in [min, max]
func (rs *RandomSource) UniformInt(min, max int) int {
	return min + rs.rng.Intn(max-min+1)
}

// Index returns a uniform random index into a collection of length n
func (rs *RandomSource) Index(n int) int {
	return rs.rng.Intn(n)
}

// TimeBetween returns a uniform random instant in [start, end)
func (rs *RandomSource) TimeBetween(start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(rs.rng.Int63n(int64(span))))
}

// Bool returns true with the given probability
func (rs *RandomSource) Bool(probability float64) bool {
	return rs.rng.Float64() < probability
}

// Clamp ensures a value is within bounds
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampPositive ensures a value is non-negative
func ClampPositive(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}
