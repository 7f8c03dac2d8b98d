package search

import "math"

// Vector is a sparse term-weight vector. Indices are vocabulary positions in
// ascending order; Weights holds the matching weights.
type Vector struct {
	Indices []int
	Weights []float64
}

// Len returns the number of non-zero entries.
func (v Vector) Len() int {
	return len(v.Indices)
}

// Normalize scales v to unit length in place and returns it.
// A zero vector is left unchanged.
func (v Vector) Normalize() Vector {
	var magnitude float64
	for _, w := range v.Weights {
		magnitude += w * w
	}
	magnitude = math.Sqrt(magnitude)

	// Can't normalize zero vector
	if magnitude == 0 {
		return v
	}

	for i, w := range v.Weights {
		v.Weights[i] = w / magnitude
	}
	return v
}

// Dot returns the dot product of v and o. For unit vectors this is their
// cosine similarity; an empty vector yields exactly 0.
func (v Vector) Dot(o Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(o.Indices) {
		switch {
		case v.Indices[i] < o.Indices[j]:
			i++
		case v.Indices[i] > o.Indices[j]:
			j++
		default:
			sum += v.Weights[i] * o.Weights[j]
			i++
			j++
		}
	}
	return sum
}
