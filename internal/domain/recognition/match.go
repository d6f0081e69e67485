package recognition

import "math"

// EmbeddingDim is the descriptor length produced by the face model.
const EmbeddingDim = 128

type Enrollment struct {
	Registration string    `json:"matricula"`
	Name         string    `json:"nome"`
	Embedding    []float32 `json:"embedding,omitempty"`
}

type MatchResult struct {
	Matched  bool        `json:"matched"`
	Employee *Enrollment `json:"employee"`
	Distance float64     `json:"distance"`
}

// FindClosest compares the query descriptor against every enrollment and
// accepts the nearest one only when its euclidean distance is under the
// threshold. Anything else is a not-recognized outcome, never a guess at the
// nearest neighbour. Enrollments with a missing or wrong-dimension embedding
// are skipped.
func FindClosest(query []float32, enrolled []Enrollment, threshold float64) MatchResult {
	best := MatchResult{Distance: math.Inf(1)}
	if len(query) != EmbeddingDim {
		return best
	}

	for i := range enrolled {
		candidate := &enrolled[i]
		if len(candidate.Embedding) != EmbeddingDim {
			continue
		}
		distance := euclideanDistance(query, candidate.Embedding)
		if distance < best.Distance {
			best.Distance = distance
			best.Employee = candidate
		}
	}

	if best.Employee != nil && best.Distance < threshold {
		best.Matched = true
		return best
	}
	return MatchResult{Matched: false, Employee: nil, Distance: best.Distance}
}

func euclideanDistance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		diff := float64(a[i]) - float64(b[i])
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
