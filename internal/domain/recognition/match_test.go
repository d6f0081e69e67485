package recognition

import (
	"math"
	"testing"
)

func embeddingAt(offset float32) []float32 {
	e := make([]float32, EmbeddingDim)
	e[0] = offset
	return e
}

func TestFindClosestUnderThreshold(t *testing.T) {
	enrolled := []Enrollment{
		{Registration: "1001", Name: "Ana", Embedding: embeddingAt(0.52)},
		{Registration: "1002", Name: "João", Embedding: embeddingAt(2.0)},
	}

	result := FindClosest(embeddingAt(0), enrolled, 0.6)
	if !result.Matched {
		t.Fatalf("expected match, got %+v", result)
	}
	if result.Employee.Registration != "1001" {
		t.Fatalf("expected closest enrollment, got %s", result.Employee.Registration)
	}
	if math.Abs(result.Distance-0.52) > 1e-6 {
		t.Fatalf("unexpected distance %v", result.Distance)
	}
}

func TestFindClosestOverThresholdIsNotRecognized(t *testing.T) {
	enrolled := []Enrollment{
		{Registration: "1001", Embedding: embeddingAt(0.62)},
	}

	result := FindClosest(embeddingAt(0), enrolled, 0.6)
	if result.Matched {
		t.Fatal("expected not-recognized above threshold")
	}
	if result.Employee != nil {
		t.Fatal("nearest neighbour must not be reported on a miss")
	}
	if math.Abs(result.Distance-0.62) > 1e-6 {
		t.Fatalf("distance should still be reported, got %v", result.Distance)
	}
}

func TestFindClosestEmptyEnrollments(t *testing.T) {
	result := FindClosest(embeddingAt(0), nil, 0.6)
	if result.Matched || result.Employee != nil {
		t.Fatalf("expected miss on empty set, got %+v", result)
	}
	if !math.IsInf(result.Distance, 1) {
		t.Fatalf("expected infinite distance, got %v", result.Distance)
	}
}

func TestFindClosestSkipsMalformedEmbeddings(t *testing.T) {
	enrolled := []Enrollment{
		{Registration: "bad", Embedding: []float32{1, 2, 3}},
		{Registration: "1003", Embedding: embeddingAt(0.1)},
	}

	result := FindClosest(embeddingAt(0), enrolled, 0.6)
	if !result.Matched || result.Employee.Registration != "1003" {
		t.Fatalf("expected the well-formed enrollment to win, got %+v", result)
	}
}

func TestFindClosestRejectsBadQuery(t *testing.T) {
	result := FindClosest([]float32{1, 2}, []Enrollment{{Registration: "1001", Embedding: embeddingAt(0)}}, 0.6)
	if result.Matched {
		t.Fatal("wrong-dimension query must not match")
	}
}
