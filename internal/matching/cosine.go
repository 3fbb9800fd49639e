// Package matching ranks stored accomplishment embeddings against semantic
// queries and groups them into unsupervised theme clusters.
package matching

import "math"

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths or zero vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// squaredDistance computes the squared Euclidean distance between a vector
// and a centroid.
func squaredDistance(v []float32, centroid []float64) float64 {
	var sum float64
	for i := range v {
		d := float64(v[i]) - centroid[i]
		sum += d * d
	}
	return sum
}
