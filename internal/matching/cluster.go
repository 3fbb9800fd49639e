package matching

import (
	"fmt"
	"math/rand"

	"github.com/jonathan/interview-coach/internal/types"
)

// Clustering parameters. The seed is fixed so cluster assignments are
// reproducible for a given embedding set.
const (
	// MaxClusters is the default cap on the cluster count.
	MaxClusters = 5
	// ClusterSeed seeds centroid initialization.
	ClusterSeed = 42
	// maxIterations bounds Lloyd's algorithm.
	maxIterations = 100
)

// ClusterOptions control theme clustering.
type ClusterOptions struct {
	// Count requests an explicit cluster count. Zero selects the count
	// adaptively from the input size.
	Count int
	// MaxClusters caps both requested and adaptive counts. Zero uses the
	// package default.
	MaxClusters int
}

// DefaultClusterOptions returns adaptive clustering with the default cap.
func DefaultClusterOptions() ClusterOptions {
	return ClusterOptions{MaxClusters: MaxClusters}
}

// ClusterByTheme pools every accomplishment embedding across all roles and
// partitions them into theme clusters with k-means. An adaptive count is
// min(MaxClusters, N/2); an explicit count is likewise capped at
// MaxClusters and the vector count. Fewer than two clusters yields one
// trivial cluster containing everything. Cluster labels are synthetic
// ("cluster_0", ...); interpreting a cluster's theme is the caller's
// concern. Empty input returns an empty map.
func ClusterByTheme(blocks []types.RoleEmbeddingBlock, opts ClusterOptions) map[string][]types.ClusterMember {
	var vectors [][]float32
	var members []types.ClusterMember

	for _, block := range blocks {
		for i, vector := range block.Embeddings {
			if i >= len(block.Texts) {
				break
			}
			vectors = append(vectors, vector)
			members = append(members, types.ClusterMember{
				RoleTitle: block.RoleTitle,
				Company:   block.Company,
				Text:      block.Texts[i],
			})
		}
	}

	if len(vectors) == 0 {
		return map[string][]types.ClusterMember{}
	}

	maxCount := opts.MaxClusters
	if maxCount <= 0 {
		maxCount = MaxClusters
	}
	nClusters := opts.Count
	if nClusters <= 0 {
		nClusters = len(vectors) / 2
	}
	if nClusters > maxCount {
		nClusters = maxCount
	}
	if nClusters > len(vectors) {
		nClusters = len(vectors)
	}
	if nClusters < 2 {
		return map[string][]types.ClusterMember{"cluster_0": members}
	}

	assignments := kmeans(vectors, nClusters)

	clusters := make(map[string][]types.ClusterMember)
	for i, label := range assignments {
		key := fmt.Sprintf("cluster_%d", label)
		clusters[key] = append(clusters[key], members[i])
	}
	return clusters
}

// kmeans partitions vectors into k clusters with Lloyd's algorithm and a
// deterministic seed. All vectors are assumed to share one dimensionality.
func kmeans(vectors [][]float32, k int) []int {
	dim := len(vectors[0])
	rng := rand.New(rand.NewSource(ClusterSeed))

	// Initialize centroids from k distinct random vectors.
	centroids := make([][]float64, k)
	for i, idx := range rng.Perm(len(vectors))[:k] {
		centroids[i] = toFloat64(vectors[idx])
	}

	assignments := make([]int, len(vectors))
	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, vector := range vectors {
			best := nearestCentroid(vector, centroids)
			if best != assignments[i] {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// Recompute centroids; empty clusters keep their previous position.
		sums := make([][]float64, k)
		counts := make([]int, k)
		for i := range sums {
			sums[i] = make([]float64, dim)
		}
		for i, vector := range vectors {
			label := assignments[i]
			counts[label]++
			for d := 0; d < dim; d++ {
				sums[label][d] += float64(vector[d])
			}
		}
		for label := 0; label < k; label++ {
			if counts[label] == 0 {
				continue
			}
			for d := 0; d < dim; d++ {
				centroids[label][d] = sums[label][d] / float64(counts[label])
			}
		}
	}

	return assignments
}

// nearestCentroid returns the index of the centroid closest to the vector.
func nearestCentroid(vector []float32, centroids [][]float64) int {
	best := 0
	bestDist := squaredDistance(vector, centroids[0])
	for i := 1; i < len(centroids); i++ {
		if dist := squaredDistance(vector, centroids[i]); dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
