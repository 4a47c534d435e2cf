package alg

import (
	"fmt"
	"math"
	"sort"

	"github.com/espsim/edgeplan/internal/config"
	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/internal/utils"
	"gonum.org/v1/gonum/mat"
)

// ClusterFn partitions 2-D points into k clusters, returning the cluster
// centers and a center index per point.
type ClusterFn func(points []*mat.VecDense, k, iterations int, seed int64) (centroids []*mat.VecDense, labels []int, err error)

// KMeans is Lloyd's algorithm with point-sampled initialization. Returns
// ErrInsufficientDiversity when fewer than k distinct positions exist, so k
// initial centers can always be told apart.
func KMeans(points []*mat.VecDense, k, iterations int, seed int64) ([]*mat.VecDense, []int, error) {
	distinct := utils.SliceToMap(points, func(p *mat.VecDense) [2]float64 {
		return [2]float64{p.AtVec(0), p.AtVec(1)}
	})
	if k > len(distinct) {
		return nil, nil, fmt.Errorf(
			"%w: requested %d clusters over %d distinct positions",
			ErrInsufficientDiversity, k, len(distinct),
		)
	}

	positions := make([][2]float64, 0, len(distinct))
	for position := range distinct {
		positions = append(positions, position)
	}
	// map order is not reproducible, the sample below has to be, so sort first
	sort.Slice(positions, func(i, j int) bool {
		if positions[i][0] != positions[j][0] {
			return positions[i][0] < positions[j][0]
		}
		return positions[i][1] < positions[j][1]
	})

	rng := newRand(seed)
	centroids := make([]*mat.VecDense, 0, k)
	for _, idx := range rng.Perm(len(positions))[:k] {
		centroids = append(centroids, mat.NewVecDense(2, []float64{positions[idx][0], positions[idx][1]}))
	}

	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < iterations; iter++ {
		changed := false
		for i, point := range points {
			closest := 0
			closestDist := math.Inf(1)
			for j, centroid := range centroids {
				if d := utils.SqDist(point, centroid); d < closestDist {
					closest = j
					closestDist = d
				}
			}

			if labels[i] != closest {
				labels[i] = closest
				changed = true
			}
		}

		if !changed {
			log.Debug().Msgf("kmeans converged after %d iterations", iter)
			break
		}

		sums := make([]*mat.VecDense, k)
		counts := make([]int, k)
		for j := range sums {
			sums[j] = mat.NewVecDense(2, nil)
		}
		for i, point := range points {
			utils.SAddVec(sums[labels[i]], point)
			counts[labels[i]]++
		}

		// clusters that lost every point keep their previous center
		for j := range centroids {
			if counts[j] == 0 {
				continue
			}
			centroids[j] = utils.ScaleVec(1/float64(counts[j]), sums[j])
		}
	}

	return centroids, labels, nil
}

// KMeansPlacement sites servers on cluster centers of the station
// coordinates. Centers are free coordinates, never co-located, and stations
// follow their cluster label instead of the generic nearest assignment.
type KMeansPlacement struct {
	strategyState

	Seed       int64
	Iterations int
	Cluster    ClusterFn
}

func NewKMeansPlacement(topology *model.Topology) *KMeansPlacement {
	return &KMeansPlacement{
		strategyState: newStrategyState(topology),
		Seed:          config.PlannerGeneralConfig.KMeansSeed,
		Iterations:    config.PlannerGeneralConfig.KMeansIterations,
		Cluster:       KMeans,
	}
}

func (p *KMeansPlacement) Name() string { return "kmeans" }

func (p *KMeansPlacement) Place(serverCount int) (*model.Placement, error) {
	p.begin(p.Name(), serverCount)
	placement, err := p.place(serverCount)
	p.finish(p.Name(), placement, err)

	return placement, err
}

func (p *KMeansPlacement) place(serverCount int) (*model.Placement, error) {
	if serverCount < 1 {
		return nil, fmt.Errorf("%w: requested %d edge servers", ErrInvalidServerCount, serverCount)
	}

	stations := p.topology.Stations
	points := make([]*mat.VecDense, len(stations))
	for i, station := range stations {
		points[i] = mat.NewVecDense(2, []float64{station.Latitude, station.Longitude})
	}

	iterations := p.Iterations
	if iterations <= 0 {
		iterations = config.DefaultKMeansIterations
	}

	centroids, labels, err := p.Cluster(points, serverCount, iterations, p.Seed)
	if err != nil {
		return nil, err
	}

	servers := make([]*model.EdgeServer, len(centroids))
	for j, centroid := range centroids {
		servers[j] = &model.EdgeServer{
			Id:        j,
			Latitude:  centroid.AtVec(0),
			Longitude: centroid.AtVec(1),
		}
	}

	for i, station := range stations {
		if labels[i] < 0 || labels[i] >= len(servers) {
			return nil, fmt.Errorf("clustering returned label %d for station %d", labels[i], station.Id)
		}

		server := servers[labels[i]]
		server.Assigned = append(server.Assigned, station)
		server.Workload += station.Workload
	}

	return model.NewPlacement(servers), nil
}
