// Because it is a testing package, no errors are returned,
// all problems cause a panic.

package testing_tool

import (
	"fmt"

	"github.com/espsim/edgeplan/internal/model"
)

// MustPlace runs a strategy's Place method value and checks the
// full-coverage invariant before handing the placement back.
func MustPlace(topology *model.Topology, place func(int) (*model.Placement, error), serverCount int) *model.Placement {
	placement, err := place(serverCount)
	if err != nil {
		panic(err)
	}

	if err := placement.Validate(topology.Stations); err != nil {
		panic(fmt.Errorf("placement broke the coverage invariant: %w", err))
	}

	return placement
}
