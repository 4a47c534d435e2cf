package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/espsim/edgeplan/alg"
	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/logging"
	"github.com/espsim/edgeplan/statistics"
)

var log = logging.Get()

// Client hands a facility model to the external MILP service and turns the
// response into a FacilitySolution. Solve satisfies alg.SolverFn, the exact
// strategy owns the deadline through ctx.
type Client struct {
	Address string

	httpClient *http.Client
}

func NewClient(address string) *Client {
	return &Client{
		Address:    address,
		httpClient: &http.Client{},
	}
}

func (c *Client) Solve(ctx context.Context, facilityModel *model.FacilityModel) (*model.FacilitySolution, error) {
	body, err := json.Marshal(facilityModel)
	if err != nil {
		return nil, fmt.Errorf("could not marshal the facility model: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Address+"/solve", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")

	statistics.Change("solver invocations", 1)

	response, err := c.httpClient.Do(request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s did not answer in time", alg.ErrSolverTimeout, c.Address)
		}
		return nil, fmt.Errorf("could not reach the solver at %s: %w", c.Address, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("solver answered %s", response.Status)
	}

	var results SolverResults
	if err := json.NewDecoder(response.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("could not decode the solver response: %w", err)
	}

	log.Debug().Msgf("solver finished with status %s after %fs", results.SolverStatusName, results.SolverWalltime)

	switch results.SolverStatusName {
	case "OPTIMAL", "FEASIBLE":
		return &model.FacilitySolution{
			OpenSites:  results.OpenSites,
			Assignment: results.Assignment,
			Objective:  results.ObjectiveValue,
			Walltime:   results.SolverWalltime,
		}, nil
	case "INFEASIBLE":
		return nil, fmt.Errorf("%w: no way to open %d sites under the model", alg.ErrSolverInfeasible, facilityModel.OpenCount)
	default:
		return nil, fmt.Errorf("solver finished with status %s", results.SolverStatusName)
	}
}
