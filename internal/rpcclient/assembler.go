package rpcclient

import (
	"context"
	"encoding/json"

	"github.com/kbaseapps/assembly-params/pkg/types/gaprice"
	"github.com/kbaseapps/assembly-params/pkg/types/spades"
	"github.com/kbaseapps/assembly-params/pkg/types/unicycler"
)

// Service method names.
const (
	MethodRunSPAdes          = "kb_SPAdes.run_SPAdes"
	MethodRunHybridSPAdes    = "kb_SPAdes.run_HybridSPAdes"
	MethodRunMetaSPAdes      = "kb_SPAdes.run_metaSPAdes"
	MethodEstimateMetaSPAdes = "kb_SPAdes.estimate_metaSPAdes_requirements"
	MethodRunUnicycler       = "kb_unicycler.run_unicycler"
	MethodRunLegacySPAdes    = "gaprice_SPAdes.run_SPAdes"
)

func (c *Client) RunSPAdes(ctx context.Context, p *spades.SPAdesParams) (*spades.AssemblyOutput, error) {
	return callOne[spades.AssemblyOutput](ctx, c, MethodRunSPAdes, p)
}

func (c *Client) RunHybridSPAdes(ctx context.Context, p *spades.HybridSPAdesParams) (*spades.AssemblyOutput, error) {
	return callOne[spades.AssemblyOutput](ctx, c, MethodRunHybridSPAdes, p)
}

func (c *Client) RunMetaSPAdes(ctx context.Context, p *spades.SPAdesParams) (*spades.AssemblyOutput, error) {
	return callOne[spades.AssemblyOutput](ctx, c, MethodRunMetaSPAdes, p)
}

func (c *Client) EstimateMetaSPAdesRequirements(ctx context.Context, p *spades.MetaSPAdesEstimatorParams) (*spades.MetaSPAdesEstimate, error) {
	return callOne[spades.MetaSPAdesEstimate](ctx, c, MethodEstimateMetaSPAdes, p)
}

func (c *Client) RunUnicycler(ctx context.Context, p *unicycler.UnicyclerParams) (*spades.AssemblyOutput, error) {
	return callOne[spades.AssemblyOutput](ctx, c, MethodRunUnicycler, p)
}

func (c *Client) RunLegacySPAdes(ctx context.Context, p *gaprice.SPAdesParams) (*spades.AssemblyOutput, error) {
	return callOne[spades.AssemblyOutput](ctx, c, MethodRunLegacySPAdes, p)
}

// Submit sends an already encoded record to any method and returns the raw
// first result.
func (c *Client) Submit(ctx context.Context, method string, record json.RawMessage) (json.RawMessage, error) {
	out, err := callOne[json.RawMessage](ctx, c, method, record)
	if err != nil {
		return nil, err
	}
	return *out, nil
}
