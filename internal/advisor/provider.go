package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Provider produces a directive for a combat snapshot.
type Provider interface {
	Advise(ctx context.Context, req Request) (Directive, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, req Request) (Directive, error)

// Advise calls f.
func (f ProviderFunc) Advise(ctx context.Context, req Request) (Directive, error) {
	return f(ctx, req)
}

// Heuristic is the offline provider: it reads the snapshot and picks the
// buff that addresses the worst problem.
type Heuristic struct{}

// Advise implements Provider.
func (Heuristic) Advise(_ context.Context, req Request) (Directive, error) {
	switch {
	case req.Integrity < 40:
		return Directive{"REINFORCE_COHERENCE", BuffCoherenceBoost, "Integrity critical. Rerouting lattice energy to the core."}, nil
	case req.Enemies >= 8:
		return Directive{"PURGE_PERIMETER", BuffFieldClear, "Hostile density exceeds tolerance. Disintegrating the near field."}, nil
	case req.Charge < 50:
		return Directive{"PRIME_SINGULARITY", BuffEnergyRefill, "Special capacitor primed. Quantum purge available."}, nil
	default:
		return Directive{"SYNCHRONIZE_DRIVE", BuffSpeedSync, "Thrust harmonics aligned. Drive output boosted."}, nil
	}
}

// HTTPProvider posts the snapshot as JSON and expects a Directive back.
type HTTPProvider struct {
	Endpoint string
	Client   *http.Client
}

// Advise implements Provider.
func (p HTTPProvider) Advise(ctx context.Context, req Request) (Directive, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Directive{}, fmt.Errorf("advisor: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Directive{}, fmt.Errorf("advisor: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return Directive{}, fmt.Errorf("advisor: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return Directive{}, fmt.Errorf("advisor: status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var d Directive
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&d); err != nil {
		return Directive{}, fmt.Errorf("advisor: decode response: %w", err)
	}
	return d, nil
}
