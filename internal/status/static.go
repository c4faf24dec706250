package status

import "context"

// StaticProvider serves the fixed demo figures. It backs the marketing site
// until a real CI/CD telemetry source implements Provider.
type StaticProvider struct{}

// NewStaticProvider creates a provider that always returns the demo snapshot.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Current implements the Provider interface. It never fails.
func (p *StaticProvider) Current(ctx context.Context) (Snapshot, error) {
	return Fallback(), nil
}
