package memory

import "context"

// Diagnostics reporta el estado del backend in-memory para /test.
type Diagnostics struct{}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

func (d *Diagnostics) Kind() string {
	return "memory"
}

func (d *Diagnostics) DatabaseName() string {
	return "in-memory"
}

func (d *Diagnostics) Ping(ctx context.Context) error {
	return nil
}

func (d *Diagnostics) Collections(ctx context.Context) ([]string, error) {
	return []string{"beeproduct", "order"}, nil
}
