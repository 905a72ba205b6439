package ticket

import "context"

// ReferenceGenerator produces the human-facing ticket reference shown to
// clients on the confirmation page, e.g. "T-20250131-0042".
type ReferenceGenerator interface {
	Generate(ctx context.Context) (string, error)
}
