package ports

import "context"

// Transactor runs fn inside one storage transaction. Repository calls made
// with the context passed to fn join that transaction; the position
// renumbering operations rely on this to stay atomic.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
