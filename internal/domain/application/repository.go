package application

import "context"

type Repository interface {
	Create(ctx context.Context, a Application) error
	// ListByEmail and ListAll return newest submissions first.
	ListByEmail(ctx context.Context, email string) ([]Application, error)
	ListAll(ctx context.Context) ([]Application, error)
}
