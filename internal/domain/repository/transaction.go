package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction, so multi-step operations read and write the same snapshot.
type RepositoryFactory interface {
	UserRepo() UserRepository
}

// TransactionManager runs a unit of work inside one database transaction.
// Registration uses it so the duplicate-email lookup and the insert commit
// or roll back together.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
