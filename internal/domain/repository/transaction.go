package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it's
	// committed. All repository operations within the function use the same
	// database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so that multi-step writes (profile plus skill set) commit or
// roll back as one unit.
type RepositoryFactory interface {
	// NewCandidateProfileRepository returns a CandidateProfileRepository bound to the current transaction.
	NewCandidateProfileRepository() CandidateProfileRepository

	// NewSkillRepository returns a SkillRepository bound to the current transaction.
	NewSkillRepository() SkillRepository
}
