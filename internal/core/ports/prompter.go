package ports

import (
	"context"

	"go.trai.ch/bump/internal/core/domain"
)

// Prompter asks the user for the decisions a bump run cannot infer.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Interactive reports whether the prompter can reach a user.
	Interactive() bool

	// SelectIdentifier picks the prerelease identifier. The empty string is
	// always offered first.
	SelectIdentifier(ctx context.Context, identifiers []string) (string, error)

	// SelectVersion picks one of choices or a custom version.
	SelectVersion(ctx context.Context, current string, choices []domain.VersionChoice) (string, error)

	// SelectPackages picks the packages to force when nothing was affected.
	SelectPackages(ctx context.Context, names []string) ([]string, error)
}
