package ports

// CompanionPatcher rewrites the version attributes of an XML companion manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=companion.go -destination=mocks/mock_companion.go -package=mocks
type CompanionPatcher interface {
	// Patch sets version in the file at path. It reports false without error
	// when the file does not exist.
	Patch(path, version string) (bool, error)
}
