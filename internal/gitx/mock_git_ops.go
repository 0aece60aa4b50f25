package gitx

import "relver/internal/core"

// MockGitOperations is a mock implementation of core.GitOperations for testing.
type MockGitOperations struct {
	DescribeFn       func(matchPattern string, abbrev int) (string, error)
	DiffIndexNamesFn func() (string, error)
	IsShallowFn      func() (bool, error)
	FetchUnshallowFn func() error

	// DescribeCalls counts Describe invocations, for asserting that a
	// short-circuited resolution never reached git.
	DescribeCalls int
}

// Verify MockGitOperations implements core.GitOperations.
var _ core.GitOperations = (*MockGitOperations)(nil)

// Describe implements core.GitOperations.
func (m *MockGitOperations) Describe(matchPattern string, abbrev int) (string, error) {
	m.DescribeCalls++
	if m.DescribeFn != nil {
		return m.DescribeFn(matchPattern, abbrev)
	}
	return "", nil
}

// DiffIndexNames implements core.GitOperations.
func (m *MockGitOperations) DiffIndexNames() (string, error) {
	if m.DiffIndexNamesFn != nil {
		return m.DiffIndexNamesFn()
	}
	return "", nil
}

// IsShallow implements core.GitOperations.
func (m *MockGitOperations) IsShallow() (bool, error) {
	if m.IsShallowFn != nil {
		return m.IsShallowFn()
	}
	return false, nil
}

// FetchUnshallow implements core.GitOperations.
func (m *MockGitOperations) FetchUnshallow() error {
	if m.FetchUnshallowFn != nil {
		return m.FetchUnshallowFn()
	}
	return nil
}
