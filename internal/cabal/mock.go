package cabal

import (
	"context"
	"sync"

	"github.com/bonomali/sandman/internal/pkgdb"
)

// MockTool is a mock implementation of Tool for testing.
type MockTool struct {
	mu sync.RWMutex

	// Databases maps database dirs to the records Packages returns.
	Databases map[string][]pkgdb.Package

	// Errors maps operation names (sandbox-init, install, packages,
	// recache) to injected errors.
	Errors map[string]error

	// Initialized records dirs passed to SandboxInit, in order.
	Initialized []string

	// Installed records the packages requested per sandbox dir.
	Installed map[string][]string

	// Recached records dbDirs passed to Recache, in order.
	Recached []string

	// CallLog records all method calls for verification.
	CallLog []MockCall
}

// MockCall records a single method call on the mock.
type MockCall struct {
	Method string
	Args   []string
}

var _ Tool = (*MockTool)(nil)

// NewMockTool creates a MockTool with empty state.
func NewMockTool() *MockTool {
	return &MockTool{
		Databases: make(map[string][]pkgdb.Package),
		Errors:    make(map[string]error),
		Installed: make(map[string][]string),
	}
}

// SetError injects an error for the named operation.
func (m *MockTool) SetError(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors[op] = err
}

// AddDatabase registers the records Packages returns for dbDir.
func (m *MockTool) AddDatabase(dbDir string, packages ...pkgdb.Package) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Databases[dbDir] = append(m.Databases[dbDir], packages...)
}

// Name implements Tool.
func (m *MockTool) Name() string {
	return "cabal (mock)"
}

// SandboxInit implements Tool.
func (m *MockTool) SandboxInit(ctx context.Context, dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("SandboxInit", dir)
	if err := m.Errors["sandbox-init"]; err != nil {
		return err
	}
	m.Initialized = append(m.Initialized, dir)
	return nil
}

// Install implements Tool.
func (m *MockTool) Install(ctx context.Context, dir string, packages []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Install", append([]string{dir}, packages...)...)
	if err := m.Errors["install"]; err != nil {
		return err
	}
	m.Installed[dir] = append(m.Installed[dir], packages...)
	return nil
}

// Packages implements Tool.
func (m *MockTool) Packages(ctx context.Context, dbDir string) ([]pkgdb.Package, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Packages", dbDir)
	if err := m.Errors["packages"]; err != nil {
		return nil, err
	}
	records := make([]pkgdb.Package, len(m.Databases[dbDir]))
	copy(records, m.Databases[dbDir])
	return records, nil
}

// Recache implements Tool.
func (m *MockTool) Recache(ctx context.Context, dbDir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Recache", dbDir)
	if err := m.Errors["recache"]; err != nil {
		return err
	}
	m.Recached = append(m.Recached, dbDir)
	return nil
}

// GetCallsFor returns all recorded calls to the named method.
func (m *MockTool) GetCallsFor(method string) []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var calls []MockCall
	for _, c := range m.CallLog {
		if c.Method == method {
			calls = append(calls, c)
		}
	}
	return calls
}

// Reset clears all recorded state and injected errors.
func (m *MockTool) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Databases = make(map[string][]pkgdb.Package)
	m.Errors = make(map[string]error)
	m.Installed = make(map[string][]string)
	m.Initialized = nil
	m.Recached = nil
	m.CallLog = nil
}

// record appends a call to the log. Callers must hold mu.
func (m *MockTool) record(method string, args ...string) {
	m.CallLog = append(m.CallLog, MockCall{Method: method, Args: args})
}
