package types

import "strings"

// Config holds backend selection and the snapshot path for a Store.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	DataFile string `json:"data_file" yaml:"data_file"`
}

// Supported backend names.
const (
	BackendSnapshot = "snapshot"
	BackendSQLite   = "sqlite"
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSnapshot: true,
	BackendSQLite:   true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}

// BackendForPath picks a backend from the snapshot path's extension:
// .db and .sqlite select the SQLite store, everything else the JSON
// snapshot store.
func BackendForPath(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".db") || strings.HasSuffix(lower, ".sqlite") {
		return BackendSQLite
	}
	return BackendSnapshot
}
