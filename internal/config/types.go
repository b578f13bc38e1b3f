package config

// CaseInsensitiveEnv is the environment variable whose presence selects
// case-insensitive matching. Its value is ignored.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// Config is the resolved invocation. It is built once by Resolve and never mutated.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}
