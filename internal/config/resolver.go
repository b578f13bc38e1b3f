package config

import "errors"

var (
	ErrMissingQuery    = errors.New("didnt get a query string")
	ErrMissingFilename = errors.New("didnt get filename")
)

// Resolve builds a Config from the process argument list. args[0] is the program
// name and is skipped; the query and filename follow. Extra arguments are ignored.
func Resolve(args []string, caseInsensitive bool) (Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}
	if len(args) < 1 {
		return Config{}, ErrMissingQuery
	}
	if len(args) < 2 {
		return Config{}, ErrMissingFilename
	}
	return Config{
		Query:         args[0],
		Filename:      args[1],
		CaseSensitive: !caseInsensitive,
	}, nil
}

// CaseInsensitiveSet reports whether CaseInsensitiveEnv is present according to lookup.
// An empty value counts as present.
func CaseInsensitiveSet(lookup func(string) (string, bool)) bool {
	if lookup == nil {
		return false
	}
	_, ok := lookup(CaseInsensitiveEnv)
	return ok
}
