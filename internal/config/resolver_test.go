package config

import (
	"errors"
	"os"
	"testing"
)

func TestResolve_OK(t *testing.T) {
	cfg, err := Resolve([]string{"minigrep", "duct", "poem.txt"}, false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Query != "duct" || cfg.Filename != "poem.txt" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.CaseSensitive {
		t.Fatalf("want case-sensitive when the toggle is absent")
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	cfg, err := Resolve([]string{"minigrep", "q", "f"}, true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.CaseSensitive {
		t.Fatalf("want case-insensitive when the toggle is set")
	}
}

func TestResolve_SkipsProgramName(t *testing.T) {
	// the program name must never be taken as the query
	_, err := Resolve([]string{"minigrep", "only-query"}, false)
	if !errors.Is(err, ErrMissingFilename) {
		t.Fatalf("want ErrMissingFilename, got %v", err)
	}
}

func TestResolve_MissingQuery(t *testing.T) {
	for _, args := range [][]string{nil, {}, {"minigrep"}} {
		_, err := Resolve(args, false)
		if !errors.Is(err, ErrMissingQuery) {
			t.Fatalf("args %q: want ErrMissingQuery, got %v", args, err)
		}
	}
}

func TestResolve_ExtraArgsIgnored(t *testing.T) {
	cfg, err := Resolve([]string{"minigrep", "q", "f", "extra"}, false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Filename != "f" {
		t.Fatalf("unexpected filename: %s", cfg.Filename)
	}
}

func TestResolve_EmptyQueryIsPresent(t *testing.T) {
	cfg, err := Resolve([]string{"minigrep", "", "f"}, false)
	if err != nil {
		t.Fatalf("empty query is still an argument: %v", err)
	}
	if cfg.Query != "" {
		t.Fatalf("unexpected query: %q", cfg.Query)
	}
}

func TestCaseInsensitiveSet(t *testing.T) {
	t.Setenv(CaseInsensitiveEnv, "")
	if !CaseInsensitiveSet(os.LookupEnv) {
		t.Fatalf("empty value should count as set")
	}
	unset := func(string) (string, bool) { return "", false }
	if CaseInsensitiveSet(unset) {
		t.Fatalf("unset variable reported as set")
	}
	if CaseInsensitiveSet(nil) {
		t.Fatalf("nil lookup reported as set")
	}
}

func TestResolve_ErrorMessages(t *testing.T) {
	if ErrMissingQuery.Error() != "didnt get a query string" {
		t.Fatalf("unexpected message: %q", ErrMissingQuery.Error())
	}
	if ErrMissingFilename.Error() != "didnt get filename" {
		t.Fatalf("unexpected message: %q", ErrMissingFilename.Error())
	}
}
