package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "JTE0001"
	Title string `json:"title"` // short human title e.g., "undeclared identifier"
	Help  string `json:"help"`
}

// Registry maps a domain ("lexer", "parser", "type") to its keyed entries.
type Registry map[string]map[string]CodeEntry

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			return
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key).
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	ce, ok := reg[domain][key]
	return ce, ok
}

// MustLookup returns the catalog entry if found; otherwise a placeholder
// built from defaultID and defaultTitle.
func MustLookup(domain, key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := Lookup(domain, key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}

// Help returns the catalog help text for a diagnostic code, if any.
func Help(code string) string {
	if code == "" || load() != nil {
		return ""
	}
	for _, entries := range reg {
		for _, ce := range entries {
			if ce.ID == code {
				return ce.Help
			}
		}
	}
	return ""
}
