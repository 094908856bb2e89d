// Package prompts embeds the LLM prompt templates and exposes lookup plus
// placeholder substitution over them.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// Parsed prompt files keyed by filename. The files are small and immutable,
// so each one is decoded once and kept for the life of the process.
var (
	cacheMu sync.RWMutex
	cache   = make(map[string]map[string]string)
)

// Get looks up the prompt stored under key in the named embedded file. The
// name is bare, with no directory component (e.g. "generation.json").
func Get(filename, key string) (string, error) {
	table, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	prompt, ok := table[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet is Get for prompts the program cannot run without; a missing file
// or key panics.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format substitutes {{.Key}} placeholders with the matching entries of data.
// Placeholders with no entry are left in place.
func Format(template string, data map[string]string) string {
	out := template
	for key, value := range data {
		out = strings.ReplaceAll(out, "{{."+key+"}}", value)
	}
	return out
}

// loadFile decodes the named embedded file, memoizing the result.
func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	table, ok := cache[filename]
	cacheMu.RUnlock()
	if ok {
		return table, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	table = make(map[string]string)
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = table
	cacheMu.Unlock()

	return table, nil
}
