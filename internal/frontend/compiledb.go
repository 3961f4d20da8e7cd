// Package frontend is docgraph's concrete implementation of the
// "embedded compiler front-end" and "compilation database loader"
// collaborators that spec.md treats as external to the indexing core.
// It loads a compile_commands.json-shaped file and parses each
// translation unit's primary file with a tree-sitter C++ grammar,
// producing the declaration shapes internal/extract consumes.
package frontend

import (
	"encoding/json"
	"fmt"
	"os"
)

// Command is one compile_commands.json entry.
type Command struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Command   string   `json:"command,omitempty"`
	Arguments []string `json:"arguments,omitempty"`
}

// CompilationDatabase is the loaded, ordered list of compile commands.
type CompilationDatabase struct {
	commands []Command
}

// Commands returns every translation unit's compile command, in the
// order they appeared in the database file. This is the Go-native form
// of spec.md §6's getAllCompileCommands().
func (c *CompilationDatabase) Commands() []Command {
	return c.commands
}

// LoadCompilationDatabase reads and parses a compile_commands.json file.
// A missing or unparsable database is a fatal setup failure per
// spec.md §7.1: callers must not proceed to indexing on error.
func LoadCompilationDatabase(path string) (*CompilationDatabase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("frontend: read compile database %s: %w", path, err)
	}
	var cmds []Command
	if err := json.Unmarshal(data, &cmds); err != nil {
		return nil, fmt.Errorf("frontend: parse compile database %s: %w", path, err)
	}
	return &CompilationDatabase{commands: cmds}, nil
}
