// Package completions builds shell completion scripts from the command tree.
package completions

import (
	"sort"
	"strings"

	"github.com/gtdialog/gtdialog/internal/dispatchers"
)

// ValueKind says what a flag's value completes to.
type ValueKind int

const (
	ValueNone   ValueKind = iota // switch, takes no value
	ValueAny                     // free text, nothing to complete
	ValueFile                    // a file path
	ValueDir                     // a directory path
	ValueChoice                  // one of Choices
)

// CommandInfo is a command as the completion scripts see it.
type CommandInfo struct {
	Name    string
	Summary string
	Args    []string
	Flags   []FlagInfo
}

// FlagInfo is a flag as the completion scripts see it.
type FlagInfo struct {
	Names       []string
	Description string
	Value       ValueKind
	Choices     []string
}

// Tree is everything a completion script offers.
type Tree struct {
	Program  string
	Commands []CommandInfo // sorted by name
}

// ExtractCommands collects the runnable commands under root. Root flags
// are accepted after every command, so each command lists them too.
func ExtractCommands(root *dispatchers.DispatchNode) Tree {
	t := Tree{Program: root.Name}
	global := flagInfos(root.Flags)

	for _, node := range root.Children {
		if node.Action == nil {
			continue
		}
		t.Commands = append(t.Commands, CommandInfo{
			Name:    node.Name,
			Summary: node.Summary,
			Args:    node.Args,
			Flags:   append(flagInfos(node.Flags), global...),
		})
	}

	sort.Slice(t.Commands, func(i, j int) bool {
		return t.Commands[i].Name < t.Commands[j].Name
	})
	return t
}

// Find returns the command named name, or nil.
func (t Tree) Find(name string) *CommandInfo {
	for i := range t.Commands {
		if t.Commands[i].Name == name {
			return &t.Commands[i]
		}
	}
	return nil
}

// Names returns the command names in order.
func (t Tree) Names() []string {
	names := make([]string, len(t.Commands))
	for i, c := range t.Commands {
		names[i] = c.Name
	}
	return names
}

func flagInfos(flags []dispatchers.FlagDescriptor) []FlagInfo {
	out := make([]FlagInfo, 0, len(flags))
	for _, f := range flags {
		info := FlagInfo{Names: f.Names, Description: f.Description}
		info.Value, info.Choices = valueKind(f)
		out = append(out, info)
	}
	return out
}

// placeholders are value hints that name a type rather than a choice.
var placeholders = map[string]bool{"str": true, "int": true, "list": true, "indices": true}

func valueKind(f dispatchers.FlagDescriptor) (ValueKind, []string) {
	if f.Arity == dispatchers.ArityNone {
		return ValueNone, nil
	}
	switch f.ValueHint {
	case "path":
		return ValueFile, nil
	case "dir":
		return ValueDir, nil
	}
	if !strings.Contains(f.ValueHint, "|") || strings.Contains(f.ValueHint, " ") {
		return ValueAny, nil
	}
	choices := strings.Split(f.ValueHint, "|")
	for _, c := range choices {
		if placeholders[c] {
			return ValueAny, nil
		}
	}
	return ValueChoice, choices
}
