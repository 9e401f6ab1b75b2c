package completions

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Shell is a shell completion scripts can be generated for.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ParseShell accepts a shell name or a path such as /bin/zsh.
func ParseShell(name string) (Shell, bool) {
	base := strings.ToLower(filepath.Base(name))
	for _, s := range Shells {
		if string(s) == base {
			return s, true
		}
	}
	return "", false
}

// RunningShell returns the login shell from $SHELL, or "" when it is not
// a supported one.
func RunningShell(getenv func(string) string) Shell {
	s, _ := ParseShell(getenv("SHELL"))
	return s
}

// Generate returns the completion script for shell.
func Generate(shell Shell, t Tree) (string, error) {
	switch shell {
	case ShellBash:
		return GenerateBash(t), nil
	case ShellZsh:
		return GenerateZsh(t), nil
	case ShellFish:
		return GenerateFish(t), nil
	}
	return "", fmt.Errorf("unsupported shell: %s", shell)
}

// SourceLine is the line that loads completions from a shell's rc file.
func SourceLine(shell Shell, program string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s --script)"`, program, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions fish --script | source`, program)
	}
	return ""
}

// RcFile returns the rc file for shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	}
	return ""
}

// AutoLoadPath returns the file shell loads completions for program from
// on its own, or "" when it has no such directory.
func AutoLoadPath(shell Shell, home, program string) string {
	if home == "" {
		return ""
	}
	switch shell {
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", program+".fish")
	case ShellBash:
		return filepath.Join(home, ".local", "share", "bash-completion", "completions", program)
	}
	return ""
}
