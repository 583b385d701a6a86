// Package completions generates shell completion scripts for the commands
// registered on the router.
package completions

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Shell names a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// Valid reports whether s is a supported shell.
func (s Shell) Valid() bool {
	return slices.Contains(Shells, s)
}

// RunningShell guesses the user's shell from $SHELL. It returns "" when
// the shell is unknown.
func RunningShell() Shell {
	s := Shell(filepath.Base(os.Getenv("SHELL")))
	if s.Valid() {
		return s
	}
	return ""
}

// CommandInfo is one completable command. Routes sharing a name are merged
// into a single CommandInfo.
type CommandInfo struct {
	Name    string
	Summary string
	Options []string
	Flags   []string
}

// Merge folds commands with the same name together, keeping the first
// summary and the order in which names first appear.
func Merge(commands []CommandInfo) []CommandInfo {
	var out []CommandInfo
	index := map[string]int{}

	for _, c := range commands {
		i, ok := index[c.Name]
		if !ok {
			index[c.Name] = len(out)
			out = append(out, CommandInfo{Name: c.Name, Summary: c.Summary})
			i = len(out) - 1
		}
		out[i].Options = union(out[i].Options, c.Options)
		out[i].Flags = union(out[i].Flags, c.Flags)
	}
	return out
}

func union(a, b []string) []string {
	for _, s := range b {
		if !slices.Contains(a, s) {
			a = append(a, s)
		}
	}
	return a
}

// Generate returns the completion script for shell.
func Generate(shell Shell, bin string, commands []CommandInfo) (string, error) {
	commands = Merge(commands)

	switch shell {
	case ShellBash:
		return GenerateBash(bin, commands), nil
	case ShellZsh:
		return GenerateZsh(bin, commands), nil
	case ShellFish:
		return GenerateFish(bin, commands), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (use bash, zsh, or fish)", shell)
	}
}
