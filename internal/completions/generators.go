package completions

import (
	"fmt"
	"sort"
	"strings"
)

// helpCommand is dispatched before the command tree, so it is not a node.
const helpCommand = "help"

const helpSummary = "Show help for a dialog type"

// topWords are the words completed right after the program name.
func topWords(t Tree) []string {
	words := append([]string{helpCommand}, t.Names()...)
	return append(words, "--help", "--version")
}

func funcName(program string) string {
	return "_" + strings.NewReplacer("-", "_", ".", "_").Replace(program)
}

func flagWords(c CommandInfo) []string {
	var words []string
	words = append(words, c.Args...)
	for _, f := range c.Flags {
		words = append(words, f.Names...)
	}
	return words
}

// valueCases groups flags that take a value by how the value completes,
// keyed by the completion action. The first kind seen for a name wins.
func valueCases(t Tree, action func(FlagInfo) string) map[string][]string {
	seen := make(map[string]bool)
	cases := make(map[string][]string)
	for _, c := range t.Commands {
		for _, f := range c.Flags {
			if f.Value == ValueNone || f.Value == ValueAny {
				continue
			}
			for _, name := range f.Names {
				if seen[name] {
					continue
				}
				seen[name] = true
				a := action(f)
				cases[a] = append(cases[a], name)
			}
		}
	}
	return cases
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GenerateBash returns a bash completion script.
func GenerateBash(t Tree) string {
	var b strings.Builder
	fn := funcName(t.Program) + "_completions"

	fmt.Fprintf(&b, "# %s bash completion script\n\n", t.Program)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur prev words\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(topWords(t), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	cases := valueCases(t, func(f FlagInfo) string {
		switch f.Value {
		case ValueFile:
			return "compgen -f -- \"$cur\""
		case ValueDir:
			return "compgen -d -- \"$cur\""
		}
		return fmt.Sprintf("compgen -W \"%s\" -- \"$cur\"", strings.Join(f.Choices, " "))
	})
	if len(cases) > 0 {
		b.WriteString("    case \"$prev\" in\n")
		for _, action := range sortedKeys(cases) {
			fmt.Fprintf(&b, "        %s)\n", strings.Join(cases[action], "|"))
			fmt.Fprintf(&b, "            COMPREPLY=($(%s))\n", action)
			b.WriteString("            return\n")
			b.WriteString("            ;;\n")
		}
		b.WriteString("    esac\n\n")
	}

	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	fmt.Fprintf(&b, "        %s)\n", helpCommand)
	fmt.Fprintf(&b, "            words=\"%s\"\n", strings.Join(t.Names(), " "))
	b.WriteString("            ;;\n")
	for _, c := range t.Commands {
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            words=\"%s\"\n", strings.Join(flagWords(c), " "))
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("    COMPREPLY=($(compgen -W \"$words\" -- \"$cur\"))\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "complete -F %s %s\n", fn, t.Program)
	return b.String()
}

// zshDescribe escapes text for a 'name:description' entry of _describe.
func zshDescribe(s string) string {
	return strings.NewReplacer(":", `\:`, "'", `'\''`).Replace(s)
}

// zshOption escapes text for the [description] part of an _arguments spec.
func zshOption(s string) string {
	return strings.NewReplacer("[", `\[`, "]", `\]`, "'", `'\''`).Replace(s)
}

func zshArgument(name string, f FlagInfo) string {
	spec := name + "[" + zshOption(f.Description) + "]"
	switch f.Value {
	case ValueAny:
		spec += ":value: "
	case ValueFile:
		spec += ":file:_files"
	case ValueDir:
		spec += ":directory:_files -/"
	case ValueChoice:
		spec += ":value:(" + strings.Join(f.Choices, " ") + ")"
	}
	return "'" + spec + "'"
}

// GenerateZsh returns a zsh completion script.
func GenerateZsh(t Tree) string {
	var b strings.Builder
	fn := funcName(t.Program)

	fmt.Fprintf(&b, "#compdef %s\n\n", t.Program)

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	fmt.Fprintf(&b, "        '%s:%s'\n", helpCommand, zshDescribe(helpSummary))
	for _, c := range t.Commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshDescribe(c.Summary))
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	fmt.Fprintf(&b, "        %s_commands\n", fn)
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=$words[2]\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case $cmd in\n")
	fmt.Fprintf(&b, "        %s)\n", helpCommand)
	fmt.Fprintf(&b, "            _values 'type' %s\n", strings.Join(t.Names(), " "))
	b.WriteString("            ;;\n")
	for _, c := range t.Commands {
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		b.WriteString("            _arguments")
		for _, f := range c.Flags {
			for _, name := range f.Names {
				fmt.Fprintf(&b, " \\\n                %s", zshArgument(name, f))
			}
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, " \\\n                '1:argument:(%s)'", strings.Join(c.Args, " "))
		}
		b.WriteString("\n            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s \"$@\"\n", fn)
	return b.String()
}

func fishQuote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s) + "'"
}

func fishFlag(program, cond string, name string, f FlagInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "complete -c %s -n %s", program, fishQuote(cond))
	if strings.HasPrefix(name, "--") {
		fmt.Fprintf(&b, " -l %s", strings.TrimPrefix(name, "--"))
	} else {
		fmt.Fprintf(&b, " -s %s", strings.TrimPrefix(name, "-"))
	}
	switch f.Value {
	case ValueAny:
		b.WriteString(" -x")
	case ValueFile:
		b.WriteString(" -r -F")
	case ValueDir:
		b.WriteString(" -x -a '(__fish_complete_directories)'")
	case ValueChoice:
		fmt.Fprintf(&b, " -x -a %s", fishQuote(strings.Join(f.Choices, " ")))
	}
	if f.Description != "" {
		fmt.Fprintf(&b, " -d %s", fishQuote(f.Description))
	}
	return b.String()
}

// GenerateFish returns a fish completion script.
func GenerateFish(t Tree) string {
	var b strings.Builder
	p := t.Program

	fmt.Fprintf(&b, "# %s fish completion script\n\n", p)
	fmt.Fprintf(&b, "complete -c %s -f\n", p)
	fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a %s -d %s\n", p, helpCommand, fishQuote(helpSummary))
	for _, c := range t.Commands {
		fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a %s -d %s\n", p, c.Name, fishQuote(c.Summary))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s' -a %s\n", p, helpCommand, fishQuote(strings.Join(t.Names(), " ")))
	for _, c := range t.Commands {
		cond := "__fish_seen_subcommand_from " + c.Name
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c %s -n %s -a %s\n", p, fishQuote(cond), fishQuote(strings.Join(c.Args, " ")))
		}
		for _, f := range c.Flags {
			for _, name := range f.Names {
				b.WriteString(fishFlag(p, cond, name, f))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
