package dispatchers

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gtdialog/gtdialog/internal/domain"
)

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(s domain.Styler, usage string) string {
	// Find where the command ends (first [ or <)
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return s.Info(cmd)
	}
	return s.Info(cmd) + " " + s.Muted(rest)
}

func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
		return
	}

	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

// sortByOrder sorts nodes in the order they were added to their parent.
func sortByOrder(nodes []*DispatchNode) {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].order != nodes[j].order {
			return nodes[i].order < nodes[j].order
		}
		return nodes[i].Name < nodes[j].Name
	})
}

func writeFlags(out *bytes.Buffer, s domain.Styler, title string, flags []FlagDescriptor) {
	if len(flags) == 0 {
		return
	}
	out.WriteString(s.Header(title))
	out.WriteString("\n")
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name = name + " " + f.ValueHint
		}
		fmt.Fprintf(out, "   %s  %s\n", s.Info(fmt.Sprintf("%-28s", name)), f.Description)
	}
	out.WriteString("\n")
}

// writeIndented writes a multi-line block with every line indented.
func writeIndented(out *bytes.Buffer, s domain.Styler, title, text string) {
	if text == "" {
		return
	}
	out.WriteString(s.Header(title))
	out.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			out.WriteString("\n")
			continue
		}
		out.WriteString("   ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	out.WriteString("\n")
}

// HelpAction generates help output for a command node and writes it to w.
func HelpAction(node *DispatchNode, root *DispatchNode, w io.Writer, s domain.Styler) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		var out bytes.Buffer
		name := root.Name

		if node == root {
			out.WriteString(name)
			out.WriteString(" - ")
			out.WriteString(node.Summary)
			out.WriteString("\n\n")

			out.WriteString(s.Header("USAGE"))
			out.WriteString("\n   ")
			out.WriteString(formatUsage(s, node.Usage))
			out.WriteString("\n\n")

			if node.Description != "" {
				out.WriteString(node.Description)
				out.WriteString("\n\n")
			}

			grouped := make(map[CommandCategory][]*DispatchNode)

			var leaves []*DispatchNode
			for _, child := range root.Children {
				collectLeafCommands(child, &leaves)
			}

			for _, cmd := range leaves {
				grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
			}

			for _, cat := range categoryOrder {
				cmds := grouped[cat]
				if len(cmds) == 0 {
					continue
				}

				out.WriteString(s.Header(cat.String()))
				out.WriteString("\n")

				sortByOrder(cmds)
				for _, cmd := range cmds {
					displayName := strings.Join(cmd.Path[1:], " ")
					fmt.Fprintf(&out, "   %s  %s\n", s.Info(fmt.Sprintf("%-26s", displayName)), cmd.Summary)
				}
				out.WriteString("\n")
			}

			writeFlags(&out, s, "GLOBAL OPTIONS", root.Flags)

			fmt.Fprintf(&out, "See '%s help <type>' for the options and output of a dialog type.\n", name)
		} else {
			out.WriteString(strings.Join(node.Path, " "))
			if node.Summary != "" {
				out.WriteString(" - ")
				out.WriteString(node.Summary)
			}
			out.WriteString("\n\n")

			out.WriteString(s.Header("USAGE"))
			out.WriteString("\n   ")
			out.WriteString(formatUsage(s, node.Usage))
			out.WriteString("\n\n")

			if node.Description != "" {
				out.WriteString(node.Description)
				out.WriteString("\n\n")
			}

			writeFlags(&out, s, "OPTIONS", node.Flags)
			writeFlags(&out, s, "GLOBAL OPTIONS", root.Flags)
			writeIndented(&out, s, "OUTPUT", node.Returns)
			writeIndented(&out, s, "EXAMPLE", node.Example)

			fmt.Fprintf(&out, "See '%s help' for the list of dialog types.\n", name)
		}

		_, err := w.Write(out.Bytes())
		return err
	}
}

// VersionAction prints the program name and version.
func VersionAction(root *DispatchNode, w io.Writer) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		_, err := fmt.Fprintf(w, "%s %s\n", root.Name, root.Version)
		return err
	}
}
