package dispatchers

import (
	"bytes"

	"github.com/gtdialog/gtdialog/internal/usage"
)

const defaultSuggestionsCount = 3

// Dispatch resolves args against the tree rooted at root. The first argument
// names a command; everything after it is scanned with the root flags plus
// the command's own flags.
func Dispatch(root *DispatchNode, args []string, streams Streams) (Resolution, error) {
	if len(args) == 0 {
		// No command: usage on stderr, exit 1.
		return Resolution{
			Node:     root,
			Flags:    NewParsedFlags(),
			Execute:  HelpAction(root, root, streams.Err, streams.styler()),
			ExitCode: 1,
		}, nil
	}

	first := args[0]

	switch first {
	case "help":
		return handleHelpCommand(root, args[1:], streams), nil
	case "--help", "-h":
		return Resolution{
			Node:    root,
			Flags:   NewParsedFlags(),
			Execute: HelpAction(root, root, streams.Out, streams.styler()),
		}, nil
	case "--version", "-v":
		return Resolution{
			Node:    root,
			Flags:   NewParsedFlags(),
			Execute: VersionAction(root, streams.Out),
		}, nil
	}

	node, ok := root.Children[first]
	if !ok || node.Action == nil {
		// The type listing follows the error, as for a bare invocation.
		var listing bytes.Buffer
		_ = HelpAction(root, root, &listing, streams.styler())(nil, nil)

		err := usage.UnknownType(first, SuggestTypes(first, root, defaultSuggestionsCount)...)
		err.Usage = listing.String()
		return Resolution{}, err
	}

	rest := args[1:]
	flags := Scan(rest, validFlagsForNode(node, root))

	if flags.Has("--help") {
		return Resolution{
			Node:    node,
			Args:    rest,
			Flags:   flags,
			Execute: HelpAction(node, root, streams.Out, streams.styler()),
		}, nil
	}

	return Resolution{
		Node:    node,
		Args:    rest,
		Flags:   flags,
		Execute: node.Action,
	}, nil
}

// handleHelpCommand serves "help [command]". Help goes to stdout and the
// exit code is 1, as it is for any invocation that shows no dialog.
func handleHelpCommand(root *DispatchNode, args []string, streams Streams) Resolution {
	target := root
	if len(args) > 0 {
		if node, ok := root.Children[args[0]]; ok {
			target = node
		}
	}
	return Resolution{
		Node:     target,
		Flags:    NewParsedFlags(),
		Execute:  HelpAction(target, root, streams.Out, streams.styler()),
		ExitCode: 1,
	}
}

func validFlagsForNode(node *DispatchNode, root *DispatchNode) []FlagDescriptor {
	valid := make([]FlagDescriptor, 0, len(root.Flags)+len(node.Flags))
	valid = append(valid, root.Flags...)
	valid = append(valid, node.Flags...)
	return valid
}
