package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gtdialog/gtdialog/internal/actions/show"
	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/dispatchers"
)

type recordingBackend struct {
	seen *dialog.Options
}

func (b *recordingBackend) Name() string { return "recording" }

func (b *recordingBackend) Run(_ context.Context, o *dialog.Options) (dialog.Result, error) {
	b.seen = o
	return dialog.Result{Code: 1}, nil
}

func testDeps(b dialog.Backend, out *strings.Builder) show.Deps {
	deps := show.DefaultDeps(func(string) (dialog.Backend, error) { return b, nil })
	deps.Printf = func(format string, a ...any) (int, error) {
		return fmt.Fprintf(out, format, a...)
	}
	return deps
}

func TestBuildTree_ReturnsRoot(t *testing.T) {
	root := BuildTree(show.Deps{})

	require.NotNil(t, root)
	require.Equal(t, "gtdialog", root.Name)
	require.NotEmpty(t, root.Version)
}

func TestBuildTree_OneCommandPerType(t *testing.T) {
	root := BuildTree(show.Deps{})

	require.Len(t, root.Children, len(dialog.Types())+1)
	for _, typ := range dialog.Types() {
		node, found := root.Children[typ.String()]
		require.True(t, found, "expected command '%s' not found", typ)
		require.NotNil(t, node.Action)
		require.NotEmpty(t, node.Summary)
		require.NotEmpty(t, node.Returns)
		require.NotEqual(t, dispatchers.CategoryUncategorized, node.Category)
	}
}

func TestBuildTree_FlagsScopedToType(t *testing.T) {
	root := BuildTree(show.Deps{})

	hasFlag := func(node *dispatchers.DispatchNode, name string) bool {
		for _, f := range node.Flags {
			if f.Name() == name {
				return true
			}
		}
		return false
	}

	require.True(t, hasFlag(root.Children["progressbar"], "--stoppable"))
	require.False(t, hasFlag(root.Children["msgbox"], "--stoppable"))
	require.True(t, hasFlag(root.Children["msgbox"], "--button3"))
	require.False(t, hasFlag(root.Children["ok-msgbox"], "--button3"))
	require.True(t, hasFlag(root.Children["filteredlist"], "--columns"))
}

func TestBuildTree_DispatchesToShow(t *testing.T) {
	b := &recordingBackend{}
	var out strings.Builder
	root := BuildTree(testDeps(b, &out))

	res, err := dispatchers.Dispatch(root,
		[]string{"dropdown", "--items", "a", "b", "--select", "1", "--stoppable"},
		dispatchers.Streams{Out: &out, Err: &out},
	)
	require.NoError(t, err)
	require.NoError(t, res.Execute(res.Args, res.Flags))

	require.NotNil(t, b.seen)
	require.Equal(t, dialog.Dropdown, b.seen.Type)
	require.Equal(t, []string{"a", "b"}, b.seen.Items)
	require.Equal(t, 1, b.seen.Select)
	require.False(t, b.seen.Stoppable, "options of other types are ignored")
}

func TestBuildTree_Completions(t *testing.T) {
	var out strings.Builder
	root := BuildTree(testDeps(&recordingBackend{}, &out))

	node := root.Children["completions"]
	require.NotNil(t, node)
	require.Equal(t, dispatchers.CategoryShell, node.Category)
	require.Equal(t, []string{"bash", "zsh", "fish"}, node.Args)

	res, err := dispatchers.Dispatch(root,
		[]string{"completions", "bash", "--script"},
		dispatchers.Streams{Out: &out, Err: &out},
	)
	require.NoError(t, err)
	require.NoError(t, res.Execute(res.Args, res.Flags))

	script := out.String()
	require.Contains(t, script, "complete -F _gtdialog_completions gtdialog")
	require.Contains(t, script, "filteredlist)")
	require.Contains(t, script, "--output-column")
	require.Contains(t, script, "compgen -W \"tui gui\"")
}
