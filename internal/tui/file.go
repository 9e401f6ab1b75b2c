package tui

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gtdialog/gtdialog/internal/dialog"
	"github.com/gtdialog/gtdialog/internal/ui/style"
)

// startDir returns the absolute directory a file dialog opens in.
func startDir(o *dialog.Options) string {
	dir := "."
	switch {
	case o.WithDirectory != "":
		dir = o.WithDirectory
	case strings.ContainsRune(o.WithFile, filepath.Separator):
		dir = filepath.Dir(o.WithFile)
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

// extensions normalizes --with-extension values to ".ext".
func extensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

func newPicker(o *dialog.Options, height int) filepicker.Model {
	fp := filepicker.New()
	fp.CurrentDirectory = startDir(o)
	fp.AllowedTypes = extensions(o.WithExtensions)
	fp.AutoHeight = false
	fp.ShowPermissions = false
	fp.SetHeight(max(height, 1))
	return fp
}

// fileSelect is the body of the fileselect dialog. Enter picks the file
// under the cursor; with --select-multiple, Space marks files and Enter
// returns the marked ones.
type fileSelect struct {
	picker   filepicker.Model
	multiple bool
	marked   []string
}

func newFileSelect(o *dialog.Options, height int) *fileSelect {
	h := height - 1
	if o.SelectMultiple {
		h--
	}
	fp := newPicker(o, h)
	if o.SelectOnlyDirectories {
		fp.DirAllowed = true
		fp.FileAllowed = false
	}
	if o.SelectMultiple {
		fp.KeyMap.Open = key.NewBinding(key.WithKeys("l", "right", "enter", " "))
		fp.KeyMap.Select = key.NewBinding(key.WithKeys("enter", " "))
	}
	return &fileSelect{picker: fp, multiple: o.SelectMultiple}
}

func (c *fileSelect) Init() tea.Cmd {
	return c.picker.Init()
}

func (c *fileSelect) Focusable() bool {
	return true
}

func (c *fileSelect) HandlesKey(tea.KeyMsg) bool {
	return true
}

func (c *fileSelect) Update(msg tea.Msg) (content, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && c.multiple && k.Type == tea.KeySpace {
		// Space only marks; the picker state after the key is discarded so
		// it never descends into a directory.
		next, _ := c.picker.Update(msg)
		if ok, path := next.DidSelectFile(msg); ok {
			c.toggle(path)
		}
		return c, nil
	}

	var cmd tea.Cmd
	c.picker, cmd = c.picker.Update(msg)

	if ok, path := c.picker.DidSelectFile(msg); ok {
		files := []string{path}
		if c.multiple && len(c.marked) > 0 {
			files = slices.Clone(c.marked)
			if !slices.Contains(files, path) {
				files = append(files, path)
			}
		}
		return c, submit(1, dialog.Result{Files: files})
	}
	return c, cmd
}

func (c *fileSelect) toggle(path string) {
	if path == "" {
		return
	}
	if i := slices.Index(c.marked, path); i >= 0 {
		c.marked = slices.Delete(c.marked, i, i+1)
		return
	}
	c.marked = append(c.marked, path)
}

func (c *fileSelect) Fill(r *dialog.Result) {
	r.Files = slices.Clone(c.marked)
}

func (c *fileSelect) View(width, height int) string {
	lines := []string{style.Muted(truncate(c.picker.CurrentDirectory, width)), c.picker.View()}
	if c.multiple {
		lines = append(lines, style.Info(fmt.Sprintf("%d marked", len(c.marked))))
	}
	return clip(strings.Join(lines, "\n"), height)
}

// fileSave is the body of the filesave dialog: a name entry above a file
// list. Arrow keys browse, Right on a file copies its name, Enter saves.
type fileSave struct {
	picker filepicker.Model
	name   textinput.Model
}

func newFileSave(o *dialog.Options, width, height int) *fileSave {
	fp := newPicker(o, height-2)
	fp.KeyMap = filepicker.KeyMap{
		GoToTop:  key.NewBinding(key.WithKeys("home")),
		GoToLast: key.NewBinding(key.WithKeys("end")),
		Down:     key.NewBinding(key.WithKeys("down")),
		Up:       key.NewBinding(key.WithKeys("up")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Back:     key.NewBinding(key.WithKeys("left")),
		Open:     key.NewBinding(key.WithKeys("right")),
		Select:   key.NewBinding(key.WithKeys("right")),
	}

	ti := textinput.New()
	ti.Prompt = "Name: "
	ti.Width = max(width-len(ti.Prompt)-1, 1)
	if o.WithFile != "" {
		ti.SetValue(filepath.Base(o.WithFile))
	}
	ti.Focus()

	return &fileSave{picker: fp, name: ti}
}

func (c *fileSave) Init() tea.Cmd {
	return tea.Batch(c.picker.Init(), textinput.Blink)
}

func (c *fileSave) Focusable() bool {
	return true
}

func (c *fileSave) HandlesKey(tea.KeyMsg) bool {
	return true
}

func (c *fileSave) path() string {
	name := c.name.Value()
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.picker.CurrentDirectory, name)
}

func (c *fileSave) Update(msg tea.Msg) (content, tea.Cmd) {
	k, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmds [2]tea.Cmd
		c.picker, cmds[0] = c.picker.Update(msg)
		c.name, cmds[1] = c.name.Update(msg)
		return c, tea.Batch(cmds[:]...)
	}

	switch k.Type {
	case tea.KeyEnter:
		if p := c.path(); p != "" {
			return c, submit(1, dialog.Result{Files: []string{p}})
		}
		return c, nil
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown, tea.KeyHome, tea.KeyEnd, tea.KeyRight:
		var cmd tea.Cmd
		c.picker, cmd = c.picker.Update(msg)
		if ok, path := c.picker.DidSelectFile(msg); ok {
			c.name.SetValue(filepath.Base(path))
			c.name.CursorEnd()
		}
		return c, cmd
	case tea.KeyLeft:
		// Left edits the name unless it is empty; then it goes up a directory.
		if c.name.Value() == "" {
			var cmd tea.Cmd
			c.picker, cmd = c.picker.Update(msg)
			return c, cmd
		}
	}

	var cmd tea.Cmd
	c.name, cmd = c.name.Update(msg)
	return c, cmd
}

func (c *fileSave) Fill(r *dialog.Result) {
	if p := c.path(); p != "" {
		r.Files = []string{p}
	}
}

func (c *fileSave) View(width, height int) string {
	lines := []string{
		c.name.View(),
		style.Muted(truncate(c.picker.CurrentDirectory, width)),
		c.picker.View(),
	}
	return clip(strings.Join(lines, "\n"), height)
}
