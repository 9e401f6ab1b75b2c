package completions

import (
	"strings"
	"testing"

	"github.com/gtdialog/gtdialog/internal/dispatchers"
)

func requireAll(t *testing.T, shell, script string, checks []string) {
	t.Helper()
	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("%s script should contain %q", shell, check)
		}
	}
}

func TestGenerateBash(t *testing.T) {
	script := GenerateBash(ExtractCommands(buildTestTree()))

	requireAll(t, "bash", script, []string{
		"_gtdialog_completions()",
		"complete -F _gtdialog_completions gtdialog",
		`compgen -W "help completions fileselect msgbox --help --version" -- "$cur"`,
		"--backend)\n            COMPREPLY=($(compgen -W \"tui gui\" -- \"$cur\"))",
		"--with-directory)\n            COMPREPLY=($(compgen -d -- \"$cur\"))",
		"--icon-file)\n            COMPREPLY=($(compgen -f -- \"$cur\"))",
		"msgbox)\n            words=\"--icon-file --help -h --title --backend\"",
		"completions)\n            words=\"bash zsh fish --script --help -h --title --backend\"",
		"help)\n            words=\"completions fileselect msgbox\"",
	})

	if !strings.HasPrefix(script, "# gtdialog bash completion script") {
		t.Error("bash script should start with comment header")
	}
}

func TestGenerateZsh(t *testing.T) {
	script := GenerateZsh(ExtractCommands(buildTestTree()))

	requireAll(t, "zsh", script, []string{
		"#compdef gtdialog",
		"_gtdialog()",
		"_gtdialog_commands()",
		"_describe",
		"'help:Show help for a dialog type'",
		"'msgbox:A message box'",
		"'fileselect:Choose files to open'",
		"'--with-directory[Start here]:directory:_files -/'",
		"'--icon-file[Icon path]:file:_files'",
		"'--backend[Backend]:value:(tui gui)'",
		`'--title[The dialog'\''s title text]:value: '`,
		"'1:argument:(bash zsh fish)'",
		"_values 'type' completions fileselect msgbox",
		`_gtdialog "$@"`,
	})
}

func TestGenerateFish(t *testing.T) {
	script := GenerateFish(ExtractCommands(buildTestTree()))

	requireAll(t, "fish", script, []string{
		"complete -c gtdialog -f",
		"__fish_use_subcommand",
		"-a msgbox -d 'A message box'",
		"-a help -d 'Show help for a dialog type'",
		"-n '__fish_seen_subcommand_from msgbox' -l icon-file -r -F -d 'Icon path'",
		"-n '__fish_seen_subcommand_from msgbox' -s h -d 'Show help'",
		"-l backend -x -a 'tui gui'",
		`-d 'The dialog\'s title text'`,
		"-n '__fish_seen_subcommand_from completions' -a 'bash zsh fish'",
		"-n '__fish_seen_subcommand_from help' -a 'completions fileselect msgbox'",
	})
}

func TestGenerate(t *testing.T) {
	tree := ExtractCommands(buildTestTree())

	for _, shell := range Shells {
		script, err := Generate(shell, tree)
		if err != nil {
			t.Errorf("%s: unexpected error %v", shell, err)
		}
		if !strings.Contains(script, "gtdialog") {
			t.Errorf("%s: script does not mention the program", shell)
		}
	}

	if _, err := Generate(Shell("tcsh"), tree); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}

func emptyTree() Tree {
	return ExtractCommands(dispatchers.Root(dispatchers.RootSpec{Name: "gtdialog"}))
}

func TestGenerateBash_EmptyTree(t *testing.T) {
	script := GenerateBash(emptyTree())

	if !strings.Contains(script, "_gtdialog_completions()") {
		t.Error("bash script should contain function definition even for empty tree")
	}
	if strings.Contains(script, "case \"$prev\"") {
		t.Error("bash script should not complete flag values without flags")
	}
}

func TestGenerateZsh_EmptyTree(t *testing.T) {
	if !strings.Contains(GenerateZsh(emptyTree()), "#compdef gtdialog") {
		t.Error("zsh script should contain compdef header even for empty tree")
	}
}

func TestGenerateFish_EmptyTree(t *testing.T) {
	if !strings.Contains(GenerateFish(emptyTree()), "complete -c gtdialog -f") {
		t.Error("fish script should contain basic completion setup even for empty tree")
	}
}
