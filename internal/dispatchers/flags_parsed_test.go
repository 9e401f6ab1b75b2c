package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testDescriptors = []FlagDescriptor{
	{Names: []string{"--help", "-h"}},
	{Names: []string{"--string-output"}},
	{Names: []string{"--title"}, Arity: ArityOne},
	{Names: []string{"--width"}, Arity: ArityOne},
	{Names: []string{"--items"}, Arity: ArityList},
	{Names: []string{"--select"}, Arity: ArityOne},
}

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, f *ParsedFlags)
	}{
		{
			name: "switch",
			args: []string{"--string-output"},
			check: func(t *testing.T, f *ParsedFlags) {
				require.True(t, f.Has("--string-output"))
				require.False(t, f.Has("--title"))
			},
		},
		{
			name: "single value",
			args: []string{"--title", "Hello world"},
			check: func(t *testing.T, f *ParsedFlags) {
				require.Equal(t, "Hello world", f.String("--title", ""))
			},
		},
		{
			name: "single value may start with dashes",
			args: []string{"--title", "--weird--"},
			check: func(t *testing.T, f *ParsedFlags) {
				require.Equal(t, "--weird--", f.String("--title", ""))
			},
		},
		{
			name: "missing trailing value",
			args: []string{"--title"},
			check: func(t *testing.T, f *ParsedFlags) {
				require.False(t, f.Has("--title"))
				require.Equal(t, "def", f.String("--title", "def"))
			},
		},
		{
			name: "list stops at next option",
			args: []string{"--items", "a", "b c", "-x", "--select", "1"},
			check: func(t *testing.T, f *ParsedFlags) {
				require.Equal(t, []string{"a", "b c", "-x"}, f.List("--items"))
				require.Equal(t, 1, f.Int("--select", 0))
			},
		},
		{
			name: "empty list",
			args: []string{"--items", "--string-output"},
			check: func(t *testing.T, f *ParsedFlags) {
				require.True(t, f.Has("--items"))
				require.Empty(t, f.List("--items"))
				require.True(t, f.Has("--string-output"))
			},
		},
		{
			name: "unknown options are skipped",
			args: []string{"--bogus", "--title", "T", "stray", "--no-cancel"},
			check: func(t *testing.T, f *ParsedFlags) {
				require.Equal(t, []string{"--title"}, f.Names())
				require.False(t, f.Has("--bogus"))
			},
		},
		{
			name: "last occurrence wins",
			args: []string{"--title", "one", "--title", "two", "--items", "a", "--items", "b", "c"},
			check: func(t *testing.T, f *ParsedFlags) {
				require.Equal(t, "two", f.String("--title", ""))
				require.Equal(t, []string{"b", "c"}, f.List("--items"))
				require.Equal(t, []string{"--title", "--items"}, f.Names())
			},
		},
		{
			name: "alias recorded under first name",
			args: []string{"-h"},
			check: func(t *testing.T, f *ParsedFlags) {
				require.True(t, f.Has("--help"))
				require.False(t, f.Has("-h"))
			},
		},
		{
			name: "value is not rescanned as option",
			args: []string{"--title", "--string-output"},
			check: func(t *testing.T, f *ParsedFlags) {
				require.Equal(t, "--string-output", f.String("--title", ""))
				require.False(t, f.Has("--string-output"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Scan(tt.args, testDescriptors))
		})
	}
}

func TestParsedFlags_Int(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		defaultVal int
		want       int
	}{
		{name: "valid", args: []string{"--width", "300"}, defaultVal: 0, want: 300},
		{name: "negative", args: []string{"--width", "-20"}, defaultVal: 0, want: -20},
		{name: "leading digits", args: []string{"--width", "42px"}, defaultVal: 0, want: 42},
		{name: "not a number is zero", args: []string{"--width", "wide"}, defaultVal: 7, want: 0},
		{name: "absent uses default", args: nil, defaultVal: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Scan(tt.args, testDescriptors)
			require.Equal(t, tt.want, f.Int("--width", tt.defaultVal))
		})
	}
}

func TestParsedFlags_StringOnSwitch(t *testing.T) {
	f := Scan([]string{"--string-output"}, testDescriptors)

	require.Equal(t, "fallback", f.String("--string-output", "fallback"))
	require.Empty(t, f.List("--string-output"))
}

func TestNewParsedFlags_Empty(t *testing.T) {
	f := NewParsedFlags()

	require.False(t, f.Has("--help"))
	require.Empty(t, f.Names())
	require.Nil(t, f.List("--items"))
}
