package dispatchers

import "strings"

// ParsedFlags provides typed access to scanned command-line options.
type ParsedFlags struct {
	values map[string][]string
	order  []string
}

// NewParsedFlags creates an empty ParsedFlags.
func NewParsedFlags() *ParsedFlags {
	return &ParsedFlags{values: make(map[string][]string)}
}

// Scan walks args once, left to right, and records every option described by
// descriptors. Arguments that are not a known option name are skipped, so
// options meant for other dialog types are ignored. A repeated option keeps
// its last occurrence. Options are recorded under their first name.
func Scan(args []string, descriptors []FlagDescriptor) *ParsedFlags {
	index := make(map[string]FlagDescriptor)
	for _, d := range descriptors {
		for _, name := range d.Names {
			index[name] = d
		}
	}

	f := NewParsedFlags()
	for i := 0; i < len(args); i++ {
		d, ok := index[args[i]]
		if !ok {
			continue
		}

		switch d.Arity {
		case ArityNone:
			f.set(d.Name(), nil)
		case ArityOne:
			// A trailing value option without its value is dropped.
			if i+1 < len(args) {
				i++
				f.set(d.Name(), []string{args[i]})
			}
		case ArityList:
			var values []string
			for i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
				i++
				values = append(values, args[i])
			}
			f.set(d.Name(), values)
		}
	}
	return f
}

func (f *ParsedFlags) set(name string, values []string) {
	if _, ok := f.values[name]; !ok {
		f.order = append(f.order, name)
	}
	if values == nil {
		values = []string{}
	}
	f.values[name] = values
}

// Names returns the recorded option names in the order first seen.
func (f *ParsedFlags) Names() []string {
	return f.order
}

// Has returns true if the option was given.
func (f *ParsedFlags) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// String returns the first value of an option, or defaultVal if the option
// is absent or has no value.
func (f *ParsedFlags) String(name, defaultVal string) string {
	if v := f.values[name]; len(v) > 0 {
		return v[0]
	}
	return defaultVal
}

// Int returns the integer value of an option, or defaultVal if the option is
// absent. The value is read like C's atoi: text that is not a number is 0.
func (f *ParsedFlags) Int(name string, defaultVal int) int {
	v := f.values[name]
	if len(v) == 0 {
		return defaultVal
	}
	return atoi(v[0])
}

// List returns every value of an option.
func (f *ParsedFlags) List(name string) []string {
	return f.values[name]
}

func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
