package gui

import "github.com/ncruces/zenity"

// Toolkit holds the native dialog calls the backend makes.
type Toolkit struct {
	Available          func() bool
	Question           func(text string, opts ...zenity.Option) error
	Info               func(text string, opts ...zenity.Option) error
	Entry              func(text string, opts ...zenity.Option) (string, error)
	SelectFile         func(opts ...zenity.Option) (string, error)
	SelectFileMultiple func(opts ...zenity.Option) ([]string, error)
	SelectFileSave     func(opts ...zenity.Option) (string, error)
	List               func(text string, items []string, opts ...zenity.Option) (string, error)
	ListMultiple       func(text string, items []string, opts ...zenity.Option) ([]string, error)
	Progress           func(opts ...zenity.Option) (ProgressWindow, error)
}

// ProgressWindow is the part of zenity.ProgressDialog the backend drives.
type ProgressWindow interface {
	Text(string) error
	Value(int) error
	Complete() error
	Close() error
	Done() <-chan struct{}
}

// Zenity returns the toolkit backed by github.com/ncruces/zenity.
func Zenity() Toolkit {
	return Toolkit{
		Available:          zenity.IsAvailable,
		Question:           zenity.Question,
		Info:               zenity.Info,
		Entry:              zenity.Entry,
		SelectFile:         zenity.SelectFile,
		SelectFileMultiple: zenity.SelectFileMultiple,
		SelectFileSave:     zenity.SelectFileSave,
		List:               zenity.List,
		ListMultiple:       zenity.ListMultiple,
		Progress: func(opts ...zenity.Option) (ProgressWindow, error) {
			return zenity.Progress(opts...)
		},
	}
}
