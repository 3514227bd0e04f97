package mock

import "github.com/hublinks/hublinks"

var _ hublinks.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of hublinks.Formatter.
type Formatter struct {
	FormatFn func(items []hublinks.Item) (string, error)
	NameFn   func() string
}

func (f *Formatter) Format(items []hublinks.Item) (string, error) {
	return f.FormatFn(items)
}

func (f *Formatter) Name() string {
	if f.NameFn != nil {
		return f.NameFn()
	}
	return "mock"
}
