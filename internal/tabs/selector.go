package tabs

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTab = errors.New("unknown tab")
	ErrNoTabs     = errors.New("at least one tab is required")
)

// Selector holds one active label out of a fixed, ordered set.
type Selector struct {
	labels   []string
	selected string
}

// NewSelector starts on the first label.
func NewSelector(labels ...string) (*Selector, error) {
	if len(labels) == 0 {
		return nil, ErrNoTabs
	}
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("duplicate tab %q", l)
		}
		seen[l] = struct{}{}
	}
	return &Selector{
		labels:   append([]string(nil), labels...),
		selected: labels[0],
	}, nil
}

func mustSelector(labels ...string) *Selector {
	s, err := NewSelector(labels...)
	if err != nil {
		panic(err)
	}
	return s
}

// Select switches to label. Labels outside the known set are rejected and the
// current tab is kept.
func (s *Selector) Select(label string) error {
	for _, l := range s.labels {
		if l == label {
			s.selected = label
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTab, label)
}

func (s *Selector) Selected() string {
	return s.selected
}

func (s *Selector) Is(label string) bool {
	return s.selected == label
}

func (s *Selector) Labels() []string {
	return append([]string(nil), s.labels...)
}
