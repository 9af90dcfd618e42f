package buffer

import "errors"

// ErrReadOnly is returned when applying edits to a read-only document.
var ErrReadOnly = errors.New("document is read-only")

// Option configures a Document.
type Option func(*Document)

// WithReadOnly creates the document in read-only state.
func WithReadOnly() Option {
	return func(d *Document) {
		d.readOnly = true
	}
}
