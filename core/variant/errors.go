package variant

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDocument is returned when FormatProduct is called without a document.
	ErrNilDocument = errors.New("product document is nil")
	// ErrNilProduct is returned when a commit is attempted without a product.
	ErrNilProduct = errors.New("product is nil")
	// ErrVariantUnavailable is returned when a complete selection matches no variant.
	ErrVariantUnavailable = errors.New("no variant matches the selection")
)

const (
	MissingColor = "color"
	MissingSize  = "size"
)

// SelectionError reports a selection that cannot be committed yet.
type SelectionError struct {
	// Missing names the dimension the shopper still has to pick.
	Missing string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection incomplete: pick a %s", e.Missing)
}

// IsSelectionIncomplete reports whether err is a *SelectionError.
func IsSelectionIncomplete(err error) bool {
	var se *SelectionError
	return errors.As(err, &se)
}
