package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// noResult is what the cloud CLI prints in text mode when a query selects nothing.
const noResult = "None"

// ErrNotFound is returned when no deployed function starts with the effective prefix.
var ErrNotFound = errors.New("no deployed function found")

// Querier asks an external inventory for the first deployed function whose name starts
// with prefix. An empty string means nothing matched.
type Querier interface {
	Query(ctx context.Context, prefix string) (string, error)
}

// LookupError reports a failure of the inventory query itself, as opposed to an empty result.
type LookupError struct {
	Prefix string
	Cause  error
}

// Error implements the error interface
func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to look up deployed function for %s: %s", e.Prefix, e.Cause.Error())
}

func (e *LookupError) Unwrap() error {
	return e.Cause
}

// EffectivePrefix joins the stack prefix and the declared name with a dash.
// An empty prefix leaves the declared name unchanged.
func EffectivePrefix(declaredName, prefix string) string {
	if prefix == "" {
		return declaredName
	}
	return prefix + "-" + declaredName
}

// Inventory translates declared function names into deployed ones.
type Inventory struct {
	querier Querier
}

// New creates an Inventory backed by querier.
func New(querier Querier) *Inventory {
	return &Inventory{querier: querier}
}

// Lookup returns the deployed name of declaredName, optionally prefixed by a stack name.
// The call blocks until the underlying query completes.
func (i *Inventory) Lookup(ctx context.Context, declaredName, prefix string) (string, error) {
	effective := EffectivePrefix(declaredName, prefix)

	out, err := i.querier.Query(ctx, effective)
	if err != nil {
		return "", &LookupError{Prefix: effective, Cause: err}
	}

	name := strings.TrimSpace(out)
	if name == "" || name == noResult {
		return "", fmt.Errorf("%w with prefix %s", ErrNotFound, effective)
	}
	return name, nil
}
