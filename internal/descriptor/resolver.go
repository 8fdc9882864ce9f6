package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// LocatorKey is the attribute whose value ties a declared function to a fixture.
	LocatorKey = "CodeUri"

	// GrandparentOffset is the position, counted from the end of the ancestor-key chain,
	// of the key that names the resource owning a locator. For
	// Resources -> MyFunction -> Properties -> CodeUri the chain at the locator is
	// [Resources MyFunction Properties] and the name is MyFunction.
	GrandparentOffset = 2
)

// ErrNotFound is returned when no locator ends with the requested suffix.
var ErrNotFound = errors.New("could not find function name")

// Resolver maps a fixture name onto the declared resource name in a descriptor tree.
type Resolver struct {
	locatorKey string
}

// Option customizes a Resolver.
type Option func(r *Resolver)

// WithLocatorKey overrides the attribute matched against fixture names.
func WithLocatorKey(key string) Option {
	return func(r *Resolver) {
		if key != "" {
			r.locatorKey = key
		}
	}
}

// NewResolver creates a resolver matching on LocatorKey unless overridden.
func NewResolver(options ...Option) *Resolver {
	r := &Resolver{locatorKey: LocatorKey}
	for _, apply := range options {
		apply(r)
	}
	return r
}

// LocatorKey returns the attribute this resolver matches on.
func (r *Resolver) LocatorKey() string {
	return r.locatorKey
}

// Resolve returns the declared name of the first resource, in document order, whose
// locator ends with suffix.
func (r *Resolver) Resolve(root *Node, suffix string) (string, error) {
	var name string
	matched := r.walk(root, suffix, nil, func(candidate string) bool {
		name = candidate
		return true
	})

	if !matched {
		return "", fmt.Errorf("%w for %s", ErrNotFound, suffix)
	}
	return name, nil
}

// Matches returns every declared name whose locator ends with suffix, in document order.
func (r *Resolver) Matches(root *Node, suffix string) []string {
	var names []string
	r.walk(root, suffix, nil, func(candidate string) bool {
		names = append(names, candidate)
		return false
	})
	return names
}

// walk performs a pre-order traversal over mapping nodes. Sequences and scalars are never
// descended into. found returns true to stop the traversal.
func (r *Resolver) walk(n *Node, suffix string, ancestors []string, found func(string) bool) bool {
	if n == nil || n.Kind != KindMapping || suffix == "" {
		return false
	}

	for _, e := range n.Entries {
		if e.Key == r.locatorKey && e.Value.IsString() && strings.HasSuffix(e.Value.Value, suffix) {
			if name, ok := owningKey(ancestors); ok {
				if found(name) {
					return true
				}
				continue
			}
		}

		chain := append(ancestors[:len(ancestors):len(ancestors)], e.Key)
		if r.walk(e.Value, suffix, chain, found) {
			return true
		}
	}
	return false
}

func owningKey(ancestors []string) (string, bool) {
	if len(ancestors) < GrandparentOffset {
		return "", false
	}
	return ancestors[len(ancestors)-GrandparentOffset], true
}

// Resolve is a convenience wrapper using the default locator key.
func Resolve(root *Node, suffix string) (string, error) {
	return NewResolver().Resolve(root, suffix)
}
