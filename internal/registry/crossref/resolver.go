// Package crossref maps an identifier from one portal's namespace to its
// equivalents in the others.
//
// Equivalences are stored as classes: each class lists the ids that name one
// physical property, tagged by portal. Lookups are derived from class
// membership, so if A resolves to B then B resolves back to A. A company
// that holds several properties belongs to several classes; lookups from it
// resolve through its classes in declaration order.
package crossref

import (
	"fmt"
	"strings"

	"proplink/internal/registry/sources"
)

// Class is one set of mutually equivalent identifiers.
type Class map[sources.Name]string

// Dataset reports whether an id is a primary key of a portal.
type Dataset interface {
	Contains(source sources.Name, id string) bool
}

// Resolver answers cross-reference lookups. It is immutable after construction.
type Resolver struct {
	classes []Class
	index   map[string][]int
	data    Dataset
}

// NewResolver indexes the given classes.
func NewResolver(data Dataset, classes []Class) (*Resolver, error) {
	if data == nil {
		return nil, fmt.Errorf("dataset is required")
	}
	r := &Resolver{
		classes: make([]Class, 0, len(classes)),
		index:   make(map[string][]int),
		data:    data,
	}
	for i, c := range classes {
		if len(c) == 0 {
			return nil, fmt.Errorf("class %d is empty", i)
		}
		cp := make(Class, len(c))
		for src, id := range c {
			if !src.IsValid() {
				return nil, fmt.Errorf("class %d: unknown source %q", i, src)
			}
			if id == "" {
				return nil, fmt.Errorf("class %d: empty id for %s", i, src)
			}
			cp[src] = id
		}
		r.classes = append(r.classes, cp)
		// iterate in precedence order so the index is deterministic
		for _, src := range sources.All {
			id, ok := cp[src]
			if !ok {
				continue
			}
			if n := len(r.index[id]); n > 0 && r.index[id][n-1] == i {
				continue
			}
			r.index[id] = append(r.index[id], i)
		}
	}
	return r, nil
}

// Known reports whether id belongs to any class.
func (r *Resolver) Known(id string) bool {
	_, ok := r.index[id]
	return ok
}

// ResolveInSource returns the id naming the same property in target.
// Absence is a normal result: most ids exist in one portal only.
func (r *Resolver) ResolveInSource(id string, target sources.Name) (string, bool) {
	for _, ci := range r.index[id] {
		if v, ok := r.classes[ci][target]; ok {
			return v, true
		}
	}
	return "", false
}

// ExistsInSource reports whether id, or its equivalent in target, is present
// in target's dataset.
func (r *Resolver) ExistsInSource(id string, target sources.Name) bool {
	if r.data.Contains(target, id) {
		return true
	}
	resolved, ok := r.ResolveInSource(id, target)
	return ok && r.data.Contains(target, resolved)
}

// ResolveAll returns every known equivalent of id. Unknown ids fall back to
// a single entry under the portal their shape suggests.
func (r *Resolver) ResolveAll(id string) map[sources.Name]string {
	out := make(map[sources.Name]string, len(sources.All))
	for _, ci := range r.index[id] {
		for src, v := range r.classes[ci] {
			if _, taken := out[src]; !taken {
				out[src] = v
			}
		}
	}
	if len(out) == 0 {
		out[InferSource(id)] = id
	}
	return out
}

// Classes returns copies of every class containing id.
func (r *Resolver) Classes(id string) []Class {
	idx := r.index[id]
	out := make([]Class, 0, len(idx))
	for _, ci := range idx {
		cp := make(Class, len(r.classes[ci]))
		for k, v := range r.classes[ci] {
			cp[k] = v
		}
		out = append(out, cp)
	}
	return out
}

// InferSource guesses a portal from an id's shape. DORIS is the default.
func InferSource(id string) sources.Name {
	switch {
	case strings.HasPrefix(id, "CERSAI"):
		return sources.CERSAI
	case sources.IsCIN(id):
		return sources.MCA21
	case strings.HasPrefix(id, "MH"), strings.HasPrefix(id, "DL"):
		return sources.DORIS
	case strings.HasPrefix(id, "KA"), strings.HasPrefix(id, "TN"):
		return sources.DLR
	default:
		return sources.DORIS
	}
}
