// Package falkorschema maintains the per-graph dictionaries that
// translate the small integer ids compact-mode responses use for
// labels, property keys, and relationship types back into strings.
package falkorschema

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/falkordb/falkordb-go/falkorerrors"
)

// Kind identifies which of the three independent dictionaries an id
// belongs to.
type Kind uint8

const (
	Labels Kind = iota
	PropertyKeys
	Relationships
)

func (k Kind) String() string {
	switch k {
	case Labels:
		return "labels"
	case PropertyKeys:
		return "property_keys"
	case Relationships:
		return "relationships"
	default:
		return "unknown"
	}
}

// kindCount is how many Kind values exist, sized in one place so Cache's
// array of dictionaries and RefreshFunc's procedure-name switch stay
// in sync without repeating the literal 3.
const kindCount = 3

// RefreshFunc issues the procedure call appropriate for kind (DB.LABELS,
// DB.PROPERTYKEYS, or DB.RELATIONSHIPTYPES) and returns the server's
// authoritative name list, position in the slice being the id. It must
// not consult the Cache it is refreshing — the schema cache's own
// refresh path extracts the name column with a decoder that doesn't
// recurse back into schema lookup.
type RefreshFunc func(ctx context.Context, kind Kind) ([]string, falkorerrors.Error)

type dict struct {
	mu    sync.RWMutex
	names []string
}

func (d *dict) lookup(id int64) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if id < 0 || int(id) >= len(d.names) {
		return "", false
	}

	return d.names[id], true
}

func (d *dict) verify(ids []int64) (map[int64]string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.verifyLocked(ids)
}

func (d *dict) verifyLocked(ids []int64) (map[int64]string, bool) {
	out := make(map[int64]string, len(ids))

	for _, id := range ids {
		if id < 0 || int(id) >= len(d.names) {
			return nil, false
		}

		out[id] = d.names[id]
	}

	return out, true
}

func (d *dict) replace(names []string) {
	d.mu.Lock()
	d.names = names
	d.mu.Unlock()
}

func (d *dict) clear() {
	d.mu.Lock()
	d.names = nil
	d.mu.Unlock()
}

// Cache holds the three dictionaries for one graph, plus a version
// counter bumped on every refresh and reset to 0 by Clear.
type Cache struct {
	dicts   [kindCount]dict
	version atomic.Uint64
	refresh RefreshFunc
}

// NewCache builds an empty Cache. refresh is called at most once per
// (kind, miss) under Cache's internal exclusive lock for that kind.
func NewCache(refresh RefreshFunc) *Cache {
	return &Cache{refresh: refresh}
}

// Version reports the cache's monotonically non-decreasing version
// counter, bumped by every successful Refresh and reset to 0 by Clear.
func (c *Cache) Version() uint64 {
	return c.version.Load()
}

// Lookup is a non-blocking read of a single id.
func (c *Cache) Lookup(kind Kind, id int64) (string, bool) {
	return c.dicts[kind].lookup(id)
}

// Verify returns a map covering every id in ids iff all are present in
// the cache; otherwise it returns (nil, false), signalling the caller
// must Refresh.
func (c *Cache) Verify(kind Kind, ids []int64) (map[int64]string, bool) {
	if len(ids) == 0 {
		return map[int64]string{}, true
	}

	return c.dicts[kind].verify(ids)
}

// Refresh re-checks the dictionary under the exclusive lock before
// issuing the RPC (avoiding a thundering herd when two callers miss the
// same kind concurrently), replaces the dictionary with the server's
// full authoritative list, then — when ids is non-empty — returns the
// sub-mapping for those ids, failing with SchemaUnknownId if any are
// still absent after the refresh.
func (c *Cache) Refresh(ctx context.Context, kind Kind, ids []int64) (map[int64]string, falkorerrors.Error) {
	d := &c.dicts[kind]

	d.mu.Lock()
	defer d.mu.Unlock()

	if len(ids) > 0 {
		if sub, ok := d.verifyLocked(ids); ok {
			return sub, nil
		}
	}

	names, err := c.refresh(ctx, kind)
	if err != nil {
		return nil, err.Wrap("schema refresh: " + kind.String())
	}

	d.names = names
	c.version.Add(1)

	if len(ids) == 0 {
		return map[int64]string{}, nil
	}

	sub, ok := d.verifyLocked(ids)
	if !ok {
		return nil, falkorerrors.FromString(
			falkorerrors.SchemaUnknownId,
			"schema refresh: id still unknown after refresh for "+kind.String(),
		)
	}

	return sub, nil
}

// Clear resets all three dictionaries and the version counter to their
// zero state. Called on graph deletion or explicit schema invalidation.
func (c *Cache) Clear() {
	for i := range c.dicts {
		c.dicts[i].clear()
	}

	c.version.Store(0)
}
