package tapered

import "errors"

// ErrNoProgress is returned by Backlog.Pass when a full pass resolved
// nothing. The remaining entries can never resolve: their references are
// missing or cyclic.
var ErrNoProgress = errors.New("backlog did not shrink")

// Backlog is the worklist of sections waiting on unresolved references.
// Every pass must remove at least one entry or the backlog is stuck.
type Backlog struct {
	items  []string
	queued map[string]bool
}

// NewBacklog returns an empty backlog.
func NewBacklog() *Backlog {
	return &Backlog{queued: make(map[string]bool)}
}

// Push appends name unless it is already queued.
func (b *Backlog) Push(name string) {
	if b.queued[name] {
		return
	}
	b.queued[name] = true
	b.items = append(b.items, name)
}

func (b *Backlog) Len() int {
	return len(b.items)
}

// Items returns the queued names in order.
func (b *Backlog) Items() []string {
	out := make([]string, len(b.items))
	copy(out, b.items)
	return out
}

// Pass offers every queued name to try exactly once, in queue order, and
// drops those for which try reports done. Names pushed during the pass
// wait for the next one. Pass returns ErrNoProgress if the backlog was
// non-empty and the pass neither dropped nor added an entry.
func (b *Backlog) Pass(try func(name string) (done bool)) error {
	current := b.items
	b.items = nil
	var kept []string
	for _, name := range current {
		if try(name) {
			delete(b.queued, name)
			continue
		}
		kept = append(kept, name)
	}
	added := len(b.items)
	b.items = append(kept, b.items...)
	if len(current) > 0 && len(kept) == len(current) && added == 0 {
		return ErrNoProgress
	}
	return nil
}

// Drain empties the backlog and returns what was left.
func (b *Backlog) Drain() []string {
	out := b.items
	b.items = nil
	b.queued = make(map[string]bool)
	return out
}
