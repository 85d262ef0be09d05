package rectgo

// Merge returns a new tree holding the entries of t plus inserts. The
// receiver is unchanged and shares no nodes with the result.
// Construction options default to those of t and may be overridden.
func (t *Tree[T]) Merge(inserts []Entry[T], optFns ...func(o *Options)) (*Tree[T], error) {
	return t.Update(nil, inserts, optFns...)
}

// Diff returns a new tree with one matching entry removed per removal.
// Matching is structural: the rectangle coordinates and the payload
// must compare equal. Removals with no match are silently ignored.
func (t *Tree[T]) Diff(removals []Entry[T], optFns ...func(o *Options)) (*Tree[T], error) {
	return t.Update(removals, nil, optFns...)
}

// Update returns a new tree equal to Merge(Diff(t, removals), inserts),
// materializing the combined entry sequence once and re-running the
// bulk loader over it.
func (t *Tree[T]) Update(removals, inserts []Entry[T], optFns ...func(o *Options)) (*Tree[T], error) {
	opts := t.opts
	for _, fn := range optFns {
		fn(&opts)
	}

	// Each removal instance cancels at most one matching entry.
	var pending map[Entry[T]]int
	if len(removals) > 0 {
		pending = make(map[Entry[T]]int, len(removals))
		for _, e := range removals {
			pending[e]++
		}
	}

	combined := make([]Entry[T], 0, t.count+len(inserts))
	for e := range t.All() {
		if c, ok := pending[e]; ok && c > 0 {
			pending[e] = c - 1
			continue
		}
		combined = append(combined, e)
	}
	combined = append(combined, inserts...)

	nt, err := newTree(combined, opts)
	if err != nil {
		return nil, err
	}
	nt.opts.Logger.LogUpdate(len(removals), len(inserts), nt.count)
	return nt, nil
}
