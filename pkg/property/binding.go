package property

// BindTwoWay keeps source and target equal. Target takes source's value
// immediately; afterwards a change on either side is written to the other.
// The returned function removes both directions.
//
// When coercion on one side alters a propagated value, the altered value
// flows back once and the pair settles on it.
func BindTwoWay[T comparable](source, target *Property[T]) func() {
	syncing := false
	push := func(dst *Property[T]) Listener[T] {
		return func(_, v T) {
			if syncing {
				return
			}
			syncing = true
			dst.Set(v)
			syncing = false
			// dst may have coerced v; converge on what it stored.
			if got := dst.Get(); got != v {
				src := source
				if dst == source {
					src = target
				}
				src.Set(got)
			}
		}
	}

	target.Set(source.Get())
	if got := target.Get(); got != source.Get() {
		source.Set(got)
	}

	removeForward := source.AddListener(push(target))
	removeBackward := target.AddListener(push(source))
	return func() {
		removeForward()
		removeBackward()
	}
}

// BindOneWay writes every change of source into target, starting with the
// current value.
func BindOneWay[S, T comparable](source ReadOnly[S], target *Property[T], convert func(S) T) func() {
	target.Set(convert(source.Get()))
	return source.AddListener(func(_, v S) {
		target.Set(convert(v))
	})
}
