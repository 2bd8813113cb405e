package vec

// Dropper is implemented by element types that own resources of their own.
//
// Drop is called exactly once for every element the container discards:
// by Release, Clear, Truncate, Set (for the overwritten value) and
// IntoIter.Close (for elements not yet yielded). Elements handed back to the
// caller by Pop, Remove, IntoIter.Next or IntoIter.NextBack are not dropped;
// the caller owns them.
//
// A panicking Drop does not stop the teardown: the remaining elements are
// still dropped and the storage is still returned before the panic carries
// on.
type Dropper interface {
	Drop()
}

func drop[T any](x T) {
	if d, ok := any(x).(Dropper); ok {
		d.Drop()
	}
}

// dropAll zeroes every slot in s and then drops the value it held. If a
// Drop panics, the remaining elements are still dropped before the panic
// carries on.
func dropAll[T any](s []T) {
	var zero T
	i := 0
	defer func() {
		if i < len(s) {
			dropAll(s[i:])
		}
	}()
	for i < len(s) {
		x := s[i]
		s[i] = zero
		i++
		drop(x)
	}
}
