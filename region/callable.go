//go:build !noexec

package region

import "pagemem/callable"

// GetFn returns a Callable Handle over the native function at offset in an
// execute-permitted region, typed as F. It must be a free function rather
// than a method on X or RX because Go methods cannot introduce type
// parameters of their own (see Executable in exec.go).
//
// The returned handle keeps r reachable for as long as the handle itself
// is (see callable.New); it does nothing to stop a caller from separately
// transitioning or closing r out from under it; that remains the caller's
// responsibility per spec.md §4.4 and §9's open-question resolution.
func GetFn[F any](r Executable, offset int) callable.Handle[F] {
	return callable.New[F](r.GetFnPtr(offset), r)
}
