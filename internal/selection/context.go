// ABOUTME: Context plumbing for the selection state
// ABOUTME: MustFromContext fails loudly on use before initialization

package selection

import "context"

type ctxKey struct{}

// NewContext returns a context carrying the selection state.
func NewContext(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the selection state attached to ctx, or nil.
func FromContext(ctx context.Context) *State {
	s, _ := ctx.Value(ctxKey{}).(*State)
	return s
}

// MustFromContext returns the selection state attached to ctx. Using the
// selection outside an initialized scope is a programming error, so a missing
// state panics instead of handing back defaults.
func MustFromContext(ctx context.Context) *State {
	s := FromContext(ctx)
	if s == nil {
		panic("selection: state used outside an initialized scope")
	}
	return s
}
