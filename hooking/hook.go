// Package hooking lets observers attach to parameter objects and be notified
// when they are validated.
package hooking

// HookPos names the point in a parameter object's life at which hooks run.
type HookPos struct {
	Name string
}

// HookPosAfterValidate triggers after a parameter object has been validated.
// The Item is the validated object and the Detail is the returned error, which
// is nil when validation succeeded.
var HookPosAfterValidate = &HookPos{Name: "AfterValidate"}

// HookCtx describes one invocation of the hooks.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   any
	Detail any
}

// Hookable is a parameter object that accepts hooks.
type Hookable interface {
	AcceptHook(hook Hook)
}

// Hook observes parameter objects.
type Hook interface {
	Func(ctx HookCtx)
}

// HookableBase keeps the hooks of a parameter object. Embed it to implement
// Hookable. The zero value has no hooks.
type HookableBase struct {
	hooks []Hook
}

// AcceptHook registers a hook. Hooks run in registration order.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.hooks = append(h.hooks, hook)
}

// NumHooks returns the number of registered hooks.
func (h *HookableBase) NumHooks() int {
	return len(h.hooks)
}

// InvokeHook runs every hook with ctx.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}

// CopyHooks returns a HookableBase with the same hooks. Hooks accepted by
// either copy afterwards are not seen by the other.
func (h *HookableBase) CopyHooks() HookableBase {
	if h.hooks == nil {
		return HookableBase{}
	}

	hooks := make([]Hook, len(h.hooks))
	copy(hooks, h.hooks)

	return HookableBase{hooks: hooks}
}
