// Package prompt resolves the on-screen icon for a logical action, matching
// the currently connected input device.
//
// Keys are built as "Controls/<family namespace>/<binding name>" and memoized
// per (namespace, name) together with the asset handle they resolve to. The
// cache is never invalidated during a session; call Reset when assets are
// reloaded.
//
// Resolution is best-effort: an action with no binding for the current device
// and a key with no asset both resolve to the asset placeholder.
package prompt
