// Package widget switches whole control trees on and off, for example to lock
// a form while an operation runs.
package widget

// Control is a GUI element that can be enabled and may contain other controls.
type Control interface {
	SetEnabled(enabled bool)
	Children() []Control
}

// SetEnabledTree enables or disables root and every control below it.
// The walk is depth-first and a control's children are switched before the
// control itself.
func SetEnabledTree(root Control, enabled bool) {
	if root == nil {
		return
	}
	for _, child := range root.Children() {
		SetEnabledTree(child, enabled)
	}
	root.SetEnabled(enabled)
}

// Busy disables root while fn runs and enables it again afterwards, also when
// fn fails or panics. It returns fn's error.
func Busy(root Control, fn func() error) error {
	SetEnabledTree(root, false)
	defer SetEnabledTree(root, true)
	return fn()
}
