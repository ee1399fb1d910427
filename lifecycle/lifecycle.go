// Package lifecycle walks component trees, mounting and unmounting the
// components whose lifetimes scope reactive subscriptions.
package lifecycle

// Component is implemented by views that need mount/unmount hooks.
type Component interface {
	Mount()
	Unmount()
}

// Container provides child components.
type Container interface {
	Children() []Component
}

// MountTree calls Mount on root and its descendants, parents first.
func MountTree(root Component) {
	if root == nil {
		return
	}
	root.Mount()
	if c, ok := root.(Container); ok {
		for _, child := range c.Children() {
			MountTree(child)
		}
	}
}

// UnmountTree calls Unmount on root and its descendants, children first,
// so scoped subscriptions die leaf-first.
func UnmountTree(root Component) {
	if root == nil {
		return
	}
	if c, ok := root.(Container); ok {
		for _, child := range c.Children() {
			UnmountTree(child)
		}
	}
	root.Unmount()
}
