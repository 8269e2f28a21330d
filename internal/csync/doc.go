// Package csync provides thread-safe concurrent data structures.
//
// The text widget library keeps its live model registry in a Map so that a
// model URI stays unique even when documents are created from background
// commands.
//
// Example usage:
//
//	models := csync.NewMap[string, *Model]()
//	if !models.SetIfAbsent(uri, model) {
//		return ErrModelExists
//	}
//	defer models.Delete(uri)
package csync
