// Package textwidget is the editing surface scribe embeds.
//
// It exposes a small capability set modelled on browser code editors:
//
//   - Library.CreateModel builds a text model (content, language, URI)
//   - Library.Create binds an Instance to a Container and a model
//   - Instance.OnDidChangeModelContent fires on every content mutation
//   - Model.Dispose and Instance.Dispose release both halves
//
// The Textarea library renders instances with bubbles' textarea. Models live
// in a registry keyed by URI; creating a second live model with the same URI
// fails with ErrModelExists, so callers must dispose before they recreate.
package textwidget
