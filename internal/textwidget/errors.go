package textwidget

import "errors"

var (
	// ErrModelExists is returned when a live model already owns the URI.
	ErrModelExists = errors.New("textwidget: model with this uri already exists")

	// ErrDisposed is returned when binding to a disposed model.
	ErrDisposed = errors.New("textwidget: model is disposed")

	// ErrNoContainer is returned when Create is called without a container.
	ErrNoContainer = errors.New("textwidget: container is required")

	// ErrNoModel is returned when Create is called without a model binding.
	ErrNoModel = errors.New("textwidget: options must carry a model")
)
