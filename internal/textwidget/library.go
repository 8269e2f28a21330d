package textwidget

import (
	"fmt"

	"github.com/billie-coop/scribe/internal/csync"
	"github.com/billie-coop/scribe/internal/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Library creates models and instances.
type Library interface {
	// CreateModel builds a model seeded with text. A nil uri gets a fresh
	// in-memory URI.
	CreateModel(text, languageID string, uri *URI) (Model, error)

	// Create binds a new instance to container and opts.Model.
	Create(container *Container, opts Options) (Instance, error)
}

// Textarea is the Library backed by bubbles' textarea.
type Textarea struct {
	models *csync.Map[string, *textModel]
	log    *zap.Logger
}

var _ Library = (*Textarea)(nil)

// NewTextarea creates an empty library.
func NewTextarea() *Textarea {
	return &Textarea{
		models: csync.NewMap[string, *textModel](),
		log:    logging.Named("textwidget"),
	}
}

func (l *Textarea) CreateModel(text, languageID string, uri *URI) (Model, error) {
	u := NewUntitledURI()
	if uri != nil && !uri.IsZero() {
		u = *uri
	}
	key := u.String()

	m := newTextModel(text, languageID, u, func() { l.models.Delete(key) })
	if !l.models.SetIfAbsent(key, m) {
		return nil, fmt.Errorf("create model %s: %w", key, ErrModelExists)
	}

	l.log.Debug("model created", zap.String("uri", key), zap.String("language", languageID))
	return m, nil
}

func (l *Textarea) Create(container *Container, opts Options) (Instance, error) {
	if container == nil {
		return nil, ErrNoContainer
	}
	if opts.Model == nil {
		return nil, ErrNoModel
	}
	m, ok := opts.Model.(*textModel)
	if !ok {
		return nil, fmt.Errorf("textwidget: model %s was not created by this library", opts.Model.URI())
	}
	if m.IsDisposed() {
		return nil, fmt.Errorf("create instance for %s: %w", m.URI(), ErrDisposed)
	}

	inst := newTextareaInstance(uuid.NewString(), container, opts, m)
	l.log.Debug("instance created", zap.String("id", inst.ID()), zap.String("uri", m.URI().String()))
	return inst, nil
}

// GetModel returns the live model registered under uri.
func (l *Textarea) GetModel(uri URI) (Model, bool) {
	m, ok := l.models.Get(uri.String())
	if !ok {
		return nil, false
	}
	return m, true
}

// Models lists live models ordered by URI.
func (l *Textarea) Models() []Model {
	keys := l.models.SortedKeys(func(a, b string) bool { return a < b })
	out := make([]Model, 0, len(keys))
	for _, k := range keys {
		if m, ok := l.models.Get(k); ok {
			out = append(out, m)
		}
	}
	return out
}
