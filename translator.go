package priorityadapter

import (
	"context"
	"maps"
	"time"
)

// Translator maps legacy priorities onto level names and forwards each event
// to a Sink. Its configuration is fixed at construction, so a Translator is
// safe for concurrent use whenever its sink is.
type Translator struct {
	sink         Sink
	translations map[Priority]Level
	fallback     Level
	withContext  bool
}

type translatorConfig struct {
	overrides   []map[Priority]Level
	fallback    Level
	withContext bool
}

// Option customizes translator construction.
type Option func(*translatorConfig)

// New creates a translator forwarding to sink, which is adapted with AsSink.
// Without options every standard priority maps to its level name, unknown
// priorities map to LevelDebug and events are forwarded without context.
//
// Example:
//
//	translator, err := priorityadapter.New(slog.Default(),
//		priorityadapter.WithTranslations(map[priorityadapter.Priority]priorityadapter.Level{
//			8: priorityadapter.LevelNotice,
//		}),
//		priorityadapter.WithEventContext(true),
//	)
func New(sink any, opts ...Option) (*Translator, error) {
	s, err := AsSink(sink)
	if err != nil {
		return nil, err
	}

	cfg := translatorConfig{fallback: LevelDebug}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.fallback == "" {
		cfg.fallback = LevelDebug
	}

	translations := DefaultTranslations()
	for _, o := range cfg.overrides {
		maps.Copy(translations, o)
	}

	return &Translator{
		sink:         s,
		translations: translations,
		fallback:     cfg.fallback,
		withContext:  cfg.withContext,
	}, nil
}

// WithTranslations merges overrides onto the default table. Entries for the
// same priority replace the default; all other defaults remain. Level names
// are not validated. Repeated options are applied in order.
func WithTranslations(overrides map[Priority]Level) Option {
	return func(cfg *translatorConfig) {
		if len(overrides) > 0 {
			cfg.overrides = append(cfg.overrides, maps.Clone(overrides))
		}
	}
}

// WithEventContext controls whether the event's non-message fields are
// passed to the sink as context.
func WithEventContext(enabled bool) Option {
	return func(cfg *translatorConfig) {
		cfg.withContext = enabled
	}
}

// WithFallbackLevel sets the level used for priorities missing from the
// table. An empty level restores LevelDebug.
func WithFallbackLevel(level Level) Option {
	return func(cfg *translatorConfig) {
		cfg.fallback = level
	}
}

// Handle translates e and forwards it to the sink exactly once. Errors from
// the sink are returned as is.
func (t *Translator) Handle(ctx context.Context, e Event) error {
	if t == nil || t.sink == nil {
		return nil
	}

	var fields map[string]any
	if t.withContext {
		fields = e.Fields()
	}
	return t.sink.Log(ctx, t.Level(e.Priority), e.Message, fields)
}

// Log builds an event stamped with the current time and the priority's name,
// attaching keyvals as extra fields, and hands it to Handle.
func (t *Translator) Log(ctx context.Context, p Priority, msg string, keyvals ...any) error {
	return t.Handle(ctx, Event{
		Priority:     p,
		Message:      msg,
		PriorityName: p.String(),
		Timestamp:    time.Now(),
		Extra:        buildFields(keyvals),
	})
}

// Level returns the level p translates to, using the fallback on a miss.
func (t *Translator) Level(p Priority) Level {
	if t == nil {
		return LevelDebug
	}
	if lvl, ok := t.translations[p]; ok {
		return lvl
	}
	return t.fallback
}

// Translations returns a copy of the merged translation table.
func (t *Translator) Translations() map[Priority]Level {
	if t == nil {
		return nil
	}
	return maps.Clone(t.translations)
}

// FallbackLevel returns the level used for untranslated priorities.
func (t *Translator) FallbackLevel() Level {
	if t == nil {
		return LevelDebug
	}
	return t.fallback
}

// EventContext reports whether event fields are forwarded as context.
func (t *Translator) EventContext() bool { return t != nil && t.withContext }
