package bindrt

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"confbind/cursor"
	"confbind/expand"
	"confbind/internal/match"
	"confbind/primitive"
	"confbind/source"
)

// MaxElements bounds the length of indexed collections.
const MaxElements = 1 << 16

// Unrecognized is a source key no schema node consumed during a pass.
type Unrecognized struct {
	Key         string
	Suggestions []string
}

// Option configures a Pass.
type Option func(*Pass)

// WithLogger provides a logger for the pass. The default discards events.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pass) {
		p.logger = logger
	}
}

// WithUnrecognizedHandler is called by Finish with the unrecognized keys,
// if there are any.
func WithUnrecognizedHandler(fn func([]Unrecognized)) Option {
	return func(p *Pass) {
		p.onUnrecognized = fn
	}
}

// Pass holds the state of one binding pass: the source, the expansion cache
// and the keys consumed so far. Interpreted binding and generated code drive
// a Pass the same way. A Pass is not safe for concurrent use; concurrent
// passes each need their own.
type Pass struct {
	src      source.Source
	defaults map[string]string
	cache    *expand.Cache
	seen     map[string]struct{}
	keys     []string

	logger         zerolog.Logger
	onUnrecognized func([]Unrecognized)
}

// NewPass starts a pass over src. defaults maps static keys to their default
// expressions; references in default expressions resolve against the source
// first and these defaults second.
func NewPass(src source.Source, defaults map[string]string, opts ...Option) *Pass {
	p := &Pass{
		src:      src,
		defaults: defaults,
		seen:     make(map[string]struct{}),
		logger:   zerolog.Nop(),
	}
	p.cache = expand.NewCache(expand.ResolverFunc(p.resolve))

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Pass) resolve(name string) (string, bool) {
	if raw, ok := p.src.Lookup(name); ok {
		p.seen[name] = struct{}{}
		return raw, true
	}

	raw, ok := p.defaults[name]

	return raw, ok
}

// Source returns the source of the pass.
func (p *Pass) Source() source.Source {
	return p.src
}

// Cache returns the expansion cache of the pass.
func (p *Pass) Cache() *expand.Cache {
	return p.cache
}

// Has reports whether the source holds key.
func (p *Pass) Has(key string) bool {
	p.seen[key] = struct{}{}

	_, ok := p.src.Lookup(key)

	return ok
}

// Value reads and converts the value of key. Blank scalar values and absent
// keys yield nil, which assigns as the zero value.
func (p *Pass) Value(key string, t primitive.Type) (any, error) {
	p.seen[key] = struct{}{}

	raw, ok := p.src.Lookup(key)
	if !ok || (!t.List && strings.TrimSpace(raw) == "") {
		return nil, nil
	}

	v, err := primitive.Convert(raw, t)
	if err != nil {
		return nil, &ConversionError{Key: key, Expected: t.String(), Value: raw, Err: err}
	}

	return v, nil
}

// Default expands and converts the default expression of key. A blank
// expansion for a scalar yields nil.
func (p *Pass) Default(key, expr string, t primitive.Type) (any, error) {
	s, err := p.cache.Expand(expr)
	if err != nil {
		return nil, &DefaultError{Key: key, Expression: expr, Err: err}
	}

	p.logger.Debug().Str("key", key).Str("expression", expr).Str("value", s).Msg("default expanded")

	if !t.List && strings.TrimSpace(s) == "" {
		return nil, nil
	}

	v, err := primitive.Convert(s, t)
	if err != nil {
		return nil, &ConversionError{Key: key, Expected: t.String(), Value: s, Default: true, Err: err}
	}

	return v, nil
}

// Elements returns the sorted element keys of the keyed collection at c:
// the distinct segments that follow c.Name() in source keys.
func (p *Pass) Elements(c *cursor.Cursor) []string {
	name := c.Name()
	found := make(map[string]struct{})

	for _, key := range p.sourceKeys() {
		rest, ok := strings.CutPrefix(key, name+".")
		if !ok {
			continue
		}

		segments, err := cursor.Split(rest)
		if err != nil || len(segments) == 0 || cursor.IsIndex(segments[0]) {
			continue
		}

		found[segments[0]] = struct{}{}
	}

	elems := slices.Sorted(maps.Keys(found))

	p.logger.Debug().Str("key", name).Strs("elements", elems).Msg("collection elements discovered")

	return elems
}

// Length returns the length of the indexed collection at c: one more than the
// largest index found in source keys, or zero.
func (p *Pass) Length(c *cursor.Cursor) (int, error) {
	name := c.Name()
	length := 0

	for _, key := range p.sourceKeys() {
		rest, ok := strings.CutPrefix(key, name)
		if !ok || !strings.HasPrefix(rest, "[") {
			continue
		}

		end := strings.IndexByte(rest, ']')
		if end < 0 {
			continue
		}

		i, ok := cursor.ParseIndex(rest[:end+1])
		if !ok {
			continue
		}

		if i >= MaxElements {
			return 0, fmt.Errorf("key %s: index %d exceeds the limit of %d elements", key, i, MaxElements)
		}

		length = max(length, i+1)
	}

	p.logger.Debug().Str("key", name).Int("length", length).Msg("collection length discovered")

	return length, nil
}

// Finish reports the source keys under root that the pass did not consume.
// Unrecognized keys are logged as warnings and handed to the handler set by
// WithUnrecognizedHandler; they are not errors.
func (p *Pass) Finish(root *cursor.Cursor) []Unrecognized {
	prefix := root.Name()
	known := slices.Sorted(maps.Keys(p.seen))

	var out []Unrecognized

	for _, key := range p.sourceKeys() {
		if _, ok := p.seen[key]; ok || !under(key, prefix) {
			continue
		}

		u := Unrecognized{Key: key, Suggestions: match.Suggest(key, known, 3)}
		out = append(out, u)

		p.logger.Warn().Str("key", key).Strs("suggestions", u.Suggestions).Msg("unrecognized configuration key")
	}

	if len(out) > 0 && p.onUnrecognized != nil {
		p.onUnrecognized(out)
	}

	return out
}

func (p *Pass) sourceKeys() []string {
	if p.keys == nil {
		p.keys = p.src.Keys()
		slices.Sort(p.keys)
	}

	return p.keys
}

func under(key, prefix string) bool {
	if prefix == "" || key == prefix {
		return true
	}

	return strings.HasPrefix(key, prefix+".") || strings.HasPrefix(key, prefix+"[")
}
