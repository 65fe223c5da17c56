// Package cursor walks the segments of a dotted configuration key.
//
// A key such as `app.servers."eu.west".ports[2]` splits into the segments
// app, servers, eu.west, ports and [2]. Quoted segments may contain dots,
// bracketed indices form their own segment and render without a leading dot.
//
// A Cursor separates a consumed prefix from the remaining suffix. Moving the
// boundary past either end is a defect and panics with *BoundsError.
package cursor

import (
	"fmt"
	"strconv"
	"strings"
)

// Delimiter separates plain segments.
const Delimiter = '.'

// BoundsError reports a cursor move outside of [0, Len()].
type BoundsError struct {
	Op       string
	Position int
	Len      int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cursor: %s at position %d of %d", e.Op, e.Position, e.Len)
}

// Cursor is a position over the segments of one key. It is owned by a single
// binding operation and never shared.
type Cursor struct {
	segments []string
	pos      int
}

// New returns a cursor over the given raw segments, positioned after the
// last one (everything consumed).
func New(segments ...string) *Cursor {
	return &Cursor{segments: segments, pos: len(segments)}
}

// Parse splits key into segments and returns a cursor positioned after the
// last segment.
func Parse(key string) (*Cursor, error) {
	segments, err := Split(key)
	if err != nil {
		return nil, err
	}

	return New(segments...), nil
}

// MustParse is Parse for keys known to be well formed.
func MustParse(key string) *Cursor {
	c, err := Parse(key)
	if err != nil {
		panic(err)
	}

	return c
}

// Split splits key into its segments.
func Split(key string) ([]string, error) {
	if key == "" {
		return nil, nil
	}

	var (
		segments []string
		current  strings.Builder
		started  bool
	)

	flush := func() error {
		if !started {
			return fmt.Errorf("invalid key %q: empty segment", key)
		}

		segments = append(segments, current.String())
		current.Reset()
		started = false

		return nil
	}

	for i := 0; i < len(key); i++ {
		ch := key[i]

		switch {
		case ch == '"' && !started:
			end := strings.IndexByte(key[i+1:], '"')
			if end < 0 {
				return nil, fmt.Errorf("invalid key %q: unterminated quote", key)
			}

			current.WriteString(key[i+1 : i+1+end])
			started = true
			i += end + 1

			if i+1 < len(key) && key[i+1] != Delimiter && key[i+1] != '[' {
				return nil, fmt.Errorf("invalid key %q: text after closing quote", key)
			}

		case ch == Delimiter:
			if err := flush(); err != nil {
				return nil, err
			}

			if i == len(key)-1 {
				return nil, fmt.Errorf("invalid key %q: trailing delimiter", key)
			}

		case ch == '[':
			end := strings.IndexByte(key[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("invalid key %q: unterminated index", key)
			}

			if started {
				if err := flush(); err != nil {
					return nil, err
				}
			} else if len(segments) == 0 {
				return nil, fmt.Errorf("invalid key %q: index without name", key)
			}

			index := key[i : i+end+1]
			if _, ok := ParseIndex(index); !ok {
				return nil, fmt.Errorf("invalid key %q: bad index %s", key, index)
			}

			segments = append(segments, index)
			i += end

			if i+1 < len(key) && key[i+1] != Delimiter && key[i+1] != '[' {
				return nil, fmt.Errorf("invalid key %q: text after index", key)
			}

			if i+1 < len(key) && key[i+1] == Delimiter {
				i++
				if i == len(key)-1 {
					return nil, fmt.Errorf("invalid key %q: trailing delimiter", key)
				}
			}

		default:
			current.WriteByte(ch)
			started = true
		}
	}

	if started {
		segments = append(segments, current.String())
	}

	return segments, nil
}

// Join renders segments back into a key, quoting segments that contain the
// delimiter and attaching index segments without a delimiter.
func Join(segments []string) string {
	var sb strings.Builder

	for i, seg := range segments {
		if IsIndex(seg) {
			sb.WriteString(seg)
			continue
		}

		if i > 0 {
			sb.WriteByte(Delimiter)
		}

		if seg == "" || strings.ContainsAny(seg, ".[]\"") {
			sb.WriteByte('"')
			sb.WriteString(seg)
			sb.WriteByte('"')

			continue
		}

		sb.WriteString(seg)
	}

	return sb.String()
}

// IsIndex reports whether seg is a bracketed index segment.
func IsIndex(seg string) bool {
	return len(seg) >= 2 && seg[0] == '[' && seg[len(seg)-1] == ']'
}

// ParseIndex returns the numeric value of an index segment such as "[2]".
func ParseIndex(seg string) (int, bool) {
	if !IsIndex(seg) {
		return 0, false
	}

	digits := seg[1 : len(seg)-1]
	if digits == "" || (len(digits) > 1 && digits[0] == '0') {
		return 0, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// IndexSegment returns the index segment for i.
func IndexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// Len returns the number of segments.
func (c *Cursor) Len() int {
	return len(c.segments)
}

// Position returns the number of consumed segments.
func (c *Cursor) Position() int {
	return c.pos
}

// HasNext reports whether a segment remains to be consumed.
func (c *Cursor) HasNext() bool {
	return c.pos < len(c.segments)
}

// Next consumes one segment and returns it.
func (c *Cursor) Next() string {
	if c.pos >= len(c.segments) {
		panic(&BoundsError{Op: "next", Position: c.pos, Len: len(c.segments)})
	}

	c.pos++

	return c.segments[c.pos-1]
}

// Previous gives back the last consumed segment and returns it.
func (c *Cursor) Previous() string {
	if c.pos <= 0 {
		panic(&BoundsError{Op: "previous", Position: c.pos, Len: len(c.segments)})
	}

	c.pos--

	return c.segments[c.pos]
}

// PeekNext returns the next segment without consuming it.
func (c *Cursor) PeekNext() string {
	if c.pos >= len(c.segments) {
		panic(&BoundsError{Op: "peek next", Position: c.pos, Len: len(c.segments)})
	}

	return c.segments[c.pos]
}

// PreviousSegment returns the last consumed segment without moving.
func (c *Cursor) PreviousSegment() string {
	if c.pos <= 0 {
		panic(&BoundsError{Op: "previous segment", Position: c.pos, Len: len(c.segments)})
	}

	return c.segments[c.pos-1]
}

// Remainder returns the unconsumed segments joined as a key.
func (c *Cursor) Remainder() string {
	return Join(c.segments[c.pos:])
}

// Consumed returns the consumed segments joined as a key.
func (c *Cursor) Consumed() string {
	return Join(c.segments[:c.pos])
}

// Name returns the full key regardless of position.
func (c *Cursor) Name() string {
	return Join(c.segments)
}

// Segments returns a copy of all segments.
func (c *Cursor) Segments() []string {
	return append([]string(nil), c.segments...)
}

// Child returns a new cursor over the consumed segments of c followed by seg,
// positioned at its end.
func (c *Cursor) Child(seg string) *Cursor {
	segments := make([]string, c.pos+1)
	copy(segments, c.segments[:c.pos])
	segments[c.pos] = seg

	return &Cursor{segments: segments, pos: len(segments)}
}

// Index is Child with an index segment.
func (c *Cursor) Index(i int) *Cursor {
	return c.Child(IndexSegment(i))
}

// Clone returns an independent copy of c.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{segments: c.Segments(), pos: c.pos}
}

// String returns the key with a marker at the cursor position, for debugging.
func (c *Cursor) String() string {
	return c.Consumed() + "|" + c.Remainder()
}
