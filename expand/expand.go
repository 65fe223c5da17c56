// Package expand substitutes property references inside default value
// expressions.
//
// A reference is written ${name} or ${name:fallback}. The referenced property
// is looked up through a Resolver and its raw text is itself expanded before
// substitution; the fallback is expanded only when the property is absent.
// A backslash before a dollar sign (\$) produces a literal dollar sign.
package expand

import (
	"fmt"
	"strings"
)

// Resolver returns the raw, unexpanded value of a property.
type Resolver interface {
	Resolve(name string) (string, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(name string) (string, bool)

// Resolve calls f(name).
func (f ResolverFunc) Resolve(name string) (string, bool) {
	return f(name)
}

// CycleError reports an expansion that revisited an expression it was still
// expanding. Chain lists the expressions from the outermost one to the repeat.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return "cyclic expansion: " + strings.Join(e.Chain, " -> ")
}

// UnresolvedError reports a reference without fallback to an absent property.
type UnresolvedError struct {
	Name       string
	Expression string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("cannot expand %q: property %q is not set", e.Expression, e.Name)
}

// Cache expands expressions for one binding pass. Completed expansions are
// memoized by expression and resolved properties by name, so every property
// is read from the Resolver at most once per pass. A Cache is not safe for
// concurrent use and must not be shared between passes.
type Cache struct {
	resolver Resolver
	done     map[string]string
	props    map[string]property
	active   map[string]struct{}
	stack    []string
}

// property is the expanded value of a referenced name, ok is false for
// absent properties.
type property struct {
	value string
	ok    bool
}

// NewCache returns an empty cache resolving references through r.
func NewCache(r Resolver) *Cache {
	return &Cache{
		resolver: r,
		done:     make(map[string]string),
		props:    make(map[string]property),
		active:   make(map[string]struct{}),
	}
}

// Expand returns the expansion of expr.
func (c *Cache) Expand(expr string) (string, error) {
	if out, ok := c.done[expr]; ok {
		return out, nil
	}

	if _, ok := c.active[expr]; ok {
		chain := make([]string, 0, len(c.stack)+1)
		chain = append(chain, c.stack...)

		return "", &CycleError{Chain: append(chain, expr)}
	}

	c.active[expr] = struct{}{}
	c.stack = append(c.stack, expr)

	defer func() {
		delete(c.active, expr)
		c.stack = c.stack[:len(c.stack)-1]
	}()

	out, err := walk(expr, c.reference)
	if err != nil {
		return "", err
	}

	c.done[expr] = out

	return out, nil
}

// Len returns the number of memoized expansions.
func (c *Cache) Len() int {
	return len(c.done)
}

func (c *Cache) reference(expr string, ref Reference) (string, error) {
	prop, seen := c.props[ref.Name]
	if !seen {
		var raw string
		if c.resolver != nil {
			raw, prop.ok = c.resolver.Resolve(ref.Name)
		}

		if prop.ok {
			v, err := c.Expand(raw)
			if err != nil {
				return "", err
			}

			prop.value = v
		}

		c.props[ref.Name] = prop
	}

	if prop.ok {
		return prop.value, nil
	}

	if ref.HasFallback {
		return c.Expand(ref.Fallback)
	}

	return "", &UnresolvedError{Name: ref.Name, Expression: expr}
}

// Reference is one ${...} occurrence.
type Reference struct {
	Name        string
	Fallback    string
	HasFallback bool
}

// References lists the top level references of expr in order of appearance.
func References(expr string) ([]Reference, error) {
	var refs []Reference

	_, err := walk(expr, func(_ string, ref Reference) (string, error) {
		refs = append(refs, ref)
		return "", nil
	})

	return refs, err
}

// IsLiteral reports whether expr is well formed and contains no references,
// so that its expansion does not depend on any property.
func IsLiteral(expr string) bool {
	refs, err := References(expr)
	return err == nil && len(refs) == 0
}

// Static expands an expression without references. ok is false when expr
// references properties or is malformed.
func Static(expr string) (out string, ok bool) {
	if !IsLiteral(expr) {
		return "", false
	}

	out, err := walk(expr, nil)
	if err != nil {
		return "", false
	}

	return out, true
}

// walk scans expr, copying text and replacing every reference by the result
// of fn.
func walk(expr string, fn func(expr string, ref Reference) (string, error)) (string, error) {
	if !strings.ContainsRune(expr, '$') {
		return expr, nil
	}

	var sb strings.Builder

	for i := 0; i < len(expr); i++ {
		ch := expr[i]

		switch {
		case ch == '\\' && i+1 < len(expr) && expr[i+1] == '$':
			sb.WriteByte('$')
			i++

		case ch == '$' && i+1 < len(expr) && expr[i+1] == '{':
			end, err := closing(expr, i+2)
			if err != nil {
				return "", err
			}

			ref, err := parseReference(expr, expr[i+2:end])
			if err != nil {
				return "", err
			}

			if fn == nil {
				return "", fmt.Errorf("unexpected reference to %q in %q", ref.Name, expr)
			}

			val, err := fn(expr, ref)
			if err != nil {
				return "", err
			}

			sb.WriteString(val)
			i = end

		default:
			sb.WriteByte(ch)
		}
	}

	return sb.String(), nil
}

// closing returns the index of the brace closing the reference whose body
// starts at from, honoring nested references.
func closing(expr string, from int) (int, error) {
	depth := 0

	for i := from; i < len(expr); i++ {
		switch {
		case expr[i] == '\\' && i+1 < len(expr) && expr[i+1] == '$':
			i++
		case expr[i] == '$' && i+1 < len(expr) && expr[i+1] == '{':
			depth++
			i++
		case expr[i] == '}':
			if depth == 0 {
				return i, nil
			}

			depth--
		}
	}

	return 0, fmt.Errorf("unterminated reference in %q", expr)
}

func parseReference(expr, body string) (Reference, error) {
	name, fallback, hasFallback := body, "", false

	depth := 0
	for i := 0; i < len(body); i++ {
		if body[i] == '$' && i+1 < len(body) && body[i+1] == '{' {
			depth++
			i++

			continue
		}

		if body[i] == '}' {
			depth--
			continue
		}

		if body[i] == ':' && depth == 0 {
			name, fallback, hasFallback = body[:i], body[i+1:], true
			break
		}
	}

	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, "${") {
		return Reference{}, fmt.Errorf("invalid reference ${%s} in %q", body, expr)
	}

	return Reference{Name: name, Fallback: fallback, HasFallback: hasFallback}, nil
}
