package bindrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confbind/cursor"
	"confbind/expand"
	"confbind/primitive"
	"confbind/source"
)

func TestPassValue(t *testing.T) {
	p := NewPass(source.Map{
		"server.port":  "9090",
		"server.host":  "  ",
		"server.tags":  "a, ,b",
		"server.ratio": "half",
	}, nil)

	v, err := p.Value("server.port", primitive.Of(primitive.KindInt))
	require.NoError(t, err)
	assert.Equal(t, 9090, v)

	v, err = p.Value("server.host", primitive.Of(primitive.KindString))
	require.NoError(t, err)
	assert.Nil(t, v, "blank scalar yields nil")

	v, err = p.Value("server.tags", primitive.ListOf(primitive.KindString))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)

	v, err = p.Value("server.missing", primitive.Of(primitive.KindInt))
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = p.Value("server.ratio", primitive.Of(primitive.KindFloat64))

	var conv *ConversionError
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, "server.ratio", conv.Key)
	assert.Equal(t, "float64", conv.Expected)
	assert.False(t, conv.Default)
}

func TestPassDefault(t *testing.T) {
	defaults := map[string]string{
		"base.timeout": "30.0",
		"timeout":      "${base.timeout}",
		"name":         "${host:localhost}",
		"loop.a":       "${loop.b}",
		"loop.b":       "${loop.a}",
	}

	tests := []struct {
		name    string
		key     string
		typ     primitive.Type
		src     source.Map
		want    any
		wantErr any
	}{
		{name: "chained", key: "timeout", typ: primitive.Of(primitive.KindFloat64), want: 30.0},
		{name: "source wins over default", key: "timeout", typ: primitive.Of(primitive.KindFloat64), src: source.Map{"base.timeout": "5"}, want: 5.0},
		{name: "fallback", key: "name", typ: primitive.Of(primitive.KindString), want: "localhost"},
		{name: "cycle", key: "loop.a", typ: primitive.Of(primitive.KindString), wantErr: new(*expand.CycleError)},
		{name: "not convertible", key: "name", typ: primitive.Of(primitive.KindInt), wantErr: new(*ConversionError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.src
			if src == nil {
				src = source.Map{}
			}

			p := NewPass(src, defaults)

			v, err := p.Default(tt.key, defaults[tt.key], tt.typ)
			if tt.wantErr != nil {
				require.ErrorAs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestPassDefaultError(t *testing.T) {
	p := NewPass(source.Map{}, nil)

	_, err := p.Default("url", "${missing}", primitive.Of(primitive.KindString))

	var de *DefaultError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "url", de.Key)
	assert.Equal(t, "${missing}", de.Expression)
}

func TestPassBlankDefault(t *testing.T) {
	p := NewPass(source.Map{}, nil)

	v, err := p.Default("name", "", primitive.Of(primitive.KindInt))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestPassElements(t *testing.T) {
	p := NewPass(source.Map{
		"app.labels.zone":      "eu",
		"app.labels.tier":      "web",
		"app.labels.tier.sub":  "x",
		"app.labels[0]":        "skipped",
		"app.labelsextra.name": "other",
	}, nil)

	assert.Equal(t, []string{"tier", "zone"}, p.Elements(cursor.MustParse("app.labels")))
	assert.Empty(t, p.Elements(cursor.MustParse("app.missing")))
}

func TestPassLength(t *testing.T) {
	p := NewPass(source.Map{
		"app.servers[0].host": "a",
		"app.servers[2].host": "c",
		"app.serversx[7]":     "other",
	}, nil)

	n, err := p.Length(cursor.MustParse("app.servers"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = p.Length(cursor.MustParse("app.backends"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPassLengthLimit(t *testing.T) {
	p := NewPass(source.Map{"app.servers[65536].host": "a"}, nil)

	_, err := p.Length(cursor.MustParse("app.servers"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds the limit")
}

func TestPassFinish(t *testing.T) {
	src := source.Map{
		"server.port":  "9090",
		"server.prot":  "1",
		"other.key":    "ignored",
		"server.label": "x",
	}

	var handled []Unrecognized

	p := NewPass(src, nil, WithUnrecognizedHandler(func(u []Unrecognized) {
		handled = u
	}))

	p.Has("server.port")
	p.Has("server.label")

	got := p.Finish(cursor.MustParse("server"))
	require.Len(t, got, 1)
	assert.Equal(t, "server.prot", got[0].Key)
	assert.Contains(t, got[0].Suggestions, "server.port")
	assert.Equal(t, got, handled)
}

func TestPassFinishCountsReferencedKeys(t *testing.T) {
	p := NewPass(source.Map{"app.base": "/srv"}, nil)

	_, err := p.Default("app.root", "${app.base}/data", primitive.Of(primitive.KindString))
	require.NoError(t, err)

	assert.Empty(t, p.Finish(cursor.MustParse("app")))
}
