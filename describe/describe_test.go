package describe_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confbind/describe"
	"confbind/primitive"
)

type level string

type inner struct {
	Port int `default:"8080"`
}

type sample struct {
	HTTPPort  int           `default:"80" doc:"http.port"`
	Name      string        `config:"service-name"`
	Ignored   string        `config:"-"`
	Timeout   time.Duration `default:"1s"`
	Level     level
	Optional  *float64
	Tags      []string
	Inner     inner `config:",flatten"`
	Servers   map[string]*inner
	Backends  []inner
	Callback  func()
	unexported int
}

type embedding struct {
	inner
	Extra bool `default:""`
}

type Exposed struct {
	Host string
}

type exposing struct {
	Exposed
}

type embeddingPointer struct {
	*inner
}

type embeddingNamed struct {
	inner `config:"in"`
}

type recursive struct {
	Next *recursive
}

func TestFromReflect(t *testing.T) {
	info, err := describe.For[sample]()
	require.NoError(t, err)

	assert.Equal(t, describe.TypeKindStruct, info.Kind)
	assert.Equal(t, "sample", info.ID.Name)
	assert.Equal(t, reflect.TypeFor[sample](), info.Reflect)

	names := make([]string, 0, len(info.Fields))
	for _, f := range info.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{
		"http-port", "service-name", "timeout", "level", "optional", "tags", "", "servers", "backends", "callback",
	}, names)

	port := info.Fields[0]
	assert.Equal(t, "HTTPPort", port.GoName)
	assert.True(t, port.HasDefault)
	assert.Equal(t, "80", port.Default)
	assert.Equal(t, "http.port", port.Doc)
	assert.Equal(t, primitive.KindInt, port.Type.Scalar)
	assert.Equal(t, []int{0}, port.Index)

	timeout := info.Fields[2]
	assert.Equal(t, primitive.KindDuration, timeout.Type.Scalar)
	assert.Equal(t, describe.TypeID{PkgPath: "time", Name: "Duration"}, timeout.Type.ID)

	lvl := info.Fields[3]
	assert.Equal(t, describe.TypeKindScalar, lvl.Type.Kind)
	assert.Equal(t, primitive.KindString, lvl.Type.Scalar)
	assert.True(t, lvl.Type.IsNamed())

	assert.Equal(t, describe.TypeKindPointer, info.Fields[4].Type.Kind)
	assert.Equal(t, describe.TypeKindSlice, info.Fields[5].Type.Kind)

	flat := info.Fields[6]
	assert.True(t, flat.Flatten)
	assert.Equal(t, "Inner", flat.GoName)

	servers := info.Fields[7].Type
	assert.Equal(t, describe.TypeKindMap, servers.Kind)
	assert.Equal(t, primitive.KindString, servers.Key.Scalar)
	assert.Same(t, flat.Type, servers.Elem.Elem)

	assert.Equal(t, describe.TypeKindUnknown, info.Fields[9].Type.Kind)
	assert.Equal(t, "func()", info.Fields[9].Type.Detail)
}

func TestFromReflect_Embedded(t *testing.T) {
	info, err := describe.For[embedding]()
	require.NoError(t, err)
	require.Len(t, info.Fields, 2)

	port := info.Fields[0]
	assert.Equal(t, "Port", port.GoName)
	assert.Equal(t, "port", port.Name)
	assert.Equal(t, []int{0, 0}, port.Index, "promoted through the unexported embedded struct")
	assert.Equal(t, "8080", port.Default)
	assert.Equal(t, primitive.KindInt, port.Type.Scalar)

	assert.True(t, info.Fields[1].HasDefault)
	assert.Equal(t, "", info.Fields[1].Default)
	assert.Equal(t, []int{1}, info.Fields[1].Index)

	var v embedding
	reflect.ValueOf(&v).Elem().FieldByIndex(port.Index).SetInt(9090)
	assert.Equal(t, 9090, v.Port)
}

func TestFromReflect_EmbeddedExported(t *testing.T) {
	info, err := describe.For[exposing]()
	require.NoError(t, err)
	require.Len(t, info.Fields, 1)

	assert.True(t, info.Fields[0].Flatten)
	assert.Equal(t, "", info.Fields[0].Name)
	assert.Equal(t, describe.TypeKindStruct, info.Fields[0].Type.Kind)
}

func TestFromReflect_EmbeddedUnreachable(t *testing.T) {
	tests := []struct {
		name string
		info func() (*describe.TypeInfo, error)
		want string
	}{
		{name: "pointer", info: describe.For[embeddingPointer], want: "inner"},
		{name: "named segment", info: describe.For[embeddingNamed], want: "in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := tt.info()
			require.NoError(t, err)
			require.Len(t, info.Fields, 1)

			f := info.Fields[0]
			assert.Equal(t, tt.want, f.Name)
			assert.Equal(t, describe.TypeKindUnknown, f.Type.Kind)
			assert.Contains(t, f.Type.Detail, "of unexported type")
		})
	}
}

func TestFromReflect_Recursive(t *testing.T) {
	_, err := describe.For[recursive]()

	var rec *describe.RecursiveTypeError
	require.ErrorAs(t, err, &rec)
	assert.Equal(t, "recursive", rec.Type.Name)
}

func TestTypeInfo_Expr(t *testing.T) {
	info, err := describe.For[sample]()
	require.NoError(t, err)

	q := func(pkgPath string) string {
		if pkgPath == "time" {
			return "time"
		}

		return "pkg"
	}

	exprs := make([]string, 0, len(info.Fields))
	for _, f := range info.Fields {
		exprs = append(exprs, f.Type.Expr(q))
	}

	assert.Equal(t, []string{
		"int", "string", "time.Duration", "pkg.level", "*float64", "[]string",
		"pkg.inner", "map[string]*pkg.inner", "[]pkg.inner", "func()",
	}, exprs)

	assert.ElementsMatch(t, []string{"time"}, info.Fields[2].Type.Packages())
	assert.Len(t, info.Fields[7].Type.Packages(), 1)
}

func TestKebabCase(t *testing.T) {
	tests := map[string]string{
		"Port":       "port",
		"HTTPPort":   "http-port",
		"MaxConns":   "max-conns",
		"ID":         "id",
		"UserID":     "user-id",
		"Port2":      "port2",
		"V2Endpoint": "v2-endpoint",
		"snake_case": "snake-case",
		"TLS":        "tls",
	}

	for in, want := range tests {
		assert.Equal(t, want, describe.KebabCase(in), in)
	}
}

func ExampleParseField() {
	f, _ := describe.ParseField("MaxIdleConns", `default:"10"`, false)
	fmt.Println(f.Name, f.Default)

	f, _ = describe.ParseField("Pool", `config:"db-pool,flatten"`, false)
	fmt.Println(f.Flatten, f.Name == "")

	_, skip := describe.ParseField("Secret", `config:"-"`, false)
	fmt.Println(skip)
	// Output:
	// max-idle-conns 10
	// true true
	// true
}
