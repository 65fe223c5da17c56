package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confbind/bindrt"
	"confbind/internal/fixture"
	"confbind/schema"
	"confbind/source"
)

func configTree(t *testing.T) *schema.Tree {
	t.Helper()

	tree, err := schema.Register[fixture.Config](schema.NewRegistry(), "app")
	require.NoError(t, err)

	return tree
}

func entryKeys(tree *schema.Tree) []string {
	var keys []string
	for _, e := range tree.Entries() {
		keys = append(keys, e.Key)
	}

	return keys
}

func TestBuildEntries(t *testing.T) {
	tree := configTree(t)
	keys := entryKeys(tree)

	for _, want := range []string{
		"app.name",
		"app.port",
		"app.grace",
		"app.base.timeout",
		"app.tls.enabled",
		"app.tls.cert-file",
		"app.tls.min-version",
		"app.max-conns",
		"app.rate",
		"app.servers.*.host",
		"app.servers.*.backups[*].url",
		"app.backends[*].url",
		"app.labels.*",
		"app.aliases.*",
		"app.mirrors[*].enabled",
	} {
		assert.Contains(t, keys, want)
	}

	assert.NotContains(t, keys, "app.secret")
	assert.NotContains(t, keys, "app.limits.max-conns")
	assert.Equal(t, "app.name", keys[0], "entries follow declaration order")
}

func TestBuildEntryDetails(t *testing.T) {
	tree := configTree(t)

	byKey := make(map[string]schema.Entry)
	for _, e := range tree.Entries() {
		byKey[e.Key] = e
	}

	port := byKey["app.port"]
	assert.Equal(t, "int", port.Type)
	assert.Equal(t, "8080", port.Default)
	assert.True(t, port.HasDefault)
	assert.Equal(t, "app.port", port.Doc)

	debug := byKey["app.debug"]
	assert.True(t, debug.Optional)
	assert.False(t, debug.HasDefault)

	tags := byKey["app.tags"]
	assert.Equal(t, "[]string", tags.Type)

	aliases := byKey["app.aliases.*"]
	assert.Equal(t, "[]string", aliases.Type)
}

func TestBuildDefaults(t *testing.T) {
	defaults := configTree(t).Defaults()

	assert.Equal(t, "app", defaults["app.name"])
	assert.Equal(t, "${app.base.timeout}", defaults["app.timeout"])
	assert.Equal(t, "30.0", defaults["app.base.timeout"])
	assert.Equal(t, "12", defaults["app.tls.min-version"])
	assert.Equal(t, "100", defaults["app.max-conns"])

	for key := range defaults {
		assert.NotContains(t, key, "*", "defaults below collections are not indexed")
	}
}

func TestResolveTrace(t *testing.T) {
	tree := configTree(t)

	res, err := tree.Resolve("app.backends[2].url")
	require.NoError(t, err)
	require.NotNil(t, res.Leaf)
	assert.Equal(t, "URL", res.Leaf.Field())
	assert.Equal(t, "app.backends[*].url", tree.Path(res.Leaf))

	require.Len(t, res.Trace, 4)
	assert.Equal(t, tree.Root().ID(), res.Trace[0].Node.ID())

	coll, ok := res.Trace[1].Node.(*schema.Collection)
	require.True(t, ok)
	assert.False(t, coll.Keyed())
	assert.Equal(t, "backends", res.Trace[1].Matched)
	assert.Equal(t, []string{"[2]"}, res.Trace[1].Consumed)

	elem := res.Trace[2].Node
	assert.Equal(t, coll.Elem(), elem.ID())
	assert.Empty(t, res.Trace[2].Matched)

	assert.Equal(t, "url", res.Trace[3].Matched)

	assert.Equal(t, 1, res.Consumed(coll))
	assert.Zero(t, res.Consumed(elem))
	assert.Zero(t, res.Consumed(tree.Root()))

	other, err := tree.Resolve("app.port")
	require.NoError(t, err)
	assert.Equal(t, -1, res.Consumed(other.Leaf))
	assert.False(t, res.Cursor.HasNext())
}

func TestResolveFlattened(t *testing.T) {
	tree := configTree(t)

	res, err := tree.Resolve("app.max-conns")
	require.NoError(t, err)
	require.Len(t, res.Trace, 3)

	g, ok := res.Trace[1].Node.(*schema.Group)
	require.True(t, ok)
	assert.True(t, g.Flattened())
	assert.Equal(t, "MaxConns", res.Leaf.Field())
}

func TestResolveKeyed(t *testing.T) {
	tree := configTree(t)

	res, err := tree.Resolve(`app.servers."eu.west".backups[0].enabled`)
	require.NoError(t, err)
	assert.Equal(t, "Enabled", res.Leaf.Field())
	assert.Equal(t, []string{"eu.west"}, res.Trace[1].Consumed)

	res, err = tree.Resolve("app.labels.zone")
	require.NoError(t, err)
	assert.Empty(t, res.Leaf.Field(), "map element leaves have no field")
}

func TestResolveUnknown(t *testing.T) {
	tree := configTree(t)

	for _, key := range []string{
		"other.port",
		"app",
		"app.base",
		"app.port.extra",
		"app.servers",
		"app.backends.first.url",
		"app.servers[0].host",
		"app.nope",
		"app.secret",
	} {
		t.Run(key, func(t *testing.T) {
			_, err := tree.Resolve(key)
			require.ErrorIs(t, err, schema.ErrUnknownKey)
		})
	}
}

type badMapKey struct {
	Ports map[int]string
}

type badMapValue struct {
	Servers map[string]fixture.Server
}

type duplicateSegment struct {
	Host    string
	Address string `config:"host"`
}

type misplacedDefault struct {
	Base fixture.Base `default:"x"`
}

type anonymous struct {
	Inner struct {
		A int
	}
}

type unsupported struct {
	Events chan int
}

type embeddedOptions struct {
	Level string
}

type embeddedPointer struct {
	*embeddedOptions
}

type embeddedNamed struct {
	embeddedOptions `config:"options"`
}

type flattenScalar struct {
	Port int `config:",flatten"`
}

func TestBuildDefects(t *testing.T) {
	tests := []struct {
		name    string
		typ     func(*schema.Registry, string) (*schema.Tree, error)
		errCode string
	}{
		{name: "map key", typ: schema.Register[badMapKey], errCode: schema.CodeMapKey},
		{name: "map value", typ: schema.Register[badMapValue], errCode: schema.CodeMapValue},
		{name: "duplicate segment", typ: schema.Register[duplicateSegment], errCode: schema.CodeDuplicateSegment},
		{name: "misplaced default", typ: schema.Register[misplacedDefault], errCode: schema.CodeMisplacedDefault},
		{name: "anonymous struct", typ: schema.Register[anonymous], errCode: schema.CodeAnonymousStruct},
		{name: "unsupported", typ: schema.Register[unsupported], errCode: schema.CodeUnsupportedType},
		{name: "flatten scalar", typ: schema.Register[flattenScalar], errCode: schema.CodeFlatten},
		{name: "unexported embedded pointer", typ: schema.Register[embeddedPointer], errCode: schema.CodeUnsupportedType},
		{name: "unexported embedded named", typ: schema.Register[embeddedNamed], errCode: schema.CodeUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.typ(schema.NewRegistry(), "svc")

			var defect *bindrt.SchemaDefectError
			require.ErrorAs(t, err, &defect)
			assert.Equal(t, "register", defect.Op)
			assert.Contains(t, err.Error(), "["+tt.errCode+"]")
		})
	}
}

func TestBuildRejectsNonStruct(t *testing.T) {
	_, err := schema.Register[int](schema.NewRegistry(), "app")

	var defect *bindrt.SchemaDefectError
	require.ErrorAs(t, err, &defect)
}

func TestRegistry(t *testing.T) {
	reg := schema.NewRegistry()

	small, err := schema.Register[fixture.Small](reg, "server")
	require.NoError(t, err)

	_, err = schema.Register[fixture.Small](reg, "other")
	require.Error(t, err, "types register once")

	_, err = schema.Register[fixture.Chained](reg, "server")
	require.Error(t, err, "prefixes hold one root")

	chained, err := schema.Register[fixture.Chained](reg, "")
	require.NoError(t, err)

	got, ok := reg.Lookup("server")
	require.True(t, ok)
	assert.Same(t, small, got)

	assert.Equal(t, []*schema.Tree{small, chained}, reg.Roots())
}

func TestValidate(t *testing.T) {
	tree := configTree(t)

	d := tree.Validate(source.Map{
		"app.port":             "9090",
		"app.prot":             "1",
		"app.max-conns":        "many",
		"app.backends[0].url":  "http://a",
		"app.labels.zone":      "eu",
		"app.servers.a.weight": "",
		"unrelated.key":        "x",
	})

	require.Len(t, d.Warnings, 1)
	assert.Equal(t, schema.CodeUnknownKey, d.Warnings[0].Code)
	assert.Equal(t, "app.prot", d.Warnings[0].Key)
	assert.Contains(t, d.Warnings[0].Suggestions, "app.port")

	require.Len(t, d.Errors, 1)
	assert.Equal(t, schema.CodeConversion, d.Errors[0].Code)
	assert.Equal(t, "app.max-conns", d.Errors[0].Key)
}

type brokenDefault struct {
	Port int    `default:"${svc.host}"`
	Host string `default:"${svc.port}"`
	URL  string `default:"${missing}"`
}

func TestValidateDefaults(t *testing.T) {
	tree, err := schema.Register[brokenDefault](schema.NewRegistry(), "svc")
	require.NoError(t, err)

	d := tree.Validate(source.Map{})
	require.Len(t, d.Errors, 3)

	for _, e := range d.Errors {
		assert.Equal(t, schema.CodeDefault, e.Code)
	}

	d = tree.Validate(source.Map{"svc.port": "1", "svc.host": "h", "missing": "x"})
	assert.False(t, d.HasErrors())
}
