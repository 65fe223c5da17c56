package fixturebind_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confbind/binder"
	"confbind/bindrt"
	"confbind/expand"
	"confbind/internal/fixture"
	"confbind/internal/fixture/fixturebind"
	"confbind/schema"
	"confbind/source"
)

func registry(t *testing.T) *schema.Registry {
	t.Helper()

	reg := schema.NewRegistry()

	_, err := schema.Register[fixture.Config](reg, "app")
	require.NoError(t, err)

	_, err = schema.Register[fixture.Small](reg, "server")
	require.NoError(t, err)

	_, err = schema.Register[fixture.Chained](reg, "")
	require.NoError(t, err)

	_, err = schema.Register[fixture.Embedded](reg, "svc")
	require.NoError(t, err)

	_, err = schema.Register[fixture.Cyclic](reg, "loop")
	require.NoError(t, err)

	return reg
}

// candidates maps keys to the raw values a random source picks from. Some
// values do not convert so that error paths are compared too.
var candidates = []struct {
	key    string
	values []string
}{
	{"app.name", []string{"svc", "", " padded "}},
	{"app.port", []string{"9090", "0", "http"}},
	{"app.host", []string{"example.org", ""}},
	{"app.timeout", []string{"2.5", "x"}},
	{"app.debug", []string{"true", "false", "", "maybe"}},
	{"app.ratio", []string{"0.25", ""}},
	{"ratio.fallback", []string{"0.75", "nope"}},
	{"app.level", []string{"debug"}},
	{"app.tags", []string{"x,y", "", " , "}},
	{"app.weights", []string{"1,2,3", "70000"}},
	{"app.retry", []string{"2m", "10", "soon"}},
	{"app.grace", []string{"5", "-1", "5ms"}},
	{"app.dir", []string{"/tmp"}},
	{"app.base.timeout", []string{"1.5", ""}},
	{"app.base.root", []string{"/opt", ""}},
	{"app.tls.enabled", []string{"false"}},
	{"app.tls.cert-file", []string{"/c.pem"}},
	{"app.tls.min-version", []string{"13", "", "300"}},
	{"app.max-conns", []string{"7"}},
	{"app.burst", []string{"2", ""}},
	{"app.rate", []string{"3"}},
	{"limits.fallback-rate", []string{"4.5", "fast"}},
	{"app.servers.eu.host", []string{"eu.example.org", ""}},
	{"app.servers.eu.port", []string{"81", "-1"}},
	{"app.servers.eu.weight", []string{"3", ""}},
	{"app.servers.us.weight", []string{"1"}},
	{"app.servers.eu.backups[0].url", []string{"http://b0"}},
	{"app.servers.eu.backups[2].enabled", []string{"false"}},
	{"app.backends[0].url", []string{"http://a"}},
	{"app.backends[1].timeout", []string{"100", "later"}},
	{"app.backends[3].enabled", []string{"false", ""}},
	{"app.labels.zone", []string{"eu-1"}},
	{"app.labels.tier", []string{"", "web"}},
	{"app.aliases.ops", []string{"warn,error", ""}},
	{"app.mirrors[1].url", []string{"http://m"}},
	{"app.unknown", []string{"1"}},
}

func randomSource(r *rand.Rand) source.Map {
	src := source.Map{}

	for _, c := range candidates {
		if r.IntN(3) == 0 {
			continue
		}

		src[c.key] = c.values[r.IntN(len(c.values))]
	}

	return src
}

func TestConfigEquivalence(t *testing.T) {
	reg := registry(t)
	r := rand.New(rand.NewPCG(1, 2))

	for i := range 500 {
		src := randomSource(r)

		want, wantErr := binder.Bind[fixture.Config](reg, src)
		got, gotErr := fixturebind.BindConfig(src)

		if wantErr != nil || gotErr != nil {
			require.Error(t, wantErr, "run %d: generated code failed alone: %v\n%s", i, gotErr, spew.Sdump(src))
			require.Error(t, gotErr, "run %d: interpreted binding failed alone: %v\n%s", i, wantErr, spew.Sdump(src))
			assert.Equal(t, wantErr.Error(), gotErr.Error(), "run %d", i)

			continue
		}

		if !assert.Equal(t, want, got, "run %d", i) {
			t.Logf("source:\n%s", spew.Sdump(src))
		}
	}
}

func TestConfigEquivalenceEmpty(t *testing.T) {
	want, err := binder.Bind[fixture.Config](registry(t), source.Map{})
	require.NoError(t, err)

	got, err := fixturebind.BindConfig(source.Map{})
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestBindSmall(t *testing.T) {
	got, err := fixturebind.BindSmall(source.Map{"server.port": "9090"})
	require.NoError(t, err)
	assert.Equal(t, fixture.Small{Port: 9090, Host: "localhost"}, *got)
}

func TestBindChained(t *testing.T) {
	got, err := fixturebind.BindChained(source.Map{})
	require.NoError(t, err)
	assert.InDelta(t, 30.0, got.Timeout, 1e-9)

	got, err = fixturebind.BindChained(source.Map{"base.timeout": "12"})
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got.Timeout, 1e-9)
	assert.InDelta(t, 12.0, got.Base.Timeout, 1e-9)
}

func TestBindEmbedded(t *testing.T) {
	tests := []struct {
		name string
		src  source.Map
	}{
		{name: "defaults", src: source.Map{}},
		{name: "promoted values", src: source.Map{"svc.port": "9090", "svc.verbose": "true", "svc.name": "api"}},
		{name: "blank optional", src: source.Map{"svc.verbose": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := binder.Bind[fixture.Embedded](registry(t), tt.src)
			require.NoError(t, err)

			got, err := fixturebind.BindEmbedded(tt.src)
			require.NoError(t, err)

			assert.Equal(t, want, got)
		})
	}

	got, err := fixturebind.BindEmbedded(source.Map{"svc.port": "9090"})
	require.NoError(t, err)
	assert.Equal(t, 9090, got.Port)
	assert.Equal(t, "svc", got.Name)
	assert.Nil(t, got.Verbose)
}

func TestBindCyclic(t *testing.T) {
	_, err := fixturebind.BindCyclic(source.Map{})

	var cycle *expand.CycleError
	require.ErrorAs(t, err, &cycle)

	_, wantErr := binder.Bind[fixture.Cyclic](registry(t), source.Map{})
	require.Error(t, wantErr)
	assert.Equal(t, wantErr.Error(), err.Error())

	got, err := fixturebind.BindCyclic(source.Map{"loop.y": "z"})
	require.NoError(t, err)
	assert.Equal(t, fixture.Cyclic{X: "z", Y: "z"}, *got)
}

func TestBindConfig(t *testing.T) {
	var unrecognized []bindrt.Unrecognized

	got, err := fixturebind.BindConfig(source.Map{
		"app.retry":             "90s",
		"app.labels.zone":       "eu",
		"app.servers.edge.port": "81",
		"app.backends[1].url":   "http://b",
		"app.tls.min-version":   "",
		"app.prot":              "1",
	}, bindrt.WithUnrecognizedHandler(func(u []bindrt.Unrecognized) {
		unrecognized = u
	}))
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, got.Retry)
	assert.Equal(t, map[string]string{"zone": "eu"}, got.Labels)
	require.Contains(t, got.Servers, "edge")
	assert.Equal(t, "localhost", got.Servers["edge"].Host)
	assert.Equal(t, uint16(81), got.Servers["edge"].Port)
	require.Len(t, got.Pool, 2)
	assert.Equal(t, fixture.Backend{Enabled: true}, got.Pool[0])
	assert.Equal(t, "http://b", got.Pool[1].URL)
	assert.Nil(t, got.TLS.MinVer, "blank optional values stay nil")

	require.Len(t, unrecognized, 1)
	assert.Equal(t, "app.prot", unrecognized[0].Key)
}

func TestBindConfigErrors(t *testing.T) {
	_, err := fixturebind.BindConfig(source.Map{"app.port": "http"})

	var conv *bindrt.ConversionError
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, "app.port", conv.Key)

	_, err = fixturebind.BindConfig(source.Map{"ratio.fallback": "half"})
	require.ErrorAs(t, err, &conv)
	assert.True(t, conv.Default)
	assert.Equal(t, "app.ratio", conv.Key)
}
