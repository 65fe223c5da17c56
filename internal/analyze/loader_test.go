package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confbind/describe"
	"confbind/internal/fixture"
	"confbind/primitive"
	"confbind/schema"
)

const fixturePkg = "confbind/internal/fixture"

func loadFixture(t *testing.T) *Analyzer {
	t.Helper()

	a := NewAnalyzer()
	require.NoError(t, a.LoadPackages(fixturePkg))

	return a
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	a := loadFixture(t)

	assert.Contains(t, a.Packages(), fixturePkg)
}

func TestAnalyzer_Describe(t *testing.T) {
	a := loadFixture(t)

	info, err := a.GetStruct(describe.TypeID{PkgPath: fixturePkg, Name: "TLS"})
	require.NoError(t, err)

	require.Len(t, info.Fields, 3)
	assert.Nil(t, info.Reflect)

	minVer := info.Fields[2]
	assert.Equal(t, "min-version", minVer.Name)
	assert.Equal(t, "12", minVer.Default)
	assert.Equal(t, describe.TypeKindPointer, minVer.Type.Kind)
	assert.Equal(t, primitive.KindUint8, minVer.Type.Elem.Scalar)
}

func TestAnalyzer_Duration(t *testing.T) {
	a := loadFixture(t)

	info, err := a.GetStruct(describe.TypeID{PkgPath: fixturePkg, Name: "Config"})
	require.NoError(t, err)

	for _, f := range info.Fields {
		if f.GoName == "Retry" {
			assert.Equal(t, primitive.KindDuration, f.Type.Scalar)
			assert.Equal(t, "time.Duration", f.Type.String())

			return
		}
	}

	t.Fatal("field Retry not described")
}

func TestAnalyzer_MatchesReflect(t *testing.T) {
	a := loadFixture(t)

	tests := []struct {
		name    string
		prefix  string
		reflect func() (*describe.TypeInfo, error)
	}{
		{name: "Config", prefix: "app", reflect: describe.For[fixture.Config]},
		{name: "Embedded", prefix: "svc", reflect: describe.For[fixture.Embedded]},
		{name: "Cyclic", prefix: "loop", reflect: describe.For[fixture.Cyclic]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromTypes, err := a.GetStruct(describe.TypeID{PkgPath: fixturePkg, Name: tt.name})
			require.NoError(t, err)

			fromReflect, err := tt.reflect()
			require.NoError(t, err)

			want, err := schema.Build(tt.prefix, fromReflect)
			require.NoError(t, err)

			got, err := schema.Build(tt.prefix, fromTypes)
			require.NoError(t, err)

			assert.Equal(t, want.Entries(), got.Entries())
			assert.Equal(t, want.Defaults(), got.Defaults())
			assert.Equal(t, want.Len(), got.Len())
		})
	}
}

func TestAnalyzer_PromotesUnexportedEmbedded(t *testing.T) {
	a := loadFixture(t)

	info, err := a.GetStruct(describe.TypeID{PkgPath: fixturePkg, Name: "Embedded"})
	require.NoError(t, err)
	require.Len(t, info.Fields, 3)

	var names []string
	for _, f := range info.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"port", "verbose", "name"}, names)
	assert.Equal(t, []int{0, 0}, info.Fields[0].Index)
	assert.Equal(t, []int{0, 1}, info.Fields[1].Index)
	assert.Equal(t, []int{1}, info.Fields[2].Index)
}

func TestAnalyzer_Errors(t *testing.T) {
	a := loadFixture(t)

	_, err := a.Describe(describe.TypeID{PkgPath: "example.com/missing", Name: "Config"})
	assert.ErrorContains(t, err, "not loaded")

	_, err = a.Describe(describe.TypeID{PkgPath: fixturePkg, Name: "Nope"})
	assert.ErrorContains(t, err, "not found")

	_, err = a.GetStruct(describe.TypeID{PkgPath: fixturePkg, Name: "Level"})
	assert.ErrorContains(t, err, "not a struct")
}
