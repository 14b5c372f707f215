package schema

import (
	"context"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// ctyValue lets go-cmp compare cty.Value fields without reaching into
// unexported state.
var ctyValue = cmp.Comparer(func(a, b cty.Value) bool { return a.RawEquals(b) })

var ctyType = cmp.Comparer(func(a, b cty.Type) bool { return a.Equals(b) })

func nopValidator(Entries, cty.Value) error { return nil }

func TestCompile_EmptySection(t *testing.T) {
	ty, err := NewBuilder("empty").Compile(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ty)
	assert.Equal(t, "empty", ty.Name())
	assert.Zero(t, ty.NumEntries())
	assert.Empty(t, ty.Entries())
}

func TestCompile_EntriesInDeclarationOrder(t *testing.T) {
	b := NewBuilder("db").
		Doc("database connection settings").
		Entry("host", cty.String).
		EntryDefault("port", cty.Number, cty.NumberIntVal(5432)).
		Entry("replicas", cty.List(cty.String))

	ty, err := b.Compile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "database connection settings", ty.Doc())

	want := []EntryDescriptor{
		{Name: "host", Type: cty.String},
		{Name: "port", Type: cty.Number, HasDefault: true, Default: cty.NumberIntVal(5432)},
		{Name: "replicas", Type: cty.List(cty.String)},
	}
	if diff := cmp.Diff(want, ty.Entries(), ctyValue, ctyType); diff != "" {
		t.Fatalf("entry table mismatch (-want +got):\n%s", diff)
	}

	desc, ok := ty.Entry("port")
	require.True(t, ok)
	assert.True(t, desc.HasDefault)
	assert.True(t, desc.Default.RawEquals(cty.NumberIntVal(5432)))

	_, ok = ty.Entry("nope")
	assert.False(t, ok)

	i, ok := ty.EntryIndex("replicas")
	require.True(t, ok)
	assert.Equal(t, 2, i)
}

func TestCompile_StructuralErrors(t *testing.T) {
	testCases := []struct {
		name      string
		build     func() *Builder
		wantName  string
		wantInMsg []string
	}{
		{
			name: "underscore entry name",
			build: func() *Builder {
				return NewBuilder("s").Entry("_my_entry", cty.Number)
			},
			wantName:  "_my_entry",
			wantInMsg: []string{"'_my_entry'", "underscore"},
		},
		{
			name: "case-insensitive duplicate",
			build: func() *Builder {
				return NewBuilder("s").
					Entry("my_entry", cty.Number).
					Entry("My_Entry", cty.String)
			},
			wantName:  "My_Entry",
			wantInMsg: []string{"case-insensitive"},
		},
		{
			name: "exact duplicate",
			build: func() *Builder {
				return NewBuilder("s").
					Entry("my_entry", cty.Number).
					Entry("my_entry", cty.Number)
			},
			wantName:  "my_entry",
			wantInMsg: []string{"more than once"},
		},
		{
			name: "entry name collides with method name",
			build: func() *Builder {
				return NewBuilder("s").
					Method("my_entry", func(Entries) (cty.Value, error) { return cty.NilVal, nil }).
					Entry("my_entry", cty.Number)
			},
			wantName: "my_entry",
		},
		{
			name: "value without declared type",
			build: func() *Builder {
				return NewBuilder("s").Constant("my_entry", cty.NumberIntVal(42))
			},
			wantName:  "my_entry",
			wantInMsg: []string{"'my_entry'", "declared type"},
		},
		{
			name: "entry with nil type",
			build: func() *Builder {
				return NewBuilder("s").Entry("my_entry", cty.NilType)
			},
			wantName:  "my_entry",
			wantInMsg: []string{"no declared type"},
		},
		{
			name: "initializer override",
			build: func() *Builder {
				return NewBuilder("s").Entry("my_entry", cty.Number).Init(func() {})
			},
			wantName:  "Init",
			wantInMsg: []string{"'Init'", "constructor"},
		},
		{
			name: "explicit storage declaration",
			build: func() *Builder {
				return NewBuilder("s").Storage("some_attribute")
			},
			wantName:  "Storage",
			wantInMsg: []string{"'Storage'", "layout"},
		},
		{
			name: "nil method implementation",
			build: func() *Builder {
				return NewBuilder("s").Entry("my_entry", cty.Number).Method("my_method", nil)
			},
			wantName:  "my_method",
			wantInMsg: []string{"'my_method'", "nil"},
		},
		{
			name: "default type does not conform",
			build: func() *Builder {
				return NewBuilder("s").EntryDefault("my_entry", cty.Number, cty.StringVal("42"))
			},
			wantName:  "my_entry",
			wantInMsg: []string{"default", "number"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ty, err := tc.build().Compile(context.Background())
			require.Error(t, err)
			assert.Nil(t, ty)

			var serr *StructuralError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, "s", serr.Section)
			assert.Equal(t, tc.wantName, serr.Name)
			for _, want := range tc.wantInMsg {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestCompile_PassThroughMembers(t *testing.T) {
	type Temperature struct {
		Kelvin float64
	}

	b := NewBuilder("climate").
		EntryDefault("temp_in_celsius", cty.Number, cty.NumberFloatVal(36.5)).
		Method("temp", func(sec Entries) (cty.Value, error) {
			v, err := sec.Get("temp_in_celsius")
			if err != nil {
				return cty.NilVal, err
			}
			return v.(cty.Value), nil
		}).
		NestedType("Temperature", reflect.TypeOf(Temperature{})).
		TypeAlias("NumberType", cty.Number)

	ty, err := b.Compile(context.Background())
	require.NoError(t, err)

	// Pass-through members are not entries.
	assert.Equal(t, 1, ty.NumEntries())

	m, ok := ty.Method("temp")
	require.True(t, ok)
	require.NotNil(t, m)

	rt, ok := ty.NestedType("Temperature")
	require.True(t, ok)
	assert.Equal(t, "Temperature", rt.Name())

	alias, ok := ty.TypeAlias("NumberType")
	require.True(t, ok)
	assert.True(t, alias.Equals(cty.Number))
}

func TestCompile_ValidatorRegistration(t *testing.T) {
	b := NewBuilder("s").
		Entry("my_entry", cty.Number).
		Validate("my_entry", nopValidator)

	ty, err := b.Compile(context.Background())
	require.NoError(t, err)

	v, ok := ty.Validator("my_entry")
	require.True(t, ok)
	require.NotNil(t, v)

	_, ok = ty.Validator("other")
	assert.False(t, ok)
}

func TestCompile_ValidatorReferentialErrors(t *testing.T) {
	method := func(Entries) (cty.Value, error) { return cty.NilVal, nil }

	testCases := []struct {
		name     string
		build    func() *Builder
		target   string
		wantWord string
	}{
		{
			name: "undeclared name",
			build: func() *Builder {
				return NewBuilder("s").
					Entry("my_entry", cty.Number).
					Validate("not_my_entry", nopValidator)
			},
			target:   "not_my_entry",
			wantWord: "not declared",
		},
		{
			name: "refers to a method",
			build: func() *Builder {
				return NewBuilder("s").
					Entry("my_entry", cty.Number).
					Method("my_method", method).
					Validate("my_method", nopValidator)
			},
			target:   "my_method",
			wantWord: "method",
		},
		{
			name: "refers to a nested type",
			build: func() *Builder {
				return NewBuilder("s").
					Entry("my_entry", cty.Number).
					NestedType("MyClass", reflect.TypeOf(struct{}{})).
					Validate("MyClass", nopValidator)
			},
			target:   "MyClass",
			wantWord: "nested type",
		},
		{
			name: "refers to a type alias",
			build: func() *Builder {
				return NewBuilder("s").
					Entry("my_entry", cty.Number).
					TypeAlias("NumberType", cty.Number).
					Validate("NumberType", nopValidator)
			},
			target:   "NumberType",
			wantWord: "type alias",
		},
		{
			name: "nil handler",
			build: func() *Builder {
				return NewBuilder("s").
					Entry("my_entry", cty.Number).
					Validate("my_entry", nil)
			},
			target:   "my_entry",
			wantWord: "nil",
		},
		{
			name: "second validator for the same entry",
			build: func() *Builder {
				return NewBuilder("s").
					Entry("my_entry", cty.Number).
					Validate("my_entry", nopValidator).
					Validate("my_entry", nopValidator)
			},
			target:   "my_entry",
			wantWord: "one validator",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ty, err := tc.build().Compile(context.Background())
			require.Error(t, err)
			assert.Nil(t, ty)

			msg := err.Error()
			assert.Contains(t, msg, "validate")
			assert.Contains(t, msg, "name")
			assert.Contains(t, msg, tc.target)
			assert.Contains(t, msg, tc.wantWord)
		})
	}
}

func TestCompile_RunsExactlyOnce(t *testing.T) {
	b := NewBuilder("s").Entry("my_entry", cty.Number)

	_, err := b.Compile(context.Background())
	require.NoError(t, err)

	_, err = b.Compile(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already been compiled")
}
