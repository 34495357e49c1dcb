package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `
parameters:
  - name: Globals
    kind: parameter-block
    binding: 0
    fields:
      - name: cbCamera
        kind: constant-buffer
        binding: 0
      - name: texShadow
        kind: resource
        shape: {base: texture-2d, arrayed: true}
        access: read
        binding: 1
  - name: pcFrame
    kind: struct
    category: push-constant
    size: 64
entryPoints:
  - name: VSMain
    stage: vertex
  - name: FSMain
    stage: fragment
    parameters:
      - name: Material
        kind: parameter-block
        binding: 1
        fields:
          - name: samLinear
            kind: sampler-state
            binding: 0
`

func TestDecodeDocument(t *testing.T) {
	m, err := DecodeDocument([]byte(sampleDocument))
	require.NoError(t, err)

	require.Len(t, m.Parameters, 2)
	globals := m.Parameters[0]
	assert.Equal(t, "Globals", globals.Name)
	assert.Equal(t, KindParameterBlock, globals.Kind)
	require.Len(t, globals.Fields, 2)
	assert.Equal(t, KindConstantBuffer, globals.Fields[0].Kind)
	assert.Equal(t, ResourceShape{Base: BaseTexture2D, Arrayed: true}, globals.Fields[1].Shape)
	assert.Equal(t, AccessRead, globals.Fields[1].Access)
	assert.Equal(t, uint32(1), globals.Fields[1].BindingIndex)

	push := m.Parameters[1]
	assert.Equal(t, CategoryPushConstant, push.Category)
	assert.Equal(t, uint64(64), push.Size)

	require.Len(t, m.EntryPoints, 2)
	assert.Equal(t, StageVertex, m.EntryPoints[0].Stage)
	assert.Empty(t, m.EntryPoints[0].Parameters)
	assert.Equal(t, StageFragment, m.EntryPoints[1].Stage)
	require.Len(t, m.EntryPoints[1].Parameters, 1)
	assert.Equal(t, KindParameterBlock, m.EntryPoints[1].Parameters[0].Kind)
}

func TestDecodeDocument_Empty(t *testing.T) {
	_, err := DecodeDocument(nil)
	assert.ErrorContains(t, err, "empty document")
}

func TestDecodeDocument_UnknownEnums(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			"kind",
			"parameters: [{name: x, kind: texture}]",
			`unknown type kind "texture"`,
		},
		{
			"stage",
			"entryPoints: [{name: main, stage: kernel}]",
			`unknown stage "kernel"`,
		},
		{
			"access",
			"parameters: [{name: x, kind: resource, access: atomic}]",
			`unknown access mode "atomic"`,
		},
		{
			"category",
			"parameters: [{name: x, kind: struct, category: root-constant}]",
			`unknown category "root-constant"`,
		},
		{
			"base shape",
			"parameters: [{name: x, kind: resource, shape: {base: texture-4d}}]",
			`unknown base shape "texture-4d"`,
		},
	}
	for _, tc := range cases {
		_, err := DecodeDocument([]byte(tc.doc))
		assert.ErrorContains(t, err, tc.want, tc.name)
	}
}

func TestDecodeDocument_UnknownFields(t *testing.T) {
	_, err := DecodeDocument([]byte("parameters: [{name: x, kind: struct, stride: 16}]"))
	assert.Error(t, err, "unknown document fields must be rejected")
}

func TestEnumStrings_RoundTrip(t *testing.T) {
	for s, k := range typeKinds {
		assert.Equal(t, s, k.String())
	}
	for s, v := range stages {
		assert.Equal(t, s, v.String())
	}
	for s, v := range accesses {
		assert.Equal(t, s, v.String())
	}
	for s, v := range categories {
		assert.Equal(t, s, v.String())
	}
	for s, v := range baseShapes {
		assert.Equal(t, s, v.String())
	}
}
