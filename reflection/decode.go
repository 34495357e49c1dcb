package reflection

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeDocument parses a YAML reflection document into a Module.
//
// Unknown document fields are rejected so a document written against a
// newer graph schema fails loudly instead of silently losing data.
func DecodeDocument(data []byte) (*Module, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Module
	if err := dec.Decode(&m); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("reflection: empty document")
		}
		return nil, fmt.Errorf("reflection: decoding document: %w", err)
	}
	return &m, nil
}

func decodeEnum[T any](node *yaml.Node, table map[string]T, what string) (T, error) {
	var zero T
	var s string
	if err := node.Decode(&s); err != nil {
		return zero, fmt.Errorf("reflection: %s must be a string: %w", what, err)
	}
	v, ok := table[s]
	if !ok {
		return zero, fmt.Errorf("reflection: unknown %s %q", what, s)
	}
	return v, nil
}

var typeKinds = map[string]TypeKind{
	"struct":          KindStruct,
	"scalar":          KindScalar,
	"vector":          KindVector,
	"matrix":          KindMatrix,
	"array":           KindArray,
	"resource":        KindResource,
	"sampler-state":   KindSamplerState,
	"constant-buffer": KindConstantBuffer,
	"parameter-block": KindParameterBlock,
}

// UnmarshalYAML decodes a type kind from its document spelling.
func (k *TypeKind) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeEnum(node, typeKinds, "type kind")
	if err != nil {
		return err
	}
	*k = v
	return nil
}

var stages = map[string]Stage{
	"none":           StageNone,
	"vertex":         StageVertex,
	"hull":           StageHull,
	"domain":         StageDomain,
	"geometry":       StageGeometry,
	"fragment":       StageFragment,
	"compute":        StageCompute,
	"mesh":           StageMesh,
	"amplification":  StageAmplification,
	"ray-generation": StageRayGeneration,
}

// UnmarshalYAML decodes a stage from its document spelling.
func (s *Stage) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeEnum(node, stages, "stage")
	if err != nil {
		return err
	}
	*s = v
	return nil
}

var accesses = map[string]Access{
	"none":       AccessNone,
	"read":       AccessRead,
	"read-write": AccessReadWrite,
	"write":      AccessWrite,
	"append":     AccessAppend,
	"consume":    AccessConsume,
}

// UnmarshalYAML decodes an access mode from its document spelling.
func (a *Access) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeEnum(node, accesses, "access mode")
	if err != nil {
		return err
	}
	*a = v
	return nil
}

var categories = map[string]Category{
	"none":                    CategoryNone,
	"descriptor-table-slot":   CategoryDescriptorTableSlot,
	"uniform":                 CategoryUniform,
	"push-constant":           CategoryPushConstant,
	"specialization-constant": CategorySpecializationConstant,
}

// UnmarshalYAML decodes a category from its document spelling.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeEnum(node, categories, "category")
	if err != nil {
		return err
	}
	*c = v
	return nil
}

var baseShapes = map[string]BaseShape{
	"none":                BaseNone,
	"texture-1d":          BaseTexture1D,
	"texture-2d":          BaseTexture2D,
	"texture-3d":          BaseTexture3D,
	"texture-cube":        BaseTextureCube,
	"structured-buffer":   BaseStructuredBuffer,
	"byte-address-buffer": BaseByteAddressBuffer,
}

// UnmarshalYAML decodes a base shape from its document spelling.
func (b *BaseShape) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeEnum(node, baseShapes, "base shape")
	if err != nil {
		return err
	}
	*b = v
	return nil
}
