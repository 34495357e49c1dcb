// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package manifest builds resource-binding manifests from shader
// reflection graphs.
//
// The pipeline has three stages:
//
//  1. Classify maps one reflected variable to its normalized binding type
//     and texture shape.
//  2. Assemble walks a whole reflection graph and produces one fully
//     classified EntryPoint per shader entry point, merging globally
//     shared parameter blocks into every entry point by value.
//  3. Flatten packs the assembled hierarchy into three contiguous arrays
//     with offset/count views, ready for blob serialization.
//
// Every stage is fatal on the first rule violation; a partial manifest is
// never produced, because a consumer cannot safely bind resources against
// an incomplete description.
package manifest

import "slices"

// BindingType is the normalized binding taxonomy for one descriptor.
//
// The three texture variants are contiguous, with SampledTexture first and
// StorageReadWriteTexture last, so IsTexture is a single range check. The
// blob format depends on these values; do not reorder.
type BindingType uint8

const (
	BindingSampler BindingType = iota
	BindingConstantBuffer
	BindingSampledTexture
	BindingStorageReadOnlyTexture
	BindingStorageReadWriteTexture
	BindingStorageReadOnlyBuffer
	BindingStorageReadWriteBuffer
)

// IsTexture reports whether the binding carries a texture shape.
func (t BindingType) IsTexture() bool {
	return t >= BindingSampledTexture && t <= BindingStorageReadWriteTexture
}

// String returns a human-readable binding type name.
func (t BindingType) String() string {
	switch t {
	case BindingSampler:
		return "Sampler"
	case BindingConstantBuffer:
		return "Constant buffer"
	case BindingSampledTexture:
		return "Sampled texture"
	case BindingStorageReadOnlyTexture:
		return "Read-only texture"
	case BindingStorageReadWriteTexture:
		return "Read/write texture"
	case BindingStorageReadOnlyBuffer:
		return "Read-only buffer"
	case BindingStorageReadWriteBuffer:
		return "Read/write buffer"
	default:
		return "Unknown"
	}
}

// TextureShape is the dimensionality and array-ness of a texture binding.
// It is meaningful only when the binding type is a texture variant;
// otherwise it holds the don't-care default TextureSingle2D.
type TextureShape uint8

const (
	TextureSingle1D TextureShape = iota
	TextureSingle2D
	TextureSingle3D
	TextureSingleCube
	TextureArray1D
	TextureArray2D
	TextureArrayCube
)

// String returns a human-readable shape name.
func (s TextureShape) String() string {
	switch s {
	case TextureSingle1D:
		return "1D"
	case TextureSingle2D:
		return "2D"
	case TextureSingle3D:
		return "3D"
	case TextureSingleCube:
		return "cube"
	case TextureArray1D:
		return "1D array"
	case TextureArray2D:
		return "2D array"
	case TextureArrayCube:
		return "cube array"
	default:
		return "unknown"
	}
}

// ShaderStage is the engine's pipeline stage enumeration.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageTessellationControl
	StageTessellationEvaluation
	StageGeometry
	StageFragment
	StageCompute
	StageMesh
	StageTask
)

// String returns a human-readable stage name.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "Vertex"
	case StageTessellationControl:
		return "TessellationControl"
	case StageTessellationEvaluation:
		return "TessellationEvaluation"
	case StageGeometry:
		return "Geometry"
	case StageFragment:
		return "Fragment"
	case StageCompute:
		return "Compute"
	case StageMesh:
		return "Mesh"
	case StageTask:
		return "Task"
	default:
		return "Unknown"
	}
}

// Descriptor is one classified resource binding. Immutable once
// classified.
type Descriptor struct {
	Name         string
	BindingIndex uint32
	Type         BindingType
	Shape        TextureShape
}

// DescriptorSet is an ordered group of descriptors bound together under
// one binding-set index. It corresponds to one parameter-block-shaped
// reflected variable.
type DescriptorSet struct {
	Name        string
	SetIndex    uint32
	Descriptors []Descriptor
}

// clone returns a copy that shares no storage with the receiver. Entry
// points must never alias global descriptor-set storage, or one entry
// point's local additions would leak into another's list.
func (s DescriptorSet) clone() DescriptorSet {
	s.Descriptors = slices.Clone(s.Descriptors)
	return s
}

// PushConstant is a push-constant range declared by an entry point.
type PushConstant struct {
	Name string
	Size uint64
}

// EntryPoint is one shader entry point's complete binding set: globally
// shared descriptor sets first, then its own, plus at most one push
// constant.
type EntryPoint struct {
	Name           string
	Stage          ShaderStage
	DescriptorSets []DescriptorSet
	PushConstant   *PushConstant
}
