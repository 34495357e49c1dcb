// Package reflection defines the data model for compiler-emitted shader
// reflection graphs.
//
// A reflection graph describes every shader-visible resource a compiled
// module declares: parameter blocks, constant buffers, textures, buffers,
// samplers and push-constant ranges, grouped per entry point. The graph is
// produced by the shader compiler front-end and consumed read-only by the
// manifest packages; nothing in this module ever mutates it.
package reflection

// Module is the whole-program reflection graph for one shader module.
type Module struct {
	// Parameters holds whole-program (global) parameters, in declaration
	// order.
	Parameters []Variable `yaml:"parameters"`

	// EntryPoints holds per-entry-point reflection data, in declaration
	// order.
	EntryPoints []EntryPoint `yaml:"entryPoints"`
}

// EntryPoint is the reflection view of one shader entry point.
type EntryPoint struct {
	Name       string     `yaml:"name"`
	Stage      Stage      `yaml:"stage"`
	Parameters []Variable `yaml:"parameters,omitempty"`
}

// Variable describes one shader-visible resource or block. Aggregates
// (parameter blocks, structs) carry their element fields in Fields.
type Variable struct {
	Name         string        `yaml:"name"`
	Kind         TypeKind      `yaml:"kind"`
	Shape        ResourceShape `yaml:"shape,omitempty"`
	Access       Access        `yaml:"access,omitempty"`
	Category     Category      `yaml:"category,omitempty"`
	BindingIndex uint32        `yaml:"binding,omitempty"`
	Size         uint64        `yaml:"size,omitempty"`
	Fields       []Variable    `yaml:"fields,omitempty"`
}

// TypeKind tags the type of a reflected variable.
type TypeKind uint8

const (
	KindStruct TypeKind = iota
	KindScalar
	KindVector
	KindMatrix
	KindArray
	KindResource
	KindSamplerState
	KindConstantBuffer
	KindParameterBlock
)

// String returns the document spelling of the kind.
func (k TypeKind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	case KindArray:
		return "array"
	case KindResource:
		return "resource"
	case KindSamplerState:
		return "sampler-state"
	case KindConstantBuffer:
		return "constant-buffer"
	case KindParameterBlock:
		return "parameter-block"
	default:
		return "unknown"
	}
}

// Stage is the compiler's stage tag for an entry point. It is mapped to
// the engine stage enumeration during assembly; stages with no engine
// equivalent are a fatal assembly error there.
type Stage uint8

const (
	StageNone Stage = iota
	StageVertex
	StageHull
	StageDomain
	StageGeometry
	StageFragment
	StageCompute
	StageMesh
	StageAmplification
	StageRayGeneration
)

// String returns the document spelling of the stage.
func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageVertex:
		return "vertex"
	case StageHull:
		return "hull"
	case StageDomain:
		return "domain"
	case StageGeometry:
		return "geometry"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	case StageMesh:
		return "mesh"
	case StageAmplification:
		return "amplification"
	case StageRayGeneration:
		return "ray-generation"
	default:
		return "unknown"
	}
}

// Access is a resource access mode.
type Access uint8

const (
	AccessNone Access = iota
	AccessRead
	AccessReadWrite
	AccessWrite
	AccessAppend
	AccessConsume
)

// String returns the document spelling of the access mode.
func (a Access) String() string {
	switch a {
	case AccessNone:
		return "none"
	case AccessRead:
		return "read"
	case AccessReadWrite:
		return "read-write"
	case AccessWrite:
		return "write"
	case AccessAppend:
		return "append"
	case AccessConsume:
		return "consume"
	default:
		return "unknown"
	}
}

// Category is the layout category the compiler assigned to a parameter:
// how its storage is provided at bind time.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryDescriptorTableSlot
	CategoryUniform
	CategoryPushConstant
	CategorySpecializationConstant
)

// String returns the document spelling of the category.
func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryDescriptorTableSlot:
		return "descriptor-table-slot"
	case CategoryUniform:
		return "uniform"
	case CategoryPushConstant:
		return "push-constant"
	case CategorySpecializationConstant:
		return "specialization-constant"
	default:
		return "unknown"
	}
}

// ResourceShape is the dimensionality of a resource type plus its
// array-ness. Meaningful only for KindResource variables.
type ResourceShape struct {
	Base    BaseShape `yaml:"base"`
	Arrayed bool      `yaml:"arrayed,omitempty"`
}

// BaseShape is the base dimensionality of a resource type.
type BaseShape uint8

const (
	BaseNone BaseShape = iota
	BaseTexture1D
	BaseTexture2D
	BaseTexture3D
	BaseTextureCube
	BaseStructuredBuffer
	BaseByteAddressBuffer
)

// String returns the document spelling of the base shape.
func (b BaseShape) String() string {
	switch b {
	case BaseNone:
		return "none"
	case BaseTexture1D:
		return "texture-1d"
	case BaseTexture2D:
		return "texture-2d"
	case BaseTexture3D:
		return "texture-3d"
	case BaseTextureCube:
		return "texture-cube"
	case BaseStructuredBuffer:
		return "structured-buffer"
	case BaseByteAddressBuffer:
		return "byte-address-buffer"
	default:
		return "unknown"
	}
}
