// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package manifest

import "github.com/gogpu/shaderbind/reflection"

// Classify maps one reflected variable to its normalized binding type and
// texture shape. It is a pure function: classifying the same variable
// twice yields the same result.
//
// Type-kind checks take precedence over resource-shape inspection: a
// constant buffer or sampler is never inspected for its resource shape.
// For non-texture binding types the returned shape is the don't-care
// default TextureSingle2D.
//
// Access modes outside read/read-write/write and base shapes outside the
// recognized set are fatal classification errors, never silent defaults.
func Classify(v reflection.Variable) (BindingType, TextureShape, error) {
	switch v.Kind {
	case reflection.KindConstantBuffer:
		return BindingConstantBuffer, TextureSingle2D, nil
	case reflection.KindSamplerState:
		return BindingSampler, TextureSingle2D, nil
	}

	var bindingType BindingType
	switch v.Shape.Base {
	case reflection.BaseTexture1D, reflection.BaseTexture2D,
		reflection.BaseTexture3D, reflection.BaseTextureCube:
		switch v.Access {
		case reflection.AccessRead:
			bindingType = BindingSampledTexture
		case reflection.AccessReadWrite, reflection.AccessWrite:
			bindingType = BindingStorageReadWriteTexture
		default:
			return 0, 0, errorf(ErrUnsupportedAccess,
				"unsupported access %q on texture %q", v.Access, v.Name)
		}
	case reflection.BaseStructuredBuffer, reflection.BaseByteAddressBuffer:
		switch v.Access {
		case reflection.AccessRead:
			bindingType = BindingStorageReadOnlyBuffer
		case reflection.AccessReadWrite, reflection.AccessWrite:
			bindingType = BindingStorageReadWriteBuffer
		default:
			return 0, 0, errorf(ErrUnsupportedAccess,
				"unsupported access %q on buffer %q", v.Access, v.Name)
		}
	default:
		return 0, 0, errorf(ErrUnsupportedShape,
			"unsupported resource shape %q on %q", v.Shape.Base, v.Name)
	}

	shape := TextureSingle2D
	if bindingType.IsTexture() {
		switch v.Shape.Base {
		case reflection.BaseTexture1D:
			shape = TextureSingle1D
			if v.Shape.Arrayed {
				shape = TextureArray1D
			}
		case reflection.BaseTexture2D:
			shape = TextureSingle2D
			if v.Shape.Arrayed {
				shape = TextureArray2D
			}
		case reflection.BaseTexture3D:
			// No arrayed 3D texture variant exists.
			shape = TextureSingle3D
		case reflection.BaseTextureCube:
			shape = TextureSingleCube
			if v.Shape.Arrayed {
				shape = TextureArrayCube
			}
		}
	}

	return bindingType, shape, nil
}
