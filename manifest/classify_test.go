// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package manifest

import (
	"testing"

	"github.com/gogpu/shaderbind/reflection"
)

func TestClassify_ConstantBuffer(t *testing.T) {
	v := reflection.Variable{
		Name: "cbCamera",
		Kind: reflection.KindConstantBuffer,
		// Shape and access are deliberately garbage: type-kind
		// classification must win without inspecting them.
		Shape:  reflection.ResourceShape{Base: reflection.BaseNone},
		Access: reflection.AccessConsume,
	}
	bindingType, shape, err := Classify(v)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if bindingType != BindingConstantBuffer {
		t.Errorf("Type: got %v, want %v", bindingType, BindingConstantBuffer)
	}
	if shape != TextureSingle2D {
		t.Errorf("Shape: got %v, want don't-care default %v", shape, TextureSingle2D)
	}
}

func TestClassify_Sampler(t *testing.T) {
	v := reflection.Variable{Name: "samLinear", Kind: reflection.KindSamplerState}
	bindingType, _, err := Classify(v)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if bindingType != BindingSampler {
		t.Errorf("Type: got %v, want %v", bindingType, BindingSampler)
	}
}

func TestClassify_Textures(t *testing.T) {
	cases := []struct {
		name     string
		base     reflection.BaseShape
		arrayed  bool
		access   reflection.Access
		wantType BindingType
		wantDim  TextureShape
	}{
		{"1D read", reflection.BaseTexture1D, false, reflection.AccessRead, BindingSampledTexture, TextureSingle1D},
		{"1D array read", reflection.BaseTexture1D, true, reflection.AccessRead, BindingSampledTexture, TextureArray1D},
		{"2D read", reflection.BaseTexture2D, false, reflection.AccessRead, BindingSampledTexture, TextureSingle2D},
		{"2D array read", reflection.BaseTexture2D, true, reflection.AccessRead, BindingSampledTexture, TextureArray2D},
		{"3D read", reflection.BaseTexture3D, false, reflection.AccessRead, BindingSampledTexture, TextureSingle3D},
		{"3D arrayed collapses to 3D", reflection.BaseTexture3D, true, reflection.AccessRead, BindingSampledTexture, TextureSingle3D},
		{"cube read", reflection.BaseTextureCube, false, reflection.AccessRead, BindingSampledTexture, TextureSingleCube},
		{"cube array read", reflection.BaseTextureCube, true, reflection.AccessRead, BindingSampledTexture, TextureArrayCube},
		{"2D read-write", reflection.BaseTexture2D, false, reflection.AccessReadWrite, BindingStorageReadWriteTexture, TextureSingle2D},
		{"2D write", reflection.BaseTexture2D, false, reflection.AccessWrite, BindingStorageReadWriteTexture, TextureSingle2D},
		{"cube array write", reflection.BaseTextureCube, true, reflection.AccessWrite, BindingStorageReadWriteTexture, TextureArrayCube},
	}
	for _, tc := range cases {
		v := reflection.Variable{
			Name:   "tex",
			Kind:   reflection.KindResource,
			Shape:  reflection.ResourceShape{Base: tc.base, Arrayed: tc.arrayed},
			Access: tc.access,
		}
		bindingType, shape, err := Classify(v)
		if err != nil {
			t.Errorf("%s: Classify failed: %v", tc.name, err)
			continue
		}
		if bindingType != tc.wantType {
			t.Errorf("%s: type: got %v, want %v", tc.name, bindingType, tc.wantType)
		}
		if !bindingType.IsTexture() {
			t.Errorf("%s: texture classification must satisfy IsTexture", tc.name)
		}
		if shape != tc.wantDim {
			t.Errorf("%s: shape: got %v, want %v", tc.name, shape, tc.wantDim)
		}
	}
}

func TestClassify_Buffers(t *testing.T) {
	cases := []struct {
		name     string
		base     reflection.BaseShape
		access   reflection.Access
		wantType BindingType
	}{
		{"structured read", reflection.BaseStructuredBuffer, reflection.AccessRead, BindingStorageReadOnlyBuffer},
		{"structured read-write", reflection.BaseStructuredBuffer, reflection.AccessReadWrite, BindingStorageReadWriteBuffer},
		{"structured write", reflection.BaseStructuredBuffer, reflection.AccessWrite, BindingStorageReadWriteBuffer},
		{"byte-address read", reflection.BaseByteAddressBuffer, reflection.AccessRead, BindingStorageReadOnlyBuffer},
		{"byte-address write", reflection.BaseByteAddressBuffer, reflection.AccessWrite, BindingStorageReadWriteBuffer},
	}
	for _, tc := range cases {
		v := reflection.Variable{
			Name:   "buf",
			Kind:   reflection.KindResource,
			Shape:  reflection.ResourceShape{Base: tc.base},
			Access: tc.access,
		}
		bindingType, _, err := Classify(v)
		if err != nil {
			t.Errorf("%s: Classify failed: %v", tc.name, err)
			continue
		}
		if bindingType != tc.wantType {
			t.Errorf("%s: type: got %v, want %v", tc.name, bindingType, tc.wantType)
		}
		if bindingType.IsTexture() {
			t.Errorf("%s: buffer classification must not satisfy IsTexture", tc.name)
		}
	}
}

func TestClassify_UnsupportedAccess(t *testing.T) {
	for _, base := range []reflection.BaseShape{reflection.BaseTexture2D, reflection.BaseStructuredBuffer} {
		v := reflection.Variable{
			Name:   "bad",
			Kind:   reflection.KindResource,
			Shape:  reflection.ResourceShape{Base: base},
			Access: reflection.AccessAppend,
		}
		_, _, err := Classify(v)
		if err == nil {
			t.Fatalf("%v: expected error for append access, got nil", base)
		}
		var mErr *Error
		if !asManifestError(err, &mErr) || mErr.Kind != ErrUnsupportedAccess {
			t.Errorf("%v: got %v, want ErrUnsupportedAccess", base, err)
		}
	}
}

func TestClassify_UnsupportedShape(t *testing.T) {
	v := reflection.Variable{
		Name:   "bad",
		Kind:   reflection.KindResource,
		Shape:  reflection.ResourceShape{Base: reflection.BaseNone},
		Access: reflection.AccessRead,
	}
	_, _, err := Classify(v)
	if err == nil {
		t.Fatal("expected error for unsupported base shape, got nil")
	}
	var mErr *Error
	if !asManifestError(err, &mErr) || mErr.Kind != ErrUnsupportedShape {
		t.Errorf("got %v, want ErrUnsupportedShape", err)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	v := reflection.Variable{
		Name:   "texShadow",
		Kind:   reflection.KindResource,
		Shape:  reflection.ResourceShape{Base: reflection.BaseTextureCube, Arrayed: true},
		Access: reflection.AccessRead,
	}
	type1, shape1, err1 := Classify(v)
	type2, shape2, err2 := Classify(v)
	if err1 != nil || err2 != nil {
		t.Fatalf("Classify failed: %v, %v", err1, err2)
	}
	if type1 != type2 || shape1 != shape2 {
		t.Errorf("classification not idempotent: (%v, %v) vs (%v, %v)", type1, shape1, type2, shape2)
	}
}

func TestBindingType_TextureRange(t *testing.T) {
	textures := []BindingType{BindingSampledTexture, BindingStorageReadOnlyTexture, BindingStorageReadWriteTexture}
	others := []BindingType{BindingSampler, BindingConstantBuffer, BindingStorageReadOnlyBuffer, BindingStorageReadWriteBuffer}
	for _, bt := range textures {
		if !bt.IsTexture() {
			t.Errorf("%v: IsTexture() = false, want true", bt)
		}
	}
	for _, bt := range others {
		if bt.IsTexture() {
			t.Errorf("%v: IsTexture() = true, want false", bt)
		}
	}
}

func asManifestError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if ok {
		*target = e
	}
	return ok
}
