// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strings"
	"testing"

	"github.com/gogpu/shaderbind/manifest"
)

func TestWrite_DescriptorSets(t *testing.T) {
	entryPoints := []manifest.EntryPoint{
		{
			Name:  "VSMain",
			Stage: manifest.StageVertex,
			DescriptorSets: []manifest.DescriptorSet{
				{
					Name:     "Globals",
					SetIndex: 0,
					Descriptors: []manifest.Descriptor{
						{Name: "cbCamera", BindingIndex: 0, Type: manifest.BindingConstantBuffer, Shape: manifest.TextureSingle2D},
					},
				},
			},
		},
	}

	var sb strings.Builder
	Write(&sb, entryPoints)

	want := "Entry points:\n" +
		"- VSMain:\n" +
		"\tDescriptor sets:\n" +
		"\t - `Globals`: set 0\n" +
		"\t\t- `cbCamera`: Constant buffer, binding 0\n" +
		"\tNo push constants\n"
	if sb.String() != want {
		t.Errorf("report mismatch:\ngot:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestWrite_TextureSuffixes(t *testing.T) {
	entryPoints := []manifest.EntryPoint{
		{
			Name:  "FSMain",
			Stage: manifest.StageFragment,
			DescriptorSets: []manifest.DescriptorSet{
				{
					Name:     "Material",
					SetIndex: 1,
					Descriptors: []manifest.Descriptor{
						{Name: "texAlbedo", BindingIndex: 0, Type: manifest.BindingSampledTexture, Shape: manifest.TextureArray2D},
						{Name: "texOutput", BindingIndex: 1, Type: manifest.BindingStorageReadWriteTexture, Shape: manifest.TextureSingle3D},
						{Name: "bufLights", BindingIndex: 2, Type: manifest.BindingStorageReadOnlyBuffer, Shape: manifest.TextureSingle2D},
					},
				},
			},
		},
	}

	var sb strings.Builder
	Write(&sb, entryPoints)
	out := sb.String()

	if !strings.Contains(out, "`texAlbedo`: Sampled texture (2D array), binding 0") {
		t.Errorf("missing 2D-array suffix:\n%s", out)
	}
	if !strings.Contains(out, "`texOutput`: Read/write texture (3D), binding 1") {
		t.Errorf("missing 3D suffix:\n%s", out)
	}
	if strings.Contains(out, "Read-only buffer (") {
		t.Errorf("buffer descriptor must not carry a texture-shape suffix:\n%s", out)
	}
}

func TestWrite_EmptyAndPushConstants(t *testing.T) {
	entryPoints := []manifest.EntryPoint{
		{
			Name:         "CSMain",
			Stage:        manifest.StageCompute,
			PushConstant: &manifest.PushConstant{Name: "pcParams", Size: 16},
		},
	}

	var sb strings.Builder
	Write(&sb, entryPoints)

	want := "Entry points:\n" +
		"- CSMain:\n" +
		"\tNo descriptor sets\n" +
		"\tPush constants: `pcParams` (size 16)\n"
	if sb.String() != want {
		t.Errorf("report mismatch:\ngot:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestWrite_Deterministic(t *testing.T) {
	entryPoints := []manifest.EntryPoint{
		{Name: "A", Stage: manifest.StageVertex},
		{Name: "B", Stage: manifest.StageFragment},
	}
	var first, second strings.Builder
	Write(&first, entryPoints)
	Write(&second, entryPoints)
	if first.String() != second.String() {
		t.Error("report output is not deterministic")
	}
	if !strings.Contains(first.String(), "- A:") || !strings.Contains(first.String(), "- B:") {
		t.Errorf("report must list every entry point:\n%s", first.String())
	}
}
