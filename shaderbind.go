// Package shaderbind converts compiled shader reflection metadata into
// compact resource-binding manifests.
//
// A graphics engine needs to know, at load time, which bindings a shader
// module declares — textures by dimensionality, buffers by access mode,
// samplers, constant buffers and push constants — without dragging the
// shader-compiler toolchain along. shaderbind consumes the compiler's
// reflection graph and packs it into one memory-mappable binary blob per
// module.
//
// The pipeline is:
//
//  1. Decode a reflection document (reflection package)
//  2. Classify and assemble per-entry-point binding sets (manifest package)
//  3. Flatten into offset/count views (manifest package)
//  4. Pack into a binary blob (blob package)
//
// Example usage:
//
//	module, err := reflection.DecodeDocument(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	artifact, err := shaderbind.Build(module, shaderbind.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For the individual stages, use manifest.Assemble, manifest.Flatten and
// blob.Encode directly.
package shaderbind

import (
	"fmt"
	"io"

	"github.com/gogpu/shaderbind/blob"
	"github.com/gogpu/shaderbind/manifest"
	"github.com/gogpu/shaderbind/reflection"
	"github.com/gogpu/shaderbind/report"
)

// TargetAPI selects the graphics API the shader module was compiled for.
type TargetAPI uint8

const (
	TargetVulkan TargetAPI = iota
	TargetDirectX12
	TargetMetal
)

// String returns a human-readable target name.
func (t TargetAPI) String() string {
	switch t {
	case TargetVulkan:
		return "Vulkan"
	case TargetDirectX12:
		return "DirectX12"
	case TargetMetal:
		return "Metal"
	default:
		return "Unknown"
	}
}

// TargetFromProfile maps a compiler target profile name to its graphics
// API. Unknown profiles are an error.
func TargetFromProfile(profile string) (TargetAPI, error) {
	switch profile {
	case "spirv", "glsl":
		return TargetVulkan, nil
	case "hlsl", "dxil":
		return TargetDirectX12, nil
	case "metal", "metallib":
		return TargetMetal, nil
	default:
		return 0, fmt.Errorf("unsupported target profile %q", profile)
	}
}

// Options configures manifest building.
type Options struct {
	// Target is the graphics API the module was compiled for.
	Target TargetAPI

	// Assemble is the entry-point assembly policy.
	Assemble manifest.AssembleOptions

	// Report, when non-nil, receives the human-readable binding summary.
	Report io.Writer
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Target:   TargetVulkan,
		Assemble: manifest.DefaultAssembleOptions(),
	}
}

// Build assembles, flattens and serializes the binding manifest for one
// reflection graph. On any classification or assembly error no bytes are
// returned: a manifest either fully describes the module's bindings or is
// not produced at all.
func Build(module *reflection.Module, opts Options) ([]byte, error) {
	entryPoints, err := manifest.Assemble(module, opts.Assemble)
	if err != nil {
		return nil, err
	}

	if opts.Report != nil {
		report.Write(opts.Report, entryPoints)
	}

	flat := manifest.Flatten(entryPoints)
	return blob.Encode(&flat), nil
}
