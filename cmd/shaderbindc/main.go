// Command shaderbindc converts a shader reflection document into a
// binding-manifest blob.
//
// Usage:
//
//	shaderbindc [options] <input.refl.yaml>
//
// Examples:
//
//	shaderbindc shader.refl.yaml                  # Cook to shader.sbm
//	shaderbindc -o out.sbm shader.refl.yaml       # Cook to explicit path
//	shaderbindc -target metal shader.refl.yaml    # Select target API
//	shaderbindc -quiet shader.refl.yaml           # Suppress the report
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/shaderbind"
	"github.com/gogpu/shaderbind/cooker"
	"github.com/gogpu/shaderbind/manifest"
	"github.com/gogpu/shaderbind/reflection"
)

var (
	output      = flag.String("o", "", "output file (default: input path with .sbm extension)")
	target      = flag.String("target", "spirv", "target profile (spirv, glsl, hlsl, dxil, metal, metallib)")
	quiet       = flag.Bool("quiet", false, "suppress the human-readable binding report")
	cbufferPush = flag.Bool("global-cbuffer-push", true, "treat global constant buffers as push-constant candidates")
	version     = flag.Bool("version", false, "print version")
)

const shaderbindVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("shaderbindc version %s\n", shaderbindVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]

	targetAPI, err := shaderbind.TargetFromProfile(*target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	module, err := reflection.DecodeDocument(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := shaderbind.Options{
		Target: targetAPI,
		Assemble: manifest.AssembleOptions{
			GlobalConstantBufferAsPushConstant: *cbufferPush,
		},
	}
	if !*quiet {
		opts.Report = os.Stdout
	}

	artifact, err := shaderbind.Build(module, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, cooker.DocumentExt) + cooker.ArtifactExt
	}
	if err := os.WriteFile(outputPath, artifact, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", outputPath, len(artifact))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: shaderbindc [options] <input.refl.yaml>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  shaderbindc shader.refl.yaml                Cook to shader.sbm\n")
	fmt.Fprintf(os.Stderr, "  shaderbindc -o out.sbm shader.refl.yaml     Cook to explicit path\n")
	fmt.Fprintf(os.Stderr, "  shaderbindc -target metal shader.refl.yaml  Select target API\n")
}
