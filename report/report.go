// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package report renders human-readable summaries of assembled binding
// manifests. It is purely observational: it never mutates the manifest and
// never fails.
package report

import (
	"fmt"
	"io"

	"github.com/gogpu/shaderbind/manifest"
)

// Write prints one block per entry point: its descriptor sets with every
// descriptor's name, classified type, texture-shape suffix and binding
// index, then its push constant. Output order follows manifest order, so
// the report is deterministic.
func Write(w io.Writer, entryPoints []manifest.EntryPoint) {
	fmt.Fprintf(w, "Entry points:\n")
	for i := range entryPoints {
		ep := &entryPoints[i]
		fmt.Fprintf(w, "- %s:\n", ep.Name)

		if len(ep.DescriptorSets) == 0 {
			fmt.Fprintf(w, "\tNo descriptor sets\n")
		} else {
			fmt.Fprintf(w, "\tDescriptor sets:\n")
			for _, set := range ep.DescriptorSets {
				fmt.Fprintf(w, "\t - `%s`: set %d\n", set.Name, set.SetIndex)
				for _, d := range set.Descriptors {
					fmt.Fprintf(w, "\t\t- `%s`: %s%s, binding %d\n",
						d.Name, d.Type, shapeSuffix(d), d.BindingIndex)
				}
			}
		}

		if ep.PushConstant == nil {
			fmt.Fprintf(w, "\tNo push constants\n")
		} else {
			fmt.Fprintf(w, "\tPush constants: `%s` (size %d)\n",
				ep.PushConstant.Name, ep.PushConstant.Size)
		}
	}
}

func shapeSuffix(d manifest.Descriptor) string {
	if !d.Type.IsTexture() {
		return ""
	}
	return fmt.Sprintf(" (%s)", d.Shape)
}
