// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package manifest

// View is a contiguous (offset, count) sub-range of one of the flattened
// arrays. Views replace pointers so the flattened form stays valid across
// serialization into a different address space.
type View struct {
	Offset uint32
	Count  uint32
}

// FlatEntryPoint is the flattened record for one entry point. Its
// DescriptorSets view indexes Flat.DescriptorSets.
type FlatEntryPoint struct {
	Name             string
	Stage            ShaderStage
	HasPushConstant  bool
	PushConstantName string
	PushConstantSize uint64
	DescriptorSets   View
}

// FlatDescriptorSet is the flattened record for one descriptor set. Its
// Descriptors view indexes Flat.Descriptors.
type FlatDescriptorSet struct {
	Name        string
	SetIndex    uint32
	Descriptors View
}

// Flat is the serialization-ready manifest: three contiguous arrays
// cross-referenced by views only.
type Flat struct {
	EntryPoints    []FlatEntryPoint
	DescriptorSets []FlatDescriptorSet
	Descriptors    []Descriptor
}

// SetsOf resolves an entry point's descriptor-set view.
func (f *Flat) SetsOf(ep FlatEntryPoint) []FlatDescriptorSet {
	return f.DescriptorSets[ep.DescriptorSets.Offset : ep.DescriptorSets.Offset+ep.DescriptorSets.Count]
}

// DescriptorsOf resolves a descriptor set's descriptor view.
func (f *Flat) DescriptorsOf(s FlatDescriptorSet) []Descriptor {
	return f.Descriptors[s.Descriptors.Offset : s.Descriptors.Offset+s.Descriptors.Count]
}

// Flatten packs assembled entry points into the flat form.
//
// It runs two passes: the first sizes all three arrays, the second fills
// them. All capacity is allocated up front so no append relocates storage
// after a view into it has been computed. An entry point with no
// descriptor sets gets an explicit zero-count view, distinct from a set
// with zero descriptors.
func Flatten(entryPoints []EntryPoint) Flat {
	totalSets := 0
	totalDescriptors := 0
	for i := range entryPoints {
		totalSets += len(entryPoints[i].DescriptorSets)
		for j := range entryPoints[i].DescriptorSets {
			totalDescriptors += len(entryPoints[i].DescriptorSets[j].Descriptors)
		}
	}

	flat := Flat{
		EntryPoints:    make([]FlatEntryPoint, 0, len(entryPoints)),
		DescriptorSets: make([]FlatDescriptorSet, 0, totalSets),
		Descriptors:    make([]Descriptor, 0, totalDescriptors),
	}

	for i := range entryPoints {
		ep := &entryPoints[i]

		flatEP := FlatEntryPoint{
			Name:  ep.Name,
			Stage: ep.Stage,
			DescriptorSets: View{
				Offset: uint32(len(flat.DescriptorSets)),
				Count:  uint32(len(ep.DescriptorSets)),
			},
		}
		if ep.PushConstant != nil {
			flatEP.HasPushConstant = true
			flatEP.PushConstantName = ep.PushConstant.Name
			flatEP.PushConstantSize = ep.PushConstant.Size
		}

		for j := range ep.DescriptorSets {
			set := &ep.DescriptorSets[j]
			flat.DescriptorSets = append(flat.DescriptorSets, FlatDescriptorSet{
				Name:     set.Name,
				SetIndex: set.SetIndex,
				Descriptors: View{
					Offset: uint32(len(flat.Descriptors)),
					Count:  uint32(len(set.Descriptors)),
				},
			})
			flat.Descriptors = append(flat.Descriptors, set.Descriptors...)
		}

		flat.EntryPoints = append(flat.EntryPoints, flatEP)
	}

	return flat
}
