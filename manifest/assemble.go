// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package manifest

import (
	"slices"

	"github.com/gogpu/shaderbind/reflection"
)

// AssembleOptions configures entry-point assembly.
type AssembleOptions struct {
	// GlobalConstantBufferAsPushConstant makes a global parameter whose
	// type kind is constant-buffer eligible as a global push constant, in
	// addition to parameters whose layout category is push-constant. When
	// false, only category-based detection applies and such a parameter is
	// ignored at global scope.
	GlobalConstantBufferAsPushConstant bool
}

// DefaultAssembleOptions returns the default assembly policy.
func DefaultAssembleOptions() AssembleOptions {
	return AssembleOptions{GlobalConstantBufferAsPushConstant: true}
}

// Assemble builds one fully classified EntryPoint per entry point in the
// reflection graph.
//
// Whole-program parameters are partitioned first: parameter blocks become
// globally shared descriptor sets, push-constant-eligible parameters
// become globally shared push constants. The parameter-block check wins
// when both would apply. Each entry point then starts from value copies of
// the global lists and appends its own parameter blocks and push-constant
// parameters in discovery order, so globals always precede locals and no
// two entry points alias the same descriptor-set storage.
//
// An entry point ending up with more than one push constant, or carrying a
// stage with no engine equivalent, is a fatal error; no partial result is
// returned.
func Assemble(m *reflection.Module, opts AssembleOptions) ([]EntryPoint, error) {
	if m == nil {
		return nil, errorf(ErrInvalidReflection, "no reflection graph")
	}

	var globalSets []DescriptorSet
	var globalPush []PushConstant

	for i := range m.Parameters {
		p := &m.Parameters[i]
		switch {
		case p.Kind == reflection.KindParameterBlock:
			set, err := buildDescriptorSet(p)
			if err != nil {
				return nil, err
			}
			globalSets = append(globalSets, set)
		case p.Category == reflection.CategoryPushConstant,
			opts.GlobalConstantBufferAsPushConstant && p.Kind == reflection.KindConstantBuffer:
			globalPush = append(globalPush, PushConstant{Name: p.Name, Size: p.Size})
		}
	}

	entryPoints := make([]EntryPoint, 0, len(m.EntryPoints))
	for i := range m.EntryPoints {
		ep := &m.EntryPoints[i]

		stage, err := mapStage(ep)
		if err != nil {
			return nil, err
		}

		sets := make([]DescriptorSet, 0, len(globalSets))
		for _, s := range globalSets {
			sets = append(sets, s.clone())
		}
		push := slices.Clone(globalPush)

		for j := range ep.Parameters {
			p := &ep.Parameters[j]
			switch {
			case p.Kind == reflection.KindParameterBlock:
				set, err := buildDescriptorSet(p)
				if err != nil {
					return nil, err
				}
				sets = append(sets, set)
			case p.Category == reflection.CategoryUniform,
				p.Category == reflection.CategoryPushConstant:
				push = append(push, PushConstant{Name: p.Name, Size: p.Size})
			}
		}

		if len(push) > 1 {
			return nil, errorf(ErrMultiplePushConstants,
				"multiple push constants in entry point %q, only one supported", ep.Name)
		}

		out := EntryPoint{
			Name:           ep.Name,
			Stage:          stage,
			DescriptorSets: sets,
		}
		if len(push) == 1 {
			pc := push[0]
			out.PushConstant = &pc
		}
		entryPoints = append(entryPoints, out)
	}

	return entryPoints, nil
}

// buildDescriptorSet classifies every field of a parameter block into a
// descriptor, preserving field order.
func buildDescriptorSet(block *reflection.Variable) (DescriptorSet, error) {
	set := DescriptorSet{
		Name:        block.Name,
		SetIndex:    block.BindingIndex,
		Descriptors: make([]Descriptor, 0, len(block.Fields)),
	}
	for _, field := range block.Fields {
		bindingType, shape, err := Classify(field)
		if err != nil {
			return DescriptorSet{}, err
		}
		set.Descriptors = append(set.Descriptors, Descriptor{
			Name:         field.Name,
			BindingIndex: field.BindingIndex,
			Type:         bindingType,
			Shape:        shape,
		})
	}
	return set, nil
}

func mapStage(ep *reflection.EntryPoint) (ShaderStage, error) {
	switch ep.Stage {
	case reflection.StageVertex:
		return StageVertex, nil
	case reflection.StageHull:
		return StageTessellationControl, nil
	case reflection.StageDomain:
		return StageTessellationEvaluation, nil
	case reflection.StageGeometry:
		return StageGeometry, nil
	case reflection.StageFragment:
		return StageFragment, nil
	case reflection.StageCompute:
		return StageCompute, nil
	case reflection.StageMesh:
		return StageMesh, nil
	case reflection.StageAmplification:
		return StageTask, nil
	default:
		return 0, errorf(ErrUnsupportedStage,
			"unsupported stage %q in entry point %q", ep.Stage, ep.Name)
	}
}
