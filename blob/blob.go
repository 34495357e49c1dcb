// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package blob serializes flattened binding manifests into a single
// self-contained binary artifact.
//
// The blob is designed to be written once by the shader tool and loaded by
// a graphics engine in a different address space, so every cross-reference
// is an offset/count pair into a subsequent array, never a pointer. All
// integers are little-endian; strings are u32-length-prefixed UTF-8 with
// no terminator.
//
// Layout:
//
//	header     magic u32, version u32,
//	           entry-point count u32, descriptor-set count u32, descriptor count u32
//	entry points   name, stage u32, push-constant flag u32
//	               [push-constant name, size u64],
//	               descriptor-set view (offset u32, count u32)
//	descriptor sets  name, set index u32, descriptor view (offset u32, count u32)
//	descriptors      name, binding index u32, binding type u32, texture shape u32
//
// Encoding performs no semantic validation; the manifest package has
// already enforced every assembly rule by the time a Flat exists.
package blob

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/shaderbind/manifest"
)

const (
	// Magic identifies a shaderbind manifest blob ("SBM\0").
	Magic uint32 = 0x004D4253

	// FormatVersion is the current blob format version.
	FormatVersion uint32 = 1
)

const headerSize = 5 * 4

// Minimum encoded record sizes, used to sanity-check header counts before
// any allocation.
const (
	minEntryPointSize = 4 + 4 + 4 + 8 // name prefix, stage, push flag, set view
	minSetSize        = 4 + 4 + 8     // name prefix, set index, descriptor view
	minDescriptorSize = 4 + 4 + 4 + 4 // name prefix, binding index, type, shape
)

// Encode packs a flattened manifest into one contiguous binary artifact.
func Encode(flat *manifest.Flat) []byte {
	// Size everything up front so the buffer is allocated exactly once.
	size := headerSize
	for i := range flat.EntryPoints {
		ep := &flat.EntryPoints[i]
		size += stringSize(ep.Name)
		size += 4 + 4 // stage, push-constant flag
		if ep.HasPushConstant {
			size += stringSize(ep.PushConstantName) + 8
		}
		size += 4 + 4 // descriptor-set view
	}
	for i := range flat.DescriptorSets {
		size += stringSize(flat.DescriptorSets[i].Name)
		size += 4 + 4 + 4 // set index, descriptor view
	}
	for i := range flat.Descriptors {
		size += stringSize(flat.Descriptors[i].Name)
		size += 4 + 4 + 4 // binding index, binding type, texture shape
	}

	buffer := make([]byte, size)
	offset := 0

	offset = putUint32(buffer, offset, Magic)
	offset = putUint32(buffer, offset, FormatVersion)
	offset = putUint32(buffer, offset, uint32(len(flat.EntryPoints)))
	offset = putUint32(buffer, offset, uint32(len(flat.DescriptorSets)))
	offset = putUint32(buffer, offset, uint32(len(flat.Descriptors)))

	for i := range flat.EntryPoints {
		ep := &flat.EntryPoints[i]
		offset = putString(buffer, offset, ep.Name)
		offset = putUint32(buffer, offset, uint32(ep.Stage))
		if ep.HasPushConstant {
			offset = putUint32(buffer, offset, 1)
			offset = putString(buffer, offset, ep.PushConstantName)
			offset = putUint64(buffer, offset, ep.PushConstantSize)
		} else {
			offset = putUint32(buffer, offset, 0)
		}
		offset = putUint32(buffer, offset, ep.DescriptorSets.Offset)
		offset = putUint32(buffer, offset, ep.DescriptorSets.Count)
	}

	for i := range flat.DescriptorSets {
		set := &flat.DescriptorSets[i]
		offset = putString(buffer, offset, set.Name)
		offset = putUint32(buffer, offset, set.SetIndex)
		offset = putUint32(buffer, offset, set.Descriptors.Offset)
		offset = putUint32(buffer, offset, set.Descriptors.Count)
	}

	for i := range flat.Descriptors {
		d := &flat.Descriptors[i]
		offset = putString(buffer, offset, d.Name)
		offset = putUint32(buffer, offset, d.BindingIndex)
		offset = putUint32(buffer, offset, uint32(d.Type))
		offset = putUint32(buffer, offset, uint32(d.Shape))
	}

	return buffer
}

func stringSize(s string) int {
	return 4 + len(s)
}

func putUint32(buffer []byte, offset int, v uint32) int {
	binary.LittleEndian.PutUint32(buffer[offset:], v)
	return offset + 4
}

func putUint64(buffer []byte, offset int, v uint64) int {
	binary.LittleEndian.PutUint64(buffer[offset:], v)
	return offset + 8
}

func putString(buffer []byte, offset int, s string) int {
	offset = putUint32(buffer, offset, uint32(len(s)))
	copy(buffer[offset:], s)
	return offset + len(s)
}

// Decode reads a blob back into its flattened form, validating the header
// and every view bound. It is the engine-side loader's entry point and the
// inverse of Encode.
func Decode(data []byte) (*manifest.Flat, error) {
	r := reader{data: data}

	magic, err := r.uint32()
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, fmt.Errorf("blob: bad magic 0x%08X", magic)
	}
	version, err := r.uint32()
	if err != nil {
		return nil, err
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("blob: unsupported format version %d", version)
	}

	numEntryPoints, err := r.uint32()
	if err != nil {
		return nil, err
	}
	numSets, err := r.uint32()
	if err != nil {
		return nil, err
	}
	numDescriptors, err := r.uint32()
	if err != nil {
		return nil, err
	}

	// The counts come from untrusted bytes; reject any that the remaining
	// data cannot possibly back before allocating record storage. Each
	// record occupies at least its fixed-width fields plus an empty name.
	need := uint64(numEntryPoints)*minEntryPointSize +
		uint64(numSets)*minSetSize +
		uint64(numDescriptors)*minDescriptorSize
	if need > uint64(len(data)-r.offset) {
		return nil, fmt.Errorf("blob: truncated: %d entry points, %d descriptor sets and %d descriptors need at least %d bytes, have %d",
			numEntryPoints, numSets, numDescriptors, need, len(data)-r.offset)
	}

	flat := &manifest.Flat{
		EntryPoints:    make([]manifest.FlatEntryPoint, numEntryPoints),
		DescriptorSets: make([]manifest.FlatDescriptorSet, numSets),
		Descriptors:    make([]manifest.Descriptor, numDescriptors),
	}

	for i := range flat.EntryPoints {
		ep := &flat.EntryPoints[i]
		if ep.Name, err = r.string(); err != nil {
			return nil, err
		}
		stage, err := r.uint32()
		if err != nil {
			return nil, err
		}
		if stage > uint32(manifest.StageTask) {
			return nil, fmt.Errorf("blob: invalid stage %d", stage)
		}
		ep.Stage = manifest.ShaderStage(stage)
		hasPush, err := r.uint32()
		if err != nil {
			return nil, err
		}
		if hasPush != 0 {
			ep.HasPushConstant = true
			if ep.PushConstantName, err = r.string(); err != nil {
				return nil, err
			}
			if ep.PushConstantSize, err = r.uint64(); err != nil {
				return nil, err
			}
		}
		if ep.DescriptorSets, err = r.view(numSets); err != nil {
			return nil, err
		}
	}

	for i := range flat.DescriptorSets {
		set := &flat.DescriptorSets[i]
		if set.Name, err = r.string(); err != nil {
			return nil, err
		}
		if set.SetIndex, err = r.uint32(); err != nil {
			return nil, err
		}
		if set.Descriptors, err = r.view(numDescriptors); err != nil {
			return nil, err
		}
	}

	for i := range flat.Descriptors {
		d := &flat.Descriptors[i]
		if d.Name, err = r.string(); err != nil {
			return nil, err
		}
		if d.BindingIndex, err = r.uint32(); err != nil {
			return nil, err
		}
		bindingType, err := r.uint32()
		if err != nil {
			return nil, err
		}
		if bindingType > uint32(manifest.BindingStorageReadWriteBuffer) {
			return nil, fmt.Errorf("blob: invalid binding type %d", bindingType)
		}
		d.Type = manifest.BindingType(bindingType)
		shape, err := r.uint32()
		if err != nil {
			return nil, err
		}
		if shape > uint32(manifest.TextureArrayCube) {
			return nil, fmt.Errorf("blob: invalid texture shape %d", shape)
		}
		d.Shape = manifest.TextureShape(shape)
	}

	if r.offset != len(r.data) {
		return nil, fmt.Errorf("blob: %d trailing bytes", len(r.data)-r.offset)
	}

	return flat, nil
}

type reader struct {
	data   []byte
	offset int
}

func (r *reader) uint32() (uint32, error) {
	if len(r.data)-r.offset < 4 {
		return 0, fmt.Errorf("blob: truncated at offset %d", r.offset)
	}
	v := binary.LittleEndian.Uint32(r.data[r.offset:])
	r.offset += 4
	return v, nil
}

func (r *reader) uint64() (uint64, error) {
	if len(r.data)-r.offset < 8 {
		return 0, fmt.Errorf("blob: truncated at offset %d", r.offset)
	}
	v := binary.LittleEndian.Uint64(r.data[r.offset:])
	r.offset += 8
	return v, nil
}

func (r *reader) string() (string, error) {
	n, err := r.uint32()
	if err != nil {
		return "", err
	}
	if uint32(len(r.data)-r.offset) < n {
		return "", fmt.Errorf("blob: truncated string at offset %d", r.offset)
	}
	s := string(r.data[r.offset : r.offset+int(n)])
	r.offset += int(n)
	return s, nil
}

func (r *reader) view(limit uint32) (manifest.View, error) {
	offset, err := r.uint32()
	if err != nil {
		return manifest.View{}, err
	}
	count, err := r.uint32()
	if err != nil {
		return manifest.View{}, err
	}
	if offset > limit || count > limit-offset {
		return manifest.View{}, fmt.Errorf("blob: view [%d, %d) out of range (limit %d)", offset, offset+count, limit)
	}
	return manifest.View{Offset: offset, Count: count}, nil
}
