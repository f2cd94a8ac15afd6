package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// NewVertexBuffer uploads vertex data into a device-local vertex buffer.
func NewVertexBuffer(device *wgpu.Device, label string, contents []byte) (*wgpu.Buffer, error) {
	buf, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex buffer %q: %w", label, err)
	}
	return buf, nil
}

// NewIndexBuffer uploads 16-bit indices into a device-local index buffer.
// The contents must already be padded to a 4-byte multiple; the caller
// keeps the logical index count separately.
func NewIndexBuffer(device *wgpu.Device, label string, indices []uint16) (*wgpu.Buffer, error) {
	contents := wgpu.ToBytes(indices)
	if len(contents)%4 != 0 {
		return nil, fmt.Errorf("index buffer %q not 4-byte aligned: %d bytes", label, len(contents))
	}
	buf, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create index buffer %q: %w", label, err)
	}
	return buf, nil
}
