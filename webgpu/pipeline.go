package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineConfig carries everything the render pipeline needs beyond its
// fixed-function state: the WGSL source, the surface color format, the
// vertex buffer layout and the bind-group layouts, in slot order.
type PipelineConfig struct {
	Label            string
	ShaderSource     string
	ColorFormat      wgpu.TextureFormat
	VertexLayout     wgpu.VertexBufferLayout
	BindGroupLayouts []*wgpu.BindGroupLayout
}

// NewRenderPipeline compiles the shader module and assembles the render
// pipeline: triangle list, CCW front face, back culling, replace blend on
// a single color target, no depth/stencil, single sample.
func NewRenderPipeline(device *wgpu.Device, config PipelineConfig) (*wgpu.RenderPipeline, error) {
	shader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: config.Label + " Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: config.ShaderSource,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create shader module: %w", err)
	}
	defer shader.Release()

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            config.Label + " Layout",
		BindGroupLayouts: config.BindGroupLayouts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline layout: %w", err)
	}
	defer layout.Release()

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  config.Label,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{config.VertexLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    config.ColorFormat,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create render pipeline: %w", err)
	}

	return pipeline, nil
}
