package webgpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// Texture is a sampled 2D texture together with the sampler and bind
// group that expose it to the fragment stage.
type Texture struct {
	Width  uint32
	Height uint32

	texture   *wgpu.Texture
	view      *wgpu.TextureView
	sampler   *wgpu.Sampler
	layout    *wgpu.BindGroupLayout
	bindGroup *wgpu.BindGroup
}

// NewTexture uploads a tightly packed RGBA image as an RGBA8-sRGB sampled
// texture and builds the view, sampler, bind-group layout and bind group
// for it. Zero-dimension images are rejected before any allocation.
func NewTexture(device *wgpu.Device, queue *wgpu.Queue, img *image.RGBA, label string) (*Texture, error) {
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return nil, fmt.Errorf("texture %q has zero dimension: %dx%d", label, size.X, size.Y)
	}
	if img.Stride != 4*size.X {
		return nil, fmt.Errorf("texture %q rows not tightly packed: stride %d", label, img.Stride)
	}

	t := &Texture{
		Width:  uint32(size.X),
		Height: uint32(size.Y),
	}

	extent := wgpu.Extent3D{
		Width:              t.Width,
		Height:             t.Height,
		DepthOrArrayLayers: 1,
	}

	texture, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         label,
		Size:          extent,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create texture %q: %w", label, err)
	}
	t.texture = texture

	// Rows are tightly packed at 4*width bytes, always a 4-byte multiple,
	// so no row padding is needed.
	queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: 0, Y: 0, Z: 0},
			Aspect:   wgpu.TextureAspectAll,
		},
		img.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  4 * t.Width,
			RowsPerImage: t.Height,
		},
		&extent,
	)

	view, err := texture.CreateView(nil)
	if err != nil {
		t.Release()
		return nil, fmt.Errorf("failed to create texture view %q: %w", label, err)
	}
	t.view = view

	sampler, err := device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         label + " Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		t.Release()
		return nil, fmt.Errorf("failed to create sampler %q: %w", label, err)
	}
	t.sampler = sampler

	layout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: label + " Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					Multisampled:  false,
					ViewDimension: wgpu.TextureViewDimension2D,
					SampleType:    wgpu.TextureSampleTypeFloat,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		t.Release()
		return nil, fmt.Errorf("failed to create bind group layout %q: %w", label, err)
	}
	t.layout = layout

	bindGroup, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label + " Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: view},
			{Binding: 1, Sampler: sampler},
		},
	})
	if err != nil {
		t.Release()
		return nil, fmt.Errorf("failed to create bind group %q: %w", label, err)
	}
	t.bindGroup = bindGroup

	return t, nil
}

// BindGroup returns the bind group exposing the texture and sampler.
func (t *Texture) BindGroup() *wgpu.BindGroup {
	return t.bindGroup
}

// BindGroupLayout returns the layout used for the pipeline layout.
func (t *Texture) BindGroupLayout() *wgpu.BindGroupLayout {
	return t.layout
}

// Release frees the GPU resources in reverse creation order.
func (t *Texture) Release() {
	if t.bindGroup != nil {
		t.bindGroup.Release()
		t.bindGroup = nil
	}
	if t.layout != nil {
		t.layout.Release()
		t.layout = nil
	}
	if t.sampler != nil {
		t.sampler.Release()
		t.sampler = nil
	}
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}
