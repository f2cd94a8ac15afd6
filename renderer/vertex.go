package renderer

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex is one pentagon corner: position in clip space and a texture
// coordinate. The field order and packing match VertexBufferLayout
// bit-exactly: attribute 0 at offset 0, attribute 1 at offset 12,
// stride 20, little endian.
type Vertex struct {
	Position  [3]float32
	TexCoords [2]float32
}

// VertexBufferLayout describes how the pipeline reads the vertex buffer.
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: 0,
			},
			{
				Format:         wgpu.VertexFormatFloat32x2,
				Offset:         uint64(unsafe.Sizeof([3]float32{})),
				ShaderLocation: 1,
			},
		},
	}
}

// The five pentagon corners, counter-clockwise from the top vertex.
var pentagonVertices = []Vertex{
	{Position: [3]float32{-0.0868241, 0.49240386, 0.0}, TexCoords: [2]float32{0.4131759, 0.00759614}},    // A
	{Position: [3]float32{-0.49513406, 0.06958647, 0.0}, TexCoords: [2]float32{0.0048659444, 0.43041354}}, // B
	{Position: [3]float32{-0.21918549, -0.44939706, 0.0}, TexCoords: [2]float32{0.28081453, 0.949397057}}, // C
	{Position: [3]float32{0.35966998, -0.3473291, 0.0}, TexCoords: [2]float32{0.85967, 0.84732911}},       // D
	{Position: [3]float32{0.44147372, 0.2347359, 0.0}, TexCoords: [2]float32{0.9414737, 0.2652641}},       // E
}
