package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestVertexBufferLayoutPacking(t *testing.T) {
	layout := VertexBufferLayout()

	if layout.ArrayStride != 20 {
		t.Errorf("got stride %d, want 20", layout.ArrayStride)
	}
	if layout.StepMode != wgpu.VertexStepModeVertex {
		t.Errorf("got step mode %v, want per-vertex", layout.StepMode)
	}
	if len(layout.Attributes) != 2 {
		t.Fatalf("got %d attributes, want 2", len(layout.Attributes))
	}

	pos := layout.Attributes[0]
	if pos.Format != wgpu.VertexFormatFloat32x3 || pos.Offset != 0 || pos.ShaderLocation != 0 {
		t.Errorf("position attribute = %+v, want float32x3 at offset 0, location 0", pos)
	}

	tex := layout.Attributes[1]
	if tex.Format != wgpu.VertexFormatFloat32x2 || tex.Offset != 12 || tex.ShaderLocation != 1 {
		t.Errorf("tex coords attribute = %+v, want float32x2 at offset 12, location 1", tex)
	}
}

func TestPentagonVertexData(t *testing.T) {
	if len(pentagonVertices) != 5 {
		t.Fatalf("got %d vertices, want 5", len(pentagonVertices))
	}

	raw := wgpu.ToBytes(pentagonVertices)
	if len(raw) != 5*20 {
		t.Errorf("got %d vertex bytes, want %d", len(raw), 5*20)
	}

	for i, v := range pentagonVertices {
		for _, c := range v.Position[:2] {
			if c < -1 || c > 1 {
				t.Errorf("vertex %d position %v outside clip space", i, v.Position)
			}
		}
		for _, c := range v.TexCoords {
			if c < 0 || c > 1 {
				t.Errorf("vertex %d tex coords %v outside [0,1]", i, v.TexCoords)
			}
		}
	}
}
