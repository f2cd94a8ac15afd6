package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/ekarademir/wgu-learning-book/core"
)

func TestInputSpacebarTogglesLever(t *testing.T) {
	s := &State{}

	if !s.Input(core.KeyEvent{Key: core.KeySpace, Action: core.Press}) {
		t.Error("space press should be consumed")
	}
	if !s.Levers().Has(Lever1) {
		t.Error("lever 1 should be raised while space is held")
	}

	// Repeated presses must not flip the lever back.
	s.Input(core.KeyEvent{Key: core.KeySpace, Action: core.Press})
	if !s.Levers().Has(Lever1) {
		t.Error("lever 1 should stay raised on repeated press")
	}

	if !s.Input(core.KeyEvent{Key: core.KeySpace, Action: core.Release}) {
		t.Error("space release should be consumed")
	}
	if s.Levers().Has(Lever1) {
		t.Error("lever 1 should be lowered after release")
	}
}

func TestInputIgnoresOtherKeys(t *testing.T) {
	s := &State{}

	if s.Input(core.KeyEvent{Key: core.KeyEscape, Action: core.Press}) {
		t.Error("escape should be left for the caller")
	}
	if s.Levers() != 0 {
		t.Errorf("got levers %b, want none raised", s.Levers())
	}
}

func TestInputTracksCursor(t *testing.T) {
	s := &State{}

	if !s.Input(core.CursorMoved{X: 12.5, Y: 40.0}) {
		t.Error("cursor movement should be consumed")
	}
	got := s.MousePos()
	if got.X != 12.5 || got.Y != 40.0 {
		t.Errorf("got mouse position %+v, want (12.5, 40)", got)
	}
}

func TestCurrentIndexBufferFollowsLever(t *testing.T) {
	full := new(wgpu.Buffer)
	detached := new(wgpu.Buffer)
	s := &State{
		indexBuffer:      full,
		numIndices:       9,
		otherIndexBuffer: detached,
		otherNumIndices:  6,
	}

	buf, count := s.currentIndexBuffer()
	if buf != full || count != 9 {
		t.Errorf("got count %d with lever lowered, want full set of 9", count)
	}

	s.levers = s.levers.Set(Lever1)
	buf, count = s.currentIndexBuffer()
	if buf != detached || count != 6 {
		t.Errorf("got count %d with lever raised, want detached set of 6", count)
	}

	s.levers = s.levers.Clear(Lever1)
	buf, count = s.currentIndexBuffer()
	if buf != full || count != 9 {
		t.Errorf("got count %d after lowering the lever, want full set of 9", count)
	}
}

func TestResizeIgnoresZeroDimensions(t *testing.T) {
	s := &State{width: 800, height: 600}

	s.Resize(0, 600)
	s.Resize(800, 0)

	w, h := s.Size()
	if w != 800 || h != 600 {
		t.Errorf("got size %dx%d after zero-dimension resizes, want 800x600", w, h)
	}
}

func TestClearPassValues(t *testing.T) {
	view := new(wgpu.TextureView)
	desc := clearPass(view, ClearColor)

	if len(desc.ColorAttachments) != 1 {
		t.Fatalf("got %d color attachments, want 1", len(desc.ColorAttachments))
	}
	att := desc.ColorAttachments[0]
	if att.View != view {
		t.Error("pass should target the acquired frame view")
	}
	if att.LoadOp != wgpu.LoadOpClear || att.StoreOp != wgpu.StoreOpStore {
		t.Errorf("got ops load=%v store=%v, want clear then store", att.LoadOp, att.StoreOp)
	}
	want := wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}
	if att.ClearValue != want {
		t.Errorf("got clear value %+v, want %+v", att.ClearValue, want)
	}
}

func TestLeverBitfield(t *testing.T) {
	var l Levers

	l = l.Set(Lever1 | Lever2)
	if !l.Has(Lever1) || !l.Has(Lever2) {
		t.Errorf("got %b, want both levers raised", l)
	}

	l = l.Clear(Lever1)
	if l.Has(Lever1) {
		t.Error("lever 1 should be lowered")
	}
	if !l.Has(Lever2) {
		t.Error("lever 2 should stay raised")
	}
}
