package component

import "testing"

func TestInputEdges(t *testing.T) {
	var in Input

	in.Press(ActionQuickReset)
	if !in.JustPressed(ActionQuickReset) || !in.IsHeld(ActionQuickReset) {
		t.Fatal("press should set held and the edge")
	}
	in.EndFrame()
	if in.JustPressed(ActionQuickReset) {
		t.Fatal("edge should clear at end of frame")
	}
	if !in.IsHeld(ActionQuickReset) {
		t.Fatal("held should survive end of frame")
	}

	in.Press(ActionQuickReset)
	if in.JustPressed(ActionQuickReset) {
		t.Fatal("repeat press while held is not a new edge")
	}

	in.Release(ActionQuickReset)
	in.Press(ActionQuickReset)
	if !in.JustPressed(ActionQuickReset) {
		t.Fatal("press after release should be a new edge")
	}
}

func TestInputDirectionalAndDeltas(t *testing.T) {
	var in Input
	in.Set(ActionForward, true)
	in.Set(ActionStrafeRight, true)
	in.Set(ActionStrafeRight, false)
	in.AddDrag(3, -2)
	in.AddDrag(1, 1)
	in.AddScroll(-1)

	want := Held{Forward: true}
	if got := in.Directional(); got != want {
		t.Fatalf("Directional = %+v, want %+v", got, want)
	}
	if in.DragX != 4 || in.DragY != -1 || in.Scroll != -1 {
		t.Fatalf("unexpected deltas %v %v %v", in.DragX, in.DragY, in.Scroll)
	}

	in.EndFrame()
	if in.DragX != 0 || in.DragY != 0 || in.Scroll != 0 {
		t.Fatal("deltas should clear at end of frame")
	}

	in.ReleaseAll()
	if in.Directional().Any() {
		t.Fatal("ReleaseAll should drop held keys")
	}
}

func TestInvalidAction(t *testing.T) {
	var in Input
	in.Press(Action(200))
	if in.IsHeld(Action(200)) || in.JustPressed(Action(200)) {
		t.Fatal("invalid actions should be ignored")
	}
}
