package geom

import (
	"image"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(10, -6)
	q := Pt(3, 4)
	if got := p.Add(q); got != Pt(13, -2) {
		t.Errorf("Add = %v, want (13,-2)", got)
	}
	if got := p.Sub(q); got != Pt(7, -10) {
		t.Errorf("Sub = %v, want (7,-10)", got)
	}
	if got := p.Div(2); got != Pt(5, -3) {
		t.Errorf("Div = %v, want (5,-3)", got)
	}
	if got := Pt(32, 17).Shr(4); got != Pt(2, 1) {
		t.Errorf("Shr = %v, want (2,1)", got)
	}
	if got := Pt(2, 1).Shl(3); got != Pt(16, 8) {
		t.Errorf("Shl = %v, want (16,8)", got)
	}
}

func TestRectSize(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		w, h int
	}{
		{"single pixel", R(5, 5, 5, 5), 1, 1},
		{"16x16", R(0, 0, 15, 15), 16, 16},
		{"negative origin", R(-4, -2, 3, 1), 8, 4},
		{"RectAt", RectAt(Pt(16, 16), Pt(16, 8)), 16, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.r.Width() != tt.w || tt.r.Height() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", tt.r.Width(), tt.r.Height(), tt.w, tt.h)
			}
			if got := tt.r.Size(); got != Pt(tt.w, tt.h) {
				t.Errorf("Size() = %v", got)
			}
		})
	}
}

func TestRectCrop(t *testing.T) {
	bounds := R(0, 0, 127, 63)
	tests := []struct {
		name  string
		r     Rect
		want  Rect
		empty bool
	}{
		{"inside", R(10, 10, 20, 20), R(10, 10, 20, 20), false},
		{"overlapping left top", R(-5, -5, 3, 3), R(0, 0, 3, 3), false},
		{"overlapping right bottom", R(120, 60, 140, 70), R(120, 60, 127, 63), false},
		{"outside", R(200, 0, 210, 10), R(200, 0, 127, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Crop(bounds)
			if got != tt.want {
				t.Errorf("Crop = %v, want %v", got, tt.want)
			}
			if got.Empty() != tt.empty {
				t.Errorf("Empty = %v, want %v", got.Empty(), tt.empty)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := R(10, 10, 20, 20)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(20, 20), true},
		{Pt(15, 9), false},
		{Pt(21, 15), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if !r.ContainsRect(R(11, 11, 19, 19)) {
		t.Error("ContainsRect inner = false")
	}
	if r.ContainsRect(R(11, 11, 25, 19)) {
		t.Error("ContainsRect crossing = true")
	}
	if !r.ContainsPartOf(R(15, 15, 25, 25)) {
		t.Error("ContainsPartOf crossing = false")
	}
	if !r.Above(Pt(0, 5)) || r.Above(Pt(0, 10)) {
		t.Error("Above is wrong")
	}
	if !r.Below(Pt(0, 21)) || r.Below(Pt(0, 20)) {
		t.Error("Below is wrong")
	}
}

func TestRectOverlaps(t *testing.T) {
	r := R(0, 0, 15, 15)
	if !r.Overlaps(R(15, 15, 30, 30)) {
		t.Error("corner touch should overlap with inclusive corners")
	}
	if r.Overlaps(R(16, 0, 31, 15)) {
		t.Error("adjacent tile should not overlap")
	}
}

func TestRectMove(t *testing.T) {
	r := R(0, 0, 15, 15)
	if got := r.Move(5, 5); got != R(5, 5, 20, 20) {
		t.Errorf("Move = %v", got)
	}
	if got := r.Add(Pt(1, 2)).Sub(Pt(1, 2)); got != r {
		t.Errorf("Add/Sub = %v", got)
	}
	if got := R(16, 32, 47, 63).Shr(4); got != R(1, 2, 2, 3) {
		t.Errorf("Shr = %v", got)
	}
}

func TestRectangleConversion(t *testing.T) {
	r := R(2, 3, 9, 7)
	ir := r.Rectangle()
	if ir != image.Rect(2, 3, 10, 8) {
		t.Errorf("Rectangle() = %v", ir)
	}
	if got := FromRectangle(ir); got != r {
		t.Errorf("FromRectangle = %v, want %v", got, r)
	}
}
