package terrain

import "testing"

func TestModeNextCycles(t *testing.T) {
	want := []Mode{ModePoints, ModeSolid, ModeTextured, ModeAlphamap, ModeWireframe}
	m := ModeWireframe
	for i, w := range want {
		m = m.Next()
		if m != w {
			t.Errorf("step %d: Next() = %v, want %v", i, m, w)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeWireframe, ModePoints, ModeSolid, ModeTextured, ModeAlphamap} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}
	if got, err := ParseMode("textured"); err != nil || got != ModeTextured {
		t.Errorf("ParseMode(\"textured\") = %v, %v", got, err)
	}
	if _, err := ParseMode("lava"); err == nil {
		t.Error("ParseMode(\"lava\") should fail")
	}
	if s := Mode(42).String(); s != "Mode(42)" {
		t.Errorf("Mode(42).String() = %q", s)
	}
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		mode Mode
		want RenderStyle
	}{
		{ModeWireframe, RenderStyle{Surface: false, PointSize: 3, LineWidth: 1, BackfaceCulling: false, Texture: TextureNone}},
		{ModePoints, RenderStyle{Surface: false, PointSize: 3, LineWidth: 0, BackfaceCulling: false, Texture: TextureNone}},
		{ModeSolid, RenderStyle{Surface: true, BackfaceCulling: true, Texture: TextureNone}},
		{ModeTextured, RenderStyle{Surface: true, BackfaceCulling: true, Texture: TextureHeightmap}},
		{ModeAlphamap, RenderStyle{Surface: true, BackfaceCulling: true, Texture: TextureAlphamap}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			tt.want.Color = [3]float32{1, 1, 1}
			if got := StyleFor(tt.mode); got != tt.want {
				t.Errorf("StyleFor(%v) = %+v, want %+v", tt.mode, got, tt.want)
			}
		})
	}
}
