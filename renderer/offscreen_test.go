package renderer

import (
	"testing"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

func TestEncoderArgs(t *testing.T) {
	tests := []struct {
		name  string
		opts  RecordOptions
		goos  string
		codec string
		tag   bool
	}{
		{"linux nvenc", RecordOptions{Out: "a.mp4"}, "linux", "h264_nvenc", false},
		{"darwin hevc", RecordOptions{Out: "a.mp4", Codec: "hevc"}, "darwin", "hevc_videotoolbox", true},
		{"windows", RecordOptions{Out: "a.mp4"}, "windows", "libx264", false},
		{"software", RecordOptions{Out: "a.mkv", Codec: "hevc", Software: true}, "linux", "libx265", false},
		{"webm", RecordOptions{Out: "a.WEBM"}, "linux", "libvpx-vp9", false},
		{"no extension", RecordOptions{Out: "clip"}, "freebsd", "libx264", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.opts.FPS = 30
			in, out := encoderArgs(tc.opts, 640, 360, tc.goos)
			if in["s"] != "640x360" || in["pix_fmt"] != "rgba" || in["framerate"] != 30 {
				t.Errorf("input args = %v", in)
			}
			if out["c:v"] != tc.codec {
				t.Errorf("codec = %v, want %s", out["c:v"], tc.codec)
			}
			if _, ok := out["tag:v"]; ok != tc.tag {
				t.Errorf("tag:v present = %v", ok)
			}
			if vf, _ := out["vf"].(string); len(vf) < 5 || vf[:5] != "vflip" {
				t.Errorf("vf = %q, frames must be flipped", vf)
			}
		})
	}
}

func TestEncoderArgsGIF(t *testing.T) {
	_, out := encoderArgs(RecordOptions{Out: "loop.mp4", Format: "GIF", FPS: 24}, 8, 8, "linux")
	want := ffmpeg.KwArgs{
		"vf":   "vflip,split[a][b];[a]palettegen[p];[b][p]paletteuse",
		"loop": 0,
	}
	if len(out) != len(want) || out["vf"] != want["vf"] || out["loop"] != 0 {
		t.Errorf("gif args = %v", out)
	}
}

func TestOutputFormat(t *testing.T) {
	for out, want := range map[string]string{
		"x.gif":      "gif",
		"dir/x.webm": "webm",
		"x.MOV":      "mov",
		"x.avi":      "mp4",
		"x":          "mp4",
	} {
		if got := OutputFormat(RecordOptions{Out: out}); got != want {
			t.Errorf("OutputFormat(%q) = %q, want %q", out, got, want)
		}
	}
}
