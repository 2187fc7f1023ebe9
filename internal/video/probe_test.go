package video

import (
	"encoding/json"
	"os/exec"
	"strconv"
	"testing"
)

func TestProbeResultParsing(t *testing.T) {
	raw := `{
		"streams": [
			{"codec_type": "audio", "codec_name": "aac"},
			{"codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080}
		],
		"format": {"duration": "12.480000"}
	}`

	var result probeResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	d, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		t.Fatalf("parse duration: %v", err)
	}
	if d != 12.48 {
		t.Errorf("duration = %v, want 12.48", d)
	}

	var width, height int
	var codec string
	for _, s := range result.Streams {
		if s.CodecType == "video" {
			width, height, codec = s.Width, s.Height, s.CodecName
			break
		}
	}
	if width != 1920 || height != 1080 || codec != "h264" {
		t.Errorf("video stream = %dx%d %s", width, height, codec)
	}
}

func TestProbeMissingFile(t *testing.T) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not available")
	}

	if _, err := Probe("/nonexistent/clip.mp4"); err == nil {
		t.Error("expected error for missing file")
	}
}
