// Package video inspects local video files so the playback clock has a
// duration before the server round trip completes.
package video

import (
	"encoding/json"
	"fmt"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Info describes a probed video file.
type Info struct {
	Path     string
	Duration float64 // seconds
	Width    int
	Height   int
	Codec    string
}

// probeResult mirrors the ffprobe JSON output fields we read.
type probeResult struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe runs ffprobe against a local file. It requires ffprobe on PATH;
// callers treat failure as recoverable and fall back to server-supplied
// metadata.
func Probe(path string) (*Info, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}

	var result probeResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		return nil, fmt.Errorf("probe %s: parse: %w", path, err)
	}

	info := &Info{Path: path}
	if result.Format.Duration != "" {
		d, err := strconv.ParseFloat(result.Format.Duration, 64)
		if err != nil {
			return nil, fmt.Errorf("probe %s: duration %q: %w", path, result.Format.Duration, err)
		}
		info.Duration = d
	}

	for _, s := range result.Streams {
		if s.CodecType == "video" {
			info.Width = s.Width
			info.Height = s.Height
			info.Codec = s.CodecName
			break
		}
	}

	return info, nil
}
