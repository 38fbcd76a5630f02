package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"
)

// Runner executes an external command. Tests swap in a fake.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// YtDlpExtractor runs the yt-dlp binary in JSON dump mode.
type YtDlpExtractor struct {
	path    string
	cookies CookieSource
	run     Runner
}

// NewYtDlpExtractor builds an extractor for the binary at path. cookies may be
// nil, in which case profiles asking for credentials run without them.
func NewYtDlpExtractor(path string, cookies CookieSource) *YtDlpExtractor {
	if path == "" {
		path = "yt-dlp"
	}
	return &YtDlpExtractor{
		path:    path,
		cookies: cookies,
		run:     execRunner{},
	}
}

func (x *YtDlpExtractor) Extract(ctx context.Context, ref Reference, profile Profile) (RawRecord, error) {
	args := profileArgs(profile)

	if profile.Credentials && x.cookies != nil {
		jar, cleanup, err := x.cookies.Open(ctx)
		if err != nil {
			return nil, extractionFailed(ctx, err.Error(), err)
		}
		defer cleanup()
		args = append(args, "--cookies", jar)
	}
	args = append(args, "--", ref.Locator())

	stdout, stderr, err := x.run.Run(ctx, x.path, args...)
	if err != nil {
		return nil, extractionFailed(ctx, stderrCause(stderr), err)
	}
	if ctx.Err() != nil {
		return nil, extractionFailed(ctx, "", ctx.Err())
	}

	dec := json.NewDecoder(bytes.NewReader(stdout))
	dec.UseNumber()
	var rec map[string]any
	if err := dec.Decode(&rec); err != nil {
		return nil, extractionFailed(ctx, "malformed extractor output: "+err.Error(), err)
	}
	if rec == nil {
		return nil, extractionFailed(ctx, "malformed extractor output: empty record", nil)
	}
	return RawRecord(rec), nil
}

func profileArgs(p Profile) []string {
	args := []string{"--dump-single-json", "--no-warnings", "--ignore-config"}
	if p.SkipDownload {
		args = append(args, "--skip-download")
	}
	if p.Flat {
		args = append(args, "--flat-playlist")
	}
	if p.AllowPlaylist {
		args = append(args, "--yes-playlist")
	} else {
		args = append(args, "--no-playlist")
	}
	if p.Format != "" {
		args = append(args, "-f", p.Format)
	}
	return args
}

// stderrCause picks the most useful line of yt-dlp's stderr: the last ERROR
// line if any, else the last non-empty line.
func stderrCause(stderr []byte) string {
	lines := strings.Split(strings.TrimSpace(string(stderr)), "\n")
	last := ""
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "ERROR:") {
			return line
		}
		if last == "" {
			last = line
		}
	}
	return last
}
