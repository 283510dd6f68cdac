package render

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
)

const rsvgConvert = "rsvg-convert"

// ToPDF converts an SVG drawing to PDF by piping it through rsvg-convert
// (librsvg2-bin on Debian, librsvg on Homebrew).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	bin, err := exec.LookPath(rsvgConvert)
	if err != nil {
		return nil, perrors.New(perrors.ErrCodeUnsupported, "pdf output needs %s on PATH", rsvgConvert)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--format", "pdf")
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "%s: %s", rsvgConvert, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
