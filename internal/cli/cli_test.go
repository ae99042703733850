package cli

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/benoitkugler/esvg/svgdoc"
	"github.com/benoitkugler/esvg/svgraster"
	"github.com/benoitkugler/esvg/svgtext"
)

type result struct {
	out, log string
	err      error
}

// run executes the command line with `args`, feeding `stdin`.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, logs bytes.Buffer
	root := newRootCmd(&logs)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return result{out: out.String(), log: logs.String(), err: err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSetVersion(t *testing.T) {
	defer SetVersion(version, commit, date)

	SetVersion("1.0.0", "abc123", "2024-01-01")
	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)

	res := run(t, "", "--version")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "esvg 1.0.0")
	assert.Contains(t, res.out, "commit: abc123")
}

func TestNewCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		viewBox string
	}{
		{"default paper", []string{"new"}, `viewBox="0, 0, 794, 1123"`},
		{"preset", []string{"new", "--paper", "a5"}, `viewBox="0, 0, 557, 794"`},
		{"landscape", []string{"new", "--landscape"}, `viewBox="0, 0, 1123, 794"`},
		{"custom size", []string{"new", "--paper", "1inx2in", "--dpi", "100"}, `viewBox="0, 0, 100, 200"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			require.NoError(t, res.err)
			assert.True(t, strings.HasPrefix(res.out, svgdoc.Preamble))
			assert.Contains(t, res.out, tt.viewBox)

			doc, err := svgdoc.Parse(res.out)
			require.NoError(t, err)
			assert.Equal(t, "svg", doc.Name)
		})
	}

	res := run(t, "", "new", "--paper", "tabloid")
	assert.ErrorContains(t, res.err, "unknown paper")
}

func TestNewCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.svg")
	res := run(t, "", "new", path, "--paper", "Letter")
	require.NoError(t, res.err)
	assert.Empty(t, res.out)
	assert.Contains(t, res.log, "Wrote page")

	doc, err := svgdoc.Read(path)
	require.NoError(t, err)
	vb, _ := doc.Get("viewBox")
	assert.Equal(t, "0, 0, 816, 1056", vb)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "esvg.toml", "paper = \"A5\"\nindent = \"  \"\n")

	res := run(t, "", "--config", cfg, "new")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, `viewBox="0, 0, 557, 794"`)

	// flags take precedence
	res = run(t, "", "--config", cfg, "new", "--paper", "A3")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, `viewBox="0, 0, 1123, 1584"`)

	res = run(t, "<g><rect /></g>", "--config", cfg, "fmt")
	require.NoError(t, res.err)
	assert.Equal(t, "<g>\n  <rect />\n</g>\n", res.out)

	res = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "new")
	assert.ErrorContains(t, res.err, "read config")
}

func TestFmtCommand(t *testing.T) {
	input := `<g id="a"><!-- note --><rect x="1"/></g>`

	res := run(t, input, "fmt")
	require.NoError(t, res.err)
	assert.Equal(t, "<g id=\"a\">\n\t<rect x=\"1\" />\n</g>\n", res.out)

	res = run(t, input, "fmt", "--compact", "--comments")
	require.NoError(t, res.err)
	assert.Equal(t, "<g id=\"a\">\n<!-- note -->\n<rect x=\"1\" />\n</g>", res.out)

	res = run(t, input, "fmt", "--indent", "    ")
	require.NoError(t, res.err)
	assert.Equal(t, "<g id=\"a\">\n    <rect x=\"1\" />\n</g>\n", res.out)

	in := writeFile(t, "in.svg", input)
	out := filepath.Join(t.TempDir(), "out.svg")
	res = run(t, "", "fmt", in, "-o", out)
	require.NoError(t, res.err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<g id=\"a\">\n\t<rect x=\"1\" />\n</g>\n", string(data))

	res = run(t, "<g>", "fmt")
	assert.ErrorContains(t, res.err, "<stdin>")
}

func TestCheckCommand(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	res := run(t, "<g>\n\t<rect x=\"1\" />\n</g>\n", "check")
	require.NoError(t, res.err)
	assert.Empty(t, res.out)
	assert.Contains(t, res.log, "Document is formatted")

	unformatted := `<g><rect x="1"/></g>`
	res = run(t, unformatted, "check")
	require.NoError(t, res.err)
	assert.Equal(t, "-<g><rect x=\"1\"/></g>\n+<g>\n+\t<rect x=\"1\" />\n+</g>\n", res.out)
	assert.Contains(t, res.log, "Document is not formatted")

	res = run(t, unformatted, "check", "--strict")
	assert.ErrorIs(t, res.err, ErrNotCanonical)

	res = run(t, "<g>\n<rect x=\"1\" />\n</g>", "check", "--compact", "--strict")
	assert.NoError(t, res.err)

	res = run(t, "<g></h>", "check")
	assert.Error(t, res.err)
	assert.Empty(t, res.out)
}

func TestWriteLineDiff(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	n := writeLineDiff(&buf, "a\nb\nc\n", "a\nB\nc\n")
	assert.Equal(t, 2, n)
	assert.Equal(t, "-b\n+B\n", buf.String())

	buf.Reset()
	assert.Zero(t, writeLineDiff(&buf, "same\n", "same\n"))
	assert.Empty(t, buf.String())
}

const redSquare = `<svg width="4" height="4"><rect width="4" height="4" fill="red" /></svg>`

func TestRasterCommand(t *testing.T) {
	in := writeFile(t, "square.svg", redSquare)

	res := run(t, "", "raster", in)
	require.NoError(t, res.err)
	assert.Contains(t, res.log, "Wrote")

	f, err := os.Open(strings.TrimSuffix(in, ".svg") + ".png")
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	r, g, b, a := img.At(1, 1).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
}

func TestRasterCommandStdin(t *testing.T) {
	res := run(t, redSquare, "raster", "--width", "8", "--height", "2")
	require.NoError(t, res.err)
	img, err := png.Decode(strings.NewReader(res.out))
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	res = run(t, redSquare, "raster", "--width", "8")
	assert.Error(t, res.err)
}

func TestRasterCommandErrorModes(t *testing.T) {
	input := `<svg width="4" height="4"><text>hi</text></svg>`

	res := run(t, input, "raster")
	require.NoError(t, res.err)
	assert.Contains(t, res.log, "skipping unsupported content")

	res = run(t, input, "raster", "--strict")
	assert.ErrorIs(t, res.err, svgraster.ErrUnsupported)

	res = run(t, "<svg />", "raster")
	assert.ErrorIs(t, res.err, svgraster.ErrNoSize)
}

func TestMeasureCommand(t *testing.T) {
	fontPath := filepath.Join(t.TempDir(), "goregular.ttf")
	require.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0o644))

	res := run(t, "", "measure", "Hello", "--font", fontPath, "--size", "20")
	require.NoError(t, res.err)
	var w, h float64
	_, err := fmt.Sscanf(res.out, "%g %g", &w, &h)
	require.NoError(t, err)
	assert.Greater(t, w, 20.)
	assert.Greater(t, h, 15.)

	res = run(t, "", "measure", "Hello", "--font", "no-such-font-family")
	assert.ErrorIs(t, res.err, svgtext.ErrFontNotFound)

	res = run(t, "", "measure")
	assert.Error(t, res.err)
}
