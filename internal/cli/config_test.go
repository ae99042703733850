package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig([]byte(`
dpi = 300
paper = "Letter"
margin = 0.25
indent = "  "
font = "DejaVuSerif"
font_size = 14
`))
	require.NoError(t, err)
	assert.Equal(t, Config{DPI: 300, Paper: "Letter", Margin: 0.25, Indent: "  ", Font: "DejaVuSerif", FontSize: 14}, cfg)

	// missing keys keep their default
	cfg, err = parseConfig([]byte(`paper = "A3"`))
	require.NoError(t, err)
	assert.Equal(t, "A3", cfg.Paper)
	assert.Equal(t, DefaultConfig.DPI, cfg.DPI)
	assert.Equal(t, DefaultConfig.Indent, cfg.Indent)

	for _, input := range []string{
		`dpi = "high"`,
		`papr = "A4"`,
		`dpi = 0`,
		`paper = `,
	} {
		_, err = parseConfig([]byte(input))
		assert.Error(t, err, input)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, cfg)

	path := writeFile(t, "esvg.toml", "dpi = 72\n")
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.DPI)

	_, err = loadConfig(path + ".missing")
	assert.Error(t, err)
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultConfig, configFromContext(ctx))
	assert.Same(t, log.Default(), loggerFromContext(ctx))

	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)
	cfg := Config{DPI: 10}
	ctx = withConfig(withLogger(ctx, logger), cfg)
	assert.Equal(t, cfg, configFromContext(ctx))
	assert.Same(t, logger, loggerFromContext(ctx))
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("hidden")
	assert.Zero(t, buf.Len())
	logger.Info("shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	newProgress(logger).done("Finished")
	assert.Regexp(t, `Finished \([\d.]+m?s\)`, buf.String())
}

func TestVerboseFlag(t *testing.T) {
	res := run(t, "<g />", "fmt")
	require.NoError(t, res.err)
	assert.NotContains(t, res.log, "parsed document")

	res = run(t, "<g />", "-v", "fmt")
	require.NoError(t, res.err)
	assert.Contains(t, res.log, "parsed document")
}
