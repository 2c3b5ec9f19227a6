package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T) (cfgPath, outDir string) {
	t.Helper()
	root := t.TempDir()
	outDir = filepath.Join(root, "public")
	cfgPath = filepath.Join(root, "config.yaml")
	body := fmt.Sprintf(`
siteTitle: Andes OGS
baseURL: https://www.example.com
outputDir: %q
contentDir: %q
staticDir: %q
log:
  level: error
`, outDir, filepath.Join(root, "content"), filepath.Join(root, "static"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))
	return cfgPath, outDir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	cfgPath, _ := writeTestConfig(t)
	out, err := run(t, "--config", cfgPath, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: ")
}

func TestBuildCommand(t *testing.T) {
	cfgPath, outDir := writeTestConfig(t)
	_, err := run(t, "--config", cfgPath, "build")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "index.html"))
	assert.FileExists(t, filepath.Join(outDir, "blog", "optimizacion-de-pozos-maduros", "index.html"))
	assert.FileExists(t, filepath.Join(outDir, "sitemap.xml"))
}

func TestBuildCommand_BadConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "build")
	assert.Error(t, err)
}
