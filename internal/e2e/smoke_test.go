package e2e

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runLensAgent(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	stdout, stderr, err = runLensAgent(t, binaryPath, home, "post", "--text", "gm from the smoke test", "--dry-run")
	require.NoError(t, err, "stderr: %s", stderr)

	var metadata struct {
		Schema string `json:"$schema"`
		Lens   struct {
			ID      string `json:"id"`
			Content string `json:"content"`
		} `json:"lens"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &metadata))
	assert.Equal(t, "gm from the smoke test", metadata.Lens.Content)
	assert.NotEmpty(t, metadata.Lens.ID)
	assert.NotEmpty(t, metadata.Schema)

	stdout, stderr, err = runLensAgent(t, binaryPath, home,
		"key", "set",
		"--ref", "smoke/wallet",
		"--value", "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "stored key smoke/wallet")
}

func TestRunRejectsIncompleteConfig(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runLensAgent(t, binaryPath, home, "run")
	require.Error(t, err)
	assert.Contains(t, stderr, "account.address is required")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "lensagent-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/lensagent")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build lensagent binary: %s", string(output))
	return binaryPath
}

func runLensAgent(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"LENS_SECRETS_DIR="+filepath.Join(home, "secrets"),
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
