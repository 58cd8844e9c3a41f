package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands_ImportListExportDelete(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	dir := t.TempDir()
	db := filepath.Join(dir, "test.db")

	src := filepath.Join(dir, "期末.txt")
	require.NoError(t, os.WriteFile(src, []byte("单项选择题\n1.2+2=? (B)\nA.3 B.4\n"), 0o644))

	out, err := run(t, "import", src, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "(1 questions)")

	out, err = run(t, "list", "--db", db)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "期末")
	key := strings.Fields(lines[2])[0]
	assert.True(t, strings.HasPrefix(key, "txtData_期末.txt_"))

	exported := filepath.Join(dir, "out.json")
	_, err = run(t, "export", key, "-o", exported, "--db", db)
	require.NoError(t, err)
	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"displayName": "期末"`)

	out, err = run(t, "delete", key, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")

	_, err = run(t, "delete", key, "--db", db)
	assert.Error(t, err)
}

func TestImport_ReportsFailures(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	dir := t.TempDir()

	bad := filepath.Join(dir, "notes.docx")
	require.NoError(t, os.WriteFile(bad, []byte("x"), 0o644))

	_, err := run(t, "import", bad, "--db", filepath.Join(dir, "test.db"))
	assert.ErrorContains(t, err, "1 of 1 files failed")
}
