package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/fwojciec/helparc/cmd/helparc"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "helparc")
	assert.Contains(t, stdout.String(), "--start")
}

func TestMain_Run_InvalidFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--no-such-flag"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_InvertedRange(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--start", "10", "--end", "5"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_EndToEnd(t *testing.T) {
	t.Parallel()

	pageHTML := `<!DOCTYPE html>
<html>
<head><title>Page %d - Help Center</title></head>
<body>
<nav><a href="/">Home</a><a href="/help">Help</a></nav>
<article>
<h1>Page %d</h1>
<p>This help article explains an important workflow in enough detail to be archived faithfully.</p>
<p>It covers configuration, common pitfalls, and the recommended recovery steps for administrators.</p>
</article>
<footer>Copyright 2026</footer>
</body>
</html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id int
		if _, err := fmt.Sscanf(r.URL.Path, "/%d", &id); err != nil {
			http.NotFound(w, r)
			return
		}
		if id == 2 {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, pageHTML, id, id)
	}))
	defer srv.Close()

	dir := t.TempDir()
	archivePath := filepath.Join(dir, "archive.md")
	statsPath := filepath.Join(dir, "stats.json")
	dbPath := filepath.Join(dir, "runs.db")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"--start", "1", "--end", "3",
		"--url-template", srv.URL + "/%d",
		"--output", archivePath,
		"--stats", statsPath,
		"--db", dbPath,
		"--delay", "0s",
	}, &stdout, &stderr)
	require.NoError(t, err)

	// Progress lines, one per page
	out := stdout.String()
	assert.Contains(t, out, "[1/3]")
	assert.Contains(t, out, "[3/3]")
	assert.Contains(t, out, "page not found")

	// Archive contains both successful pages in order
	archive, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	content := string(archive)
	assert.Contains(t, content, "# Help Center Archive")
	assert.Contains(t, content, "Page 1")
	assert.Contains(t, content, "Page 3")
	assert.Less(t, strings.Index(content, "Page 1"), strings.Index(content, "Page 3"))

	// Statistics reflect the 404
	stats, err := os.ReadFile(statsPath)
	require.NoError(t, err)
	var summary map[string]any
	require.NoError(t, json.Unmarshal(stats, &summary))
	assert.Equal(t, float64(3), summary["total_pages_checked"])
	assert.Equal(t, float64(2), summary["successful_scrapes"])
	assert.Equal(t, float64(1), summary["not_found"])

	// Run history persisted
	_, err = os.Stat(dbPath)
	require.NoError(t, err)
}
