package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A template library with a syntax error is a fatal startup condition and
	// panics inside app.NewApp().
	invalidHCL := `
		template "broken" {
			name = "Broken
	`
	templatesDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(templatesDir, "broken.hcl"), []byte(invalidHCL), 0o600))

	args := []string{"-templates", templatesDir, t.TempDir()}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	assert.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	assert.True(t, strings.Contains(errStr, "failed to"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	// The "-h" (help) flag causes cli.Parse to return shouldExit=true.
	runErr := run(out, []string{"-h"})

	// --- Assert ---
	require.NoError(t, runErr)
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reqsDir := t.TempDir()
	requirementsHCL := `
		industry = "retail"
		timeline = "standard"

		requirement "business-process" {
			text     = "Automate order processing for the web shop"
			priority = "high"
		}

		requirement "integrations" {
			text = "Orders come from shopify, payments run through stripe"
		}

		message {
			text = "We handle thousands of orders per day via webhook events"
		}
	`
	require.NoError(t, os.WriteFile(filepath.Join(reqsDir, "main.hcl"), []byte(requirementsHCL), 0o600))

	outputDir := filepath.Join(t.TempDir(), "out")
	args := []string{
		"-templates", t.TempDir(), // empty library, recommendations disabled
		"-output", outputDir,
		"-log-level", "error",
		reqsDir,
	}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.NoError(t, runErr)

	blueprintData, err := os.ReadFile(filepath.Join(outputDir, "blueprint.json"))
	require.NoError(t, err, "blueprint.json should have been written")

	var blueprint map[string]any
	require.NoError(t, json.Unmarshal(blueprintData, &blueprint))
	assert.Equal(t, "ecommerce", blueprint["Domain"])

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	// blueprint.json plus at least the main workflow graph.
	require.GreaterOrEqual(t, len(entries), 2)

	var graphFiles int
	for _, entry := range entries {
		if entry.Name() == "blueprint.json" {
			continue
		}
		graphFiles++
		data, err := os.ReadFile(filepath.Join(outputDir, entry.Name()))
		require.NoError(t, err)

		var graph map[string]any
		require.NoError(t, json.Unmarshal(data, &graph))
		assert.Contains(t, graph, "nodes")
		assert.Contains(t, graph, "connections")
	}
	assert.Positive(t, graphFiles)
}
