package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeLibrary lays out one template file in a fresh directory.
func writeLibrary(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "library.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return dir
}

func TestLoadDir_ParsesTemplates(t *testing.T) {
	t.Parallel()

	dir := writeLibrary(t, `
		template "orders" {
			name        = "Order Processing"
			description = "Processes orders."
			category    = "ecommerce"
			tags        = ["orders", "payments"]
			difficulty  = 2
			popularity  = 870

			integrations = ["shopify", "stripe"]

			variables = {
				currency = "USD"
				retries  = 3
			}

			node "Order Received" {
				type       = "webhook"
				parameters = { path = "orders" }
				position   = [250, 300]
			}

			node "Capture Payment" {
				type = "stripe"
			}

			connection {
				from = "Order Received"
				to   = "Capture Payment"
			}
		}
	`)

	templates, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	tmpl := templates[0]
	assert.Equal(t, "orders", tmpl.ID)
	assert.Equal(t, "Order Processing", tmpl.Name)
	assert.Equal(t, CategoryEcommerce, tmpl.Category)
	assert.Equal(t, []string{"orders", "payments"}, tmpl.Tags)
	assert.Equal(t, 2, tmpl.Difficulty)
	assert.Equal(t, 870, tmpl.Popularity)
	assert.Equal(t, []string{"shopify", "stripe"}, tmpl.Integrations)

	require.Len(t, tmpl.Nodes, 2)
	assert.Equal(t, "webhook", tmpl.Nodes[0].Type)
	assert.Equal(t, "orders", tmpl.Nodes[0].Parameters["path"])
	assert.Equal(t, [2]float64{250, 300}, tmpl.Nodes[0].Position)

	require.Len(t, tmpl.Connections, 1)
	assert.Equal(t, "Order Received", tmpl.Connections[0].From)
	assert.Equal(t, "Capture Payment", tmpl.Connections[0].To)

	assert.Equal(t, "USD", tmpl.Variables["currency"])
	assert.Equal(t, 3, tmpl.Variables["retries"])
}

func TestLoadDir_RejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	dir := writeLibrary(t, `
		template "dup" {
			name        = "First"
			description = "First copy."
			category    = "hr"
		}

		template "dup" {
			name        = "Second"
			description = "Second copy."
			category    = "hr"
		}
	`)

	_, err := LoadDir(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate template id")
}

func TestLoadDir_RejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	dir := writeLibrary(t, `
		template "bad" {
			name        = "Bad"
			description = "Unknown category."
			category    = "astrology"
		}
	`)

	_, err := LoadDir(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestLoadDir_RejectsDanglingConnections(t *testing.T) {
	t.Parallel()

	dir := writeLibrary(t, `
		template "dangling" {
			name        = "Dangling"
			description = "Edge to nowhere."
			category    = "operations"

			node "Start" {
				type = "webhook"
			}

			connection {
				from = "Start"
				to   = "Missing"
			}
		}
	`)

	_, err := LoadDir(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown node")
}

func TestLoadDir_EmptyDirectoryIsNotAnError(t *testing.T) {
	t.Parallel()

	templates, err := LoadDir(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, templates)
}
