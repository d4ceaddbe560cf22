// This file implements the HCL loader for the template library. Each .hcl
// file under the library path may declare any number of `template` blocks;
// the loader consolidates all of them, in file-walk order, into the slice a
// Store is built from.
package catalog

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/arsalion01/blueprintgo/internal/ctxlog"
	"github.com/arsalion01/blueprintgo/internal/fsutil"
)

// hclTemplateFile is the top-level structure of a template library file.
type hclTemplateFile struct {
	Templates []*hclTemplate `hcl:"template,block"`
}

// hclTemplate is a single `template "<id>" { ... }` block.
type hclTemplate struct {
	ID           string             `hcl:"id,label"`
	Name         string             `hcl:"name"`
	Description  string             `hcl:"description"`
	Category     string             `hcl:"category"`
	Subcategory  string             `hcl:"subcategory,optional"`
	Tags         []string           `hcl:"tags,optional"`
	Difficulty   int                `hcl:"difficulty,optional"`
	Popularity   int                `hcl:"popularity,optional"`
	Integrations []string           `hcl:"integrations,optional"`
	Variables    cty.Value          `hcl:"variables,optional"`
	Nodes        []*hclTemplateNode `hcl:"node,block"`
	Connections  []*hclConnection   `hcl:"connection,block"`
}

// hclTemplateNode is a `node "<name>" { ... }` block inside a template.
type hclTemplateNode struct {
	Name       string    `hcl:"name,label"`
	Type       string    `hcl:"type"`
	Parameters cty.Value `hcl:"parameters,optional"`
	Position   []float64 `hcl:"position,optional"`
}

// hclConnection is a `connection { ... }` block inside a template.
type hclConnection struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
	Port int    `hcl:"port,optional"`
}

// LoadDir finds and parses all .hcl template files under the given path.
// Structural problems (duplicate ids, unknown categories, dangling
// connections) are load errors: the library is authored content, and a bad
// library is a fatal startup condition.
func LoadDir(ctx context.Context, path string) ([]Template, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading template library", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find template files in %s: %w", path, err)
	}
	if len(files) == 0 {
		logger.Warn("No .hcl template files found in path", "path", path)
		return nil, nil
	}

	parser := hclparse.NewParser()
	seen := make(map[string]string)
	var templates []Template

	for _, file := range files {
		parsed, err := parseTemplateFile(file, parser)
		if err != nil {
			return nil, err
		}
		for _, raw := range parsed {
			if prev, dup := seen[raw.ID]; dup {
				return nil, fmt.Errorf("duplicate template id %q in %s (first defined in %s)", raw.ID, file, prev)
			}
			seen[raw.ID] = file

			t, err := buildTemplate(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid template %q in %s: %w", raw.ID, file, err)
			}
			templates = append(templates, t)
		}
		logger.Debug("Loaded template file", "file", file, "templates", len(parsed))
	}

	logger.Info("Template library loaded", "files", len(files), "templates", len(templates))
	return templates, nil
}

// parseTemplateFile decodes one library file into its raw template blocks.
func parseTemplateFile(filePath string, parser *hclparse.Parser) ([]*hclTemplate, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse template file %s: %w", filePath, diags)
	}

	var parsed hclTemplateFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode template file %s: %w", filePath, diags)
	}
	return parsed.Templates, nil
}

// buildTemplate converts a raw HCL template block into the immutable record
// stored by the catalog, validating its structure along the way.
func buildTemplate(raw *hclTemplate) (Template, error) {
	if !ValidCategory(raw.Category) {
		return Template{}, fmt.Errorf("unknown category %q", raw.Category)
	}

	t := Template{
		ID:           raw.ID,
		Name:         raw.Name,
		Description:  raw.Description,
		Category:     raw.Category,
		Subcategory:  raw.Subcategory,
		Tags:         raw.Tags,
		Difficulty:   raw.Difficulty,
		Popularity:   raw.Popularity,
		Integrations: raw.Integrations,
	}

	if vars := ctyToGo(raw.Variables); vars != nil {
		m, ok := vars.(map[string]any)
		if !ok {
			return Template{}, fmt.Errorf("variables must be an object")
		}
		t.Variables = m
	}

	names := make(map[string]struct{}, len(raw.Nodes))
	for _, n := range raw.Nodes {
		if _, dup := names[n.Name]; dup {
			return Template{}, fmt.Errorf("duplicate node name %q", n.Name)
		}
		names[n.Name] = struct{}{}

		node := TemplateNode{Name: n.Name, Type: n.Type}
		if params := ctyToGo(n.Parameters); params != nil {
			m, ok := params.(map[string]any)
			if !ok {
				return Template{}, fmt.Errorf("node %q: parameters must be an object", n.Name)
			}
			node.Parameters = m
		}
		if len(n.Position) == 2 {
			node.Position = [2]float64{n.Position[0], n.Position[1]}
		}
		t.Nodes = append(t.Nodes, node)
	}

	for _, c := range raw.Connections {
		if _, ok := names[c.From]; !ok {
			return Template{}, fmt.Errorf("connection references unknown node %q", c.From)
		}
		if _, ok := names[c.To]; !ok {
			return Template{}, fmt.Errorf("connection references unknown node %q", c.To)
		}
		t.Connections = append(t.Connections, TemplateConnection{From: c.From, To: c.To, Port: c.Port})
	}

	return t, nil
}
