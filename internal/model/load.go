// This file implements the HCL loader for requirement input files.
//
// A requirements file is the core's only input feed: explicit `requirement`
// blocks carry already-categorized facts, while `message` blocks carry free
// text that still needs to go through the classifier. Top-level attributes
// configure blueprint generation.
package model

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/arsalion01/blueprintgo/internal/ctxlog"
	"github.com/arsalion01/blueprintgo/internal/fsutil"
)

// Input is the decoded content of one or more requirement files: the
// blueprint configuration, the explicit requirements, and any free-text
// messages left for the classifier.
type Input struct {
	Config       BlueprintConfig
	Requirements []Requirement
	Messages     []string
}

// hclRequirementsFile is the top-level structure of a requirements file.
type hclRequirementsFile struct {
	Industry     *string           `hcl:"industry,optional"`
	Timeline     *string           `hcl:"timeline,optional"`
	Requirements []*hclRequirement `hcl:"requirement,block"`
	Messages     []*hclMessage     `hcl:"message,block"`
}

// hclRequirement is a single `requirement "<category>" { ... }` block.
type hclRequirement struct {
	Category string   `hcl:"category,label"`
	Text     string   `hcl:"text"`
	Question string   `hcl:"question,optional"`
	Priority string   `hcl:"priority,optional"`
	Tags     []string `hcl:"tags,optional"`
}

// hclMessage is a free-text `message { ... }` block.
type hclMessage struct {
	Text string `hcl:"text"`
}

// LoadInput finds and parses all .hcl requirement files under the given path
// into a single Input. Malformed requirement blocks (empty text, unknown
// category) are skipped with a warning rather than failing the load.
func LoadInput(ctx context.Context, path string) (*Input, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading requirements from path", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find requirement files in %s: %w", path, err)
	}

	input := &Input{}
	if len(files) == 0 {
		logger.Warn("No .hcl requirement files found in path, returning empty input", "path", path)
		return input, nil
	}

	parser := hclparse.NewParser()
	for _, file := range files {
		if err := input.appendFile(ctx, file, parser); err != nil {
			return nil, err
		}
	}

	return input, nil
}

// appendFile parses a single requirements file and merges its content.
func (in *Input) appendFile(ctx context.Context, filePath string, parser *hclparse.Parser) error {
	logger := ctxlog.FromContext(ctx)

	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse requirements file %s: %w", filePath, diags)
	}

	var parsed hclRequirementsFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode requirements file %s: %w", filePath, diags)
	}

	if parsed.Industry != nil {
		in.Config.Industry = *parsed.Industry
	}
	if parsed.Timeline != nil {
		in.Config.Timeline = *parsed.Timeline
	}

	for _, raw := range parsed.Requirements {
		req := Requirement{
			ID:         uuid.NewString(),
			Category:   RequirementCategory(raw.Category),
			Question:   raw.Question,
			Answer:     raw.Text,
			Priority:   Priority(raw.Priority),
			Confidence: 1.0,
			Tags:       raw.Tags,
		}
		if req.Priority == "" {
			req.Priority = PriorityMedium
		}
		if !req.WellFormed() {
			logger.Warn("Skipping malformed requirement block", "file", filePath, "category", raw.Category)
			continue
		}
		in.Requirements = append(in.Requirements, req)
	}

	for _, msg := range parsed.Messages {
		if msg.Text == "" {
			logger.Warn("Skipping empty message block", "file", filePath)
			continue
		}
		in.Messages = append(in.Messages, msg.Text)
	}

	logger.Debug("Parsed requirements file", "file", filePath,
		"requirements", len(parsed.Requirements), "messages", len(parsed.Messages))
	return nil
}
