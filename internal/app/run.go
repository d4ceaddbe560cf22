package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arsalion01/blueprintgo/internal/ctxlog"
	"github.com/arsalion01/blueprintgo/internal/engineclient"
	"github.com/arsalion01/blueprintgo/internal/model"
	"github.com/arsalion01/blueprintgo/internal/workflow"
)

// Run executes the full pipeline: load requirements, classify free-text
// messages, synthesize a blueprint, compile it into workflow graphs, write
// the results, and optionally deploy the graphs to an engine.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	input, err := model.LoadInput(ctx, a.config.RequirementsPath)
	if err != nil {
		return fmt.Errorf("failed to load requirements: %w", err)
	}
	a.logger.Info("Requirements loaded.",
		"requirements", len(input.Requirements),
		"messages", len(input.Messages),
	)

	reqs := a.gatherRequirements(ctx, input)
	if len(reqs) == 0 {
		a.logger.Warn("No usable requirements found, generating a generic blueprint.")
	}

	a.logTemplateMatches(reqs)

	bp := a.synthesizer.Generate(ctx, reqs, input.Config)
	a.logger.Info("Blueprint synthesized.",
		"title", bp.Title,
		"domain", bp.Domain,
		"complexity", bp.Complexity,
		"roi", bp.EstimatedROI(),
	)

	graphs := a.builder.Compile(ctx, bp, reqs)
	for _, g := range graphs {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("compiled graph %q failed validation: %w", g.Name, err)
		}
	}
	a.logger.Info("Workflow graphs compiled.", "count", len(graphs))

	if err := a.writeOutputs(bp, graphs); err != nil {
		return err
	}

	if a.config.DeployURL != "" {
		if err := a.deploy(ctx, graphs); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// gatherRequirements merges the explicit requirement blocks with whatever the
// classifier extracts from the free-text messages. Classification runs
// through a conversation so phase transitions apply as usual.
func (a *App) gatherRequirements(ctx context.Context, input *model.Input) []model.Requirement {
	convo := model.NewConversation()
	for _, req := range input.Requirements {
		convo.Append(req)
	}

	for _, msg := range input.Messages {
		result := a.classifier.Classify(ctx, msg, convo)
		a.logger.Debug("Classified input message",
			"intent", result.Intent,
			"confidence", result.Confidence,
		)
	}

	a.logger.Info("Requirement gathering complete.",
		"total", len(convo.Requirements),
		"phase", convo.Phase,
	)
	return convo.Requirements
}

// logTemplateMatches surfaces the closest catalog templates for the gathered
// requirements. Matches are advisory; they never alter the pipeline.
func (a *App) logTemplateMatches(reqs []model.Requirement) {
	if a.store.Len() == 0 {
		return
	}

	texts := make([]string, 0, len(reqs))
	for _, r := range reqs {
		texts = append(texts, r.Answer)
	}

	matches := a.store.Recommend(texts)
	if len(matches) == 0 {
		a.logger.Info("No catalog templates match the requirements.")
		return
	}

	names := make([]string, 0, len(matches))
	for _, t := range matches {
		names = append(names, t.Name)
	}
	a.logger.Info("Closest catalog templates.", "templates", names)
}

// writeOutputs persists the blueprint and each compiled graph as JSON files
// under the configured output directory.
func (a *App) writeOutputs(bp *model.Blueprint, graphs []*workflow.Graph) error {
	if err := os.MkdirAll(a.config.OutputPath, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	bpData, err := json.MarshalIndent(bp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize blueprint: %w", err)
	}
	bpPath := filepath.Join(a.config.OutputPath, "blueprint.json")
	if err := os.WriteFile(bpPath, bpData, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", bpPath, err)
	}
	a.logger.Info("Blueprint written.", "path", bpPath)

	for _, g := range graphs {
		doc, err := workflow.Serialize(g)
		if err != nil {
			return err
		}
		path := filepath.Join(a.config.OutputPath, slugify(g.Name)+".json")
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		a.logger.Info("Workflow graph written.", "graph", g.Name, "path", path)
	}

	return nil
}

// deploy pushes every compiled graph to the configured engine.
func (a *App) deploy(ctx context.Context, graphs []*workflow.Graph) error {
	client, err := engineclient.New(a.config.DeployURL, a.config.DeployNamespace, a.config.DeployTimeout)
	if err != nil {
		return err
	}

	for _, g := range graphs {
		if err := client.Deploy(ctx, g); err != nil {
			return fmt.Errorf("failed to deploy graph %q: %w", g.Name, err)
		}
	}
	a.logger.Info("All graphs deployed.", "count", len(graphs), "url", a.config.DeployURL)
	return nil
}

// slugify renders a graph name as a safe lowercase file name.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
