// Package pipeline wires the generator stages into one offline pass:
// walk both source trees, extract, merge, emit.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"bridgegen/internal/config"
	"bridgegen/internal/diagnostic"
	"bridgegen/internal/emit"
	"bridgegen/internal/extract"
	"bridgegen/internal/merge"
	"bridgegen/internal/model"
)

// Pipeline runs the full generation pass for one project.
// Each run is independent; no state survives between runs.
type Pipeline struct {
	project *config.Project
	walker  *extract.Walker
	kotlin  extract.Extractor
	swift   extract.Extractor
	emitter *emit.Emitter
	log     *zap.Logger
}

// Result is the outcome of one generation pass.
type Result struct {
	// Entities is the merged symbol model, in merger order.
	Entities []model.Entity
	// Dart is the generated proxy source text.
	Dart string
	// Diagnostics aggregates warnings from extraction and merging.
	Diagnostics diagnostic.Diagnostics
}

// New creates a Pipeline for the given project.
// A nil logger disables logging.
func New(project *config.Project, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}

	return &Pipeline{
		project: project,
		walker:  extract.NewWalker(log),
		kotlin:  extract.NewKotlin(),
		swift:   extract.NewSwift(),
		emitter: emit.NewEmitter(emit.Config{
			ChannelName:        project.Channel,
			EventChannelPrefix: project.EventPrefix,
		}),
		log: log,
	}
}

// Run executes the pass: scan both trees, merge, emit.
// A pass over trees with no exposed declarations is not an error; it
// yields an empty model and a valid Dart file with zero proxy classes.
func (p *Pipeline) Run() (*Result, error) {
	android, androidDiags, err := p.walker.Dir(p.project.AndroidRoot, p.kotlin)
	if err != nil {
		return nil, fmt.Errorf("scanning android tree: %w", err)
	}

	ios, iosDiags, err := p.walker.Dir(p.project.IOSRoot, p.swift)
	if err != nil {
		return nil, fmt.Errorf("scanning ios tree: %w", err)
	}

	entities, mergeDiags := merge.Merge(android, ios)

	result := &Result{Entities: entities}
	result.Diagnostics.Merge(androidDiags)
	result.Diagnostics.Merge(iosDiags)
	result.Diagnostics.Merge(mergeDiags)

	result.Dart = p.emitter.Emit(entities)

	p.log.Info("generation pass complete",
		zap.Int("android_entities", len(android)),
		zap.Int("ios_entities", len(ios)),
		zap.Int("merged_entities", len(entities)),
		zap.Int("warnings", len(result.Diagnostics.Warnings)))

	return result, nil
}
