package scaffold

import (
	"context"
	"fmt"

	"github.com/create-zk-app/cza/internal/config"
	oerrors "github.com/create-zk-app/cza/internal/errors"
	"github.com/create-zk-app/cza/internal/execx"
	"github.com/create-zk-app/cza/internal/output"
	"github.com/create-zk-app/cza/internal/registry"
)

// Stage identifies where a generation run is, or where it failed.
type Stage int

const (
	StageIdle Stage = iota
	StageValidating
	StageResolving
	StageMaterializing
	StagePostProcessing
	StageDone
)

// String returns the stage display name.
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageValidating:
		return "validating"
	case StageResolving:
		return "resolving"
	case StageMaterializing:
		return "materializing"
	case StagePostProcessing:
		return "post-processing"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// StageError is a fatal error tagged with the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// Options are the per-invocation inputs of a generation run.
type Options struct {
	// ProjectName is the requested project name (positional argument).
	ProjectName string

	// TemplateFlag is the --template value, empty if omitted.
	TemplateFlag string

	// AuthorFlag is the --author value, empty if omitted.
	AuthorFlag string

	// NoGit disables the git-init step regardless of configuration.
	NoGit bool

	// DryRun previews resolution without touching the filesystem.
	DryRun bool
}

// Result reports a completed (or previewed) generation run.
type Result struct {
	// Request is the fully resolved generation request.
	Request Request

	// TemplateSource records where the template key came from.
	TemplateSource config.Source

	// AuthorSource records where the author identity came from.
	AuthorSource config.Source

	// OutputDir is the materialized directory. Empty for dry runs.
	OutputDir string

	// Pipeline is the gating the post-generation pipeline ran (or, for
	// dry runs, would run) with.
	Pipeline PipelineConfig

	// Outcomes are the pipeline step results. Empty for dry runs.
	Outcomes []StepOutcome

	// DryRun marks a preview that performed no filesystem mutation.
	DryRun bool
}

// Orchestrator wires the collaborators of a generation run. Construct
// one per invocation; it holds no state across runs.
type Orchestrator struct {
	Registry     *registry.Registry
	Config       *config.Config
	Runner       execx.Runner
	Materializer Materializer

	// VCSLookup queries a version-control identity field. Only invoked
	// when neither the flag nor the config provides an author.
	VCSLookup func(key string) string
}

// Run drives a generation through validating, resolving, materializing
// and post-processing. Pipeline step failures never fail the run: once
// materialization succeeded the project exists and the remaining steps
// are best-effort. A dry run stops after resolving, with resolution
// results identical to a real run.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*Result, error) {
	// Validating: template resolution runs first so a friendly message
	// appears before any filesystem checks.
	key, err := config.ResolveTemplateKey(opts.TemplateFlag, o.Config.User.DefaultTemplate)
	if err != nil {
		return nil, &StageError{Stage: StageValidating, Err: err}
	}

	tmpl, err := o.Registry.Get(key.Value)
	if err != nil {
		return nil, &StageError{Stage: StageValidating, Err: err}
	}

	if err := registry.Validate(tmpl); err != nil {
		return nil, &StageError{Stage: StageValidating, Err: err}
	}

	if err := ValidateProjectName(opts.ProjectName, o.Config.Development.ConfirmOverwrite); err != nil {
		return nil, &StageError{Stage: StageValidating, Err: err}
	}

	// Resolving: author identity and the generation request.
	author := config.ResolveAuthor(opts.AuthorFlag, o.Config.User.Author, func() string {
		return o.VCSLookup("user.name")
	})

	vars := map[string]string{
		"project_name": opts.ProjectName,
		"author":       author.Value,
	}
	if o.Config.User.Email != "" {
		vars["author_email"] = o.Config.User.Email
	}

	req := Request{
		TemplateKey: key.Value,
		Template:    tmpl,
		ProjectName: opts.ProjectName,
		TargetDir:   opts.ProjectName,
		Author:      author.Value,
		Email:       o.Config.User.Email,
		Variables:   vars,
	}

	pipeline := PipelineConfig{
		GitInit:     o.Config.User.GitInit && !opts.NoGit,
		InstallDeps: o.Config.PostGeneration.AutoInstallDeps,
		SetupHooks:  o.Config.PostGeneration.AutoSetupHooks,
		Editor:      o.Config.PostGeneration.OpenEditor,
	}

	result := &Result{
		Request:        req,
		TemplateSource: key.Source,
		AuthorSource:   author.Source,
		Pipeline:       pipeline,
		DryRun:         opts.DryRun,
	}

	if opts.DryRun {
		return result, nil
	}

	// Materializing: fatal on failure, no retry.
	var outputDir string
	err = output.RunWithSpinner(ctx, fmt.Sprintf("Generating %s from %s...", opts.ProjectName, key.Value), func() error {
		var mErr error
		outputDir, mErr = o.Materializer.Materialize(ctx, req)
		return mErr
	})
	if err != nil {
		return nil, &StageError{
			Stage: StageMaterializing,
			Err:   oerrors.NewMaterializeError(fmt.Sprintf("generating project from template %q", key.Value), err),
		}
	}
	result.OutputDir = outputDir

	// PostProcessing: best-effort, never fatal.
	result.Outcomes = RunPipeline(o.Runner, req.TargetDir, pipeline)

	return result, nil
}
