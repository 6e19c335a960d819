package scaffold

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/create-zk-app/cza/internal/config"
	oerrors "github.com/create-zk-app/cza/internal/errors"
	"github.com/create-zk-app/cza/internal/registry"
)

// stubMaterializer records the request and optionally fails.
type stubMaterializer struct {
	calls []Request
	dir   string
	err   error
}

func (m *stubMaterializer) Materialize(_ context.Context, req Request) (string, error) {
	m.calls = append(m.calls, req)
	if m.err != nil {
		return "", m.err
	}
	return m.dir, nil
}

func testRegistry() *registry.Registry {
	return &registry.Registry{Templates: map[string]registry.Template{
		"t1": {
			Name:        "Template One",
			Description: "first",
			Repository:  "https://github.com/example/templates",
			Subfolder:   "t1",
			Frameworks:  []string{"noir"},
		},
		"t2": {
			Name:        "Template Two",
			Description: "second",
			Repository:  "https://github.com/example/templates",
			Subfolder:   "t2",
			Frameworks:  []string{"cairo"},
		},
	}}
}

func newTestOrchestrator(cfg *config.Config, mat Materializer) *Orchestrator {
	return &Orchestrator{
		Registry:     testRegistry(),
		Config:       cfg,
		Runner:       &stubRunner{},
		Materializer: mat,
		VCSLookup:    func(string) string { return "" },
	}
}

func TestOrchestrator_DryRun(t *testing.T) {
	chdirTemp(t)

	mat := &stubMaterializer{dir: "myapp"}
	o := newTestOrchestrator(config.DefaultConfig(), mat)

	result, err := o.Run(context.Background(), Options{
		ProjectName:  "myapp",
		TemplateFlag: "t1",
		DryRun:       true,
	})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, "t1", result.Request.TemplateKey)
	assert.Equal(t, "Template One", result.Request.Template.Name)
	assert.Empty(t, result.OutputDir)
	assert.Empty(t, result.Outcomes)

	// No filesystem mutation and no materializer call.
	assert.Empty(t, mat.calls)
	_, statErr := os.Stat("myapp")
	assert.True(t, os.IsNotExist(statErr))
}

func TestOrchestrator_DryRunResolvesLikeRealRun(t *testing.T) {
	chdirTemp(t)

	cfg := config.DefaultConfig()
	cfg.User.Author = "Ada"
	cfg.User.Email = "ada@example.com"

	o := newTestOrchestrator(cfg, &stubMaterializer{dir: "myapp"})

	dry, err := o.Run(context.Background(), Options{ProjectName: "myapp", TemplateFlag: "t1", DryRun: true})
	require.NoError(t, err)

	actual, err := o.Run(context.Background(), Options{ProjectName: "myapp", TemplateFlag: "t1"})
	require.NoError(t, err)

	assert.Equal(t, dry.Request, actual.Request)
	assert.Equal(t, dry.Pipeline, actual.Pipeline)
}

func TestOrchestrator_TemplatePrecedence(t *testing.T) {
	chdirTemp(t)

	cfg := config.DefaultConfig()
	cfg.User.DefaultTemplate = "t2"
	o := newTestOrchestrator(cfg, &stubMaterializer{dir: "myapp"})

	// Explicit flag wins.
	result, err := o.Run(context.Background(), Options{ProjectName: "myapp", TemplateFlag: "t1", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "t1", result.Request.TemplateKey)
	assert.Equal(t, config.SourceFlag, result.TemplateSource)

	// Configured default fills in.
	result, err = o.Run(context.Background(), Options{ProjectName: "myapp", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "t2", result.Request.TemplateKey)
	assert.Equal(t, config.SourceConfig, result.TemplateSource)
}

func TestOrchestrator_NoTemplateSpecified(t *testing.T) {
	chdirTemp(t)

	o := newTestOrchestrator(config.DefaultConfig(), &stubMaterializer{})

	_, err := o.Run(context.Background(), Options{ProjectName: "myapp", DryRun: true})
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageValidating, stageErr.Stage)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestOrchestrator_TemplateNotFound(t *testing.T) {
	chdirTemp(t)

	o := newTestOrchestrator(config.DefaultConfig(), &stubMaterializer{})

	_, err := o.Run(context.Background(), Options{ProjectName: "myapp", TemplateFlag: "missing", DryRun: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestOrchestrator_EmailOnlyWhenPresent(t *testing.T) {
	chdirTemp(t)

	cfg := config.DefaultConfig()
	o := newTestOrchestrator(cfg, &stubMaterializer{dir: "myapp"})

	result, err := o.Run(context.Background(), Options{ProjectName: "myapp", TemplateFlag: "t1", DryRun: true})
	require.NoError(t, err)
	// Never an empty-string substitution.
	assert.NotContains(t, result.Request.Variables, "author_email")

	cfg.User.Email = "dev@example.com"
	result, err = o.Run(context.Background(), Options{ProjectName: "myapp", TemplateFlag: "t1", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", result.Request.Variables["author_email"])
}

func TestOrchestrator_AuthorPrecedence(t *testing.T) {
	chdirTemp(t)

	cfg := config.DefaultConfig()
	cfg.User.Author = "Config Author"

	vcsCalls := 0
	o := newTestOrchestrator(cfg, &stubMaterializer{dir: "myapp"})
	o.VCSLookup = func(key string) string {
		vcsCalls++
		return "VCS Author"
	}

	result, err := o.Run(context.Background(), Options{ProjectName: "myapp", TemplateFlag: "t1", AuthorFlag: "Flag Author", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "Flag Author", result.Request.Author)
	assert.Zero(t, vcsCalls)

	result, err = o.Run(context.Background(), Options{ProjectName: "myapp", TemplateFlag: "t1", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "Config Author", result.Request.Author)
	assert.Zero(t, vcsCalls)

	cfg.User.Author = ""
	result, err = o.Run(context.Background(), Options{ProjectName: "myapp", TemplateFlag: "t1", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "VCS Author", result.Request.Author)
	assert.Equal(t, 1, vcsCalls)
}

func TestOrchestrator_MaterializeFailureIsFatal(t *testing.T) {
	chdirTemp(t)

	mat := &stubMaterializer{err: errors.New("clone failed: connection refused")}
	o := newTestOrchestrator(config.DefaultConfig(), mat)

	_, err := o.Run(context.Background(), Options{ProjectName: "myapp", TemplateFlag: "t1"})
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageMaterializing, stageErr.Stage)
	assert.ErrorIs(t, err, oerrors.ErrMaterialize)
	// Exactly one attempt, no retry.
	assert.Len(t, mat.calls, 1)
}

func TestOrchestrator_PipelineFailureDoesNotFailRun(t *testing.T) {
	chdirTemp(t)

	runner := &stubRunner{failRun: map[string]error{
		"git":  errors.New("exit status 128"),
		"mise": errors.New("exit status 1"),
	}}
	o := newTestOrchestrator(config.DefaultConfig(), &stubMaterializer{dir: "myapp"})
	o.Runner = runner

	result, err := o.Run(context.Background(), Options{ProjectName: "myapp", TemplateFlag: "t1"})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 4)
	assert.Equal(t, StepFailed, outcomeByName(t, result.Outcomes, StepNameGitInit).Status)
	assert.Equal(t, StepFailed, outcomeByName(t, result.Outcomes, StepNameInstallDeps).Status)
}

func TestOrchestrator_NoGitOverridesConfig(t *testing.T) {
	chdirTemp(t)

	o := newTestOrchestrator(config.DefaultConfig(), &stubMaterializer{dir: "myapp"})

	result, err := o.Run(context.Background(), Options{ProjectName: "myapp", TemplateFlag: "t1", NoGit: true, DryRun: true})
	require.NoError(t, err)
	assert.False(t, result.Pipeline.GitInit)
}
