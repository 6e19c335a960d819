package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/create-zk-app/cza/internal/execx"
	"github.com/create-zk-app/cza/internal/gitutil"
	"github.com/create-zk-app/cza/internal/output"
	"github.com/create-zk-app/cza/internal/registry"
	"github.com/create-zk-app/cza/internal/scaffold"
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	var (
		flagTemplate string
		flagAuthor   string
		flagNoGit    bool
		flagDryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "new <project-name>",
		Short: "Create a new project from a template",
		Long: `Create a new zero-knowledge application project from a template.

The template comes from --template or from the configured
user.default_template. Post-generation steps (git init, dependency
install, git hooks, editor) follow the persisted settings; their
failures are reported but never fail the command once the project
exists.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fatal(err)
			}

			reg, err := registry.Load()
			if err != nil {
				return fatal(err)
			}

			// Without git the repository steps cannot work; generation
			// itself still can.
			noGit := flagNoGit
			if !noGit && !gitutil.Available() {
				output.Warning("git is not available on PATH, skipping repository setup")
				output.Hint("Install git to enable repository initialization and hooks.")
				noGit = true
			}

			orch := &scaffold.Orchestrator{
				Registry:     reg,
				Config:       cfg,
				Runner:       execx.New(),
				Materializer: scaffold.NewGitMaterializer(),
				VCSLookup:    gitutil.ConfigValue,
			}

			result, err := orch.Run(cmd.Context(), scaffold.Options{
				ProjectName:  args[0],
				TemplateFlag: flagTemplate,
				AuthorFlag:   flagAuthor,
				NoGit:        noGit,
				DryRun:       flagDryRun,
			})
			if err != nil {
				return fatal(err)
			}

			if result.DryRun {
				printDryRun(result)
				return nil
			}

			output.Println("")
			output.Success(fmt.Sprintf("Project %s created", result.Request.ProjectName))
			output.Location(result.OutputDir)
			output.NextSteps([]string{
				"cd " + result.Request.ProjectName,
				"mise run dev",
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagTemplate, "template", "t", "", "template key to generate from")
	cmd.Flags().StringVarP(&flagAuthor, "author", "a", "", "author name for template substitution")
	cmd.Flags().BoolVar(&flagNoGit, "no-git", false, "skip git repository initialization")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "preview the run without creating anything")

	return cmd
}

// printDryRun shows what a real run would resolve and execute.
func printDryRun(result *scaffold.Result) {
	output.Header("Dry run, nothing will be created")
	output.KeyValue("Project", result.Request.ProjectName)
	output.KeyValue("Template", fmt.Sprintf("%s (%s, from %s)",
		result.Request.TemplateKey, result.Request.Template.Name, result.TemplateSource))
	output.KeyValue("Repository", result.Request.Template.Repository)
	output.KeyValue("Subfolder", result.Request.Template.Subfolder)
	output.KeyValue("Author", fmt.Sprintf("%s (from %s)", result.Request.Author, result.AuthorSource))

	output.Println("")
	output.Println("Post-generation steps:")
	printGate(scaffold.StepNameGitInit, result.Pipeline.GitInit)
	printGate(scaffold.StepNameInstallDeps, result.Pipeline.InstallDeps)
	printGate(scaffold.StepNameSetupHooks, result.Pipeline.SetupHooks && result.Pipeline.GitInit)
	printGate(scaffold.StepNameOpenEditor, result.Pipeline.Editor != "")
}

func printGate(name string, enabled bool) {
	state := "run"
	if !enabled {
		state = "skip"
	}
	output.KeyValue(name, state)
}
