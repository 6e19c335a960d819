package scaffold

import (
	"fmt"

	"github.com/create-zk-app/cza/internal/execx"
	"github.com/create-zk-app/cza/internal/output"
)

// StepStatus is the outcome category of one pipeline step.
type StepStatus int

const (
	// StepSucceeded means the step's command exited zero.
	StepSucceeded StepStatus = iota
	// StepSkipped means the step's gate (or a precondition) was off.
	StepSkipped
	// StepFailed means the command exited non-zero or failed to spawn.
	StepFailed
)

// String returns the status display name.
func (s StepStatus) String() string {
	switch s {
	case StepSucceeded:
		return "succeeded"
	case StepSkipped:
		return "skipped"
	case StepFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepOutcome records what happened to one pipeline step.
type StepOutcome struct {
	// Name identifies the step (git init, install deps, setup hooks,
	// open editor).
	Name string

	// Status is the outcome category.
	Status StepStatus

	// Reason explains a skip.
	Reason string

	// Command is the failed command line, for failures.
	Command string

	// Err is the exit-status or spawn error, for failures.
	Err error

	// Hint is the manual-recovery suggestion, for failures.
	Hint string
}

// PipelineConfig gates the post-generation steps. Values are already
// merged from the config document and command flags by the caller.
type PipelineConfig struct {
	// GitInit runs `git init` (user.git_init and not --no-git).
	GitInit bool

	// InstallDeps runs the dependency installer
	// (post_generation.auto_install_deps).
	InstallDeps bool

	// SetupHooks installs git hooks (post_generation.auto_setup_hooks).
	// Only attempted when the git-init step actually succeeded.
	SetupHooks bool

	// Editor is the editor command to spawn, empty for none
	// (post_generation.open_editor).
	Editor string
}

// Commands invoked by the pipeline steps.
const (
	depsCommand  = "mise"
	hooksCommand = "hk"
)

// Step display names.
const (
	StepNameGitInit     = "git init"
	StepNameInstallDeps = "install dependencies"
	StepNameSetupHooks  = "setup git hooks"
	StepNameOpenEditor  = "open editor"
)

// RunPipeline executes the post-generation steps against dir in fixed
// order. Every step is independently gated and independently
// fault-isolated: a failure is reported and the pipeline continues. The
// aggregate result is informational and never fails the overall run.
func RunPipeline(runner execx.Runner, dir string, cfg PipelineConfig) []StepOutcome {
	outcomes := make([]StepOutcome, 0, 4)

	gitOutcome := runStep(runner, dir, step{
		name:    StepNameGitInit,
		gated:   cfg.GitInit,
		skip:    "git init disabled",
		command: "git",
		args:    []string{"init"},
		message: "Initializing git repository...",
		done:    "Git repository initialized",
		hint:    "Run 'git init' manually inside the project.",
	})
	outcomes = append(outcomes, gitOutcome)

	outcomes = append(outcomes, runStep(runner, dir, step{
		name:    StepNameInstallDeps,
		gated:   cfg.InstallDeps,
		skip:    "dependency install disabled",
		command: depsCommand,
		args:    []string{"install"},
		message: "Installing dependencies...",
		done:    "Dependencies installed",
		hint:    fmt.Sprintf("Run '%s install' manually inside the project.", depsCommand),
	}))

	// Hooks need a repository; a skipped or failed git init disables
	// this step regardless of its own gate.
	hooksStep := step{
		name:    StepNameSetupHooks,
		gated:   cfg.SetupHooks,
		skip:    "hook setup disabled",
		command: hooksCommand,
		args:    []string{"install"},
		message: "Setting up git hooks...",
		done:    "Git hooks installed",
		hint:    fmt.Sprintf("Run '%s install' manually inside the project.", hooksCommand),
	}
	if hooksStep.gated && gitOutcome.Status != StepSucceeded {
		hooksStep.gated = false
		hooksStep.skip = "git not initialized"
	}
	outcomes = append(outcomes, runStep(runner, dir, hooksStep))

	outcomes = append(outcomes, openEditor(runner, dir, cfg.Editor))

	return outcomes
}

// step describes one synchronous pipeline step.
type step struct {
	name    string
	gated   bool
	skip    string
	command string
	args    []string
	message string
	done    string
	hint    string
}

func runStep(runner execx.Runner, dir string, s step) StepOutcome {
	if !s.gated {
		output.Debug("skipping step", "step", s.name, "reason", s.skip)
		return StepOutcome{Name: s.name, Status: StepSkipped, Reason: s.skip}
	}

	output.Step(s.message)

	if err := runner.Run(s.command, s.args, dir); err != nil {
		cmdline := s.command
		for _, a := range s.args {
			cmdline += " " + a
		}
		output.Warning(fmt.Sprintf("%s failed: %v", cmdline, err))
		output.Hint(s.hint)
		return StepOutcome{
			Name:    s.name,
			Status:  StepFailed,
			Command: cmdline,
			Err:     err,
			Hint:    s.hint,
		}
	}

	output.Success(s.done)
	return StepOutcome{Name: s.name, Status: StepSucceeded}
}

// openEditor spawns the configured editor detached; the tool never
// waits for it and only a spawn failure is reported.
func openEditor(runner execx.Runner, dir, editor string) StepOutcome {
	if editor == "" {
		return StepOutcome{Name: StepNameOpenEditor, Status: StepSkipped, Reason: "no editor configured"}
	}

	output.Step(fmt.Sprintf("Opening project in %s...", editor))

	if err := runner.Start(editor, []string{"."}, dir); err != nil {
		hint := "Open the project in your editor manually."
		output.Warning(fmt.Sprintf("could not launch %s: %v", editor, err))
		output.Hint(hint)
		return StepOutcome{
			Name:    StepNameOpenEditor,
			Status:  StepFailed,
			Command: editor,
			Err:     err,
			Hint:    hint,
		}
	}

	return StepOutcome{Name: StepNameOpenEditor, Status: StepSucceeded}
}
