package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/create-zk-app/cza/internal/output"
	"github.com/create-zk-app/cza/internal/registry"
)

// Request is the ephemeral per-invocation generation request.
type Request struct {
	// TemplateKey is the resolved registry key.
	TemplateKey string

	// Template is the resolved registry record.
	Template registry.Template

	// ProjectName is the validated target project name.
	ProjectName string

	// TargetDir is the output directory, relative to the working dir.
	TargetDir string

	// Author is the resolved author identity.
	Author string

	// Email is the optional author email.
	Email string

	// Variables are the substitutions passed to the materializer.
	// author_email is only present when an email was resolved.
	Variables map[string]string
}

// Materializer fetches a template source and writes substituted files.
type Materializer interface {
	// Materialize produces the project directory and returns its path.
	Materialize(ctx context.Context, req Request) (string, error)
}

// NewGitMaterializer returns the go-git backed materializer: it clones
// the template repository into a temp dir, renders the subfolder into a
// staging dir, and only then moves the result to the target. A failure
// partway never leaves a half-written target behind.
func NewGitMaterializer() Materializer {
	return &gitMaterializer{}
}

type gitMaterializer struct{}

func (m *gitMaterializer) Materialize(ctx context.Context, req Request) (string, error) {
	cloneDir, err := os.MkdirTemp("", "cza-clone-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(cloneDir)

	if err := m.clone(ctx, cloneDir, req.Template); err != nil {
		return "", fmt.Errorf("cloning %s: %w", req.Template.Repository, err)
	}

	srcDir := filepath.Join(cloneDir, req.Template.Subfolder)
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("subfolder %q not found in template repository", req.Template.Subfolder)
	}

	staging, err := os.MkdirTemp(filepath.Dir(req.TargetDir), ".cza-stage-*")
	if err != nil {
		return "", fmt.Errorf("creating staging dir: %w", err)
	}
	defer os.RemoveAll(staging)

	if err := renderTree(srcDir, staging, req.Variables); err != nil {
		return "", fmt.Errorf("rendering template files: %w", err)
	}

	if err := moveIntoPlace(staging, req.TargetDir); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(req.TargetDir)
	if err != nil {
		abs = req.TargetDir
	}
	return abs, nil
}

func (m *gitMaterializer) clone(ctx context.Context, dir string, tmpl registry.Template) error {
	opts := &git.CloneOptions{
		URL:          tmpl.Repository,
		SingleBranch: true,
	}
	// A pinned revision needs history to resolve; otherwise a shallow
	// clone of the default branch is enough.
	if tmpl.Revision == "" {
		opts.Depth = 1
	}

	output.Debug("cloning template repository", "url", tmpl.Repository, "revision", tmpl.Revision)

	repo, err := git.PlainCloneContext(ctx, dir, false, opts)
	if err != nil {
		return err
	}

	if tmpl.Revision != "" {
		hash, err := repo.ResolveRevision(plumbing.Revision(tmpl.Revision))
		if err != nil {
			return fmt.Errorf("resolving revision %q: %w", tmpl.Revision, err)
		}
		wt, err := repo.Worktree()
		if err != nil {
			return err
		}
		if err := wt.Checkout(&git.CheckoutOptions{Hash: *hash}); err != nil {
			return fmt.Errorf("checking out revision %q: %w", tmpl.Revision, err)
		}
	}

	return nil
}

// renderTree copies src into dst, substituting variables in text files.
// The template's own .git directory is never carried over.
func renderTree(src, dst string, vars map[string]string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			if rel == "." {
				return nil
			}
			return os.MkdirAll(filepath.Join(dst, rel), 0o755)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		if isProbablyText(data) {
			data = SubstituteVars(data, vars)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		return os.WriteFile(filepath.Join(dst, rel), data, info.Mode().Perm())
	})
}

// moveIntoPlace renames staging to target. When the target already
// exists (overwrite allowed by config) the staged tree is merged in.
func moveIntoPlace(staging, target string) error {
	if err := os.Rename(staging, target); err == nil {
		return nil
	}

	if _, statErr := os.Stat(target); statErr != nil {
		return fmt.Errorf("moving generated files to %s: %w", target, statErr)
	}

	return filepath.WalkDir(staging, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(staging, path)
		if err != nil || rel == "." {
			return err
		}
		dstPath := filepath.Join(target, rel)
		if d.IsDir() {
			return os.MkdirAll(dstPath, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return os.WriteFile(dstPath, data, info.Mode().Perm())
	})
}
