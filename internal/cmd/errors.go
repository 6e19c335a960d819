package cmd

import (
	"errors"

	oerrors "github.com/create-zk-app/cza/internal/errors"
	"github.com/create-zk-app/cza/internal/output"
	"github.com/create-zk-app/cza/internal/scaffold"
)

// fatal reports err to the user and converts it into an ExitError so
// main exits non-zero without printing it a second time.
func fatal(err error) error {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Failure(detail.Type + ": " + detail.Message)
		if detail.Hint != "" {
			output.Hint(detail.Hint)
		}
	} else {
		output.Failure(err.Error())
		if hint := hintFor(err); hint != "" {
			output.Hint(hint)
		}
	}

	return &oerrors.ExitError{
		Err:     err,
		Code:    oerrors.ExitCodeFromError(err),
		Printed: true,
	}
}

// hintFor supplies guidance for known error categories that do not
// carry their own hint.
func hintFor(err error) string {
	switch {
	case errors.Is(err, scaffold.ErrNameEmpty),
		errors.Is(err, scaffold.ErrNameBadStart),
		errors.Is(err, scaffold.ErrNameBadCharacter):
		return "Project names must start with a letter and contain only letters, digits, hyphens, and underscores."
	default:
		return ""
	}
}
