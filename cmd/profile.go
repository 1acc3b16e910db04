package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"coursedeck/internal/shared"
)

// Profile prints the account profile, split into ongoing and completed
// courses.
func (r *Runner) Profile(ctx context.Context, cmd *cli.Command) error {
	profile, err := r.api.Profile(ctx)
	if err != nil {
		return r.authFailed(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(profile, cmd.Bool("pretty"))
	}

	r.writePlain("%s <%s>\n", profile.Username, profile.Email)

	ongoing, completed := profile.Split()
	r.writePlainln("Ongoing (%d):", len(ongoing))
	for _, course := range ongoing {
		r.writePlain("  %s [%s]\n", course.Title, course.Category)
	}

	r.writePlainln("Completed (%d):", len(completed))
	for _, course := range completed {
		if course.CertificateLink != "" {
			r.writePlain("  %s • %s\n", course.Title, course.CertificateLink)
		} else {
			r.writePlain("  %s\n", course.Title)
		}
	}

	return nil
}

// Complete marks an enrolled course as completed with a certificate
// link.
func (r *Runner) Complete(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	certificate := cmd.String("certificate")

	if title == "" {
		return fmt.Errorf("%w: course title is required", shared.ErrMissingArgument)
	}

	if err := r.api.CompleteCourse(ctx, title, certificate); err != nil {
		return r.authFailed(err)
	}

	return r.writePlain("✓ Marked %s as completed\n", title)
}
