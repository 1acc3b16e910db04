package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// AuthLogin exchanges credentials for a token and persists it.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")

	if err := r.session.Login(ctx, email, password); err != nil {
		return err
	}

	return r.writePlain("✓ Logged in as %s\n", email)
}

// AuthRegister creates an account. When the backend issues a token the
// session is logged in immediately.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	email := cmd.String("email")
	password := cmd.String("password")

	loggedIn, err := r.session.Register(ctx, username, email, password)
	if err != nil {
		return err
	}

	if loggedIn {
		return r.writePlain("✓ Account created, logged in as %s\n", username)
	}
	return r.writePlain("✓ Account created. Run `coursedeck auth login` to start a session.\n")
}

// AuthLogout clears the persisted token. Purely local, so it works with
// the backend down.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	r.session.Logout()
	return r.writePlain("✓ Logged out\n")
}

// AuthStatus reports session state. With a persisted token it asks the
// backend who the session belongs to, surfacing an expired token.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if !r.session.Initialize() {
		return r.writePlain("✗ Not logged in\n")
	}

	info, err := r.api.UserInfo(ctx)
	if err != nil {
		return r.authFailed(err)
	}

	r.writePlain("✓ Logged in as %s\n", info.Username)
	return r.writePlain("Enrolled courses: %d\n", len(info.EnrolledCourses))
}
