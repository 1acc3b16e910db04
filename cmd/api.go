package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"coursedeck/internal/services"
	"coursedeck/internal/shared"
)

func normalizePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path is required", shared.ErrMissingArgument)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path, nil
}

func (r *Runner) writeAPIResponse(resp *services.APIResponse, pretty bool) error {
	r.writePlain("Status: %d\n", resp.StatusCode)
	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, pretty)
	}
	return r.writePlain("%s\n", string(resp.Body))
}

// APIGet performs a raw GET against the backend and prints the
// response.
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	path, err := normalizePath(cmd.StringArg("path"))
	if err != nil {
		return err
	}

	r.logger.Info("raw GET", "path", path)

	resp, err := r.raw.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return r.writeAPIResponse(resp, cmd.Bool("pretty"))
}

// APIPost performs a raw POST with a JSON body and prints the response.
func (r *Runner) APIPost(ctx context.Context, cmd *cli.Command) error {
	path, err := normalizePath(cmd.StringArg("path"))
	if err != nil {
		return err
	}

	data := cmd.String("data")
	if !json.Valid([]byte(data)) {
		return fmt.Errorf("%w: --data must be valid JSON", shared.ErrInvalidFlag)
	}

	r.logger.Info("raw POST", "path", path)

	resp, err := r.raw.Post(ctx, path, []byte(data))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return r.writeAPIResponse(resp, cmd.Bool("pretty"))
}
