// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand handles setup operations for config and the cache database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize the course cache database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
			{
				Name:   "config",
				Usage:  "Write a starter configuration file",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
		},
	}
}

// authCommand handles account and session operations.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Account and session management",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in and persist the session token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Account email", Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Account password", Required: true},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Usage: "Display name", Required: true},
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Account email", Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Account password", Required: true},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "logout",
				Usage:  "Clear the persisted session token",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show current session state",
				Action: r.AuthStatus,
			},
		},
	}
}

// searchCommand queries the course catalogue.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the course catalogue",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "page", Usage: "Result page", Value: 1},
			&cli.StringSliceFlag{Name: "category", Aliases: []string{"k"}, Usage: "Learning-style filter (repeatable)"},
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
			&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
		},
		Action: r.Search,
	}
}

// recommendCommand fetches the personalized course rail.
func recommendCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "recommend",
		Aliases: []string{"rec"},
		Usage:   "Show recommended courses for the logged-in account",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
			&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
		},
		Action: r.Recommend,
	}
}

// questionnaireCommand drives the guided recommendation flow.
func questionnaireCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "questionnaire",
		Aliases: []string{"quiz"},
		Usage:   "Get recommendations from the four profile questions",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "education", Usage: "Education level", Required: true},
			&cli.StringFlag{Name: "domain", Usage: "Domain of interest", Required: true},
			&cli.StringFlag{Name: "knowledge", Usage: "Knowledge level", Required: true},
			&cli.StringFlag{Name: "style", Usage: "Learning style", Required: true},
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
			&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
		},
		Action: r.Questionnaire,
	}
}

// enrollCommand enrolls in a course by title.
func enrollCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "enroll",
		Usage: "Enroll in a course by title (resolved from the local cache)",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "title"},
		},
		Action: r.Enroll,
	}
}

// progressCommand shows the learning-style progress report.
func progressCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "progress",
		Usage: "Show progress per learning style",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
			&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
		},
		Action: r.Progress,
	}
}

// profileCommand shows the account profile.
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Show profile with ongoing and completed courses",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
			&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
		},
		Action: r.Profile,
	}
}

// completeCommand marks a course completed.
func completeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "complete",
		Usage: "Mark an enrolled course as completed",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "title"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "certificate", Usage: "Certificate link", Required: true},
		},
		Action: r.Complete,
	}
}

// cacheCommand manages the local course cache.
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Local course cache operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recently cached courses",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Usage: "Maximum number of courses to return", Value: 50},
					&cli.StringFlag{Name: "category", Usage: "Learning-style filter"},
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output"},
				},
				Action: r.CacheList,
			},
			{
				Name:   "clear",
				Usage:  "Delete every cached course",
				Action: r.CacheClear,
			},
		},
	}
}

// apiCommand handles direct backend calls for debugging.
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output", Value: true},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "path"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "data", Aliases: []string{"d"}, Usage: "JSON body to send", Required: true},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output", Value: true},
				},
				Action: r.APIPost,
			},
		},
	}
}

// tuiCommand launches the interactive dashboard.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"ui"},
		Usage:   "Launch the interactive dashboard",
		Action:  r.TUI,
	}
}
