// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, moviesCommand, favoritesCommand, themeCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, csv, markdown, txt",
		Value:   "txt",
	}
}

// setupCommand writes the example configuration file.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Write an example config.toml to fill in",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "Destination path for the config file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles session operations.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Sign in, sign out, and inspect the session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Account email"},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Account password"},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create an account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Usage: "Display name"},
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Account email"},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Account password"},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "logout",
				Usage:  "Sign out and clear the persisted session",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the current session",
				Action: r.AuthStatus,
			},
		},
	}
}

// moviesCommand handles catalog browsing.
func moviesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "movies",
		Aliases: []string{"m"},
		Usage:   "Browse the movie catalog",
		Commands: []*cli.Command{
			{
				Name:   "trending",
				Usage:  "List this week's trending movies",
				Flags:  []cli.Flag{formatFlag()},
				Action: r.MoviesTrending,
			},
			{
				Name:   "popular",
				Usage:  "List the current popular movies",
				Flags:  []cli.Flag{formatFlag()},
				Action: r.MoviesPopular,
			},
			{
				Name:      "details",
				Usage:     "Show the full record for one movie",
				ArgsUsage: "<movie-id>",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Action:    r.MoviesDetails,
			},
			{
				Name:      "search",
				Usage:     "Search the catalog",
				ArgsUsage: "<query>",
				Arguments: []cli.Argument{&cli.StringArg{Name: "query"}},
				Flags:     []cli.Flag{formatFlag()},
				Action:    r.MoviesSearch,
			},
		},
	}
}

// favoritesCommand handles the favorite set.
func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage favorited movies",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List favorited movies",
				Flags:  []cli.Flag{formatFlag()},
				Action: r.FavoritesList,
			},
			{
				Name:      "add",
				Usage:     "Favorite a movie by id",
				ArgsUsage: "<movie-id>",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Action:    r.FavoritesAdd,
			},
			{
				Name:      "remove",
				Usage:     "Unfavorite a movie by id",
				ArgsUsage: "<movie-id>",
				Arguments: []cli.Argument{&cli.IntArg{Name: "id"}},
				Action:    r.FavoritesRemove,
			},
			{
				Name:  "export",
				Usage: "Export favorites with full detail records",
				Flags: []cli.Flag{
					formatFlag(),
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write to a file instead of stdout",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent detail fetches",
						Value: 3,
					},
				},
				Action: r.FavoritesExport,
			},
		},
	}
}

// themeCommand handles the display preference.
func themeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "theme",
		Usage: "Show or toggle the light/dark preference",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the current theme",
				Action: r.ThemeShow,
			},
			{
				Name:   "toggle",
				Usage:  "Flip between light and dark",
				Action: r.ThemeToggle,
			},
		},
	}
}

// tuiCommand launches the interactive browser.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"browse"},
		Usage:   "Open the interactive movie browser",
		Action:  r.TUI,
	}
}
