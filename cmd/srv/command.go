package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "Ekranoplan"
	app.Usage = "Guild chat backend"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the toml config file",
			EnvVars: []string{"CONFIG_FILE"},
		},
		&cli.StringFlag{
			Name:    "token-secret",
			Usage:   "Secret used to sign session tokens, overrides the config file",
			EnvVars: []string{"TOKEN_SECRET"},
		},
		&cli.Int64Flag{
			Name:    "node",
			Usage:   "Snowflake node id of this instance",
			Value:   1,
			EnvVars: []string{"NODE_ID"},
		},
	}
	app.Before = s.loadCommon
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Flags:       []cli.Flag{},
			Category:    "Api",
			Description: `Used for start service api, it serves users, channels and messages.`,
		},
		{
			Action:   s.startMigrate,
			Name:     "migrate",
			Usage:    "Migrate the relational database and scylla db",
			Category: "Database",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "skip-keyspace",
					Usage: "Do not create the scylla keyspace before migrating",
				},
			},
			Description: `Used to create tables of mysql and apply cql files of scylla db.`,
		},
	}

	s.app = app
}
