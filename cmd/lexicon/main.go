// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/lexicon"
	"github.com/poiesic/lexicon/config"
	"github.com/poiesic/lexicon/core"
	"github.com/poiesic/lexicon/storage"
	"github.com/poiesic/lexicon/storage/backends"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lexicon",
		Usage: "Inspect and maintain lexical database files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "backends",
				Usage:  "List the registered storage backends",
				Action: backendsCommand,
			},
			{
				Name:      "positions",
				Usage:     "List adjective positions, or look one up by code",
				ArgsUsage: "[code]",
				Action:    positionsCommand,
			},
			{
				Name:   "info",
				Usage:  "Show the catalogs and files of a dictionary",
				Action: infoCommand,
				Flags:  dictionaryFlags(),
			},
			{
				Name:   "init",
				Usage:  "Create empty dictionary files for every category and role",
				Action: initCommand,
				Flags:  dictionaryFlags(),
			},
			{
				Name:   "delete",
				Usage:  "Delete every dictionary file",
				Action: deleteCommand,
				Flags:  dictionaryFlags(),
			},
			{
				Name:   "add-adjective",
				Usage:  "Store an adjective entry in the adjective data file",
				Action: addAdjectiveCommand,
				Flags:  append(dictionaryFlags(), wordFlags()...),
			},
			{
				Name:   "get-adjective",
				Usage:  "Load an adjective entry from the adjective data file",
				Action: getAdjectiveCommand,
				Flags:  append(dictionaryFlags(), wordFlags()...),
			},
		},
	}
}

func dictionaryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file",
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Load LEXICON_* variables from this .env file",
			Value: ".env",
		},
		&cli.StringFlag{
			Name:    "dictionary-path",
			Aliases: []string{"d"},
			Usage:   "Directory holding the dictionary files",
		},
		&cli.StringFlag{
			Name:    "file-type",
			Aliases: []string{"t"},
			Usage:   "Storage backend (memory, file, badger, badger-memory)",
		},
		&cli.IntFlag{
			Name:  "pool-size",
			Usage: "Workers used to fan out save, edit and delete (0 = sequential)",
		},
	}
}

func wordFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:     "offset",
			Usage:    "Synset offset",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "index",
			Usage: "Word index within the synset",
			Value: 1,
		},
		&cli.StringFlag{
			Name:     "lemma",
			Usage:    "Word lemma",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "position",
			Usage: "Adjective position code (none, p, a, ip)",
			Value: core.PositionNoneCode,
		},
	}
}

// loadConfig layers configuration sources: defaults, then the YAML file,
// then LEXICON_* variables (including the .env file), then flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if err := config.LoadDotEnv(c.String("env-file")); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.FromEnv(); err != nil {
		return nil, err
	}

	if c.IsSet("dictionary-path") {
		cfg.DictionaryPath = c.String("dictionary-path")
	}
	if c.IsSet("file-type") {
		cfg.FileType = c.String("file-type")
	}
	if c.IsSet("pool-size") {
		cfg.PoolSize = c.Int("pool-size")
	}
	return cfg, cfg.Validate()
}

func openDictionary(c *cli.Context, required storage.Capability) (*lexicon.Dictionary, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return lexicon.NewDictionary(cfg,
		lexicon.WithLogger(slog.Default()),
		lexicon.WithRequiredCapabilities(required))
}

func backendsCommand(c *cli.Context) error {
	reg := backends.Default()
	for _, name := range reg.Names() {
		b, _ := reg.Lookup(name)
		fmt.Fprintf(c.App.Writer, "%-14s %s\n", b.Name, b.Capabilities)
	}
	return nil
}

func positionsCommand(c *cli.Context) error {
	if c.NArg() > 0 {
		code := c.Args().First()
		pos, ok := core.AdjectivePositionForCode(code)
		if !ok {
			return fmt.Errorf("%w: adjective position %q", storage.ErrUnknownAttributeCode, code)
		}
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", pos.Code(), pos.Label())
		return nil
	}
	for _, pos := range core.AdjectivePositions().Values() {
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", pos.Code(), pos.Label())
	}
	return nil
}

func infoCommand(c *cli.Context) error {
	dict, err := openDictionary(c, 0)
	if err != nil {
		return err
	}
	defer dict.Close()

	w := c.App.Writer
	fmt.Fprintf(w, "dictionary: %s\n", dict.Name())
	for _, role := range core.AllFileRoles() {
		cat := dict.Catalog(role)
		fmt.Fprintf(w, "%s catalog (%s):\n", role, cat.Backend())
		for _, category := range core.AllCategories() {
			fmt.Fprintf(w, "  %-10s %s\n", category, core.FileName(category, role))
		}
	}
	return nil
}

func initCommand(c *cli.Context) error {
	dict, err := openDictionary(c, 0)
	if err != nil {
		return err
	}
	defer dict.Close()

	if err := dict.Edit(); err != nil {
		return err
	}
	if err := dict.Save(); err != nil {
		return err
	}
	slog.Info("dictionary initialized", "name", dict.Name())
	return nil
}

func deleteCommand(c *cli.Context) error {
	dict, err := openDictionary(c, 0)
	if err != nil {
		return err
	}
	defer dict.Close()

	if err := dict.Delete(); err != nil {
		return err
	}
	slog.Info("dictionary deleted", "name", dict.Name())
	return nil
}

func wordFromFlags(c *cli.Context, dict core.DictionaryRef) core.Word {
	return core.Word{
		Dictionary: dict,
		Synset:     core.SynsetRef{Category: core.Adjective, Offset: c.Int64("offset")},
		Index:      c.Int("index"),
		Lemma:      c.String("lemma"),
	}
}

func addAdjectiveCommand(c *cli.Context) error {
	code := c.String("position")
	pos, ok := core.AdjectivePositionForCode(code)
	if !ok {
		return fmt.Errorf("%w: adjective position %q", storage.ErrUnknownAttributeCode, code)
	}

	dict, err := openDictionary(c, storage.CapRecords)
	if err != nil {
		return err
	}
	defer dict.Close()

	if err := dict.Edit(); err != nil {
		return err
	}
	adj := core.NewAdjective(wordFromFlags(c, dict), pos)
	if err := dict.PutAdjective(adj); err != nil {
		return err
	}
	if err := dict.Save(); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%d\n", adj.ID())
	return nil
}

func getAdjectiveCommand(c *cli.Context) error {
	dict, err := openDictionary(c, storage.CapRecords)
	if err != nil {
		return err
	}
	defer dict.Close()

	if err := dict.Open(); err != nil {
		return err
	}
	w := wordFromFlags(c, dict)
	adj, err := dict.GetAdjective(w.ID())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s %s\n", adj.Key(), adj.Position())
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
