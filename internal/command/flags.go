// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/emeeran/aicachego/internal/config"
)

func init() {
	cfg, _ = config.Load()
}

var cfg config.Type

// NewGlobalFlags builds the output flags shared by every command. params[0]
// is the command name used to namespace config-file lookups.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}

	return
}

// NewHostFlag constructs a cli.StringFlag for the "host" flag, namespaced to
// a command so per-command config sections win over the global key.
func NewHostFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "host",
		Usage: "provider base URL, e.g. https://api.openai.com",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AICACHE_HOST"),
			cli.EnvVar("OPENAI_BASE_URL"),
		),
		Value: "https://api.openai.com",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewTokenFlag constructs the "token" flag. The token intentionally has no
// config-file source; it comes from the environment or the command line.
func NewTokenFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "token",
		Usage: "provider API token",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AICACHE_TOKEN"),
			cli.EnvVar("OPENAI_API_KEY"),
		),
	}
}

// NewTTLFlag constructs the "ttl" flag overriding the cache default TTL for
// one command's entries.
func NewTTLFlag(params ...string) (flag *cli.DurationFlag) {
	flag = &cli.DurationFlag{
		Name:  "ttl",
		Usage: "how long fetched responses stay cached (0 = cache default)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AICACHE_TTL"),
		),
	}

	if len(params) == 2 {
		src := yaml.YAML(params[0]+"."+flag.Name, altsrc.StringSourcer(params[1]))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
