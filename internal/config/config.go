/*
File    : golox/internal/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads optional REPL cosmetics from a loxconfig.yaml file
// in the current directory: the prompt string, whether to print the
// startup banner, and whether to colorize output. None of this affects
// language semantics; a missing file just means "use the built-in
// defaults".
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// defaultPrompt is the prompt shown when loxconfig.yaml provides no
// override. The banner art itself lives in cmd/lox, the only place that
// prints it.
const defaultPrompt = "lox> "

// Config holds the REPL cosmetics a user may override via loxconfig.yaml.
type Config struct {
	Prompt     string `yaml:"prompt"`
	ShowBanner bool   `yaml:"show_banner"`
	Color      bool   `yaml:"color"`
}

// Default returns the built-in cosmetics used when no config file is
// present or it fails to parse.
func Default() Config {
	return Config{Prompt: defaultPrompt, ShowBanner: true, Color: true}
}

// Load reads path and overlays it onto Default(). A missing file is not an
// error: it just means the caller gets the defaults. A present-but-invalid
// file's error is returned so the caller can decide whether to warn.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}
