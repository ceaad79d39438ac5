package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const appName = "ctxcopy"

// Options is the resolved configuration for one run:
// defaults < config file < CTXCOPY_* env < flags.
type Options struct {
	Extensions       []string
	ShowHidden       bool
	RespectGitignore bool
	SelectionPolicy  SelectionPolicy
	HTMLToMarkdown   bool

	NoTokens  bool
	Tokenizer TokenizerOptions

	Print      bool
	Clipboard  bool
	OutputFile string
	PDFFile    string
	Tree       bool
	Select     bool

	LogLevel string
}

// Interactive reports whether the run should start the terminal UI.
func (o Options) Interactive() bool {
	return !o.Print && !o.Clipboard && o.OutputFile == "" && o.PDFFile == "" && !o.Select
}

// configDirs lists the directories searched for config.toml and
// categories.yml, in search order. The first file found wins.
func configDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", appName))
	}
	return append(dirs, ".")
}

// setDefaults registers the built-in values of every key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("ext", []string{})
	v.SetDefault("show_hidden", false)
	v.SetDefault("respect_gitignore", false)
	v.SetDefault("selection_policy", string(SelectionReset))
	v.SetDefault("html_to_markdown", false)
	v.SetDefault("no_tokens", false)
	v.SetDefault("tokenizer", "tiktoken")
	v.SetDefault("model", "")
	v.SetDefault("tokenizer_file", "")
	v.SetDefault("log_level", defaultLogLevel)
}

// readConfig loads cfgFile, or config.toml from the config dirs. A missing
// file is not an error.
func readConfig(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		for _, dir := range configDirs() {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("error reading config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// loadOptions resolves Options from v.
func loadOptions(v *viper.Viper) (Options, error) {
	policy, err := parseSelectionPolicy(v.GetString("selection_policy"))
	if err != nil {
		return Options{}, err
	}
	return Options{
		Extensions:       v.GetStringSlice("ext"),
		ShowHidden:       v.GetBool("show_hidden"),
		RespectGitignore: v.GetBool("respect_gitignore"),
		SelectionPolicy:  policy,
		HTMLToMarkdown:   v.GetBool("html_to_markdown"),
		NoTokens:         v.GetBool("no_tokens"),
		Tokenizer: TokenizerOptions{
			Type:  v.GetString("tokenizer"),
			Model: v.GetString("model"),
			File:  v.GetString("tokenizer_file"),
		},
		Print:      v.GetBool("print"),
		Clipboard:  v.GetBool("clipboard"),
		OutputFile: v.GetString("file"),
		PDFFile:    v.GetString("pdf"),
		Tree:       v.GetBool("tree"),
		Select:     v.GetBool("select"),
		LogLevel:   v.GetString("log_level"),
	}, nil
}

// newReducerFromOptions wires the core components for opts.
func newReducerFromOptions(opts Options, logger *log.Logger) *Reducer {
	discoverer := NewDiscoverer(DiscoveryOptions{
		ShowHidden:       opts.ShowHidden,
		RespectGitignore: opts.RespectGitignore,
	}, logger)
	reader := NewTextReader(ReadOptions{HTMLToMarkdown: opts.HTMLToMarkdown}, logger)
	return NewReducer(discoverer, reader, opts.SelectionPolicy, logger)
}

// applyExtensionFlag narrows the filter to the requested extensions in a
// single reducer step. Without requested extensions the filter stays at its
// default of everything.
func applyExtensionFlag(r *Reducer, state State, requested []string) State {
	if len(requested) == 0 {
		return state
	}
	return r.Reduce(state, SetActiveAction{Active: parseExtensions(requested)})
}
