package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ilkoid/agent-cli/pkg/app"
	"github.com/ilkoid/agent-cli/pkg/config"
	"github.com/ilkoid/agent-cli/pkg/factory"
	"github.com/ilkoid/agent-cli/pkg/usecase"
	"github.com/ilkoid/agent-cli/pkg/utils"
	"github.com/spf13/cobra"
)

// usageError — неверные аргументы или конфигурация, до сетевых вызовов.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// globalFlags — значения persistent флагов корневой команды.
type globalFlags struct {
	tool           string
	model          string
	embeddingModel string
	configPath     string
	envFile        string
	debug          bool
	noColor        bool
	wrap           int
	dummy          bool
}

// cli связывает флаги и компоненты одного запуска.
type cli struct {
	flags  globalFlags
	stdout io.Writer
	stderr io.Writer
	comps  *app.Components
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "agent-cli",
		Short: "Send one prompt to an LLM backend and print the answer",
		Long: `agent-cli dispatches a single prompt to an OpenAI-compatible completion
backend (OpenAI, Ollama, LM Studio or any tool defined in config.yaml)
and prints the response as "Agent: {response}".

Examples:
  agent-cli basic --question "Who are you?"
  agent-cli --tool ollama --model llama3 prompt --mode few-shot
  agent-cli --dummy prompt --mode zero-shot`,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.tool, "tool", config.DefaultTool, "backend selector (openai, ollama, lmstudio, ...)")
	pf.StringVarP(&c.flags.model, "model", "m", config.DefaultModel, "completion model")
	pf.StringVarP(&c.flags.embeddingModel, "embedding-model", "e", config.DefaultEmbeddingModel, "embedding model (reserved)")
	pf.StringVar(&c.flags.configPath, "config", "", "path to config.yaml (default: ./config.yaml or next to the binary)")
	pf.StringVar(&c.flags.envFile, "env-file", "", "path to .env file (default: ./.env if present)")
	pf.BoolVar(&c.flags.debug, "debug", false, "enable debug logging to stderr")
	pf.BoolVar(&c.flags.noColor, "no-color", false, "disable colors in output")
	pf.IntVar(&c.flags.wrap, "wrap", 0, "word-wrap the response at N columns (0 = verbatim)")
	pf.BoolVar(&c.flags.dummy, "dummy", false, "use the offline stand-in backend")

	root.AddCommand(
		newBasicCmd(c),
		newPromptCmd(c),
		newToolsCmd(c),
	)

	return root
}

// setup грузит окружение, конфигурацию и собирает компоненты.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := app.LoadEnvFile(c.flags.envFile); err != nil {
		return &usageError{err: err}
	}

	finder := &app.DefaultConfigPathFinder{ConfigFlag: c.flags.configPath}
	cfg, cfgPath, err := app.InitializeConfig(finder)
	if err != nil {
		return &usageError{err: err}
	}

	// app.env_file грузится после первого чтения config.yaml, поэтому
	// конфигурация перечитывается: ${VAR} из этого файла должны попасть в YAML.
	if c.flags.envFile == "" && cfg.App.EnvFile != "" {
		if err := app.LoadEnvFile(cfg.App.EnvFile); err != nil {
			return &usageError{err: err}
		}
		if cfg, cfgPath, err = app.InitializeConfig(finder); err != nil {
			return &usageError{err: err}
		}
	}

	settings, err := c.settings(cmd)
	if err != nil {
		return err
	}
	settings = settings.WithDefaults(cfg)

	if err := utils.InitLogger(utils.LogOptions{
		File:   cfg.App.LogFile,
		Debug:  *settings.Debug,
		Output: c.stderr,
	}); err != nil {
		return &usageError{err: err}
	}
	utils.Debug("Starting", "version", Version, "config", cfgPath, "command", cmd.Name())

	comps, err := app.Initialize(cfg, settings)
	if err != nil {
		return &usageError{err: err}
	}
	c.comps = comps
	return nil
}

// settings переносит в app.Settings только явно заданные флаги,
// остальное заполнит config.yaml или встроенные значения.
func (c *cli) settings(cmd *cobra.Command) (app.Settings, error) {
	flags := cmd.Flags()

	s := app.Settings{
		Dummy:  c.flags.dummy,
		Stdout: c.stdout,
	}

	if flags.Changed("tool") {
		if strings.TrimSpace(c.flags.tool) == "" {
			return s, &factory.ConfigError{Tool: c.flags.tool, Err: factory.ErrUnsupportedTool}
		}
		s.Tool = c.flags.tool
	}
	if flags.Changed("model") {
		s.Model = c.flags.model
	}
	if flags.Changed("embedding-model") {
		s.EmbeddingModel = c.flags.embeddingModel
	}
	if flags.Changed("wrap") {
		if c.flags.wrap < 0 {
			return s, &usageError{err: fmt.Errorf("--wrap must not be negative, got %d", c.flags.wrap)}
		}
		s.Wrap = &c.flags.wrap
	}
	if flags.Changed("no-color") {
		s.NoColor = &c.flags.noColor
	}
	if flags.Changed("debug") {
		s.Debug = &c.flags.debug
	}

	return s, nil
}

// promptModeUsage — подсказка для --mode.
func promptModeUsage() string {
	return "prompting strategy: " + strings.Join(usecase.PromptModes(), " | ")
}
