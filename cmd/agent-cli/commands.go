package main

import (
	"fmt"

	"github.com/ilkoid/agent-cli/pkg/usecase"
	"github.com/spf13/cobra"
)

// requireFlag возвращает usageError, если обязательный флаг не задан.
// MarkFlagRequired не используется: cobra проверяет его уже после
// PersistentPreRunE, а ошибка должна быть usageError до загрузки конфигурации.
func requireFlag(cmd *cobra.Command, name string) error {
	if !cmd.Flags().Changed(name) {
		return &usageError{err: fmt.Errorf("required flag \"%s\" not set", name)}
	}
	return nil
}

func newBasicCmd(c *cli) *cobra.Command {
	var question string

	cmd := &cobra.Command{
		Use:   "basic",
		Short: "Ask a single question",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag(cmd, "question"); err != nil {
				return err
			}
			return c.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.comps.RunBasic(cmd.Context(), question)
		},
	}

	cmd.Flags().StringVarP(&question, "question", "q", "", "question to ask (required)")

	return cmd
}

func newPromptCmd(c *cli) *cobra.Command {
	var (
		rawMode string
		mode    usecase.Mode
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Run a fixed zero-shot or few-shot prompt",
		Args:  cobra.NoArgs,
		// Неизвестная стратегия отвергается до загрузки конфигурации.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlag(cmd, "mode"); err != nil {
				return err
			}
			m, err := usecase.ParsePromptMode(rawMode)
			if err != nil {
				return &usageError{err: err}
			}
			mode = m
			return c.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.comps.RunPrompt(cmd.Context(), mode)
		},
	}

	cmd.Flags().StringVar(&rawMode, "mode", "", promptModeUsage()+" (required)")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return usecase.PromptModes(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newToolsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List known backend selectors",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return c.comps.ListTools()
		},
	}
}
