// Agent-cli — CLI утилита: один промпт в completion-бэкенд, один ответ в stdout.
//
// Использование:
//   ./agent-cli basic --question "Who are you?"
//   ./agent-cli --tool ollama --model llama3 prompt --mode few-shot
//   ./agent-cli --dummy prompt --mode zero-shot
//   ./agent-cli tools
//
// config.yaml необязателен: ищется рядом с бинарником или в текущей директории.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ilkoid/agent-cli/pkg/factory"
	"github.com/ilkoid/agent-cli/pkg/usecase"
	"github.com/ilkoid/agent-cli/pkg/utils"
)

// Version — версия утилиты (заполняется при сборке)
var Version = "dev"

// Коды выхода: ошибки конфигурации и аргументов отделены от ошибок бэкенда.
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run выполняет команду и возвращает код выхода. os.Exit вызывается только в main.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defer utils.Close()

	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		utils.Debug("Command failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode решает, каким кодом завершиться.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var cfgErr *factory.ConfigError
	var uErr *usageError
	switch {
	case errors.As(err, &cfgErr),
		errors.As(err, &uErr),
		errors.Is(err, usecase.ErrUnknownMode):
		return exitConfig
	default:
		return exitFailed
	}
}
