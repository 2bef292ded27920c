package usecase

import (
	"errors"
	"fmt"
)

// Mode выбирает, как строится промпт.
type Mode int

const (
	ModeBasic Mode = iota
	ModeZeroShot
	ModeFewShot
)

// ErrUnknownMode — стратегия не из списка zero-shot / few-shot.
var ErrUnknownMode = errors.New("unknown prompt mode")

func (m Mode) String() string {
	switch m {
	case ModeBasic:
		return "basic"
	case ModeZeroShot:
		return "zero-shot"
	case ModeFewShot:
		return "few-shot"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// PromptModes — допустимые значения --mode.
func PromptModes() []string {
	return []string{ModeZeroShot.String(), ModeFewShot.String()}
}

// ParsePromptMode разбирает --mode. Дефолта нет: пустая строка тоже ошибка.
func ParsePromptMode(s string) (Mode, error) {
	switch s {
	case "zero-shot":
		return ModeZeroShot, nil
	case "few-shot":
		return ModeFewShot, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected zero-shot or few-shot)", ErrUnknownMode, s)
	}
}
