package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilkoid/agent-cli/pkg/config"
	"github.com/ilkoid/agent-cli/pkg/utils"
	"github.com/joho/godotenv"
)

// ConfigPathFinder определяет стратегию поиска пути к config.yaml.
//
// По умолчанию используется DefaultConfigPathFinder, но можно
// реализовать свою стратегию для тестов или специальных случаев.
type ConfigPathFinder interface {
	FindConfigPath() string
}

// DefaultConfigPathFinder реализует стандартную стратегию поиска config.yaml.
//
// Порядок поиска:
// 1. Флаг --config (если указан)
// 2. Текущая директория (./config.yaml)
// 3. Директория бинарника
//
// Пустая строка — файла нет, работаем на встроенных значениях.
type DefaultConfigPathFinder struct {
	// ConfigFlag - значение флага --config, если указан
	ConfigFlag string
}

// FindConfigPath находит путь к config.yaml.
func (f *DefaultConfigPathFinder) FindConfigPath() string {
	// 1. Флаг имеет приоритет
	if f.ConfigFlag != "" {
		return resolveAbsPath(f.ConfigFlag)
	}

	// 2. Текущая директория
	cfgPath := "config.yaml"
	if _, err := os.Stat(cfgPath); err == nil {
		return resolveAbsPath(cfgPath)
	}

	// 3. Директория бинарника
	if execPath, err := os.Executable(); err == nil {
		cfgPath = filepath.Join(filepath.Dir(execPath), "config.yaml")
		if _, err := os.Stat(cfgPath); err == nil {
			return cfgPath
		}
	}

	return ""
}

// InitializeConfig находит и загружает конфигурацию.
//
// Если файл не найден и не был указан явно — возвращает config.Default().
func InitializeConfig(finder ConfigPathFinder) (*config.AppConfig, string, error) {
	cfgPath := finder.FindConfigPath()
	if cfgPath == "" {
		utils.Debug("No config.yaml found, using built-in defaults")
		return config.Default(), "", nil
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config from %s: %w", cfgPath, err)
	}

	utils.Debug("Config loaded", "path", cfgPath)
	return cfg, cfgPath, nil
}

// LoadEnvFile подгружает переменные из .env. Уже заданные переменные не перетираются.
//
// Пустой path — ./.env, если он есть. Явно указанный несуществующий файл — ошибка.
func LoadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	utils.Debug("Env file loaded", "path", path)
	return nil
}

// resolveAbsPath преобразует путь в абсолютный (если это не уже абсолютный путь).
func resolveAbsPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
