// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	// SongsDir рабочая папка с уровнями
	SongsDir string `yaml:"songs_dir"`
	// PlaylistsDir папка для экспортируемых плейлистов
	PlaylistsDir string `yaml:"playlists_dir"`
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Отсутствующий файл не считается ошибкой: используются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
		}
	} else if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.SongsDir == "" {
		config.SongsDir = "."
	}
	if config.PlaylistsDir == "" {
		config.PlaylistsDir = "~/Playlists"
	}

	// Раскрываем тильду в путях
	config.SongsDir = strings.Replace(config.SongsDir, "~", home, 1)
	config.PlaylistsDir = strings.Replace(config.PlaylistsDir, "~", home, 1)

	return config, nil
}
