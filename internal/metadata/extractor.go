// Package metadata предоставляет функционал для осмотра аудиофайлов уровней
package metadata

import (
	"fmt"
	"os"
	"time"

	"github.com/dhowden/tag"

	"github.com/hazadus/go-beatman/internal/player"
)

// AssetInfo содержит сведения об аудиофайле уровня
type AssetInfo struct {
	Artist   string
	Title    string
	Size     int64
	Duration time.Duration
}

// Extractor извлекает сведения из аудиофайлов уровней
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Tags читает теги аудиофайла (vorbis comments или ID3)
func (e *Extractor) Tags(filePath string) (artist, title string, err error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", "", fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return "", "", fmt.Errorf("ошибка чтения тегов: %w", err)
	}

	return metadata.Artist(), metadata.Title(), nil
}

// Duration получает длительность аудиофайла через декодирование
func (e *Extractor) Duration(filePath string) (time.Duration, error) {
	streamer, format, err := player.DecodeFile(filePath)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()

	// Вычисляем длительность
	return format.SampleRate.D(streamer.Len()), nil
}

// Inspect собирает сведения об аудиофайле (размер, длительность, теги).
// Теги читаются по возможности: их отсутствие не считается ошибкой.
func (e *Extractor) Inspect(filePath string) (*AssetInfo, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	duration, err := e.Duration(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения длительности: %w", err)
	}

	info := &AssetInfo{
		Size:     fileInfo.Size(),
		Duration: duration,
	}

	if artist, title, err := e.Tags(filePath); err == nil {
		info.Artist = artist
		info.Title = title
	}

	return info, nil
}
