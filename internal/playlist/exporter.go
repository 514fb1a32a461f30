// Package playlist содержит экспорт выбранных уровней в файл плейлиста
package playlist

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hazadus/go-beatman/internal/catalog"
)

// Song описывает один уровень внутри файла плейлиста
type Song struct {
	SongName        string `json:"songName"`
	LevelAuthorName string `json:"levelAuthorName"`
	Hash            string `json:"hash"`
}

// Document структура файла плейлиста (.bplist)
type Document struct {
	PlaylistTitle       string `json:"playlistTitle"`
	PlaylistAuthor      string `json:"playlistAuthor"`
	PlaylistDescription string `json:"playlistDescription"`
	Image               string `json:"image,omitempty"`
	Songs               []Song `json:"songs"`
}

// Summary хранит итоги экспорта плейлиста
type Summary struct {
	Exported int
	Skipped  []string // ID уровней, отсутствующих в каталоге
}

// Exporter экспортирует уровни каталога в файл плейлиста
type Exporter struct {
	cat *catalog.Catalog
}

// NewExporter создает новый экспортер плейлистов
func NewExporter(cat *catalog.Catalog) *Exporter {
	return &Exporter{
		cat: cat,
	}
}

// Export записывает выбранные уровни в файл плейлиста.
// Отсутствующие в каталоге ID пропускаются и попадают в Summary.Skipped.
func (e *Exporter) Export(title, author string, ids []string, filePath string) (*Summary, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("не выбрано ни одного уровня для экспорта")
	}

	doc := Document{
		PlaylistTitle:  title,
		PlaylistAuthor: author,
		Songs:          make([]Song, 0, len(ids)),
	}
	summary := &Summary{}

	for _, id := range ids {
		record, err := e.cat.ByID(id)
		if err != nil {
			summary.Skipped = append(summary.Skipped, id)
			continue
		}

		doc.Songs = append(doc.Songs, Song{
			SongName:        record.Info.SongName,
			LevelAuthorName: record.Info.LevelAuthorName,
			Hash:            record.LevelHash,
		})

		// Обложка плейлиста — обложка первого уровня, если она читается
		if doc.Image == "" {
			if cover, err := record.ReadCover(); err == nil {
				doc.Image = base64.StdEncoding.EncodeToString(cover)
			}
		}

		summary.Exported++
	}

	if summary.Exported == 0 {
		return summary, fmt.Errorf("ни один из выбранных уровней не найден в каталоге")
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return summary, fmt.Errorf("ошибка сериализации плейлиста: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return summary, fmt.Errorf("ошибка записи файла плейлиста: %w", err)
	}

	return summary, nil
}
