// Package song содержит модель песенного уровня и разбор его описателя info.dat
package song

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DescriptorName имя файла-описателя уровня (сравнивается без учета регистра)
const DescriptorName = "info.dat"

// characteristics известные характеристики наборов карт
var characteristics = map[string]bool{
	"360Degree": true,
	"90Degree":  true,
	"Standard":  true,
	"NoArrows":  true,
	"OneSaber":  true,
	"Lawless":   true,
	"Lightshow": true,
}

// DifficultyBeatmap описывает одну карту сложности внутри набора
type DifficultyBeatmap struct {
	Difficulty      string `json:"_difficulty"`
	DifficultyRank  int    `json:"_difficultyRank"`
	BeatmapFilename string `json:"_beatmapFilename"`
}

// BeatmapSet описывает набор карт одной характеристики
type BeatmapSet struct {
	CharacteristicName string              `json:"_beatmapCharacteristicName"`
	DifficultyBeatmaps []DifficultyBeatmap `json:"_difficultyBeatmaps"`
}

// Info структура описателя уровня (info.dat)
type Info struct {
	Version            string       `json:"_version"`
	SongName           string       `json:"_songName"`
	SongSubName        string       `json:"_songSubName"`
	SongAuthorName     string       `json:"_songAuthorName"`
	LevelAuthorName    string       `json:"_levelAuthorName"`
	BeatsPerMinute     float64      `json:"_beatsPerMinute"`
	SongFilename       string       `json:"_songFilename"`
	CoverImageFilename string       `json:"_coverImageFilename"`
	BeatmapSets        []BeatmapSet `json:"_difficultyBeatmapSets"`
}

// Record хранит сведения об одном уровне из рабочей папки
type Record struct {
	// ID уровня — имя его папки, уникально в пределах рабочей папки
	ID         string
	FolderPath string
	Info       Info
	// LevelHash — SHA1 от info.dat и всех файлов карт, в нижнем регистре
	LevelHash string
}

// FromFolder читает описатель уровня из папки и строит Record.
// Папки без распознаваемого описателя считаются невалидными и возвращают ошибку.
func FromFolder(folderPath string) (*Record, error) {
	descriptorPath, err := findDescriptor(folderPath)
	if err != nil {
		return nil, err
	}

	rawInfo, err := os.ReadFile(descriptorPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения описателя: %w", err)
	}

	var info Info
	if err := json.Unmarshal(rawInfo, &info); err != nil {
		return nil, fmt.Errorf("ошибка разбора описателя: %w", err)
	}

	if err := validateInfo(&info); err != nil {
		return nil, err
	}

	// Хеш уровня считается от байтов описателя и всех файлов карт по порядку
	hasher := sha1.New()
	hasher.Write(rawInfo)
	for _, set := range info.BeatmapSets {
		for _, beatmap := range set.DifficultyBeatmaps {
			beatmapData, err := os.ReadFile(filepath.Join(folderPath, beatmap.BeatmapFilename))
			if err != nil {
				return nil, fmt.Errorf("ошибка чтения файла карты %q: %w", beatmap.BeatmapFilename, err)
			}
			hasher.Write(beatmapData)
		}
	}

	return &Record{
		ID:         filepath.Base(folderPath),
		FolderPath: folderPath,
		Info:       info,
		LevelHash:  hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}

// findDescriptor ищет info.dat в папке уровня без учета регистра имени
func findDescriptor(folderPath string) (string, error) {
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения папки уровня: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(entry.Name(), DescriptorName) {
			return filepath.Join(folderPath, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("описатель %s не найден", DescriptorName)
}

// validateInfo проверяет обязательные поля описателя
func validateInfo(info *Info) error {
	if info.SongName == "" {
		return fmt.Errorf("в описателе не указано название песни")
	}
	if info.SongFilename == "" {
		return fmt.Errorf("в описателе не указан аудиофайл")
	}
	for _, set := range info.BeatmapSets {
		if !characteristics[set.CharacteristicName] {
			return fmt.Errorf("неизвестная характеристика набора карт: %q", set.CharacteristicName)
		}
	}
	return nil
}

// AudioPath возвращает абсолютный путь к аудиофайлу уровня
func (r *Record) AudioPath() string {
	return filepath.Join(r.FolderPath, r.Info.SongFilename)
}

// CoverPath возвращает абсолютный путь к обложке уровня, либо пустую строку
func (r *Record) CoverPath() string {
	if r.Info.CoverImageFilename == "" {
		return ""
	}
	return filepath.Join(r.FolderPath, r.Info.CoverImageFilename)
}

// ReadCover читает байты обложки уровня
func (r *Record) ReadCover() ([]byte, error) {
	coverPath := r.CoverPath()
	if coverPath == "" {
		return nil, fmt.Errorf("у уровня нет обложки")
	}

	data, err := os.ReadFile(coverPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения обложки: %w", err)
	}
	return data, nil
}

// FolderSize возвращает суммарный размер файлов в папке уровня в байтах
func (r *Record) FolderSize() (int64, error) {
	var total int64
	err := filepath.Walk(r.FolderPath, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета размера папки: %w", err)
	}
	return total, nil
}

// Title возвращает отображаемое название уровня
func (r *Record) Title() string {
	if r.Info.SongSubName != "" {
		return fmt.Sprintf("%s (%s)", r.Info.SongName, r.Info.SongSubName)
	}
	return r.Info.SongName
}
