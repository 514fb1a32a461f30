package song

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
)

// validInfoDat тестовый описатель уровня с одним набором карт
const validInfoDat = `{
	"_version": "2.0.0",
	"_songName": "Test Song",
	"_songSubName": "Remix",
	"_songAuthorName": "Test Author",
	"_levelAuthorName": "Test Mapper",
	"_beatsPerMinute": 174.5,
	"_songFilename": "song.egg",
	"_coverImageFilename": "cover.jpg",
	"_difficultyBeatmapSets": [
		{
			"_beatmapCharacteristicName": "Standard",
			"_difficultyBeatmaps": [
				{"_difficulty": "Easy", "_difficultyRank": 1, "_beatmapFilename": "Easy.dat"},
				{"_difficulty": "Expert", "_difficultyRank": 7, "_beatmapFilename": "Expert.dat"}
			]
		}
	]
}`

// writeLevelFolder создает папку уровня с описателем и файлами карт
func writeLevelFolder(t *testing.T, parent, name, infoDat string, beatmaps map[string]string) string {
	t.Helper()

	folderPath := filepath.Join(parent, name)
	if err := os.MkdirAll(folderPath, 0755); err != nil {
		t.Fatalf("Ошибка создания папки уровня: %v", err)
	}

	if infoDat != "" {
		if err := os.WriteFile(filepath.Join(folderPath, "info.dat"), []byte(infoDat), 0644); err != nil {
			t.Fatalf("Ошибка записи описателя: %v", err)
		}
	}

	for fileName, content := range beatmaps {
		if err := os.WriteFile(filepath.Join(folderPath, fileName), []byte(content), 0644); err != nil {
			t.Fatalf("Ошибка записи файла карты: %v", err)
		}
	}

	return folderPath
}

func TestFromFolder(t *testing.T) {
	tempDir := t.TempDir()
	folderPath := writeLevelFolder(t, tempDir, "Test Level", validInfoDat, map[string]string{
		"Easy.dat":   `{"_notes": []}`,
		"Expert.dat": `{"_notes": [1, 2, 3]}`,
	})

	record, err := FromFolder(folderPath)
	if err != nil {
		t.Fatalf("Ошибка разбора папки уровня: %v", err)
	}

	// Проверяем основные поля
	if record.ID != "Test Level" {
		t.Errorf("Ожидался ID: %q, получено: %q", "Test Level", record.ID)
	}
	if record.Info.SongName != "Test Song" {
		t.Errorf("Ожидалось название: %q, получено: %q", "Test Song", record.Info.SongName)
	}
	if record.Info.SongAuthorName != "Test Author" {
		t.Errorf("Ожидался автор песни: %q, получено: %q", "Test Author", record.Info.SongAuthorName)
	}
	if record.Info.LevelAuthorName != "Test Mapper" {
		t.Errorf("Ожидался автор уровня: %q, получено: %q", "Test Mapper", record.Info.LevelAuthorName)
	}
	if record.Info.BeatsPerMinute != 174.5 {
		t.Errorf("Ожидался BPM: %v, получено: %v", 174.5, record.Info.BeatsPerMinute)
	}
	if len(record.Info.BeatmapSets) != 1 {
		t.Fatalf("Ожидался 1 набор карт, получено: %d", len(record.Info.BeatmapSets))
	}
	if len(record.Info.BeatmapSets[0].DifficultyBeatmaps) != 2 {
		t.Errorf("Ожидалось 2 карты, получено: %d", len(record.Info.BeatmapSets[0].DifficultyBeatmaps))
	}

	// Проверяем пути к ресурсам
	if record.AudioPath() != filepath.Join(folderPath, "song.egg") {
		t.Errorf("Неверный путь к аудиофайлу: %q", record.AudioPath())
	}
	if record.CoverPath() != filepath.Join(folderPath, "cover.jpg") {
		t.Errorf("Неверный путь к обложке: %q", record.CoverPath())
	}
}

func TestLevelHash(t *testing.T) {
	tempDir := t.TempDir()
	easy := `{"_notes": []}`
	expert := `{"_notes": [1, 2, 3]}`
	folderPath := writeLevelFolder(t, tempDir, "Hashed", validInfoDat, map[string]string{
		"Easy.dat":   easy,
		"Expert.dat": expert,
	})

	record, err := FromFolder(folderPath)
	if err != nil {
		t.Fatalf("Ошибка разбора папки уровня: %v", err)
	}

	// Хеш считается от описателя и файлов карт в порядке их перечисления
	hasher := sha1.New()
	hasher.Write([]byte(validInfoDat))
	hasher.Write([]byte(easy))
	hasher.Write([]byte(expert))
	expected := hex.EncodeToString(hasher.Sum(nil))

	if record.LevelHash != expected {
		t.Errorf("Ожидался хеш: %s, получено: %s", expected, record.LevelHash)
	}
}

func TestFromFolderDescriptorCaseInsensitive(t *testing.T) {
	tempDir := t.TempDir()
	folderPath := filepath.Join(tempDir, "Upper")
	if err := os.MkdirAll(folderPath, 0755); err != nil {
		t.Fatalf("Ошибка создания папки уровня: %v", err)
	}

	// Описатель с именем в другом регистре должен распознаваться
	infoDat := `{"_songName": "Upper", "_songFilename": "song.egg", "_difficultyBeatmapSets": []}`
	if err := os.WriteFile(filepath.Join(folderPath, "Info.DAT"), []byte(infoDat), 0644); err != nil {
		t.Fatalf("Ошибка записи описателя: %v", err)
	}

	record, err := FromFolder(folderPath)
	if err != nil {
		t.Fatalf("Ошибка разбора папки уровня: %v", err)
	}
	if record.Info.SongName != "Upper" {
		t.Errorf("Ожидалось название: %q, получено: %q", "Upper", record.Info.SongName)
	}
}

func TestFromFolderErrors(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name     string
		infoDat  string
		beatmaps map[string]string
	}{
		{name: "NoDescriptor", infoDat: ""},
		{name: "BrokenJSON", infoDat: `{"_songName": `},
		{name: "NoSongName", infoDat: `{"_songFilename": "song.egg"}`},
		{name: "NoSongFilename", infoDat: `{"_songName": "X"}`},
		{
			name: "UnknownCharacteristic",
			infoDat: `{"_songName": "X", "_songFilename": "song.egg",
				"_difficultyBeatmapSets": [{"_beatmapCharacteristicName": "Bogus", "_difficultyBeatmaps": []}]}`,
		},
		{name: "MissingBeatmapFile", infoDat: validInfoDat},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			folderPath := writeLevelFolder(t, tempDir, test.name, test.infoDat, test.beatmaps)
			if _, err := FromFolder(folderPath); err == nil {
				t.Error("Ожидалась ошибка разбора папки уровня")
			}
		})
	}
}

func TestFolderSize(t *testing.T) {
	tempDir := t.TempDir()
	folderPath := writeLevelFolder(t, tempDir, "Sized", validInfoDat, map[string]string{
		"Easy.dat":   `{"_notes": []}`,
		"Expert.dat": `{"_notes": [1, 2, 3]}`,
	})

	record, err := FromFolder(folderPath)
	if err != nil {
		t.Fatalf("Ошибка разбора папки уровня: %v", err)
	}

	size, err := record.FolderSize()
	if err != nil {
		t.Fatalf("Ошибка подсчета размера папки: %v", err)
	}

	// Размер папки — сумма размеров описателя и файлов карт
	expected := int64(len(validInfoDat) + len(`{"_notes": []}`) + len(`{"_notes": [1, 2, 3]}`))
	if size != expected {
		t.Errorf("Ожидался размер: %d, получено: %d", expected, size)
	}
}

func TestTitle(t *testing.T) {
	record := &Record{Info: Info{SongName: "Song", SongSubName: "Remix"}}
	if record.Title() != "Song (Remix)" {
		t.Errorf("Ожидалось название: %q, получено: %q", "Song (Remix)", record.Title())
	}

	record.Info.SongSubName = ""
	if record.Title() != "Song" {
		t.Errorf("Ожидалось название: %q, получено: %q", "Song", record.Title())
	}
}
