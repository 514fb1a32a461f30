// Package scanner сканирует рабочую папку и находит в ней песенные уровни
package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hazadus/go-beatman/internal/song"
)

// Warning описывает папку, пропущенную при сканировании
type Warning struct {
	Folder string
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("папка %q пропущена: %v", w.Folder, w.Err)
}

// Scan обходит подпапки рабочей папки и разбирает описатель каждого уровня.
// Невалидные подпапки пропускаются и возвращаются как предупреждения.
// Повторное сканирование неизменной папки дает идентичный результат.
func Scan(dir string) ([]*song.Record, []Warning, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка чтения рабочей папки: %w", err)
	}

	var records []*song.Record
	var warnings []Warning

	// os.ReadDir возвращает записи отсортированными по имени,
	// поэтому порядок уровней стабилен между сканированиями
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		record, err := song.FromFolder(filepath.Join(dir, entry.Name()))
		if err != nil {
			warnings = append(warnings, Warning{Folder: entry.Name(), Err: err})
			continue
		}
		records = append(records, record)
	}

	return records, warnings, nil
}
