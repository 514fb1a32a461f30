package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hazadus/go-beatman/internal/catalog"
	"github.com/hazadus/go-beatman/internal/scanner"
)

// setupWorkingDir создает рабочую папку с уровнями и загружает каталог
func setupWorkingDir(t *testing.T, names ...string) (string, *catalog.Catalog) {
	t.Helper()

	tempDir := t.TempDir()
	for _, name := range names {
		folderPath := filepath.Join(tempDir, name)
		if err := os.MkdirAll(folderPath, 0755); err != nil {
			t.Fatalf("Ошибка создания папки уровня: %v", err)
		}
		infoDat := `{"_songName": "` + name + `", "_songFilename": "song.egg", "_difficultyBeatmapSets": []}`
		if err := os.WriteFile(filepath.Join(folderPath, "info.dat"), []byte(infoDat), 0644); err != nil {
			t.Fatalf("Ошибка записи описателя: %v", err)
		}
	}

	records, _, err := scanner.Scan(tempDir)
	if err != nil {
		t.Fatalf("Ошибка сканирования: %v", err)
	}
	return tempDir, catalog.New(records)
}

func TestDelete(t *testing.T) {
	tempDir, cat := setupWorkingDir(t, "A", "B")
	ops := New(tempDir, cat)

	if err := ops.Delete("A"); err != nil {
		t.Fatalf("Ошибка удаления уровня: %v", err)
	}

	// Папка удалена с диска
	if _, err := os.Stat(filepath.Join(tempDir, "A")); !os.IsNotExist(err) {
		t.Error("Папка уровня должна быть удалена с диска")
	}
	// Уровень удален из каталога
	if _, err := cat.ByID("A"); !errors.Is(err, catalog.ErrNotFound) {
		t.Error("Уровень должен быть удален из каталога")
	}
	// Другой уровень не затронут
	if _, err := os.Stat(filepath.Join(tempDir, "B")); err != nil {
		t.Error("Папка другого уровня не должна быть затронута")
	}
}

func TestDeleteNotFound(t *testing.T) {
	tempDir, cat := setupWorkingDir(t, "A")
	ops := New(tempDir, cat)

	// Удаление отсутствующего ID — no-op: ни диск, ни каталог не меняются
	if err := ops.Delete("missing"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("Ожидалась ошибка ErrNotFound, получено: %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("Каталог не должен меняться, получено уровней: %d", cat.Len())
	}
	if _, err := os.Stat(filepath.Join(tempDir, "A")); err != nil {
		t.Error("Диск не должен меняться при удалении отсутствующего ID")
	}
}

func TestBatchDelete(t *testing.T) {
	tempDir, cat := setupWorkingDir(t, "A", "B")
	ops := New(tempDir, cat)

	// A существует и удаляется, X отсутствует и дает ошибку
	results := ops.BatchDelete([]string{"A", "X"})

	if len(results) != 2 {
		t.Fatalf("Ожидалось 2 результата, получено: %d", len(results))
	}
	if results[0].ID != "A" || results[0].Err != nil {
		t.Errorf("Ожидалось успешное удаление A, получено: %v", results[0].Err)
	}
	if results[1].ID != "X" || results[1].Err == nil {
		t.Error("Ожидалась ошибка удаления X")
	}

	// A удален, B остался
	if _, err := cat.ByID("A"); !errors.Is(err, catalog.ErrNotFound) {
		t.Error("Уровень A должен быть удален из каталога")
	}
	if _, err := cat.ByID("B"); err != nil {
		t.Errorf("Уровень B должен остаться в каталоге: %v", err)
	}
}

func TestRename(t *testing.T) {
	tempDir, cat := setupWorkingDir(t, "Old Name", "Other")
	ops := New(tempDir, cat)

	if err := ops.Rename("Old Name", "New Name"); err != nil {
		t.Fatalf("Ошибка переименования уровня: %v", err)
	}

	// Папка переименована на диске
	if _, err := os.Stat(filepath.Join(tempDir, "New Name")); err != nil {
		t.Error("Папка с новым именем должна существовать на диске")
	}
	if _, err := os.Stat(filepath.Join(tempDir, "Old Name")); !os.IsNotExist(err) {
		t.Error("Папка со старым именем не должна существовать на диске")
	}

	// Каталог обновлен: старый ID не находится, новый указывает на новый путь
	if _, err := cat.ByID("Old Name"); !errors.Is(err, catalog.ErrNotFound) {
		t.Error("Старый ID не должен находиться после переименования")
	}
	record, err := cat.ByID("New Name")
	if err != nil {
		t.Fatalf("Ошибка поиска переименованного уровня: %v", err)
	}
	if record.FolderPath != filepath.Join(tempDir, "New Name") {
		t.Errorf("Ожидался путь: %q, получено: %q", filepath.Join(tempDir, "New Name"), record.FolderPath)
	}

	// Другой уровень не затронут
	if _, err := cat.ByID("Other"); err != nil {
		t.Errorf("Уровень Other не должен быть затронут: %v", err)
	}
}

func TestRenameErrors(t *testing.T) {
	tempDir, cat := setupWorkingDir(t, "A", "B")
	ops := New(tempDir, cat)

	tests := []struct {
		name    string
		id      string
		newName string
	}{
		{"NotFound", "missing", "C"},
		{"EmptyName", "A", "  "},
		{"PathSeparator", "A", "x/y"},
		{"TargetTaken", "A", "B"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := ops.Rename(test.id, test.newName); err == nil {
				t.Errorf("Ожидалась ошибка переименования %q -> %q", test.id, test.newName)
			}
		})
	}

	// Каталог и диск не изменились
	if cat.Len() != 2 {
		t.Errorf("Каталог не должен меняться при ошибках, получено уровней: %d", cat.Len())
	}
	if _, err := os.Stat(filepath.Join(tempDir, "A")); err != nil {
		t.Error("Папка A должна остаться на месте")
	}
}

func TestRenameSameName(t *testing.T) {
	tempDir, cat := setupWorkingDir(t, "A")
	ops := New(tempDir, cat)

	// Переименование в то же имя — no-op без ошибки
	if err := ops.Rename("A", "A"); err != nil {
		t.Errorf("Переименование в то же имя не должно давать ошибку: %v", err)
	}
	if _, err := cat.ByID("A"); err != nil {
		t.Errorf("Уровень A должен остаться в каталоге: %v", err)
	}
}
