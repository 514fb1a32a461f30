// Package fileops выполняет операции над папками уровней на диске,
// поддерживая каталог согласованным с состоянием диска
package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hazadus/go-beatman/internal/catalog"
)

// Result хранит результат операции над одним уровнем
type Result struct {
	ID  string
	Err error
}

// Ops выполняет файловые операции в рабочей папке
type Ops struct {
	dir string
	cat *catalog.Catalog
}

// New создает Ops для рабочей папки и каталога
func New(dir string, cat *catalog.Catalog) *Ops {
	return &Ops{
		dir: dir,
		cat: cat,
	}
}

// Delete удаляет папку уровня с диска, затем убирает уровень из каталога.
// Каталог обновляется только после успешного удаления с диска.
func (o *Ops) Delete(id string) error {
	record, err := o.cat.ByID(id)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(record.FolderPath); err != nil {
		return fmt.Errorf("ошибка удаления папки уровня: %w", err)
	}

	return o.cat.RemoveByID(id)
}

// BatchDelete удаляет несколько уровней, продолжая после отдельных ошибок.
// Возвращает результат по каждому уровню.
func (o *Ops) BatchDelete(ids []string) []Result {
	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		results = append(results, Result{ID: id, Err: o.Delete(id)})
	}
	return results
}

// Rename переименовывает папку уровня на диске, затем обновляет каталог.
// Каталог обновляется только после успешного переименования на диске.
func (o *Ops) Rename(id, newName string) error {
	record, err := o.cat.ByID(id)
	if err != nil {
		return err
	}

	if err := ValidateName(newName); err != nil {
		return err
	}
	if newName == id {
		return nil
	}

	newPath := filepath.Join(o.dir, newName)
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("папка %q уже существует", newName)
	}
	if _, err := o.cat.ByID(newName); err == nil {
		return fmt.Errorf("уровень с ID %q уже есть в каталоге", newName)
	}

	if err := os.Rename(record.FolderPath, newPath); err != nil {
		return fmt.Errorf("ошибка переименования папки уровня: %w", err)
	}

	return o.cat.RenameByID(id, newName, newPath)
}

// ValidateName проверяет допустимость имени папки уровня
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("имя папки не может быть пустым")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("недопустимое имя папки: %q", name)
	}
	return nil
}
