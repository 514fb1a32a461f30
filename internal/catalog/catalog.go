// Package catalog содержит каталог уровней, загруженных из рабочей папки
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hazadus/go-beatman/internal/song"
)

// ErrNotFound возвращается при обращении к отсутствующему в каталоге уровню
var ErrNotFound = errors.New("уровень не найден в каталоге")

// Catalog хранит упорядоченную коллекцию уровней с уникальными ID
type Catalog struct {
	records []*song.Record
	index   map[string]*song.Record
}

// New создает каталог из списка уровней. Дубликаты ID пропускаются,
// остается первый встреченный уровень.
func New(records []*song.Record) *Catalog {
	c := &Catalog{
		index: make(map[string]*song.Record),
	}
	for _, record := range records {
		if _, exists := c.index[record.ID]; exists {
			continue
		}
		c.records = append(c.records, record)
		c.index[record.ID] = record
	}
	return c
}

// Len возвращает число уровней в каталоге
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records возвращает все уровни каталога в текущем порядке
func (c *Catalog) Records() []*song.Record {
	return c.records
}

// ByID возвращает уровень по его ID
func (c *Catalog) ByID(id string) (*song.Record, error) {
	record, exists := c.index[id]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return record, nil
}

// Filter возвращает уровни, у которых ID, название или автор
// содержат подстроку query (без учета регистра)
func (c *Catalog) Filter(query string) []*song.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.records
	}

	var matched []*song.Record
	for _, record := range c.records {
		haystack := strings.ToLower(strings.Join([]string{
			record.ID,
			record.Info.SongName,
			record.Info.SongAuthorName,
			record.Info.LevelAuthorName,
		}, " "))
		if strings.Contains(haystack, query) {
			matched = append(matched, record)
		}
	}
	return matched
}

// SortByTitle сортирует уровни каталога по названию песни
func (c *Catalog) SortByTitle() {
	sort.SliceStable(c.records, func(i, j int) bool {
		return strings.ToLower(c.records[i].Info.SongName) < strings.ToLower(c.records[j].Info.SongName)
	})
}

// Add добавляет уровень в каталог
func (c *Catalog) Add(record *song.Record) error {
	if _, exists := c.index[record.ID]; exists {
		return fmt.Errorf("уровень с ID %q уже есть в каталоге", record.ID)
	}
	c.records = append(c.records, record)
	c.index[record.ID] = record
	return nil
}

// RemoveByID удаляет уровень из каталога по ID
func (c *Catalog) RemoveByID(id string) error {
	if _, exists := c.index[id]; !exists {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	delete(c.index, id)
	for i, record := range c.records {
		if record.ID == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			break
		}
	}
	return nil
}

// RenameByID меняет ID и путь уровня после переименования папки на диске
func (c *Catalog) RenameByID(oldID, newID, newPath string) error {
	record, exists := c.index[oldID]
	if !exists {
		return fmt.Errorf("%w: %q", ErrNotFound, oldID)
	}
	if _, taken := c.index[newID]; taken && newID != oldID {
		return fmt.Errorf("уровень с ID %q уже есть в каталоге", newID)
	}

	delete(c.index, oldID)
	record.ID = newID
	record.FolderPath = newPath
	c.index[newID] = record
	return nil
}
