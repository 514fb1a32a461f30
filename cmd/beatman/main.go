package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hazadus/go-beatman/internal/catalog"
	"github.com/hazadus/go-beatman/internal/config"
	"github.com/hazadus/go-beatman/internal/fileops"
	"github.com/hazadus/go-beatman/internal/scanner"
)

const (
	defaultConfigPath = "~/.beatman"
)

// Application хранит зависимости команд приложения
type Application struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Ops      *fileops.Ops
	Warnings []scanner.Warning

	// workDir рабочая папка из флага --dir, важнее конфигурации
	workDir string
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	app := &Application{Config: cfg}

	rootCmd := app.createRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// workingDir возвращает активную рабочую папку с уровнями
func (app *Application) workingDir() string {
	if app.workDir != "" {
		return app.workDir
	}
	return app.Config.SongsDir
}

// load сканирует рабочую папку и заполняет каталог уровней
func (app *Application) load() error {
	dir := app.workingDir()

	records, warnings, err := scanner.Scan(dir)
	if err != nil {
		return err
	}

	app.Catalog = catalog.New(records)
	app.Ops = fileops.New(dir, app.Catalog)
	app.Warnings = warnings

	// Выводим предупреждения о пропущенных папках
	for _, warning := range warnings {
		fmt.Printf("⚠️  %s\n", warning)
	}

	return nil
}

// mustLoad загружает каталог или завершает работу приложения
func (app *Application) mustLoad() {
	if err := app.load(); err != nil {
		log.Fatalf("Ошибка загрузки каталога: %v", err)
	}
}
