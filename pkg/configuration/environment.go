package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/grupo-altia/accessdesk/pkg/logging"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

type StorageOptions struct {
	// CatalogPath holds departments, systems, categories, roles, users
	// and settings. MatrixPath holds the position-to-system assignments.
	CatalogPath string `env:"CATALOG_PATH" envDefault:"data.json"`
	MatrixPath  string `env:"MATRIX_PATH" envDefault:"matrix.json"`
}

type TemplateOptions struct {
	Dir       string `env:"TEMPLATES_DIR" envDefault:"templates"`
	Request   string `env:"TEMPLATE_REQUEST" envDefault:"solicitud_template.html"`
	Checklist string `env:"TEMPLATE_CHECKLIST" envDefault:"checklist_template.html"`
	Departure string `env:"TEMPLATE_DEPARTURE" envDefault:"departure_template.html"`
}

func (t *TemplateOptions) RequestPath() string {
	return filepath.Join(t.Dir, t.Request)
}

func (t *TemplateOptions) ChecklistPath() string {
	return filepath.Join(t.Dir, t.Checklist)
}

func (t *TemplateOptions) DeparturePath() string {
	return filepath.Join(t.Dir, t.Departure)
}

type Configuration struct {
	Storage   StorageOptions
	Templates TemplateOptions

	OutputDir        string `env:"OUTPUT_DIR" envDefault:"generated-forms"`
	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath          string `env:"LOG_PATH" envDefault:"./logs/accessdesk.log"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return fmt.Errorf("logger setup: %w", err)
	}
	c.logFile = f
	c.logger = logger
	return nil
}

func (c *Configuration) Unload() {
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
}
