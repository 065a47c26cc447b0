// Package store provides loading and saving of category keyword
// configuration files.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/receipt-csv/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryStore manages loading and saving of custom category keyword data.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a store for the given categories YAML file.
// An empty filename means only standard locations are searched.
func NewCategoryStore(categoriesFile string) *CategoryStore {
	if categoriesFile == "" {
		categoriesFile = "categories.yaml"
	}
	return &CategoryStore{CategoriesFile: categoriesFile}
}

// FindConfigFile looks for a configuration file in standard locations:
// the path itself, ./config/, and ~/.config/receipt-csv/.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "receipt-csv", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads custom category keyword configurations from the YAML
// file. A missing file is not an error: it returns an empty slice so callers
// fall back to the built-in keyword tables.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	path, err := s.FindConfigFile(s.CategoriesFile)
	if err != nil {
		log.WithField("file", s.CategoriesFile).Debug("No custom categories file found")
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read categories file %s: %w", path, err)
	}

	var config models.CategoriesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("could not parse categories file %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(config.Categories),
	}).Debug("Loaded custom category keywords")
	return config.Categories, nil
}

// SaveCategories writes category keyword configurations back to the YAML file.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig) error {
	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("could not marshal categories: %w", err)
	}

	path := s.CategoriesFile
	if found, err := s.FindConfigFile(s.CategoriesFile); err == nil {
		path = found
	}

	if err := os.WriteFile(path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("could not write categories file %s: %w", path, err)
	}

	log.WithField("file", path).Debug("Saved category keywords")
	return nil
}
