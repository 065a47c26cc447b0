package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/receipt-csv/internal/models"
)

func TestLoadCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	yamlData := `categories:
  - name: 交通費
    keywords:
      - レンタサイクル
      - カーシェア
  - name: 医療費
    keywords:
      - 整骨院
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0600))

	store := NewCategoryStore(path)
	configs, err := store.LoadCategories()
	require.NoError(t, err)

	require.Len(t, configs, 2)
	assert.Equal(t, models.CategoryConfig{
		Name:     "交通費",
		Keywords: []string{"レンタサイクル", "カーシェア"},
	}, configs[0])
	assert.Equal(t, "医療費", configs[1].Name)
}

func TestLoadCategoriesMissingFile(t *testing.T) {
	store := NewCategoryStore(filepath.Join(t.TempDir(), "nope.yaml"))

	configs, err := store.LoadCategories()
	assert.NoError(t, err, "a missing file falls back to built-in keywords")
	assert.Empty(t, configs)
}

func TestLoadCategoriesMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: {not: [a, list"), 0600))

	store := NewCategoryStore(path)
	_, err := store.LoadCategories()
	assert.Error(t, err)
}

func TestSaveCategoriesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	store := NewCategoryStore(path)

	original := []models.CategoryConfig{
		{Name: "宿泊費", Keywords: []string{"ゲストハウス", "民宿"}},
	}
	require.NoError(t, store.SaveCategories(original))

	loaded, err := store.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestNewCategoryStoreDefaultFile(t *testing.T) {
	store := NewCategoryStore("")
	assert.Equal(t, "categories.yaml", store.CategoriesFile)
}

func TestFindConfigFileAbsolutePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: []"), 0600))

	store := NewCategoryStore(path)

	found, err := store.FindConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = store.FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
