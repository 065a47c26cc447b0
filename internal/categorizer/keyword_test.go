package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fjacquet/receipt-csv/internal/models"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		store    string
		expected string
	}{
		{"Restaurant keyword", "炭火焼肉 牛角", models.CategoryDining},
		{"Cafe keyword", "カフェ・ド・パリ", models.CategoryDining},
		{"Latin cafe keyword case-insensitive", "CAFE KITSUNE", models.CategoryDining},
		{"Chain restaurant name", "マクドナルド渋谷店", models.CategoryDining},
		{"Supermarket keyword", "業務スーパー川崎店", models.CategoryGroceries},
		{"Convenience store", "セブンイレブン新宿三丁目店", models.CategoryGroceries},
		{"Generic trade-name suffix", "なんでも商店", models.CategoryGroceries},
		{"Taxi keyword", "日本交通タクシー", models.CategoryTransport},
		{"Gas station brand", "ENEOS 環八店", models.CategoryTransport},
		{"Hotel keyword", "ホテルニューオータニ", models.CategoryLodging},
		{"Latin hotel keyword", "Grand Hotel Tokyo", models.CategoryLodging},
		{"Bookstore keyword", "ジュンク堂書店", models.CategoryStationery},
		{"Stationery keyword", "伊東屋文具", models.CategoryStationery},
		{"Pharmacy chain", "マツモトキヨシ池袋店", models.CategoryHealthcare},
		{"Drugstore keyword", "ウエルシア薬局", models.CategoryHealthcare},
		{"Unknown store", "株式会社アルファ", models.CategoryOther},
		{"Unknown-store sentinel", models.UnknownStore, models.CategoryOther},
		{"Empty store name", "", models.CategoryOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Categorize(tc.store))
		})
	}
}

func TestCategorizePriorityOrder(t *testing.T) {
	// A name hitting several keyword tables resolves by fixed table order.
	// 駅前食堂スーパー matches both dining (食堂) and groceries (スーパー);
	// dining is evaluated first.
	assert.Equal(t, models.CategoryDining, Categorize("駅前食堂スーパー"))

	// ホテル内レストラン matches dining (レストラン) and lodging (ホテル);
	// dining still wins.
	assert.Equal(t, models.CategoryDining, Categorize("ホテル内レストラン"))
}

func TestCategorizeIsTotal(t *testing.T) {
	inputs := []string{"", "!!!", "12345", "不明な店舗", "ランダムな文字列です"}

	known := make(map[string]bool)
	for _, label := range KnownCategories() {
		known[label] = true
	}

	for _, input := range inputs {
		category := Categorize(input)
		assert.True(t, known[category], "category %q for input %q must be a known label", category, input)
	}
}

func TestKnownCategories(t *testing.T) {
	labels := KnownCategories()

	assert.Len(t, labels, 7)
	assert.Equal(t, models.CategoryOther, labels[len(labels)-1], "catch-all label comes last")
	assert.Contains(t, labels, models.CategoryDining)
	assert.Contains(t, labels, models.CategoryGroceries)
	assert.Contains(t, labels, models.CategoryTransport)
	assert.Contains(t, labels, models.CategoryLodging)
	assert.Contains(t, labels, models.CategoryStationery)
	assert.Contains(t, labels, models.CategoryHealthcare)
}
