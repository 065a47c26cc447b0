package receiptparser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/receipt-csv/internal/models"
	"fjacquet/receipt-csv/internal/parsererror"
)

func TestParseTextFullReceipt(t *testing.T) {
	text := `スーパーマルシェ
領収書
日付：2024/03/05
りんご 2 ¥100 ¥200
たまご 1 ¥250 ¥250
合計金額：¥3,300
消費税：¥300
支払方法：クレジットカード
`

	receipt, err := New().ParseText(context.Background(), "IMG_0001", text)
	require.NoError(t, err)

	assert.Equal(t, "IMG_0001", receipt.ID)
	assert.Equal(t, "スーパーマルシェ", receipt.StoreName)
	assert.Equal(t, "2024-03-05", receipt.Date)
	assert.Equal(t, 3300, receipt.Amount)
	require.NotNil(t, receipt.TaxAmount)
	assert.Equal(t, 300, *receipt.TaxAmount)
	assert.Equal(t, "クレジットカード", receipt.PaymentMethod)
	assert.Equal(t, models.CategoryGroceries, receipt.Category)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, models.ReceiptItem{Name: "りんご", Quantity: 2, UnitPrice: 100, TotalPrice: 200}, receipt.Items[0])
	assert.Equal(t, models.ReceiptItem{Name: "たまご", Quantity: 1, UnitPrice: 250, TotalPrice: 250}, receipt.Items[1])
}

func TestParseTextSparseReceipt(t *testing.T) {
	// A fragment with no labels at all still assembles a record: store from
	// the first line, zero amount, sentinel date, absent tax and payment.
	text := "なんでも商店\nありがとうございました\nまたお越しくださいませ"

	receipt, err := New().ParseText(context.Background(), "IMG_0002", text)
	require.NoError(t, err)

	assert.Equal(t, "なんでも商店", receipt.StoreName)
	assert.Equal(t, models.UnknownDate, receipt.Date)
	assert.Equal(t, 0, receipt.Amount)
	assert.Nil(t, receipt.TaxAmount)
	assert.Empty(t, receipt.PaymentMethod)
	assert.Empty(t, receipt.Items)
}

func TestParseTextFullWidthInput(t *testing.T) {
	// Full-width digits appear in OCR output constantly; the normalizer folds
	// them before any pattern runs.
	text := "個人食堂\n日付：２０２４/０３/０５\n合計 １，２００円"

	receipt, err := New().ParseText(context.Background(), "IMG_0003", text)
	require.NoError(t, err)

	assert.Equal(t, "個人食堂", receipt.StoreName)
	assert.Equal(t, "2024-03-05", receipt.Date)
	assert.Equal(t, 1200, receipt.Amount)
	assert.Equal(t, models.CategoryDining, receipt.Category)
}

func TestParseTextAmountFallback(t *testing.T) {
	// No total label anywhere: the largest currency-marked value wins.
	text := "喫茶ポエム\nコーヒー ¥450 のセット\nケーキ ¥600 のセット"

	receipt, err := New().ParseText(context.Background(), "IMG_0004", text)
	require.NoError(t, err)

	assert.Equal(t, 600, receipt.Amount)
	assert.Nil(t, receipt.TaxAmount, "tax has no fallback and stays absent")
}

func TestParseTextSingleLineReceipt(t *testing.T) {
	text := "合計 ¥500"

	receipt, err := New().ParseText(context.Background(), "IMG_0005", text)
	require.NoError(t, err)

	// 合計 ¥500 is the only line, so the store fallback picks it up. The
	// record keeps whatever the fallback produced rather than the sentinel.
	assert.Equal(t, "合計 ¥500", receipt.StoreName)
	assert.Equal(t, 500, receipt.Amount)
	assert.Equal(t, models.CategoryOther, receipt.Category)
}

func TestParseTextEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Empty string", ""},
		{"Whitespace only", "   \n\t\n  "},
		{"Full-width space only", "　　　"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New().ParseText(context.Background(), "IMG_0006", tc.text)

			var emptyErr *parsererror.EmptyOCRError
			require.ErrorAs(t, err, &emptyErr)
			assert.Equal(t, "IMG_0006", emptyErr.SourceID)
		})
	}
}

func TestParseTextKeepsNormalizedRawText(t *testing.T) {
	receipt, err := New().ParseText(context.Background(), "IMG_0007", "店名：マルシェ\r\n合計 １００円")
	require.NoError(t, err)

	assert.Equal(t, "店名：マルシェ\n合計 100円", receipt.RawText)
}

func TestSourceID(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/data/receipts/IMG_0001.jpg", "IMG_0001"},
		{"receipt.PNG", "receipt"},
		{"noext", "noext"},
		{"archive.2024.jpeg", "archive.2024"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, SourceID(tc.path))
	}
}
