package ocr

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/receipt-csv/internal/parsererror"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ocr.sh")
	require.NoError(t, os.WriteFile(path, []byte(content), 0700))
	return path
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", "", 0)

	assert.Equal(t, "tesseract", client.Command)
	assert.Equal(t, "jpn", client.Language)
	assert.Equal(t, 60*time.Second, client.Timeout)
}

func TestNewClientOverrides(t *testing.T) {
	client := NewClient("my-ocr", "eng", 5*time.Second)

	assert.Equal(t, "my-ocr", client.Command)
	assert.Equal(t, "eng", client.Language)
	assert.Equal(t, 5*time.Second, client.Timeout)
}

func TestExtractText(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\nprintf '領収書\\n合計 ¥500\\n'\n")
	client := NewClient(script, "jpn", 10*time.Second)

	text, err := client.ExtractText(context.Background(), "receipt.jpg")
	require.NoError(t, err)
	assert.Equal(t, "領収書\n合計 ¥500\n", text)
}

func TestExtractTextCommandFailure(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\necho 'cannot read image' >&2\nexit 1\n")
	client := NewClient(script, "jpn", 10*time.Second)

	_, err := client.ExtractText(context.Background(), "receipt.jpg")

	var ocrErr *parsererror.OCRError
	require.ErrorAs(t, err, &ocrErr)
	assert.Equal(t, "receipt.jpg", ocrErr.ImagePath)
}

func TestExtractTextMissingCommand(t *testing.T) {
	client := NewClient(filepath.Join(t.TempDir(), "does-not-exist"), "jpn", 10*time.Second)

	_, err := client.ExtractText(context.Background(), "receipt.jpg")

	var ocrErr *parsererror.OCRError
	require.ErrorAs(t, err, &ocrErr)
}

func TestExtractTextTimeout(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\nsleep 5\n")
	client := NewClient(script, "jpn", 100*time.Millisecond)

	_, err := client.ExtractText(context.Background(), "receipt.jpg")
	assert.Error(t, err)
}
