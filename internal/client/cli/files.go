package cli

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/plantpal/internal/filex"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

// loadPhoto reads the file at path for upload. The content type comes from
// the extension, or from the bytes when the extension is unknown.
func loadPhoto(path string) (*models.Photo, error) {
	expanded, err := filex.ExpandHome(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(expanded))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &models.Photo{
		Name:        filepath.Base(expanded),
		ContentType: contentType,
		Data:        data,
	}, nil
}
