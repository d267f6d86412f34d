package http

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jportela/tienda-api/internal/domain"
	"github.com/jportela/tienda-api/pkg/config"
)

// uploadFieldName nombre del campo multipart con la imagen del producto.
const uploadFieldName = "images"

// ImageStore guarda imágenes de productos en disco con las mismas reglas del
// middleware de subida original: solo MIME image/*, tamaño máximo configurable,
// nombre de archivo <base>-<timestamp><ext>.
type ImageStore struct {
	cfg config.UploadConfig
}

// NewImageStore crea la carpeta de subidas si no existe.
func NewImageStore(cfg config.UploadConfig) (*ImageStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear carpeta de subidas: %w", err)
	}
	return &ImageStore{cfg: cfg}, nil
}

// Dir devuelve la carpeta de subidas (para servirla como estáticos).
func (s *ImageStore) Dir() string { return s.cfg.Dir }

// SaveFromRequest guarda la imagen del form si la hay. Devuelve el nombre de
// archivo guardado, o "" si la petición no trae archivo. Retorna
// domain.ErrInvalidInput si el archivo no es una imagen o supera el límite.
func (s *ImageStore) SaveFromRequest(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile(uploadFieldName)
	if err != nil {
		// Sin archivo en el form: no es un error, el producto puede venir sin imagen.
		return "", nil
	}
	if err := s.validate(file); err != nil {
		return "", err
	}
	name := storedName(file.Filename)
	if err := c.SaveFile(file, filepath.Join(s.cfg.Dir, name)); err != nil {
		return "", fmt.Errorf("guardar imagen: %w", err)
	}
	return name, nil
}

func (s *ImageStore) validate(file *multipart.FileHeader) error {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return domain.ErrInvalidInput
	}
	if file.Size > s.cfg.MaxSizeBytes() {
		return domain.ErrInvalidInput
	}
	return nil
}

// storedName genera <base>-<unix-millis><ext> a partir del nombre original.
func storedName(original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)
	return fmt.Sprintf("%s-%d%s", base, time.Now().UnixMilli(), ext)
}
