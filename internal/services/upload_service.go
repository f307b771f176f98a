package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hypernova-labs/etiket-service/internal/config"
	"github.com/sirupsen/logrus"
)

// Extensiones de imagen aceptadas en ambos slots de subida
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// isAcceptableImage aplica la política de imágenes a un nombre de archivo
// subido. Un archivo que no pasa se omite en silencio, nunca es un error.
func isAcceptableImage(filename string) bool {
	if filename == "" {
		return false
	}
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// sanitizeFilename elimina componentes de ruta y caracteres inseguros
func sanitizeFilename(filename string) string {
	name := filename
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return unsafeChars.ReplaceAllString(name, "_")
}

// UploadService persiste imágenes subidas en el directorio transitorio y
// barre las que quedaron obsoletas
type UploadService struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewUploadService crea una nueva instancia del servicio
func NewUploadService(cfg *config.Config, logger *logrus.Logger) *UploadService {
	return &UploadService{
		cfg:    cfg,
		logger: logger,
	}
}

// SaveImage escribe un archivo subido bajo un nombre aleatorizado con la
// etiqueta del slot y retorna su ruta. Un archivo ausente o filtrado por la
// política retorna ruta vacía sin error.
func (s *UploadService) SaveImage(fh *multipart.FileHeader, slot string) (string, error) {
	if fh == nil || !isAcceptableImage(fh.Filename) {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("error opening uploaded file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s_%s_%s", slot, uuid.New(), sanitizeFilename(fh.Filename))
	path := filepath.Join(s.cfg.Upload.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("error saving upload file: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"slot": slot,
		"path": path,
	}).Debug("Upload stored")

	return path, nil
}

// CleanupFailure registra una ruta que el sweeper no pudo eliminar
type CleanupFailure struct {
	Path string
	Err  error
}

// CleanupStale elimina del directorio de subidas los archivos regulares más
// viejos que la edad configurada. Los fallos se retornan para que el caller
// los registre, nunca se propagan: la limpieza es best-effort y una petición
// en vuelo todavía puede estar leyendo un archivo que el sweeper va a borrar
// (carrera aceptada).
func (s *UploadService) CleanupStale() []CleanupFailure {
	var failures []CleanupFailure

	entries, err := os.ReadDir(s.cfg.Upload.Dir)
	if err != nil {
		return append(failures, CleanupFailure{Path: s.cfg.Upload.Dir, Err: err})
	}

	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(s.cfg.Upload.Dir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			failures = append(failures, CleanupFailure{Path: path, Err: err})
			continue
		}
		if time.Since(info.ModTime()) <= s.cfg.Upload.MaxAge {
			continue
		}

		if err := os.Remove(path); err != nil {
			failures = append(failures, CleanupFailure{Path: path, Err: err})
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.WithField("removed", removed).Info("Stale uploads removed")
	}

	return failures
}
