package entity

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Attachment archivo subido (imagen o PDF). Pertenece a un único registro;
// su contenido no se modifica después de crearlo.
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Size tamaño en bytes del contenido.
func (a *Attachment) Size() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}

// Ext extensión del nombre original sin el punto. Vacío si no tiene.
func (a *Attachment) Ext() string {
	if a == nil {
		return ""
	}
	return strings.TrimPrefix(filepath.Ext(a.FileName), ".")
}

// Name nombre original o vacío si no hay adjunto.
func (a *Attachment) Name() string {
	if a == nil {
		return ""
	}
	return a.FileName
}

// AttachmentPolicy límites aplicados a cada archivo subido.
type AttachmentPolicy struct {
	MaxBytes     int64
	AllowedTypes []string // prefijos MIME, ej. "image/", "application/pdf"
}

// Check devuelve un mensaje para mostrar junto al campo, o vacío si el archivo es aceptable.
// Un adjunto nil siempre es aceptable.
func (p AttachmentPolicy) Check(a *Attachment) string {
	if a == nil {
		return ""
	}
	if p.MaxBytes > 0 && int64(a.Size()) > p.MaxBytes {
		return fmt.Sprintf("El archivo supera el tamaño máximo de %d MB.", p.MaxBytes/(1024*1024))
	}
	if len(p.AllowedTypes) == 0 {
		return ""
	}
	ct := strings.ToLower(a.ContentType)
	for _, t := range p.AllowedTypes {
		if strings.HasPrefix(ct, strings.ToLower(t)) {
			return ""
		}
	}
	return "Solo se permiten imágenes o archivos PDF."
}
