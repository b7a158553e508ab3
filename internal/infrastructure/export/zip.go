package export

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"regexp"

	"github.com/jhoicas/siac-ventas-api/internal/domain"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
)

// ZipContentType tipo MIME del paquete de documentos.
const ZipContentType = "application/zip"

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

var slotLabels = map[entity.DocumentSlot]string{
	entity.SlotFolioSIAC:      "FolioSIAC",
	entity.SlotINEFront:       "INE_Frente",
	entity.SlotINEBack:        "INE_Reverso",
	entity.SlotCURP:           "CURP",
	entity.SlotProofOfAddress: "Comprobante_Domicilio",
	entity.SlotPortability1:   "Portabilidad_1",
	entity.SlotPortability2:   "Portabilidad_2",
}

// SlotLabel etiqueta usada en el nombre de la entrada del ZIP.
func SlotLabel(slot entity.DocumentSlot) string {
	return slotLabels[slot]
}

// SafeFolio folio apto para nombres de archivo: todo carácter fuera de [A-Za-z0-9]
// se reemplaza por "_"; vacío se convierte en SIN_FOLIO.
func SafeFolio(folio string) string {
	if folio == "" {
		return "SIN_FOLIO"
	}
	return nonAlnum.ReplaceAllString(folio, "_")
}

// BundleFileName {folio}_documentos.zip
func BundleFileName(s *entity.Sale) string {
	return SafeFolio(s.FolioSIAC) + "_documentos.zip"
}

// EntryName {folio}_{etiqueta}.{ext}; sin extensión en el nombre original se usa "file".
func EntryName(folio string, slot entity.DocumentSlot, a *entity.Attachment) string {
	ext := a.Ext()
	if ext == "" {
		ext = "file"
	}
	return fmt.Sprintf("%s_%s.%s", SafeFolio(folio), SlotLabel(slot), ext)
}

// BundleEntries nombres de las entradas que tendría el paquete, en orden.
func BundleEntries(s *entity.Sale) []string {
	present := s.Documents.Present()
	names := make([]string, 0, len(present))
	for _, p := range present {
		names = append(names, EntryName(s.FolioSIAC, p.Slot, p.Attachment))
	}
	return names
}

// Bundle empaqueta los adjuntos de la venta en un ZIP en memoria.
// Sin adjuntos devuelve domain.ErrNothingToExport. Si el contexto se cancela o el
// archivo no puede escribirse devuelve un error que envuelve domain.ErrArchiveFailed
// y ningún byte parcial.
func Bundle(ctx context.Context, s *entity.Sale) ([]byte, error) {
	present := s.Documents.Present()
	if len(present) == 0 {
		return nil, domain.ErrNothingToExport
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range present {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrArchiveFailed, err)
		}
		name := EntryName(s.FolioSIAC, p.Slot, p.Attachment)
		fw, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("%w: crear entrada %s: %v", domain.ErrArchiveFailed, name, err)
		}
		if _, err := fw.Write(p.Attachment.Data); err != nil {
			return nil, fmt.Errorf("%w: escribir %s: %v", domain.ErrArchiveFailed, name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: cerrar archivo: %v", domain.ErrArchiveFailed, err)
	}
	return buf.Bytes(), nil
}
