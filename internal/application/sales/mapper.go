package sales

import (
	"github.com/jhoicas/siac-ventas-api/internal/application/dto"
	"github.com/jhoicas/siac-ventas-api/internal/domain/catalog"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
)

// ToSaleResponse convierte la venta a DTO incluyendo la clase de estilo del estado.
func ToSaleResponse(s *entity.Sale, c *catalog.Catalog) dto.SaleResponse {
	present := s.Documents.Present()
	docs := make([]dto.DocumentResponse, 0, len(present))
	for _, p := range present {
		docs = append(docs, dto.DocumentResponse{
			Slot:        string(p.Slot),
			FileName:    p.Attachment.FileName,
			ContentType: p.Attachment.ContentType,
			Size:        p.Attachment.Size(),
		})
	}
	return dto.SaleResponse{
		ID:              s.ID,
		FullName:        s.FullName,
		PhoneNumber:     s.PhoneNumber,
		CaptureDate:     s.CaptureDay(),
		FolioSIAC:       s.FolioSIAC,
		ServiceType:     string(s.ServiceType),
		PackageType:     string(s.PackageType),
		SelectedPackage: s.SelectedPackage,
		CustomerType:    string(s.CustomerType),
		IdType:          string(s.IdType),
		Status:          string(s.Status),
		StatusStyle:     c.StatusStyle(s.Status),
		CreatedBy:       s.CreatedBy,
		CreatedAt:       s.CreatedAt,
		Documents:       docs,
	}
}

// ToSaleListResponse listado en el mismo orden recibido.
func ToSaleListResponse(list []*entity.Sale, c *catalog.Catalog) dto.SaleListResponse {
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleResponse(s, c))
	}
	return dto.SaleListResponse{Sales: out, Total: len(out)}
}
