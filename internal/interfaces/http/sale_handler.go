package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/siac-ventas-api/internal/application/dto"
	"github.com/jhoicas/siac-ventas-api/internal/application/sales"
	"github.com/jhoicas/siac-ventas-api/internal/domain/catalog"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	domainsales "github.com/jhoicas/siac-ventas-api/internal/domain/sales"
)

const saleNotFound = "venta no encontrada"

// SaleHandler maneja captura, consulta y exportación de ventas (protegido).
type SaleHandler struct {
	capture *sales.CaptureUseCase
	query   *sales.QueryUseCase
	export  *sales.ExportUseCase
	catalog *catalog.Catalog
}

// NewSaleHandler construye el handler.
func NewSaleHandler(capture *sales.CaptureUseCase, query *sales.QueryUseCase, export *sales.ExportUseCase, c *catalog.Catalog) *SaleHandler {
	return &SaleHandler{capture: capture, query: query, export: export, catalog: c}
}

// Create godoc
// @Summary      Capturar venta
// @Description  Todos los adjuntos son opcionales; los que no aplican al tipo de identificación o de cliente se descartan.
// @Tags         sales
// @Accept       multipart/form-data
// @Produce      json
// @Param        full_name              formData  string  true   "nombre del cliente"
// @Param        phone_number           formData  string  true   "10 dígitos"
// @Param        capture_date           formData  string  false  "AAAA-MM-DD (vacío = hoy)"
// @Param        folio_siac             formData  string  true   "solo dígitos"
// @Param        service_type           formData  string  true   "Residencial | Negocio"
// @Param        package_type           formData  string  true   "Doble Play | Solo Internet"
// @Param        selected_package       formData  string  true   "paquete del catálogo"
// @Param        customer_type          formData  string  true   "Linea Nueva | Portabilidad | Winback | Linea Sola"
// @Param        id_type                formData  string  true   "INE | CURP"
// @Param        folio_siac_file        formData  file    false  "captura del folio"
// @Param        id_file_1              formData  file    false  "INE frente o CURP"
// @Param        id_file_2              formData  file    false  "INE reverso"
// @Param        proof_of_address_file  formData  file    false  "comprobante de domicilio"
// @Param        portability_file_1     formData  file    false  "anexo de portabilidad 1"
// @Param        portability_file_2     formData  file    false  "anexo de portabilidad 2"
// @Success      201  {object}  dto.CreateSaleResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	draft, err := draftFromForm(c)
	if err != nil {
		return badBody(c)
	}
	sale, err := h.capture.CreateSale(GetActor(c), draft)
	if err != nil {
		return writeError(c, err, saleNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateSaleResponse{
		Message: sales.SuccessMessage(sale),
		Sale:    sales.ToSaleResponse(sale, h.catalog),
	})
}

func draftFromForm(c *fiber.Ctx) (domainsales.Draft, error) {
	d := domainsales.Draft{
		FullName:        c.FormValue(domainsales.FieldFullName),
		PhoneNumber:     c.FormValue(domainsales.FieldPhoneNumber),
		CaptureDate:     c.FormValue(domainsales.FieldCaptureDate),
		FolioSIAC:       c.FormValue(domainsales.FieldFolioSIAC),
		ServiceType:     c.FormValue(domainsales.FieldServiceType),
		PackageType:     c.FormValue(domainsales.FieldPackageType),
		SelectedPackage: c.FormValue(domainsales.FieldSelectedPackage),
		CustomerType:    c.FormValue(domainsales.FieldCustomerType),
		IdType:          c.FormValue(domainsales.FieldIdType),
	}
	form := multipartForm(c)
	files := []struct {
		field string
		dst   **entity.Attachment
	}{
		{domainsales.FieldFolioFile, &d.FolioFile},
		{domainsales.FieldIDFile1, &d.IDFile1},
		{domainsales.FieldIDFile2, &d.IDFile2},
		{domainsales.FieldProofOfAddress, &d.ProofOfAddressFile},
		{domainsales.FieldPortability1, &d.PortabilityFile1},
		{domainsales.FieldPortability2, &d.PortabilityFile2},
	}
	for _, f := range files {
		a, err := formFile(form, f.field)
		if err != nil {
			return d, err
		}
		*f.dst = a
	}
	return d, nil
}

// List godoc
// @Summary      Listar ventas visibles
// @Description  Administrador ve todas; el resto solo las que registró. La más reciente primero.
// @Tags         sales
// @Produce      json
// @Param        q             query  string  false  "folio o nombre"
// @Param        capture_date  query  string  false  "AAAA-MM-DD"
// @Param        service_type  query  string  false  "tipo de servicio"
// @Param        package_type  query  string  false  "tipo de paquete"
// @Param        status        query  string  false  "estado"
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var f dto.SaleFilter
	if err := c.QueryParser(&f); err != nil {
		return badBody(c)
	}
	list, err := h.query.Search(GetActor(c), f)
	if err != nil {
		return writeError(c, err, saleNotFound)
	}
	return c.JSON(sales.ToSaleListResponse(list, h.catalog))
}

// GetByID detalle de una venta visible.
// GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	s, err := h.query.GetSale(GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err, saleNotFound)
	}
	return c.JSON(sales.ToSaleResponse(s, h.catalog))
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "venta"
// @Param        body  body  dto.UpdateStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.SaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/status [patch]
func (h *SaleHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	s, err := h.query.UpdateStatus(GetActor(c), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err, saleNotFound)
	}
	return c.JSON(sales.ToSaleResponse(s, h.catalog))
}

// Document descarga un adjunto de la venta.
// GET /api/sales/:id/documents/:slot
func (h *SaleHandler) Document(c *fiber.Ctx) error {
	a, _, err := h.query.Document(GetActor(c), c.Params("id"), entity.DocumentSlot(c.Params("slot")))
	if err != nil {
		return writeError(c, err, "documento no encontrado")
	}
	c.Set(fiber.HeaderContentType, a.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", a.FileName))
	return c.Send(a.Data)
}

// ExportCSV reporte CSV de las ventas visibles con los mismos filtros del listado.
// GET /api/sales/export.csv
func (h *SaleHandler) ExportCSV(c *fiber.Ctx) error {
	var f dto.SaleFilter
	if err := c.QueryParser(&f); err != nil {
		return badBody(c)
	}
	art, err := h.export.SalesCSV(GetActor(c), f)
	if err != nil {
		return writeError(c, err, saleNotFound)
	}
	return sendFile(c, art.FileName, art.ContentType, art.Data)
}

// Bundle ZIP con los documentos de la venta.
// GET /api/sales/:id/bundle.zip
func (h *SaleHandler) Bundle(c *fiber.Ctx) error {
	art, err := h.export.Bundle(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err, saleNotFound)
	}
	return sendFile(c, art.FileName, art.ContentType, art.Data)
}

// Receipt comprobante PDF de la venta.
// GET /api/sales/:id/receipt.pdf
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	art, err := h.export.Receipt(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err, saleNotFound)
	}
	return sendFile(c, art.FileName, art.ContentType, art.Data)
}
