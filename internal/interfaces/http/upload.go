package http

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
)

// formFile lee un archivo opcional del formulario multipart. Campo ausente → nil.
func formFile(form *multipart.Form, field string) (*entity.Attachment, error) {
	if form == nil {
		return nil, nil
	}
	files := form.File[field]
	if len(files) == 0 || files[0].Size == 0 {
		return nil, nil
	}
	fh := files[0]
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", field, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", field, err)
	}
	return &entity.Attachment{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// multipartForm devuelve el formulario o nil si la petición no es multipart.
func multipartForm(c *fiber.Ctx) *multipart.Form {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return form
}

// sendFile responde un archivo como descarga.
func sendFile(c *fiber.Ctx, fileName, contentType string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Status(fiber.StatusOK).Send(data)
}
