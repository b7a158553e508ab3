package export

import (
	"strings"
	"time"

	"github.com/jhoicas/siac-ventas-api/internal/domain"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
)

// bom marca de orden de bytes UTF-8 para que las hojas de cálculo detecten la codificación.
const bom = "\uFEFF"

// CSVContentType tipo MIME de los reportes.
const CSVContentType = "text/csv;charset=utf-8;"

var salesHeader = []string{
	"ID", "Nombre Completo", "Teléfono", "Fecha de Captura", "Folio SIAC",
	"Tipo de Servicio", "Tipo de Paquete", "Paquete Seleccionado", "Tipo de Cliente",
	"Tipo de Identificación", "Estado", "Registrado Por",
	"Archivo Folio SIAC", "Archivo ID 1", "Archivo ID 2",
	"Archivo Comprobante Domicilio", "Archivo Portabilidad 1", "Archivo Portabilidad 2",
}

var usersHeader = []string{"ID", "Usuario", "Nombre Completo", "Rol", "Fecha de Nacimiento", "Supervisor"}

// SalesCSV reporte de ventas en el orden recibido. Cada valor va entre comillas dobles
// con las comillas internas duplicadas; el encabezado no lleva comillas y las filas se
// separan con \n.
// Sin ventas devuelve domain.ErrNothingToExport.
func SalesCSV(sales []*entity.Sale) ([]byte, error) {
	if len(sales) == 0 {
		return nil, domain.ErrNothingToExport
	}
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		d := s.Documents
		rows = append(rows, []string{
			s.ID,
			s.FullName,
			s.PhoneNumber,
			s.CaptureDay(),
			s.FolioSIAC,
			string(s.ServiceType),
			string(s.PackageType),
			s.SelectedPackage,
			string(s.CustomerType),
			string(s.IdType),
			string(s.Status),
			s.CreatedBy,
			d.FolioCapture.Name(),
			d.IDFile1().Name(),
			d.IDFile2().Name(),
			d.ProofOfAddress.Name(),
			d.PortabilityFile1().Name(),
			d.PortabilityFile2().Name(),
		})
	}
	return encode(salesHeader, rows), nil
}

// UsersCSV reporte de usuarios. supervisorName resuelve el nombre del supervisor por ID.
func UsersCSV(users []*entity.User, supervisorName func(id string) string) ([]byte, error) {
	if len(users) == 0 {
		return nil, domain.ErrNothingToExport
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		birth := ""
		if u.DateOfBirth != nil {
			birth = u.DateOfBirth.Format(entity.DateLayout)
		}
		sup := ""
		if u.HasSupervisor() && supervisorName != nil {
			sup = supervisorName(u.SupervisorID)
		}
		rows = append(rows, []string{u.ID, u.Username, u.FullName, string(u.Role), birth, sup})
	}
	return encode(usersHeader, rows), nil
}

// SalesFileName reporte_ventas_YYYY-MM-DD.csv
func SalesFileName(now time.Time) string {
	return "reporte_ventas_" + now.Format(entity.DateLayout) + ".csv"
}

// UsersFileName reporte_usuarios_YYYY-MM-DD.csv
func UsersFileName(now time.Time) string {
	return "reporte_usuarios_" + now.Format(entity.DateLayout) + ".csv"
}

// encode el encabezado va sin comillas; los valores, siempre entre comillas.
func encode(header []string, rows [][]string) []byte {
	var b strings.Builder
	b.WriteString(bom)
	b.WriteString(strings.Join(header, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		for j, v := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(v, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return []byte(b.String())
}
