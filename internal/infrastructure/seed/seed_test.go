package seed_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jhoicas/siac-ventas-api/internal/infrastructure/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func latin1(t *testing.T, s string) []byte {
	t.Helper()
	out, err := charmap.ISO8859_1.NewEncoder().String(s)
	require.NoError(t, err)
	return []byte(out)
}

func TestParseLegacyCSV_DecodificaLatin1(t *testing.T) {
	raw := latin1(t, "usuario;contraseña;nombre;rol;fecha_nacimiento;supervisor\n"+
		"20000001;clave1;Sofía Núñez;Supervisor;1985-02-01;\n"+
		"\n"+
		"20000002;clave2;Íñigo Peña;Persona en Capacitación;;20000001\n")

	users, err := seed.ParseLegacyCSV(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Sofía Núñez", users[0].FullName)
	assert.Equal(t, "Supervisor", users[0].Role)
	assert.Equal(t, "Persona en Capacitación", users[1].Role)
	assert.Equal(t, "20000001", users[1].Supervisor)
	assert.Equal(t, "", users[1].DateOfBirth)
}

func TestParseLegacyCSV_ColumnasFaltantes(t *testing.T) {
	raw := latin1(t, "encabezado\n20000001;clave;Nombre\n")
	_, err := seed.ParseLegacyCSV(bytes.NewReader(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "línea 2")
}

func TestEncodeDecode_YAML(t *testing.T) {
	in := &seed.File{Users: []seed.User{
		{Username: "20000001", Password: "x", FullName: "Sofía", Role: "Supervisor"},
		{Username: "20000002", Password: "y", FullName: "Iñigo", Role: "Asesor", Supervisor: "20000001"},
	}}
	var buf bytes.Buffer
	require.NoError(t, seed.Encode(&buf, in))
	assert.Contains(t, buf.String(), "supervisor: \"20000001\"")

	out, err := seed.Decode(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecode_Vacio(t *testing.T) {
	out, err := seed.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, out.Users)
}

func TestLoad_SinRuta(t *testing.T) {
	out, err := seed.Load("")
	require.NoError(t, err)
	assert.Empty(t, out.Users)
}
