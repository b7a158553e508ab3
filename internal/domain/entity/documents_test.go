package entity_test

import (
	"testing"

	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func att(name string) *entity.Attachment {
	return &entity.Attachment{FileName: name, ContentType: "image/png", Data: []byte("x")}
}

func TestNewIdentityDocuments_CURPDescartaSegundoArchivo(t *testing.T) {
	docs := entity.SaleDocuments{Identity: entity.NewIdentityDocuments(entity.IdCURP, att("curp.pdf"), att("extra.png"))}

	assert.Equal(t, entity.IdCURP, docs.Identity.IdType())
	assert.Equal(t, "curp.pdf", docs.IDFile1().Name())
	assert.Nil(t, docs.IDFile2())
	require.Len(t, docs.Present(), 1)
	assert.Equal(t, entity.SlotCURP, docs.Present()[0].Slot)
}

func TestNewPortabilityAnnexes_SoloParaPortabilidad(t *testing.T) {
	assert.Nil(t, entity.NewPortabilityAnnexes(entity.CustomerNewLine, att("a.pdf"), att("b.pdf")))
	assert.Nil(t, entity.NewPortabilityAnnexes(entity.CustomerPortability, nil, nil))

	p := entity.NewPortabilityAnnexes(entity.CustomerPortability, att("a.pdf"), nil)
	require.NotNil(t, p)
	assert.Equal(t, "a.pdf", p.Annex1.Name())
}

func TestSaleDocuments_PresentOrdenFijo(t *testing.T) {
	docs := entity.SaleDocuments{
		FolioCapture:   att("folio.png"),
		Identity:       entity.NewIdentityDocuments(entity.IdINE, att("f.jpg"), att("r.jpg")),
		ProofOfAddress: nil,
		Portability:    entity.NewPortabilityAnnexes(entity.CustomerPortability, nil, att("p2.pdf")),
	}

	var slots []entity.DocumentSlot
	for _, s := range docs.Present() {
		slots = append(slots, s.Slot)
	}
	assert.Equal(t, []entity.DocumentSlot{
		entity.SlotFolioSIAC, entity.SlotINEFront, entity.SlotINEBack, entity.SlotPortability2,
	}, slots)
	assert.Equal(t, "r.jpg", docs.Get(entity.SlotINEBack).Name())
	assert.Nil(t, docs.Get(entity.SlotCURP))
}

func TestAttachment_Ext(t *testing.T) {
	assert.Equal(t, "pdf", att("comprobante.pdf").Ext())
	assert.Equal(t, "JPG", att("foto.JPG").Ext())
	assert.Equal(t, "", att("sin_extension").Ext())
	var nilAtt *entity.Attachment
	assert.Equal(t, "", nilAtt.Ext())
	assert.Equal(t, 0, nilAtt.Size())
}
