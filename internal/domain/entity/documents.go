package entity

// DocumentSlot posición de un adjunto dentro de la venta. Se usa en rutas de descarga
// y para nombrar las entradas del paquete ZIP.
type DocumentSlot string

const (
	SlotFolioSIAC      DocumentSlot = "folio_siac"
	SlotINEFront       DocumentSlot = "ine_frente"
	SlotINEBack        DocumentSlot = "ine_reverso"
	SlotCURP           DocumentSlot = "curp"
	SlotProofOfAddress DocumentSlot = "comprobante_domicilio"
	SlotPortability1   DocumentSlot = "portabilidad_1"
	SlotPortability2   DocumentSlot = "portabilidad_2"
)

// IdentityDocuments identificación del cliente. Solo existen las variantes
// INEDocuments y CURPDocuments; la variante siempre corresponde al IdType de la venta.
type IdentityDocuments interface {
	IdType() IdType
	slots() []SlottedAttachment
}

// INEDocuments frente y reverso de la credencial INE.
type INEDocuments struct {
	Front *Attachment
	Back  *Attachment
}

func (INEDocuments) IdType() IdType { return IdINE }

func (d INEDocuments) slots() []SlottedAttachment {
	return []SlottedAttachment{{SlotINEFront, d.Front}, {SlotINEBack, d.Back}}
}

// CURPDocuments un solo documento CURP.
type CURPDocuments struct {
	CURP *Attachment
}

func (CURPDocuments) IdType() IdType { return IdCURP }

func (d CURPDocuments) slots() []SlottedAttachment {
	return []SlottedAttachment{{SlotCURP, d.CURP}}
}

// NewIdentityDocuments construye la variante según el tipo de identificación.
// Para CURP el segundo archivo se descarta.
func NewIdentityDocuments(idType IdType, first, second *Attachment) IdentityDocuments {
	if idType == IdCURP {
		return CURPDocuments{CURP: first}
	}
	return INEDocuments{Front: first, Back: second}
}

// PortabilityAnnexes anexos exigidos solo para clientes de Portabilidad.
type PortabilityAnnexes struct {
	Annex1 *Attachment
	Annex2 *Attachment
}

// NewPortabilityAnnexes devuelve nil salvo para Portabilidad.
func NewPortabilityAnnexes(ct CustomerType, a1, a2 *Attachment) *PortabilityAnnexes {
	if ct != CustomerPortability || (a1 == nil && a2 == nil) {
		return nil
	}
	return &PortabilityAnnexes{Annex1: a1, Annex2: a2}
}

// SaleDocuments adjuntos de una venta.
type SaleDocuments struct {
	FolioCapture   *Attachment
	Identity       IdentityDocuments
	ProofOfAddress *Attachment
	Portability    *PortabilityAnnexes
}

// SlottedAttachment adjunto con su posición.
type SlottedAttachment struct {
	Slot       DocumentSlot
	Attachment *Attachment
}

// Present adjuntos existentes en orden fijo: folio, identificación,
// comprobante de domicilio, anexos de portabilidad.
func (d SaleDocuments) Present() []SlottedAttachment {
	all := []SlottedAttachment{{SlotFolioSIAC, d.FolioCapture}}
	if d.Identity != nil {
		all = append(all, d.Identity.slots()...)
	}
	all = append(all, SlottedAttachment{SlotProofOfAddress, d.ProofOfAddress})
	if d.Portability != nil {
		all = append(all,
			SlottedAttachment{SlotPortability1, d.Portability.Annex1},
			SlottedAttachment{SlotPortability2, d.Portability.Annex2})
	}
	out := all[:0]
	for _, s := range all {
		if s.Attachment != nil {
			out = append(out, s)
		}
	}
	return out
}

// Get adjunto en la posición indicada, nil si no existe.
func (d SaleDocuments) Get(slot DocumentSlot) *Attachment {
	for _, s := range d.Present() {
		if s.Slot == slot {
			return s.Attachment
		}
	}
	return nil
}

// IDFile1 primer archivo de identificación (INE frente o CURP).
func (d SaleDocuments) IDFile1() *Attachment {
	switch id := d.Identity.(type) {
	case INEDocuments:
		return id.Front
	case CURPDocuments:
		return id.CURP
	}
	return nil
}

// IDFile2 reverso de la INE; nil para CURP.
func (d SaleDocuments) IDFile2() *Attachment {
	if id, ok := d.Identity.(INEDocuments); ok {
		return id.Back
	}
	return nil
}

// PortabilityFile1 primer anexo de portabilidad o nil.
func (d SaleDocuments) PortabilityFile1() *Attachment {
	if d.Portability == nil {
		return nil
	}
	return d.Portability.Annex1
}

// PortabilityFile2 segundo anexo de portabilidad o nil.
func (d SaleDocuments) PortabilityFile2() *Attachment {
	if d.Portability == nil {
		return nil
	}
	return d.Portability.Annex2
}
