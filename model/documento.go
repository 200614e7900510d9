package model

// Ref is the id/name pair the backend embeds for related records.
type Ref struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Documento is an uploaded document attached to a student.
type Documento struct {
	ID            int64  `json:"id"`
	Titulo        string `json:"titulo"`
	DataUpload    string `json:"dataUpload"`
	DataDocumento string `json:"dataDocumento,omitempty"`
	Aluno         *Ref   `json:"aluno,omitempty"`
	TipoDocumento *Ref   `json:"tipoDocumento,omitempty"`
	TipoConteudo  string `json:"tipoConteudo,omitempty"`
	Documento     string `json:"documento,omitempty"`
}

// DocumentoUpload describes a file sent to the documents endpoints.
type DocumentoUpload struct {
	Titulo          string `validate:"required"`
	TipoDocumentoID int64  `validate:"required,gt=0"`
	DataDocumento   string `validate:"omitempty,datetime=2006-01-02"`
	FileName        string `validate:"required"`
	Content         []byte `validate:"required"`
}

// DocumentoUpdate changes the type of a document and optionally replaces its file.
type DocumentoUpdate struct {
	TipoDocumentoID int64 `validate:"required,gt=0"`
	FileName        string
	Content         []byte `validate:"required_with=FileName"`
}
