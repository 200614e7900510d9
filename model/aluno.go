package model

// Aluno is a student record.
type Aluno struct {
	ID             int64  `json:"id,omitempty"`
	Nome           string `json:"nome" validate:"required"`
	DataNascimento string `json:"dataNascimento" validate:"required,datetime=2006-01-02"`
	CPF            string `json:"cpf" validate:"required"`
	CPFResponsavel string `json:"cpfResponsavel"`
	IsAtivo        *bool  `json:"isAtivo,omitempty"`
	Telefone       string `json:"telefone"`
	Sexo           string `json:"sexo"`
	Deficiencia    string `json:"deficiencia"`
	DataEntrada    string `json:"dataEntrada,omitempty"`
	Observacoes    string `json:"observacoes"`
	Endereco       string `json:"endereco"`
	Estado         string `json:"estado"`
	Cidade         string `json:"cidade"`
	Bairro         string `json:"bairro"`
	Rua            string `json:"rua"`
	Numero         int    `json:"numero"`
	Complemento    string `json:"complemento"`
	CEP            string `json:"cep"`
}

// Ativo reports the active flag, treating a missing flag as active.
func (a Aluno) Ativo() bool {
	return a.IsAtivo == nil || *a.IsAtivo
}
