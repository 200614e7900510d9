package common

import (
	"errors"
	"fmt"
	"ged-apae-console/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_ChangePassword(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := Validate(model.ChangePasswordRequest{SenhaAtual: "old", NovaSenha: "123456", ConfirmaNovaSenha: "123456"})
		assert.NoError(t, err)
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		err := Validate(model.ChangePasswordRequest{SenhaAtual: "old", NovaSenha: "123456", ConfirmaNovaSenha: "654321"})
		assert.Error(t, err)
		assert.Equal(t, []string{"As novas senhas não coincidem!"}, ValidationMessages(err))
	})

	t.Run("too short", func(t *testing.T) {
		err := Validate(model.ChangePasswordRequest{SenhaAtual: "old", NovaSenha: "123", ConfirmaNovaSenha: "123"})
		assert.Equal(t, []string{"NovaSenha deve ter pelo menos 6 caracteres."}, ValidationMessages(err))
	})
}

func TestValidationMessages(t *testing.T) {
	assert.Nil(t, ValidationMessages(nil))
	assert.Equal(t, []string{"boom"}, ValidationMessages(errors.New("boom")))

	err := Validate(model.LoginRequest{Email: "not-an-email"})
	assert.ElementsMatch(t, []string{
		"Email deve ser um email válido.",
		"Password é obrigatório.",
	}, ValidationMessages(err))
}

func TestIsValidationError(t *testing.T) {
	err := Validate(model.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.True(t, IsValidationError(err))
	assert.True(t, IsValidationError(fmt.Errorf("%w: arquivo vazio", ErrValidation)))
	assert.False(t, IsValidationError(errors.New("backend down")))
	assert.False(t, IsValidationError(nil))
}
