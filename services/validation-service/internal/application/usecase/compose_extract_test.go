package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/ibankit/services/validation-service/internal/application/dto"
	"github.com/bibbank/ibankit/services/validation-service/internal/application/usecase"
	"github.com/bibbank/ibankit/services/validation-service/internal/domain/port"
	"github.com/bibbank/ibankit/services/validation-service/internal/domain/valueobject"
)

func TestComposeIBANUseCase_Execute(t *testing.T) {
	t.Run("composes a valid IBAN", func(t *testing.T) {
		recorder := &mockRecorder{}
		uc := usecase.NewComposeIBANUseCase(testCatalog(), recorder, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ComposeIBANRequest{CountryCode: "nl", BBAN: "ABNA 0417 1643 00"})

		require.NoError(t, err)
		assert.True(t, resp.Composed)
		assert.True(t, resp.Valid)
		assert.Equal(t, "NL91ABNA0417164300", resp.IBAN)
		assert.Equal(t, "NL91 ABNA 0417 1643 00", resp.Friendly)
		assert.Equal(t, port.OpComposeIBAN, recorder.last().Operation)
	})

	t.Run("composition skips the national checksum", func(t *testing.T) {
		uc := usecase.NewComposeIBANUseCase(testCatalog(), &mockRecorder{}, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ComposeIBANRequest{CountryCode: "NO", BBAN: "12043175441"})

		require.NoError(t, err)
		assert.True(t, resp.Composed)
		assert.False(t, resp.Valid)
	})

	t.Run("wrong length is not composed", func(t *testing.T) {
		recorder := &mockRecorder{}
		uc := usecase.NewComposeIBANUseCase(testCatalog(), recorder, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ComposeIBANRequest{CountryCode: "NL", BBAN: "ABNA041716430"})

		require.NoError(t, err)
		assert.False(t, resp.Composed)
		assert.Empty(t, resp.IBAN)
		assert.False(t, recorder.last().Valid)
	})

	t.Run("rejects malformed country", func(t *testing.T) {
		uc := usecase.NewComposeIBANUseCase(testCatalog(), &mockRecorder{}, testLogger())

		_, err := uc.Execute(context.Background(), dto.ComposeIBANRequest{BBAN: "ABNA0417164300"})

		require.ErrorIs(t, err, valueobject.ErrInvalidCountryCode)
	})
}

func TestExtractIBANUseCase_Execute(t *testing.T) {
	t.Run("extracts French fields", func(t *testing.T) {
		uc := usecase.NewExtractIBANUseCase(testCatalog(), &mockRecorder{}, true, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ExtractIBANRequest{IBAN: "FR33 3000 2005 5000 0015 7841 Z25"})

		require.NoError(t, err)
		assert.True(t, resp.Valid)
		require.NotNil(t, resp.BankIdentifier)
		require.NotNil(t, resp.BranchIdentifier)
		require.NotNil(t, resp.AccountNumber)
		assert.Equal(t, "FR", *resp.CountryCode)
		assert.Equal(t, "30002005500000157841Z25", *resp.BBAN)
		assert.Equal(t, "30002", *resp.BankIdentifier)
		assert.Equal(t, "00550", *resp.BranchIdentifier)
		assert.Equal(t, "0000157841Z", *resp.AccountNumber)
	})

	t.Run("absent branch is nil", func(t *testing.T) {
		uc := usecase.NewExtractIBANUseCase(testCatalog(), &mockRecorder{}, true, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ExtractIBANRequest{IBAN: "NL91ABNA0417164300"})

		require.NoError(t, err)
		assert.True(t, resp.Valid)
		assert.Nil(t, resp.BranchIdentifier)
	})

	t.Run("invalid IBAN has no fields", func(t *testing.T) {
		recorder := &mockRecorder{}
		uc := usecase.NewExtractIBANUseCase(testCatalog(), recorder, true, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ExtractIBANRequest{IBAN: "DE89370400440532013001"})

		require.NoError(t, err)
		assert.False(t, resp.Valid)
		assert.Nil(t, resp.BBAN)
		assert.Nil(t, resp.BankIdentifier)
		assert.False(t, recorder.last().Valid)
	})

	t.Run("QR-IBAN refused when disallowed", func(t *testing.T) {
		uc := usecase.NewExtractIBANUseCase(testCatalog(), &mockRecorder{}, true, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ExtractIBANRequest{IBAN: "CH4431999123000889012", AllowQRIBAN: boolPtr(false)})

		require.NoError(t, err)
		assert.False(t, resp.Valid)
	})
}
