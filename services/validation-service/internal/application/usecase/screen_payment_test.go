package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/ibankit/pkg/iso20022"
	"github.com/bibbank/ibankit/services/validation-service/internal/application/dto"
	"github.com/bibbank/ibankit/services/validation-service/internal/application/usecase"
	"github.com/bibbank/ibankit/services/validation-service/internal/domain/port"
)

func pain001Document(t *testing.T, creditorAccount, creditorAgent string) string {
	t.Helper()
	msg := iso20022.CreditTransferInitiation{
		Header: iso20022.MessageHeader{MessageID: "MSG-42", CreationDate: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)},
		PaymentInfo: []iso20022.PaymentInstructionInfo{{
			PaymentInfoID: "PI-1",
			DebtorAccount: "DE89370400440532013000",
			DebtorAgent:   "COBADEFFXXX",
			Transactions: []iso20022.CreditTransferTransaction{{
				EndToEndID:      "E2E-1",
				Amount:          "12.50",
				Currency:        "EUR",
				CreditorAccount: creditorAccount,
				CreditorAgent:   creditorAgent,
			}},
		}},
	}
	data, err := msg.ToXML()
	require.NoError(t, err)
	return string(data)
}

func TestScreenPaymentMessageUseCase_Execute(t *testing.T) {
	t.Run("clean message", func(t *testing.T) {
		recorder := &mockRecorder{}
		uc := usecase.NewScreenPaymentMessageUseCase(testCatalog(), recorder, true, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ScreenPaymentRequest{
			Document: pain001Document(t, "GB29NWBK60161331926819", "NWBKGB2LXXX"),
		})

		require.NoError(t, err)
		assert.True(t, resp.Clean)
		assert.Equal(t, "pain.001.001.12", resp.MessageType)
		assert.Equal(t, "MSG-42", resp.MessageID)
		assert.Equal(t, 1, resp.TransactionCount)
		require.Len(t, resp.Accounts, 2)
		require.Len(t, resp.Agents, 2)
		assert.Equal(t, "PmtInf[0].DbtrAcct", resp.Accounts[0].Locator)
		assert.Equal(t, "debtor", resp.Accounts[0].Role)
		assert.True(t, resp.Accounts[1].Checked)
		assert.Len(t, recorder.outcomes, 4)
		assert.Equal(t, port.OpScreenPayment, recorder.last().Operation)
	})

	t.Run("flags bad creditor account and agent", func(t *testing.T) {
		uc := usecase.NewScreenPaymentMessageUseCase(testCatalog(), &mockRecorder{}, true, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ScreenPaymentRequest{
			Document: pain001Document(t, "GB28NWBK60161331926819", "NWBKQQ2LXXX"),
		})

		require.NoError(t, err)
		assert.False(t, resp.Clean)
		assert.True(t, resp.Accounts[0].Valid)
		assert.False(t, resp.Accounts[1].Valid)
		assert.Equal(t, []dto.ReasonDTO{{Code: 5, Name: "WrongIBANChecksum"}}, resp.Accounts[1].Reasons)
		assert.False(t, resp.Agents[1].Valid)
		assert.Equal(t, "PmtInf[0].CdtTrfTxInf[0].CdtrAgt", resp.Agents[1].Locator)
	})

	t.Run("QR-IBAN policy applies to screened accounts", func(t *testing.T) {
		uc := usecase.NewScreenPaymentMessageUseCase(testCatalog(), &mockRecorder{}, false, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ScreenPaymentRequest{
			Document: pain001Document(t, "CH4431999123000889012", ""),
		})

		require.NoError(t, err)
		assert.False(t, resp.Clean)
		assert.Len(t, resp.Agents, 1)
		assert.Equal(t, []dto.ReasonDTO{{Code: 7, Name: "QRIBANNotAllowed"}}, resp.Accounts[1].Reasons)
	})

	t.Run("proprietary accounts are listed unchecked", func(t *testing.T) {
		doc := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08"><FIToFICstmrCdtTrf>
<GrpHdr><MsgId>P8</MsgId><CreDtTm>2025-01-01T00:00:00Z</CreDtTm><NbOfTxs>1</NbOfTxs></GrpHdr>
<CdtTrfTxInf><PmtId><EndToEndId>E</EndToEndId></PmtId><IntrBkSttlmAmt Ccy="USD">1</IntrBkSttlmAmt>
<DbtrAcct><Id><Othr><Id>123456789</Id></Othr></Id></DbtrAcct>
<CdtrAcct><Id><IBAN>NL91ABNA0417164300</IBAN></Id></CdtrAcct></CdtTrfTxInf></FIToFICstmrCdtTrf></Document>`
		uc := usecase.NewScreenPaymentMessageUseCase(testCatalog(), &mockRecorder{}, true, testLogger())

		resp, err := uc.Execute(context.Background(), dto.ScreenPaymentRequest{Document: doc})

		require.NoError(t, err)
		assert.True(t, resp.Clean)
		assert.Equal(t, "pacs.008.001.08", resp.MessageType)
		require.Len(t, resp.Accounts, 2)
		assert.False(t, resp.Accounts[0].Checked)
		assert.Equal(t, "123456789", resp.Accounts[0].Other)
		assert.True(t, resp.Accounts[1].Valid)
	})

	t.Run("unreadable document", func(t *testing.T) {
		uc := usecase.NewScreenPaymentMessageUseCase(testCatalog(), &mockRecorder{}, true, testLogger())

		_, err := uc.Execute(context.Background(), dto.ScreenPaymentRequest{Document: "<Document><BkToCstmrStmt/></Document>"})
		require.ErrorIs(t, err, usecase.ErrInvalidDocument)
		assert.ErrorIs(t, err, iso20022.ErrUnsupportedMessage)

		_, err = uc.Execute(context.Background(), dto.ScreenPaymentRequest{})
		assert.ErrorIs(t, err, usecase.ErrInvalidDocument)
	})
}
