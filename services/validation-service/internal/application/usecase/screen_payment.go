package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bibbank/ibankit/pkg/iban"
	"github.com/bibbank/ibankit/pkg/iso20022"
	"github.com/bibbank/ibankit/services/validation-service/internal/application/dto"
	"github.com/bibbank/ibankit/services/validation-service/internal/domain/port"
)

// ScreenPaymentMessageUseCase checks every account and agent in an ISO 20022
// credit transfer.
type ScreenPaymentMessageUseCase struct {
	catalog  port.CountryCatalog
	recorder port.ValidationRecorder
	allowQR  bool
	logger   *slog.Logger
}

// NewScreenPaymentMessageUseCase creates a new ScreenPaymentMessageUseCase.
func NewScreenPaymentMessageUseCase(
	catalog port.CountryCatalog,
	recorder port.ValidationRecorder,
	allowQR bool,
	logger *slog.Logger,
) *ScreenPaymentMessageUseCase {
	return &ScreenPaymentMessageUseCase{
		catalog:  catalog,
		recorder: recorder,
		allowQR:  allowQR,
		logger:   logger,
	}
}

// Execute parses a pain.001 or pacs.008 document and validates the IBAN and
// BIC of each party. Documents that cannot be read fail with
// ErrInvalidDocument.
func (uc *ScreenPaymentMessageUseCase) Execute(ctx context.Context, req dto.ScreenPaymentRequest) (dto.ScreenPaymentResponse, error) {
	parties, err := iso20022.Parse([]byte(req.Document))
	if err != nil {
		return dto.ScreenPaymentResponse{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	opt := qrOption(uc.allowQR, req.AllowQRIBAN)
	resp := dto.ScreenPaymentResponse{
		MessageType:      string(parties.Type),
		MessageID:        parties.MessageID,
		TransactionCount: parties.TransactionCount,
		Accounts:         make([]dto.ScreenedAccount, 0, len(parties.Accounts)),
		Agents:           make([]dto.ScreenedAgent, 0, len(parties.Agents)),
		Clean:            true,
	}

	for _, acct := range parties.Accounts {
		screened := dto.ScreenedAccount{
			Locator: acct.Locator,
			Role:    string(acct.Role),
			Other:   acct.Other,
			Reasons: []dto.ReasonDTO{},
		}
		if acct.IBAN != "" {
			value := iban.ElectronicFormat(acct.IBAN)
			result := uc.catalog.Validate(value, opt)
			reasons, names := ibanReasons(result.Reasons)
			screened.IBAN = value
			screened.Checked = true
			screened.Valid = result.Valid
			screened.Reasons = reasons
			resp.Clean = resp.Clean && result.Valid
			uc.recorder.RecordValidation(ctx, port.OpScreenPayment, countryLabel(uc.catalog, value), result.Valid, names)
		}
		resp.Accounts = append(resp.Accounts, screened)
	}

	for _, agent := range parties.Agents {
		value := iban.ElectronicFormat(agent.BIC)
		result := uc.catalog.ValidateBIC(value)
		reasons, names := bicReasons(result.Reasons)
		resp.Agents = append(resp.Agents, dto.ScreenedAgent{
			Locator: agent.Locator,
			Role:    string(agent.Role),
			BIC:     value,
			Valid:   result.Valid,
			Reasons: reasons,
		})
		resp.Clean = resp.Clean && result.Valid

		country := unknownCountry
		if result.Valid {
			country = value[4:6]
		}
		uc.recorder.RecordValidation(ctx, port.OpScreenPayment, country, result.Valid, names)
	}

	uc.logger.Info("screened payment message",
		"message_type", resp.MessageType,
		"message_id", resp.MessageID,
		"accounts", len(resp.Accounts),
		"agents", len(resp.Agents),
		"clean", resp.Clean,
	)

	return resp, nil
}
