package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tmuriuki/cashlink/internal/commission"
	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/models"
)

// Direct transfer parameters.
const (
	// TransferFee is the flat fee debited from the sender on top of the
	// transferred amount.
	TransferFee       = 0.50
	MinTransferAmount = 1.00
)

// IdentityReader resolves users and verifies PINs.
type IdentityReader interface {
	FindUserByPhone(ctx context.Context, phone string) (*models.UserDB, error)
	ValidatePin(ctx context.Context, userID uuid.UUID, pin string) error
}

// TransferRecordWriter persists direct wallet movement records.
type TransferRecordWriter interface {
	Save(ctx context.Context, rec *models.TransferRecordDB) error
}

// TransferRecordReader reads direct wallet movement records.
type TransferRecordReader interface {
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransferRecordDB, error)
}

// TransferService performs direct wallet-to-wallet movement for the USSD
// channel: single-step sends and airtime purchases, unlike the two-phase
// agent-mediated cash flows.
type TransferService struct {
	identity    IdentityReader
	wallets     WalletReader
	walletWrite WalletWriter
	records     TransferRecordWriter
	history     TransferRecordReader
	runner      TxRunner
	notifier    Notifier
}

// NewTransferService creates a new TransferService.
func NewTransferService(
	identity IdentityReader,
	wallets WalletReader,
	walletWrite WalletWriter,
	records TransferRecordWriter,
	history TransferRecordReader,
	runner TxRunner,
	notifier Notifier,
) *TransferService {
	return &TransferService{
		identity:    identity,
		wallets:     wallets,
		walletWrite: walletWrite,
		records:     records,
		history:     history,
		runner:      runner,
		notifier:    notifier,
	}
}

// Send moves amount from the sender's wallet to the recipient's, debiting
// the sender amount plus the flat fee. Both legs and the records are
// applied in one atomic store transaction.
func (s *TransferService) Send(ctx context.Context, senderPhone, recipientPhone string, amount float64, pin string) (*models.TransferReceipt, error) {
	if senderPhone == "" || recipientPhone == "" || pin == "" {
		return nil, ErrMissingField
	}
	if amount < MinTransferAmount {
		return nil, ErrInvalidAmount
	}

	sender, err := s.identity.FindUserByPhone(ctx, senderPhone)
	if err != nil {
		return nil, err
	}
	recipient, err := s.identity.FindUserByPhone(ctx, recipientPhone)
	if err != nil {
		return nil, err
	}

	if err := s.identity.ValidatePin(ctx, sender.UserID, pin); err != nil {
		return nil, err
	}

	senderWallet, err := s.wallets.GetPrimaryByUserID(ctx, sender.UserID)
	if err != nil {
		logger.Log.Errorw("failed to read sender wallet", "user_id", sender.UserID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if senderWallet == nil {
		return nil, ErrWalletNotFound
	}
	recipientWallet, err := s.wallets.GetPrimaryByUserID(ctx, recipient.UserID)
	if err != nil {
		logger.Log.Errorw("failed to read recipient wallet", "user_id", recipient.UserID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if recipientWallet == nil {
		return nil, ErrWalletNotFound
	}

	total := commission.Round2(amount + TransferFee)
	reference := uuid.NewString()

	err = s.runner.Do(ctx, func(ctx context.Context) error {
		if err := s.walletWrite.Debit(ctx, sender.UserID, total); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientBalance
			}
			return err
		}
		if err := s.walletWrite.Credit(ctx, recipient.UserID, amount); err != nil {
			return err
		}

		out := &models.TransferRecordDB{
			RecordID:          uuid.New(),
			Reference:         reference,
			WalletID:          senderWallet.WalletID,
			UserID:            sender.UserID,
			CounterpartyPhone: recipient.Phone,
			Type:              models.TransferTypeOut,
			Amount:            amount,
			Fee:               TransferFee,
		}
		if err := s.records.Save(ctx, out); err != nil {
			return err
		}
		in := &models.TransferRecordDB{
			RecordID:          uuid.New(),
			Reference:         reference,
			WalletID:          recipientWallet.WalletID,
			UserID:            recipient.UserID,
			CounterpartyPhone: sender.Phone,
			Type:              models.TransferTypeIn,
			Amount:            amount,
		}
		return s.records.Save(ctx, in)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.LogEvent(ctx, sender.UserID.String(), "transfer_sent", reference)

	return &models.TransferReceipt{
		Reference:      reference,
		RecipientPhone: recipient.Phone,
		Amount:         amount,
		Fee:            TransferFee,
		NewBalance:     commission.Round2(senderWallet.Balance - total),
	}, nil
}

// BuyAirtime debits the user's wallet for an airtime purchase. No fee.
func (s *TransferService) BuyAirtime(ctx context.Context, phone string, amount float64, pin string) (*models.TransferRecordDB, error) {
	if phone == "" || pin == "" {
		return nil, ErrMissingField
	}
	if amount < MinTransferAmount {
		return nil, ErrInvalidAmount
	}

	user, err := s.identity.FindUserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if err := s.identity.ValidatePin(ctx, user.UserID, pin); err != nil {
		return nil, err
	}

	wallet, err := s.wallets.GetPrimaryByUserID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to read wallet", "user_id", user.UserID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	rec := &models.TransferRecordDB{
		RecordID:          uuid.New(),
		Reference:         uuid.NewString(),
		WalletID:          wallet.WalletID,
		UserID:            user.UserID,
		CounterpartyPhone: user.Phone,
		Type:              models.TransferTypeAirtime,
		Amount:            amount,
	}

	err = s.runner.Do(ctx, func(ctx context.Context) error {
		if err := s.walletWrite.Debit(ctx, user.UserID, amount); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientBalance
			}
			return err
		}
		return s.records.Save(ctx, rec)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.LogEvent(ctx, user.UserID.String(), "airtime_purchased", rec.Reference)
	return rec, nil
}

// History returns the user's most recent direct wallet movements.
func (s *TransferService) History(ctx context.Context, phone string, limit int) ([]models.TransferRecordDB, error) {
	user, err := s.identity.FindUserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	recs, err := s.history.ListRecentByUser(ctx, user.UserID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list transfer history", "user_id", user.UserID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return recs, nil
}

// Balance returns the user's primary wallet balance.
func (s *TransferService) Balance(ctx context.Context, phone string) (*models.WalletDB, error) {
	user, err := s.identity.FindUserByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	wallet, err := s.wallets.GetPrimaryByUserID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to read wallet", "user_id", user.UserID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

// VerifyPin verifies a PIN for the user registered under the given phone.
func (s *TransferService) VerifyPin(ctx context.Context, phone, pin string) error {
	user, err := s.identity.FindUserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	return s.identity.ValidatePin(ctx, user.UserID, pin)
}
