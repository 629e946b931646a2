package utils

import (
	"testing"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bankDest = models.Destination{AccountHolder: "A Kumar", AccountNumber: "123456789012", IFSC: "HDFC0001234"}
	tronDest = models.Destination{Network: "TRC20", CryptoAddress: "TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE"}
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertField(t *testing.T, err error, wantField string) {
	t.Helper()
	if wantField == "" {
		assert.NoError(t, err)
		return
	}
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, wantField, ve.Field)
	assert.NotEmpty(t, ve.Reason)
}

func TestValidateStruct_Withdrawal(t *testing.T) {
	tests := []struct {
		name      string
		req       models.WithdrawalRequest
		wantField string
	}{
		{
			name: "valid bank",
			req:  models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawINR, PaymentMethod: models.PaymentBank, Destination: bankDest},
		},
		{
			name:      "bank without holder",
			req:       models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawINR, PaymentMethod: models.PaymentBank, Destination: models.Destination{AccountNumber: "123456789012", IFSC: "HDFC0001234"}},
			wantField: "destination.account_holder",
		},
		{
			name:      "bank bad ifsc",
			req:       models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawINR, PaymentMethod: models.PaymentBank, Destination: models.Destination{AccountHolder: "A", AccountNumber: "123456789012", IFSC: "HDFC1001234"}},
			wantField: "destination.ifsc",
		},
		{
			name:      "bank short account number",
			req:       models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawINR, PaymentMethod: models.PaymentBank, Destination: models.Destination{AccountHolder: "A", AccountNumber: "1234", IFSC: "HDFC0001234"}},
			wantField: "destination.account_number",
		},
		{
			name: "lowercase ifsc accepted",
			req:  models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawINR, PaymentMethod: models.PaymentBank, Destination: models.Destination{AccountHolder: "A", AccountNumber: "123456789", IFSC: "sbin0000001"}},
		},
		{
			name: "valid upi",
			req:  models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawINR, PaymentMethod: models.PaymentUPI, Destination: models.Destination{UPIID: "john.doe@okicici"}},
		},
		{
			name:      "upi missing handle",
			req:       models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawINR, PaymentMethod: models.PaymentUPI, Destination: models.Destination{UPIID: "johndoe"}},
			wantField: "destination.upi_id",
		},
		{
			name:      "upi missing id",
			req:       models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawINR, PaymentMethod: models.PaymentUPI},
			wantField: "destination.upi_id",
		},
		{
			name: "valid trc20",
			req:  models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawUSDT, PaymentMethod: models.PaymentCrypto, Destination: tronDest},
		},
		{
			name: "valid polygon",
			req: models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawUSDT, PaymentMethod: models.PaymentCrypto,
				Destination: models.Destination{Network: "POLYGON", CryptoAddress: "0x52908400098527886E0F7030069857D2E4169EE7"}},
		},
		{
			name: "evm address on tron network",
			req: models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawUSDT, PaymentMethod: models.PaymentCrypto,
				Destination: models.Destination{Network: "TRC20", CryptoAddress: "0x52908400098527886E0F7030069857D2E4169EE7"}},
			wantField: "destination.crypto_address",
		},
		{
			name: "unsupported network",
			req: models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawUSDT, PaymentMethod: models.PaymentCrypto,
				Destination: models.Destination{Network: "SOLANA", CryptoAddress: "TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE"}},
			wantField: "destination.network",
		},
		{
			name:      "crypto without network",
			req:       models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawUSDT, PaymentMethod: models.PaymentCrypto, Destination: models.Destination{CryptoAddress: "TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE"}},
			wantField: "destination.crypto_address",
		},
		{
			name:      "inr to crypto",
			req:       models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawINR, PaymentMethod: models.PaymentCrypto, Destination: tronDest},
			wantField: "payment_method",
		},
		{
			name:      "usdt to bank",
			req:       models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawUSDT, PaymentMethod: models.PaymentBank, Destination: bankDest},
			wantField: "payment_method",
		},
		{
			name:      "unknown method",
			req:       models.WithdrawalRequest{Amount: amount("500"), Method: "EUR", PaymentMethod: models.PaymentBank, Destination: bankDest},
			wantField: "method",
		},
		{
			name:      "unknown payment method",
			req:       models.WithdrawalRequest{Amount: amount("500"), Method: models.WithdrawINR, PaymentMethod: "cash", Destination: bankDest},
			wantField: "payment_method",
		},
		{
			name:      "zero amount",
			req:       models.WithdrawalRequest{Method: models.WithdrawINR, PaymentMethod: models.PaymentBank, Destination: bankDest},
			wantField: "amount",
		},
		{
			name:      "amount over the cap",
			req:       models.WithdrawalRequest{Amount: amount("1000000000000.01"), Method: models.WithdrawINR, PaymentMethod: models.PaymentBank, Destination: bankDest},
			wantField: "amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertField(t, ValidateStruct(tt.req), tt.wantField)
		})
	}
}

func TestValidateStruct_Deposit(t *testing.T) {
	tests := []struct {
		name      string
		req       models.DepositRequest
		wantField string
	}{
		{
			name: "upi",
			req:  models.DepositRequest{Amount: amount("500"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR123"}},
		},
		{
			name:      "upi without reference",
			req:       models.DepositRequest{Amount: amount("500"), Method: models.DepositUPI},
			wantField: "payload.transaction_ref",
		},
		{
			name:      "crypto without network",
			req:       models.DepositRequest{Amount: amount("500"), Method: models.DepositCrypto, Payload: models.DepositPayload{TransactionRef: "0xabc"}},
			wantField: "payload.network",
		},
		{
			name:      "crypto unknown network",
			req:       models.DepositRequest{Amount: amount("500"), Method: models.DepositCrypto, Payload: models.DepositPayload{TransactionRef: "0xabc", Network: "BTC"}},
			wantField: "payload.network",
		},
		{
			name: "buy stablecoin",
			req: models.DepositRequest{Amount: amount("500"), Method: models.DepositBuyStablecoin,
				Payload: models.DepositPayload{Network: "TRC20", WalletAddress: "TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE"}},
		},
		{
			name:      "buy stablecoin without wallet",
			req:       models.DepositRequest{Amount: amount("500"), Method: models.DepositBuyStablecoin, Payload: models.DepositPayload{Network: "TRC20"}},
			wantField: "payload.wallet_address",
		},
		{
			name: "buy stablecoin wallet on wrong network",
			req: models.DepositRequest{Amount: amount("500"), Method: models.DepositBuyStablecoin,
				Payload: models.DepositPayload{Network: "ERC20", WalletAddress: "TQn9Y2khEsLJW1ChVWFMSMeRDow5KcbLSE"}},
			wantField: "payload.wallet_address",
		},
		{
			name:      "unknown method",
			req:       models.DepositRequest{Amount: amount("500"), Method: "Cash"},
			wantField: "method",
		},
		{
			name:      "three decimals",
			req:       models.DepositRequest{Amount: amount("100.001"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR"}},
			wantField: "amount",
		},
		{
			name:      "negative",
			req:       models.DepositRequest{Amount: amount("-5"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR"}},
			wantField: "amount",
		},
		{
			name:      "overflows the ledger column",
			req:       models.DepositRequest{Amount: amount("1e25"), Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR"}},
			wantField: "amount",
		},
		{
			name: "exactly the cap",
			req:  models.DepositRequest{Amount: models.MaxAmount, Method: models.DepositUPI, Payload: models.DepositPayload{TransactionRef: "UTR"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertField(t, ValidateStruct(tt.req), tt.wantField)
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		value   decimal.Decimal
		tag     string
		wantErr bool
	}{
		{name: "two decimals", value: amount("12.34"), tag: "cents"},
		{name: "three decimals", value: amount("12.345"), tag: "cents", wantErr: true},
		{name: "zero is not negative", value: decimal.Zero, tag: "nonnegative"},
		{name: "negative", value: amount("-0.01"), tag: "nonnegative", wantErr: true},
		{name: "max balance", value: models.MaxBalance, tag: "balancecap"},
		{name: "past max balance", value: models.MaxBalance.Add(amount("0.01")), tag: "balancecap", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVar("value", tt.value, tt.tag)
			if tt.wantErr {
				assertField(t, err, "value")
				return
			}
			assert.NoError(t, err)
		})
	}
}
