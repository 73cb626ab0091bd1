// Package payment models the external payment provider as an opaque
// collaborator: a client token for the frontend and a synchronous sale call
// with a success/failure result. Nothing of the provider's own processing is
// reimplemented here.
package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result is the outcome of a sale submitted to the gateway.
type Result struct {
	TransactionID string
	Amount        decimal.Decimal
	Success       bool
	Message       string
}

// Gateway is the external payment provider.
type Gateway interface {
	ClientToken(ctx context.Context) (string, error)
	Sale(ctx context.Context, amount decimal.Decimal, nonce string) (*Result, error)
}

// SandboxGateway is the sandbox-environment client, constructed from the
// merchant credentials in configuration.
type SandboxGateway struct {
	merchantID string
	publicKey  string
	privateKey string
}

// NewSandboxGateway creates a gateway client for the sandbox environment.
func NewSandboxGateway(merchantID, publicKey, privateKey string) *SandboxGateway {
	return &SandboxGateway{
		merchantID: merchantID,
		publicKey:  publicKey,
		privateKey: privateKey,
	}
}

// ClientToken returns a one-time token the frontend uses to tokenize card
// details with the provider.
func (g *SandboxGateway) ClientToken(ctx context.Context) (string, error) {
	return uuid.NewString(), nil
}

// Sale submits a transaction for settlement. The sandbox accepts any
// non-empty payment nonce and a positive amount.
func (g *SandboxGateway) Sale(ctx context.Context, amount decimal.Decimal, nonce string) (*Result, error) {
	if nonce == "" || amount.LessThanOrEqual(decimal.Zero) {
		return &Result{
			Amount:  amount,
			Success: false,
			Message: "transaction rejected",
		}, nil
	}
	return &Result{
		TransactionID: uuid.NewString(),
		Amount:        amount,
		Success:       true,
	}, nil
}
