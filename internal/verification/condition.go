package verification

import (
	"context"

	"github.com/gabapcia/escrowwatch/internal/pkg/validator"
)

// Kind identifies the external source a condition is verified against.
type Kind string

const (
	KindShipment Kind = "shipment"
	KindDocument Kind = "document"
	KindEmail    Kind = "email"
	KindOracle   Kind = "oracle"
)

// Kinds lists every supported condition kind.
var Kinds = []Kind{KindShipment, KindDocument, KindEmail, KindOracle}

// Parameter keys understood by the supported kinds.
const (
	ParamTrackingID    = "tracking_id"
	ParamProvider      = "provider"
	ParamDocumentHash  = "document_hash"
	ParamEmailID       = "email_id"
	ParamOracleID      = "oracle_id"
	ParamExpectedValue = "expected_value"
)

// VerifiableCondition is one externally checkable fact gating a release.
type VerifiableCondition struct {
	Kind       Kind              `json:"kind"`
	Parameters map[string]string `json:"parameters"`
}

// check is a parsed condition bound to the provider call that verifies it.
type check interface {
	configured(p Providers) bool
	run(ctx context.Context, p Providers) (bool, error)
}

type shipmentCheck struct {
	TrackingID string `validate:"required"`
	Provider   string `validate:"required"`
}

func (c shipmentCheck) configured(p Providers) bool { return p.Shipment != nil }

func (c shipmentCheck) run(ctx context.Context, p Providers) (bool, error) {
	res, err := p.Shipment.TrackShipment(ctx, c.Provider, c.TrackingID)
	if err != nil {
		return false, err
	}

	return res.Status == "delivered", nil
}

type documentCheck struct {
	DocumentHash string `validate:"required"`
}

func (c documentCheck) configured(p Providers) bool { return p.Document != nil }

func (c documentCheck) run(ctx context.Context, p Providers) (bool, error) {
	res, err := p.Document.VerifyDocument(ctx, c.DocumentHash)
	if err != nil {
		return false, err
	}

	return res.Verified, nil
}

type emailCheck struct {
	EmailID string `validate:"required"`
}

func (c emailCheck) configured(p Providers) bool { return p.Email != nil }

func (c emailCheck) run(ctx context.Context, p Providers) (bool, error) {
	res, err := p.Email.GetEmailConfirmation(ctx, c.EmailID)
	if err != nil {
		return false, err
	}

	return res.Status == "confirmed", nil
}

type oracleCheck struct {
	OracleID      string `validate:"required"`
	ExpectedValue string `validate:"required"`
}

func (c oracleCheck) configured(p Providers) bool { return p.Oracle != nil }

// run compares the oracle value with the expected one using exact string equality.
func (c oracleCheck) run(ctx context.Context, p Providers) (bool, error) {
	res, err := p.Oracle.ReadOracle(ctx, c.OracleID)
	if err != nil {
		return false, err
	}

	return res.Value == c.ExpectedValue, nil
}

// parse binds a condition to its kind-specific check. Unknown kinds and
// missing parameters are reported as *ConfigurationError.
func parse(cond VerifiableCondition) (check, error) {
	var c check
	switch cond.Kind {
	case KindShipment:
		c = shipmentCheck{
			TrackingID: cond.Parameters[ParamTrackingID],
			Provider:   cond.Parameters[ParamProvider],
		}
	case KindDocument:
		c = documentCheck{DocumentHash: cond.Parameters[ParamDocumentHash]}
	case KindEmail:
		c = emailCheck{EmailID: cond.Parameters[ParamEmailID]}
	case KindOracle:
		c = oracleCheck{
			OracleID:      cond.Parameters[ParamOracleID],
			ExpectedValue: cond.Parameters[ParamExpectedValue],
		}
	default:
		return nil, &ConfigurationError{Kind: cond.Kind, Cause: ErrUnknownKind}
	}

	if err := validator.Validate(c); err != nil {
		return nil, &ConfigurationError{Kind: cond.Kind, Cause: err}
	}

	return c, nil
}

// Validate reports whether the condition can be evaluated, without calling any provider.
func (cond VerifiableCondition) Validate() error {
	_, err := parse(cond)
	return err
}
