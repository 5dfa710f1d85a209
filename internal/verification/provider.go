package verification

import "context"

// ShipmentStatus is the answer of a shipment tracking provider.
type ShipmentStatus struct {
	Status string
}

// DocumentVerification is the answer of a document authenticity provider.
type DocumentVerification struct {
	Verified bool
}

// EmailConfirmation is the answer of an email confirmation provider.
type EmailConfirmation struct {
	Status    string
	Timestamp string
}

// OracleReading is the answer of a data oracle.
type OracleReading struct {
	Value     string
	Timestamp string
}

// ShipmentTracker looks up the current status of a shipment.
type ShipmentTracker interface {
	TrackShipment(ctx context.Context, provider, trackingID string) (ShipmentStatus, error)
}

// DocumentVerifier checks the authenticity of a document by its hash.
type DocumentVerifier interface {
	VerifyDocument(ctx context.Context, documentHash string) (DocumentVerification, error)
}

// EmailConfirmer looks up whether an email was confirmed by its recipient.
type EmailConfirmer interface {
	GetEmailConfirmation(ctx context.Context, emailID string) (EmailConfirmation, error)
}

// OracleReader reads the latest value published by a data oracle.
type OracleReader interface {
	ReadOracle(ctx context.Context, oracleID string) (OracleReading, error)
}

// Providers groups the external verification sources, one per condition kind.
// A nil field means the corresponding kind cannot be evaluated.
type Providers struct {
	Shipment ShipmentTracker
	Document DocumentVerifier
	Email    EmailConfirmer
	Oracle   OracleReader
}
