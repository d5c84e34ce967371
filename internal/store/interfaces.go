package store

import (
	"context"

	"github.com/openbenefits/go-benefit-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Record is one row in its generic map form, keyed by column name. Values
// are plain Go scalars (int64, float64, string, bool, time.Time), nil for
// SQL NULL, or nested []Record slices after relation loading.
type Record = map[string]any

// Filter narrows FindOne/FindMany queries.
type Filter struct {
	// Eq is a column -> value equality match. A nil value matches SQL NULL,
	// a slice value becomes an IN clause. Encrypted fields must never
	// appear here: their stored form is a randomized ciphertext and an
	// exact match will never hit.
	Eq map[string]any

	// AfterID selects rows with id strictly greater than the given value.
	// Combined with Limit this is the cursor used for stable pagination
	// under concurrent inserts.
	AfterID int64

	// Limit caps the number of returned rows; zero means no limit.
	Limit uint64

	// WithRelations loads the entity's declared relations as nested
	// records.
	WithRelations bool
}

// BatchUpdate is one staged row update inside an UpdateBatch transaction.
type BatchUpdate struct {
	ID     int64
	Fields Record
}

// DataStore is the narrow persistence port every data access in the
// application flows through. The SQL implementation talks to PostgreSQL;
// the encrypted decorator wraps it to make field-level encryption invisible
// to business logic.
type DataStore interface {
	// Create inserts rec and returns the stored row, including
	// server-assigned columns (id, timestamps).
	Create(ctx context.Context, entity string, rec Record) (Record, error)

	// Update applies fields to the row with the given id and returns the
	// updated row. Columns absent from fields are left untouched.
	Update(ctx context.Context, entity string, id int64, fields Record) (Record, error)

	// FindOne returns the single row matching filter, or
	// [ErrRecordNotFound].
	FindOne(ctx context.Context, entity string, filter Filter) (Record, error)

	// FindMany returns all rows matching filter in ascending id order.
	FindMany(ctx context.Context, entity string, filter Filter) ([]Record, error)

	// UpdateBatch applies all staged updates inside a single transaction.
	UpdateBatch(ctx context.Context, entity string, updates []BatchUpdate) error
}

// ApplicationRepository is the typed access layer for benefit applications.
// Implementations run on top of the encrypted [DataStore], so callers only
// ever see plaintext application data.
type ApplicationRepository interface {
	Create(ctx context.Context, app models.Application) (models.Application, error)
	GetByPublicID(ctx context.Context, publicID string, withFiles bool) (models.Application, error)
	UpdateDocumentVerificationStatus(ctx context.Context, id int64, status string) error
	UpdateAmounts(ctx context.Context, id int64, amount models.BenefitAmount) error

	// ListPendingEligibility returns applications that have no calculated
	// amount yet, in ascending id order, for the background sweep.
	ListPendingEligibility(ctx context.Context, afterID int64, limit uint64) ([]models.Application, error)

	// ListPendingVerification returns applications whose documents have
	// never been verified, in ascending id order.
	ListPendingVerification(ctx context.Context, afterID int64, limit uint64) ([]models.Application, error)
}

// ApplicationFileRepository is the typed access layer for submitted
// documents.
type ApplicationFileRepository interface {
	Create(ctx context.Context, file models.ApplicationFile) (models.ApplicationFile, error)
	GetByApplication(ctx context.Context, applicationID int64) ([]models.ApplicationFile, error)
	GetByPublicIDs(ctx context.Context, applicationID int64, publicIDs []string) ([]models.ApplicationFile, error)
	UpdateVerificationStatus(ctx context.Context, id int64, status models.FileVerificationStatus) error
}
