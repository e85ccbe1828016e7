// Package refreshtokens declares the repository contract for the credential
// store: the set of refresh tokens that are currently live. Presence in the
// store is required for a refresh token to be usable, which is what makes
// server-side revocation authoritative.
package refreshtokens

import (
	"context"
	"time"

	"github.com/hytex/classroom-server/internal/server/models"
)

// Repository defines operations for issuing, looking up, and revoking
// refresh tokens.
type Repository interface {
	// Create stores a new refresh token for the identity with an expiry of
	// now+validity.
	Create(ctx context.Context, userID int64, role string, token string, validity time.Duration) error

	// Find looks up a refresh token by its token string and returns its
	// metadata. Implementations return common.ErrorNotFound when absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a refresh token by its token string. Deleting a
	// non-existent token is not an error.
	Delete(ctx context.Context, token string) error
}
