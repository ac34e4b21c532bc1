package interfaces

import (
	"context"

	"github.com/m-mizutani/iconpack/pkg/domain/model"
)

// ReleaseClient defines operations for looking up upstream releases
type ReleaseClient interface {
	// LatestRelease returns the latest published release of owner/repo
	LatestRelease(ctx context.Context, owner, repo string) (*model.ReleaseInfo, error)
}
