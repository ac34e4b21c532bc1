package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconpack/pkg/domain/interfaces"
	"github.com/m-mizutani/iconpack/pkg/domain/model"
	"github.com/m-mizutani/iconpack/pkg/domain/types"
)

type releaseUseCase struct {
	githubClient interfaces.ReleaseClient
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(githubClient interfaces.ReleaseClient) interfaces.ReleaseUseCase {
	return &releaseUseCase{
		githubClient: githubClient,
	}
}

// CheckRelease compares the pack's pinned source.tag with the latest upstream GitHub release
func (uc *releaseUseCase) CheckRelease(ctx context.Context, pack *model.PackDir) (*model.ReleaseCheck, error) {
	logger := ctxlog.From(ctx)

	cfg, err := loadPackConfig(pack)
	if err != nil {
		return nil, err
	}

	owner, repo, ok := model.ParseGitHubRepo(cfg.Source.URL)
	if !ok {
		return nil, goerr.Wrap(types.ErrNotGitHubSource, "source url is not hosted on GitHub",
			goerr.V("pack", pack.Name()),
			goerr.V("url", cfg.Source.URL),
		)
	}

	logger.Debug("Checking latest release",
		"pack", pack.Name(),
		"owner", owner,
		"repo", repo,
		"tag", cfg.Source.Tag,
	)

	release, err := uc.githubClient.LatestRelease(ctx, owner, repo)
	if err != nil {
		logger.Error("Failed to get latest release",
			"error", err,
			"owner", owner,
			"repo", repo,
		)
		return nil, goerr.Wrap(err, "failed to check release", goerr.V("pack", pack.Name()))
	}

	check := &model.ReleaseCheck{
		Pack:       pack.Name(),
		CurrentTag: cfg.Source.Tag,
		LatestTag:  release.TagName,
		UpToDate:   model.SameTag(cfg.Source.Tag, release.TagName),
		URL:        release.URL,
	}

	logger.Info("Checked latest release",
		"pack", check.Pack,
		"current", check.CurrentTag,
		"latest", check.LatestTag,
		"up_to_date", check.UpToDate,
	)

	return check, nil
}
