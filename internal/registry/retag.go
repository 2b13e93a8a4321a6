package registry

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/wafctl/internal/logging"
)

// tempSuffix marks the backup tag written before a re-push.
const tempSuffix = "-temp"

// RetagResult summarizes one retag run.
type RetagResult struct {
	// Repushed counts tags that were re-pushed and verified.
	Repushed int

	// Skipped counts temp tags left over from earlier runs that were
	// not re-pushed themselves.
	Skipped int

	// LeakedTempTags lists backup tags that could not be removed after
	// a successful re-push, as "repository:tag".
	LeakedTempTags []string
}

// Retagger re-pushes every tagged manifest in a registry so that
// registry-level replication picks the images up again.
type Retagger struct {
	client *Client
	dryRun bool
}

// NewRetagger wraps a client. With dryRun set, the plan is logged but
// nothing is written or deleted.
func NewRetagger(client *Client, dryRun bool) *Retagger {
	return &Retagger{client: client, dryRun: dryRun}
}

// Run retags every tag of every repository, sequentially. The live tag
// is never deleted: each tag is backed up under <tag>-temp, re-pushed,
// verified, and only then is the backup removed. A failure on one tag
// aborts the run with the live tag still intact.
func (r *Retagger) Run(ctx context.Context) (*RetagResult, error) {
	log := logging.FromContext(ctx)

	repos, err := r.client.Repositories(ctx)
	if err != nil {
		return nil, err
	}

	result := &RetagResult{}
	for _, repo := range repos {
		tags, err := r.client.Tags(ctx, repo)
		if err != nil {
			return result, err
		}

		for _, tag := range tags {
			if strings.HasSuffix(tag, tempSuffix) {
				log.Debug("skipping temp tag", "repository", repo, "tag", tag)
				result.Skipped++
				continue
			}
			if err := r.retagOne(ctx, result, repo, tag); err != nil {
				return result, errors.Wrapf(err, "retagging %s:%s", repo, tag)
			}
			result.Repushed++
		}
	}
	return result, nil
}

func (r *Retagger) retagOne(ctx context.Context, result *RetagResult, repo, tag string) error {
	log := logging.FromContext(ctx)
	tempTag := tag + tempSuffix

	manifest, err := r.client.GetManifest(ctx, repo, tag)
	if err != nil {
		return err
	}

	if r.dryRun {
		log.Info("would re-push", "repository", repo, "tag", tag)
		return nil
	}

	// Backup first so the manifest stays reachable by tag even if the
	// re-push goes wrong.
	if err := r.client.PutManifest(ctx, repo, tempTag, manifest); err != nil {
		return errors.Wrap(err, "writing backup tag")
	}

	if err := r.client.PutManifest(ctx, repo, tag, manifest); err != nil {
		return errors.Wrap(err, "re-pushing tag")
	}

	// Confirm the live tag still resolves before dropping the backup.
	if _, err := r.client.GetManifest(ctx, repo, tag); err != nil {
		return errors.Wrap(err, "verifying re-pushed tag")
	}

	if err := r.client.DeleteTag(ctx, repo, tempTag); err != nil {
		// The re-push succeeded; a lingering backup tag is reported,
		// not fatal.
		log.Warn("could not remove backup tag", "repository", repo, "tag", tempTag, "error", err)
		result.LeakedTempTags = append(result.LeakedTempTags, repo+":"+tempTag)
		return nil
	}

	log.Info("re-pushed", "repository", repo, "tag", tag)
	return nil
}
