// Package cli holds resolution helpers shared by the CLI commands:
// docs tree location, catalog loading, and configured clients.
package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/wafctl/internal/catalog"
	waferrors "github.com/thoreinstein/wafctl/internal/errors"
	"github.com/thoreinstein/wafctl/internal/paths"
	"github.com/thoreinstein/wafctl/internal/registry"
	"github.com/thoreinstein/wafctl/internal/site"
)

// ResolveDocsDir locates the docs tree. The explicit value (from
// --docs-dir) wins over the configured docs_dir.
func ResolveDocsDir(explicit string) (string, error) {
	dir := explicit
	if dir == "" {
		dir = viper.GetString("docs_dir")
	}

	resolved, err := paths.ResolveDocsDir(dir)
	if err != nil {
		if errors.Is(err, paths.ErrDocsDirNotFound) {
			return "", waferrors.NewUserError(err, "Run from the site root or pass --docs-dir")
		}
		return "", err
	}
	return resolved, nil
}

// LoadCatalog returns the catalog for this invocation: the configured
// YAML file when `catalog` is set, the compiled-in default otherwise.
func LoadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Load(viper.GetString("catalog"))
	if err != nil {
		return nil, waferrors.NewConfigError(err)
	}
	return cat, nil
}

// AppendixURL returns the configured framework appendix URL.
func AppendixURL() string {
	return viper.GetString("appendix_url")
}

// PillarOrder returns the configured navigation ordering, or the
// default when `pillar_order` is not set.
func PillarOrder() map[string]int {
	configured := viper.GetStringMap("pillar_order")
	if len(configured) == 0 {
		return site.DefaultPillarOrder
	}

	order := make(map[string]int, len(configured))
	for slug := range configured {
		order[slug] = viper.GetInt("pillar_order." + slug)
	}
	return order
}

// RegistryClient builds a client from the registry.* config keys.
func RegistryClient() (*registry.Client, error) {
	endpoint := viper.GetString("registry.endpoint")
	if endpoint == "" {
		err := errors.Wrap(waferrors.ErrInvalidConfig, "registry.endpoint is not set")
		return nil, waferrors.NewConfigError(err)
	}

	client, err := registry.NewClient(endpoint, viper.GetString("registry.token"))
	if err != nil {
		return nil, waferrors.NewConfigError(err)
	}
	return client, nil
}
