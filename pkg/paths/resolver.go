package paths

import (
	"os"

	"github.com/arthur-debert/modsync/pkg/errors"
	"github.com/arthur-debert/modsync/pkg/types"
)

// Static resolves to a fixed directory. An empty dir resolves to nothing,
// which lets a Chain fall through to the next strategy.
func Static(dir string) types.PathResolver {
	return types.PathResolverFunc(func() (string, error) {
		if dir == "" {
			return "", nil
		}
		return NormalizePath(dir)
	})
}

// Env resolves the mods directory from MODSYNC_MODS_DIR
func Env() types.PathResolver {
	return types.PathResolverFunc(func() (string, error) {
		dir := os.Getenv(EnvModsDir)
		if dir == "" {
			return "", nil
		}
		return NormalizePath(dir)
	})
}

// Chain tries each resolver in order and returns the first non-empty
// result. Errors from a resolver stop the chain.
func Chain(resolvers ...types.PathResolver) types.PathResolver {
	return types.PathResolverFunc(func() (string, error) {
		for _, r := range resolvers {
			if r == nil {
				continue
			}
			dir, err := r.ResolveModsDir()
			if err != nil {
				return "", err
			}
			if dir != "" {
				return dir, nil
			}
		}
		return "", errors.New(errors.ErrInvalidInput,
			"no mods directory given; pass a path, set "+EnvModsDir+" or configure mods.dir")
	})
}
