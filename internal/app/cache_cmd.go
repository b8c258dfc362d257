package app

import (
	"context"
	"os"
	"path/filepath"
)

// CacheDirName is the build cache's directory under a workspace root
// (spec.md §4.E).
const CacheDirName = ".wsu"

// CacheStats is the structured report produced by the cache status verb
// (SPEC_FULL.md §6 Supplemented Features #2).
type CacheStats struct {
	CachedPackages []string
	DiskBytes      int64
}

// CacheStatus reports the build cache's current contents and on-disk size.
func (a *App) CacheStatus(_ context.Context, cwd string) (*CacheStats, error) {
	ws, err := a.loadWorkspace(cwd)
	if err != nil {
		return nil, err
	}

	cache, _, err := a.cache(ws.Root)
	if err != nil {
		return nil, err
	}

	size, sizeErr := dirSize(filepath.Join(ws.Root, CacheDirName))
	if sizeErr != nil {
		a.logger.Warn("failed to measure cache directory size", "error", sizeErr.Error())
	}

	return &CacheStats{CachedPackages: cache.CachedPackages(), DiskBytes: size}, nil
}

// CacheClear empties the build cache (spec.md §4.E clear()). Clearing
// before a build degrades gracefully to a full rebuild rather than erroring
// (SPEC_FULL.md §6 Supplemented Features #4).
func (a *App) CacheClear(_ context.Context, cwd string) error {
	ws, err := a.loadWorkspace(cwd)
	if err != nil {
		return err
	}

	cache, _, err := a.cache(ws.Root)
	if err != nil {
		return err
	}
	return cache.Clear()
}

func dirSize(root string) (int64, error) {
	var total int64
	err := filepath.Walk(root, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	return total, err
}
