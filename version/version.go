// Package version checks for newer releases of animedex.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/anisan-cli/animedex/constant"
	"github.com/anisan-cli/animedex/filesystem"
	"github.com/anisan-cli/animedex/network"
	"github.com/anisan-cli/animedex/util"
	"github.com/anisan-cli/animedex/where"
	"github.com/metafates/gache"
)

// releasesURL is a variable so tests can point it at a local server.
var releasesURL = constant.ReleasesAPI

var (
	versionCacher *gache.Cache[string]
	cacherOnce    sync.Once
)

func cacher() *gache.Cache[string] {
	cacherOnce.Do(func() {
		versionCacher = gache.New[string](&gache.Options{
			Path:       where.Release(),
			Lifetime:   time.Hour * 24 * 2,
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return versionCacher
}

// Latest returns the newest published version without the "v" prefix.
// The answer is cached for two days.
func Latest(ctx context.Context) (version string, err error) {
	ver, expired, err := cacher().Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.New().Do(req)
	if err != nil {
		return "", err
	}

	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases: status %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = cacher().Set(version)
	return version, nil
}
