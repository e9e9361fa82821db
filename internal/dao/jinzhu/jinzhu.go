// Core data service implement base gorm+mysql.
// Jinzhu is the primary developer of gorm so use his name as
// pakcage name as a saluter.

package jinzhu

import (
	"gramhaat-backend/internal/conf"
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/dao/cache"
	"github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"
)

var (
	_ core.DataService = (*dataServant)(nil)
	_ core.VersionInfo = (*dataServant)(nil)
)

type dataServant struct {
	core.UserService
	core.PostService
	core.PostManageService
	core.AgriFieldService
	core.LocalCardService
	core.LocationService
	core.CategoryService
}

func NewDataService() (core.DataService, core.VersionInfo) {
	db := conf.MustGormDB()

	var (
		rr core.ReferenceResolver
		v  core.VersionInfo
	)
	raw := newLocationServant(db)
	if conf.CfgIf("BigCacheIndex") {
		rr, v = cache.NewBigCacheResolverService(raw)
	} else {
		rr, v = cache.NewNoneResolverService(raw)
	}
	logrus.Infof("use %s as reference resolver by version: %s", v.Name(), v.Version())

	ds := &dataServant{
		UserService:       newUserService(db),
		PostService:       newPostService(db),
		PostManageService: newPostManageService(db),
		AgriFieldService:  newAgriFieldService(db),
		LocalCardService:  newLocalCardService(db),
		LocationService:   newLocationService(raw, rr),
		CategoryService:   newCategoryService(db),
	}
	return ds, ds
}

// nearbyCandidateLimit caps the bounded candidate fetch of radius
// searches; a missing setting falls back instead of fetching nothing.
func nearbyCandidateLimit() int {
	limit := conf.AppSetting.NearbyCandidateLimit
	if limit <= 0 {
		limit = 500
	}
	return limit
}

func (s *dataServant) Name() string {
	return "Gorm"
}

func (s *dataServant) Version() *semver.Version {
	return semver.MustParse("v0.2.0")
}
