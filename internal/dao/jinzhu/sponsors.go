package jinzhu

import (
	"context"
	"time"

	"gramhaat-backend/internal/conf"
	"gramhaat-backend/internal/core"
	"gramhaat-backend/internal/model"
	"github.com/Masterminds/semver/v3"
	"github.com/go-redis/redis/v8"
	"github.com/jaevor/go-nanoid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	_ core.SponsorService = (*sponsorServant)(nil)
	_ core.VersionInfo    = (*sponsorServant)(nil)
)

type sponsorServant struct {
	db              *gorm.DB
	redis           *redis.Client
	newImpressionID func() string
}

func NewSponsorService() (core.SponsorService, core.VersionInfo) {
	impressionGen, err := nanoid.Standard(21)
	if err != nil {
		logrus.Fatalf("initialize impression id generator failed: %s", err)
	}
	s := &sponsorServant{
		db:              conf.MustGormDB(),
		redis:           conf.Redis,
		newImpressionID: impressionGen,
	}
	return s, s
}

// NextSponsor rotates over the active sponsors of a slot with a shared
// Redis cursor, so concurrent requests and multiple instances hand out a
// fair round-robin instead of each process keeping its own position.
func (s *sponsorServant) NextSponsor(slot string) (*core.SponsorFormatted, error) {
	sponsors, err := (&model.Sponsor{}).ListActive(s.db, slot, time.Now().Unix())
	if err != nil {
		return nil, err
	}
	if len(sponsors) == 0 {
		return nil, nil
	}

	cursor, err := s.redis.Incr(context.TODO(), "sponsor:cursor:"+slot).Result()
	if err != nil {
		return nil, err
	}

	item := sponsors[rotationIndex(len(sponsors), cursor)].Format()
	item.ImpressionID = s.newImpressionID()
	return item, nil
}

// rotationIndex maps a monotonically increasing cursor onto the active
// sponsor set. Cursors start at 1, the first INCR on a fresh key.
func rotationIndex(n int, cursor int64) int {
	return int((cursor - 1) % int64(n))
}

func (s *sponsorServant) Name() string {
	return "RedisRotation"
}

func (s *sponsorServant) Version() *semver.Version {
	return semver.MustParse("v0.1.0")
}
