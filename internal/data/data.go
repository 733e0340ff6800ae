package data

import (
	"context"

	"feed-engagement/ent"
	"feed-engagement/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	ProvideEntClient,
	NewInteractionRepo,
	NewRollupRepo,
	NewUnitOfWork,
)

// Data holds the shared storage clients.
type Data struct {
	db  *ent.Client
	rdb *redis.Client
}

// NewData opens the database per config, runs migrations, and optionally
// connects the redis rollup cache.
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	driver, source := "sqlite3", "file:engagement?mode=memory&cache=shared&_fk=1"
	if c != nil && c.Database != nil && c.Database.Driver != "" {
		driver, source = c.Database.Driver, c.Database.Source
	}

	client, err := ent.Open(driver, source)
	if err != nil {
		return nil, nil, err
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	d := &Data{db: client}

	if c != nil && c.Redis != nil && c.Redis.Addr != "" {
		d.rdb = redis.NewClient(&redis.Options{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
		if err := d.rdb.Ping(context.Background()).Err(); err != nil {
			helper.Warnf("redis unavailable, rollup cache disabled: %v", err)
			d.rdb = nil
		}
	}

	cleanup := func() {
		helper.Info("closing the data resources")
		if d.rdb != nil {
			if err := d.rdb.Close(); err != nil {
				helper.Error(err)
			}
		}
		if err := d.db.Close(); err != nil {
			helper.Error(err)
		}
	}

	return d, cleanup, nil
}

// ProvideEntClient exposes the underlying ent client for components that
// need direct transaction access, such as the outbox publisher and forwarder.
func ProvideEntClient(d *Data) *ent.Client {
	return d.db
}
