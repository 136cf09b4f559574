package tables

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sterileops/api"
	"sterileops/config"
	"sterileops/core/cache"
	entity "sterileops/model/entity"
	snapshotRepo "sterileops/model/repository/snapshot"
	"sterileops/service/report"
)

// Canonical tables are memoized per rendering session: the pipeline
// invalidates the snapshot tag after publishing, the TTL only bounds
// staleness for out-of-process writers.
const sessionTTL = 5 * time.Minute

func init() {
	api.RegisterModule(RegisterTableRoutes)
}

// RegisterTableRoutes exposes the read-only dashboard contract: the three
// canonical tables plus the KPI views computed from them. No mutation
// endpoints exist by design.
func RegisterTableRoutes(apiGroup *echo.Group, db *gorm.DB) {
	repo := snapshotRepo.NewSnapshotRepository(db)
	g := apiGroup.Group("/tables")

	g.GET("/inventory", func(c echo.Context) error {
		return cachedJSON(c, "tables:inventory", func() (interface{}, error) {
			return repo.Inventory()
		})
	})
	g.GET("/procurement", func(c echo.Context) error {
		return cachedJSON(c, "tables:procurement", func() (interface{}, error) {
			return repo.Procurement()
		})
	})
	g.GET("/production", func(c echo.Context) error {
		return cachedJSON(c, "tables:production", func() (interface{}, error) {
			return repo.Production()
		})
	})
	g.GET("/kpi", func(c echo.Context) error {
		return cachedJSON(c, "tables:kpi", func() (interface{}, error) {
			items, orders, jobs, err := loadAll(repo)
			if err != nil {
				return nil, err
			}
			return report.Summarize(items, orders, jobs), nil
		})
	})
	g.GET("/abc", func(c echo.Context) error {
		return cachedJSON(c, "tables:abc", func() (interface{}, error) {
			items, err := repo.Inventory()
			if err != nil {
				return nil, err
			}
			return report.ClassifyABC(items), nil
		})
	})
}

func loadAll(repo *snapshotRepo.SnapshotRepository) ([]entity.InventoryItem, []entity.ProcurementOrder, []entity.ProductionJob, error) {
	items, err := repo.Inventory()
	if err != nil {
		return nil, nil, nil, err
	}
	orders, err := repo.Procurement()
	if err != nil {
		return nil, nil, nil, err
	}
	jobs, err := repo.Production()
	if err != nil {
		return nil, nil, nil, err
	}
	return items, orders, jobs, nil
}

// cachedJSON serves the fetched value with session memoization: Redis when
// configured (shared across replicas), the in-process snapshot cache
// otherwise.
func cachedJSON(c echo.Context, key string, fetch func() (interface{}, error)) error {
	if rc := config.RedisClient; rc != nil {
		if b, err := rc.Get(config.RedisCtx(), key).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, b)
		}
	}
	mem := cache.GetInstance()
	if v, ok := mem.Get(key); ok {
		return c.JSON(http.StatusOK, v)
	}

	v, err := fetch()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	mem.Set(key, v, int64(sessionTTL.Seconds()), []string{cache.TagSnapshot})
	if rc := config.RedisClient; rc != nil {
		if b, err := json.Marshal(v); err == nil {
			rc.Set(config.RedisCtx(), key, b, sessionTTL)
		}
	}
	return c.JSON(http.StatusOK, v)
}
