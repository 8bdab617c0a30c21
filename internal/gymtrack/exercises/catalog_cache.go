package exercises

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte               = 1024 * 1024
	catalogCacheExpireSecs = 10 * 60
	catalogAllGroupsKey    = "all"
)

// CatalogCache keeps the public exercise catalog in process memory,
// keyed by muscle group. Any approval or seed invalidates it.
// Entries are stored under the generation they were read in, so a catalog
// read from the db before an invalidation can never be served after it.
type CatalogCache struct {
	cache      *freecache.Cache
	generation atomic.Uint64
}

func NewCatalogCache(sizeMB int) *CatalogCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &CatalogCache{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func catalogCacheKey(generation uint64, group *MuscleGroup) []byte {
	if group == nil {
		return []byte(fmt.Sprintf("public::%d::%s", generation, catalogAllGroupsKey))
	}
	return []byte(fmt.Sprintf("public::%d::%s", generation, *group))
}

// Generation has to be taken before reading the catalog from the db,
// and passed to Set along with what was read.
func (c *CatalogCache) Generation() uint64 {
	return c.generation.Load()
}

func (c *CatalogCache) Get(group *MuscleGroup) ([]Exercise, bool) {
	cachedBytes, err := c.cache.Get(catalogCacheKey(c.generation.Load(), group))
	if err != nil {
		return nil, false
	}

	var exercises []Exercise
	if err := json.Unmarshal(cachedBytes, &exercises); err != nil {
		log.Errorf("failed to unmarshal cached public catalog: %s", err)
		return nil, false
	}
	return exercises, true
}

// Set stores the catalog read in the given generation. Stale reads are dropped.
func (c *CatalogCache) Set(generation uint64, group *MuscleGroup, exercises []Exercise) {
	if generation != c.generation.Load() {
		log.Debugf("dropping public catalog read in stale cache generation %d", generation)
		return
	}

	exercisesBytes, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("failed to marshal public catalog for cache: %s", err)
		return
	}
	if err := c.cache.Set(catalogCacheKey(generation, group), exercisesBytes, catalogCacheExpireSecs); err != nil {
		log.Errorf("failed to write public catalog cache: %s", err)
	}
}

func (c *CatalogCache) Invalidate() {
	c.generation.Add(1)
	c.cache.Clear()
	log.Debugln("public exercise catalog cache cleared")
}
