package usecase

import (
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/winery-map/internal/domain"
)

// Normalize превращает набор сырых записей в коллекцию для карты.
// Пустой или отсутствующий набор - nil ("нет данных"), а не пустая коллекция.
// Преобразование структурное: позиции не проверяются.
func Normalize(set *domain.RecordSet) *domain.SpatialCollection {
	if set.Len() == 0 {
		return nil
	}

	features := make([]*geojson.Feature, 0, len(set.Docs))
	for _, raw := range set.Docs {
		pos := raw.Position()

		f := geojson.NewFeature(orb.Point{pos[0], pos[1]})
		f.ID = raw.ID()
		f.Properties = geojson.Properties(raw.Copy())

		features = append(features, f)
	}

	return domain.NewSpatialCollection(features)
}

// Normalizer мемоизирует Normalize по идентичности указателя на RecordSet
type Normalizer struct {
	mu     sync.Mutex
	source *domain.RecordSet
	result *domain.SpatialCollection
}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Collection возвращает коллекцию, пересобирая её только при смене набора
func (n *Normalizer) Collection(set *domain.RecordSet) *domain.SpatialCollection {
	n.mu.Lock()
	defer n.mu.Unlock()

	if set != nil && set == n.source {
		return n.result
	}

	n.source = set
	n.result = Normalize(set)
	return n.result
}
