package handler

import (
	"net/url"

	"cheeserater/internal/domain/catalog"
	"cheeserater/internal/domain/entity"
	"cheeserater/internal/util"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// SelectionQuery is the query string accepted by the catalog endpoints.
// Filter categories repeat, e.g. ?origin=France&origin=Italy.
type SelectionQuery struct {
	View          string   `schema:"view"`
	Sort          string   `schema:"sort"`
	Query         string   `schema:"q"`
	Origin        []string `schema:"origin"`
	MilkType      []string `schema:"milkType"`
	Texture       []string `schema:"texture"`
	FlavorProfile []string `schema:"flavorProfile"`
}

func decodeSelection(values url.Values) (catalog.Selection, error) {
	var q SelectionQuery
	if err := decoder.Decode(&q, values); err != nil {
		return catalog.Selection{}, err
	}

	return catalog.Selection{
		View:  entity.ViewMode(q.View),
		Sort:  entity.SortOption(q.Sort),
		Query: q.Query,
		Filters: entity.FilterState{
			Origin:        util.UniqueTrimmed(q.Origin),
			MilkType:      util.UniqueTrimmed(q.MilkType),
			Texture:       util.UniqueTrimmed(q.Texture),
			FlavorProfile: util.UniqueTrimmed(q.FlavorProfile),
		},
	}, nil
}
