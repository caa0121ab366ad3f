package catalog

import "github.com/drxlabs/drx-backend/internal/model"

// ICatalog exposes the static item and mission data the game ships with.
// The ledger core only needs prices and rewards; content is owned elsewhere.
type ICatalog interface {
	Item(id string) (*model.Item, error)
	Mission(id string) (*model.Mission, error)
	Items() []model.Item
	Missions() []model.Mission
}
