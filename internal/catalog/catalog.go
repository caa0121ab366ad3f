package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/drxlabs/drx-backend/internal/model"
)

type Catalog struct {
	items        map[string]model.Item
	missions     map[string]model.Mission
	order        []string
	missionOrder []string
}

// New builds a catalog from static data. Nil slices fall back to the
// built-in demo content.
func New(items []model.Item, missions []model.Mission) ICatalog {
	if items == nil {
		items = defaultItems()
	}
	if missions == nil {
		missions = defaultMissions()
	}

	c := &Catalog{
		items:    map[string]model.Item{},
		missions: map[string]model.Mission{},
	}
	for _, item := range items {
		c.items[item.ID] = item
		c.order = append(c.order, item.ID)
	}
	for _, mission := range missions {
		c.missions[mission.ID] = mission
		c.missionOrder = append(c.missionOrder, mission.ID)
	}

	return c
}

func (c *Catalog) Item(id string) (*model.Item, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, model.ErrItemNotFound
	}
	return &item, nil
}

func (c *Catalog) Mission(id string) (*model.Mission, error) {
	mission, ok := c.missions[id]
	if !ok {
		return nil, model.ErrMissionNotFound
	}
	return &mission, nil
}

func (c *Catalog) Items() []model.Item {
	out := make([]model.Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *Catalog) Missions() []model.Mission {
	out := make([]model.Mission, 0, len(c.missionOrder))
	for _, id := range c.missionOrder {
		out = append(out, c.missions[id])
	}
	return out
}

func defaultItems() []model.Item {
	return []model.Item{
		{ID: "booster-small", Name: "Small Booster", Price: decimal.NewFromInt(50)},
		{ID: "booster-large", Name: "Large Booster", Price: decimal.NewFromInt(200)},
		{ID: "skin-nebula", Name: "Nebula Skin", Price: decimal.NewFromInt(350)},
	}
}

func defaultMissions() []model.Mission {
	return []model.Mission{
		{ID: "daily-login", Name: "Daily Login", Reward: decimal.NewFromInt(10)},
		{ID: "first-win", Name: "First Win", Reward: decimal.NewFromInt(100)},
		{ID: "weekly-raid", Name: "Weekly Raid", Reward: decimal.NewFromInt(250)},
	}
}
