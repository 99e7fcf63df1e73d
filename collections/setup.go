package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// KVStore holds one row per persisted list: recipes, orders and replies.
const KVStore = "kv_store"

// maxValueLength bounds a stored JSON snapshot (in characters).
const maxValueLength = 5_000_000

// Setup programmatically creates/ensures the collections the app stores its
// data in.
func Setup(app core.App) error {
	_, err := ensureCollection(app, KVStore, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "key", Required: true, Max: 64})
		c.Fields.Add(&core.TextField{Name: "value", Max: maxValueLength})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_kv_store_key", true, "key", "")
	})
	return err
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app core.App, name string, addFields func(*core.Collection)) (*core.Collection, error) {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing, nil
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}

	log.Printf("collections: created %q (id=%s)", name, collection.Id)
	return collection, nil
}
