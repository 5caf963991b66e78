package store

import (
	"bizdesk/model"
	storePostgres "bizdesk/model/store/postgres"
)

// GetStore - Should decide on which model implementation to use by
// configuration and return the store.
func GetStore() model.Model {
	var store model.Model
	store = &storePostgres.Postgres{}
	return store
}
