package kvstore

import (
	"github.com/veedubyou/songlist-be/src/shared/config"
	"github.com/veedubyou/songlist-be/src/shared/lib/dynamo"
)

// Open builds the store a config selects
func Open(storeConfig config.Store) Store {
	switch storeConfig.(type) {
	case config.MemoryStore:
		return NewMemoryStore()
	default:
		return NewDynamoStore(dynamolib.Connect(storeConfig))
	}
}
