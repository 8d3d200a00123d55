package kvstore_test

import (
	. "github.com/onsi/ginkgo/v2"
	dynamolib "github.com/veedubyou/songlist-be/src/shared/lib/dynamo"
	"github.com/veedubyou/songlist-be/src/shared/lib/kvstore"
	"github.com/veedubyou/songlist-be/src/shared/testing"
)

var _ = Describe("DynamoStore", func() {
	var db dynamolib.DynamoDBWrapper

	BeforeEach(func() {
		if !testing.DynamoAvailable() {
			Skip("set " + testing.DynamoTestHostVar + " to run against a local DynamoDB")
		}

		db = testing.MakeTestDB("kvstore_integration_test")
		testing.ResetDB(db)
	})

	AfterEach(func() {
		if testing.DynamoAvailable() {
			testing.DeleteAllTables(db)
		}
	})

	ItBehavesLikeAStore(func() kvstore.Store {
		return kvstore.NewDynamoStore(db)
	})
})
