package testing

import (
	. "github.com/onsi/gomega"
	"github.com/veedubyou/songlist-be/src/shared/lib/dynamo"
	"github.com/veedubyou/songlist-be/src/shared/lib/kvstore"
)

type keyValue struct {
	Key string `dynamo:"key,hash"`
}

func MakeTestDB(testRegion string) dynamolib.DynamoDBWrapper {
	return dynamolib.Connect(DynamoConfig(testRegion))
}

func ResetDB(db dynamolib.DynamoDBWrapper) {
	DeleteAllTables(db)
	CreateAllTables(db)
}

func CreateAllTables(db dynamolib.DynamoDBWrapper) {
	err := db.CreateTable(kvstore.KeyValuesTable, keyValue{}).Run()
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
}

func DeleteAllTables(db dynamolib.DynamoDBWrapper) {
	tableResults := db.ListTables()
	tableNames := ExpectSuccess(tableResults.All())

	for _, tableName := range tableNames {
		err := db.Table(tableName).DeleteTable().Run()
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
	}
}
