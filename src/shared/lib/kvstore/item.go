package kvstore

import (
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/guregu/dynamo"
	"github.com/veedubyou/songlist-be/src/shared/lib/dynamo"
	"github.com/veedubyou/songlist-be/src/shared/lib/errors/mark"
)

var _ dynamo.ItemUnmarshaler = &dbEntry{}

type dbEntry struct {
	Key   string
	Value map[string]any
}

func (d *dbEntry) UnmarshalDynamoItem(dynamoItem map[string]*dynamodb.AttributeValue) error {
	if err := dynamolib.ValidateStringField(dynamoItem, keyField); err != nil {
		return mark.Wrap(err, UnmarshalMark, "Failed to validate key field")
	}

	if err := dynamolib.ValidateMapField(dynamoItem, valueField); err != nil {
		return mark.Wrap(err, UnmarshalMark, "Failed to validate value field")
	}

	value := map[string]any{}
	if err := dynamo.Unmarshal(dynamoItem[valueField], &value); err != nil {
		return mark.Wrap(err, UnmarshalMark, "Failed to unmarshal dynamo value")
	}

	*d = dbEntry{
		Key:   *dynamoItem[keyField].S,
		Value: value,
	}

	return nil
}

// key-only projection used when scanning
type dbKey struct {
	Key string `dynamo:"key,hash"`
}
