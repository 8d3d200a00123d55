package kvstore

import (
	"context"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/markers"
	"github.com/guregu/dynamo"
	"github.com/veedubyou/songlist-be/src/shared/lib/dynamo"
	"github.com/veedubyou/songlist-be/src/shared/lib/errors/mark"
)

// "key" and "value" are reserved words in DynamoDB expressions,
// so expressions name them through $ placeholders or single quotes
const (
	KeyValuesTable       = "KeyValues"
	keyField             = "key"
	valueField           = "value"
	existingKeyCondition = "attribute_exists($)"
	prefixFilter         = "begins_with($, ?)"
	keyProjection        = "'" + keyField + "'"
)

var _ Store = DynamoStore{}

type DynamoStore struct {
	dynamoDB  dynamolib.DynamoDBWrapper
	tableName string
}

func NewDynamoStore(dynamoDB dynamolib.DynamoDBWrapper) DynamoStore {
	return DynamoStore{
		dynamoDB:  dynamoDB,
		tableName: KeyValuesTable,
	}
}

func (d DynamoStore) table() dynamolib.DynamoTableWrapper {
	return d.dynamoDB.Table(d.tableName)
}

func (d DynamoStore) Get(ctx context.Context, key string) (map[string]any, error) {
	entry := dbEntry{}
	err := d.table().
		Get(keyField, key).
		Consistent(true).
		OneWithContext(ctx, &entry)

	if err != nil {
		switch {
		case markers.Is(err, UnmarshalMark):
			return nil, errors.Wrap(err, "Failed to read the stored value")
		case errors.Is(err, dynamo.ErrNotFound):
			return nil, mark.Wrap(err, NotFoundMark, "No value is stored under this key")
		default:
			return nil, mark.Wrap(err, DefaultErrorMark, "Failed to get value due to unknown data store error")
		}
	}

	return entry.Value, nil
}

func (d DynamoStore) BatchGet(ctx context.Context, keys []string) (map[string]map[string]any, error) {
	values := map[string]map[string]any{}

	keys = uniqueKeys(keys)
	if len(keys) == 0 {
		return values, nil
	}

	dynamoKeys := make([]dynamo.Keyed, 0, len(keys))
	for _, key := range keys {
		dynamoKeys = append(dynamoKeys, dynamo.Keys{key})
	}

	entries := []dbEntry{}
	err := d.table().
		Batch(keyField).
		Get(dynamoKeys...).
		AllWithContext(ctx, &entries)

	if err != nil {
		switch {
		case errors.Is(err, dynamo.ErrNotFound):
			return values, nil
		case markers.Is(err, UnmarshalMark):
			return nil, errors.Wrap(err, "Failed to read a stored value in the batch")
		default:
			return nil, mark.Wrap(err, DefaultErrorMark, "Failed to batch get values due to unknown data store error")
		}
	}

	for _, entry := range entries {
		values[entry.Key] = entry.Value
	}

	return values, nil
}

func (d DynamoStore) Set(ctx context.Context, key string, value map[string]any) error {
	if key == "" {
		return mark.Message(DefaultErrorMark, "Cannot set a value under an empty key")
	}

	item := map[string]any{
		keyField:   key,
		valueField: value,
	}

	if err := d.table().Put(item).RunWithContext(ctx); err != nil {
		return mark.Wrap(err, DefaultErrorMark, "Failed to put the value into the DB")
	}

	return nil
}

func (d DynamoStore) Delete(ctx context.Context, key string) (int, error) {
	err := d.table().
		Delete(keyField, key).
		If(existingKeyCondition, keyField).
		RunWithContext(ctx)

	if err != nil {
		if conditionalCheckFailed(err) {
			return 0, nil
		}

		return 0, mark.Wrap(err, DefaultErrorMark, "Failed to delete the value")
	}

	return 1, nil
}

func (d DynamoStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	entries := []dbKey{}
	err := d.table().
		Scan().
		Filter(prefixFilter, keyField, prefix).
		Project(keyProjection).
		Consistent(true).
		AllWithContext(ctx, &entries)

	if err != nil {
		return nil, mark.Wrap(err, DefaultErrorMark, "Failed to scan keys for prefix")
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.Key)
	}

	return keys, nil
}

func conditionalCheckFailed(err error) bool {
	var checkFailed *dynamodb.ConditionalCheckFailedException
	return errors.As(err, &checkFailed)
}

// BatchGetItem rejects requests that name the same key twice
func uniqueKeys(keys []string) []string {
	seen := map[string]bool{}
	unique := make([]string, 0, len(keys))
	for _, key := range keys {
		if seen[key] {
			continue
		}

		seen[key] = true
		unique = append(unique, key)
	}

	return unique
}
