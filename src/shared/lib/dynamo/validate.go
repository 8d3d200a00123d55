package dynamolib

import (
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/cockroachdb/errors"
)

func ValidateStringField(dynamoItem map[string]*dynamodb.AttributeValue, key string) error {
	value, ok := dynamoItem[key]
	if !ok {
		return errors.Newf("No %s key was found", key)
	}

	if value.S == nil {
		return errors.Newf("%s key is not in expected string format", key)
	}

	return nil
}

func ValidateMapField(dynamoItem map[string]*dynamodb.AttributeValue, key string) error {
	value, ok := dynamoItem[key]
	if !ok {
		return errors.Newf("No %s key was found", key)
	}

	if value.M == nil {
		return errors.Newf("%s key is not in expected map format", key)
	}

	return nil
}
