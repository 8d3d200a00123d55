package kvstore

import "github.com/cockroachdb/errors/domains"

var NotFoundMark = domains.New("kv_not_found")
var UnmarshalMark = domains.New("kv_unmarshal_fail")
var DefaultErrorMark = domains.New("kv_default_error")
