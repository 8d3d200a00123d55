package songentity

import "github.com/cockroachdb/errors/domains"

var ValidationMark = domains.New("song_validation")
