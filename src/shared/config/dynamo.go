package config

// Store selects where songs are kept
type Store interface {
	StoreConfig()
}

var _ Store = ProdDynamo{}

type ProdDynamo struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

func (p ProdDynamo) StoreConfig() {}

var _ Store = LocalDynamo{}

type LocalDynamo struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Host            string
}

func (l LocalDynamo) StoreConfig() {}

var _ Store = MemoryStore{}

// MemoryStore keeps everything in process and loses it on restart.
// Only meant for development and tests
type MemoryStore struct{}

func (m MemoryStore) StoreConfig() {}
