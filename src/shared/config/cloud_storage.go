package config

// CloudStorage is a bucket that song backups can be written to
type CloudStorage interface {
	GetBucket() string
}

var _ CloudStorage = ProdCloudStorage{}

type ProdCloudStorage struct {
	SecretKey  string
	BucketName string
}

func (p ProdCloudStorage) GetBucket() string {
	return p.BucketName
}

var _ CloudStorage = LocalCloudStorage{}

// LocalCloudStorage points at a GCS emulator
type LocalCloudStorage struct {
	HostEndpoint string
	BucketName   string
}

func (l LocalCloudStorage) GetBucket() string {
	return l.BucketName
}
