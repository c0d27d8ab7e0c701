package oss

import (
	"TagHub.com/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

var minioClient *minio.Client

func InitMinio() error {
	endpoint := config.ConfigInfo.Minio.Endpoint
	accessKeyID := config.ConfigInfo.Minio.AccessKey
	secretAccessKey := config.ConfigInfo.Minio.SecretKey
	useSSL := config.ConfigInfo.Minio.UseSSL

	logrus.Infof("Initializing MinIO client with endpoint: %s", endpoint)

	var err error
	minioClient, err = minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		logrus.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	logrus.Info("Connect Minio Success")
	return nil
}
