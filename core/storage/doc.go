// Package storage provides the object storage client used for media
// mirroring.
//
// Fetched game records carry remote media references (cover and header image
// URLs). When storage is enabled, the library feature mirrors those files into
// a bucket during synchronization so the service does not depend on the
// upstream CDN for serving media. The Client interface is implemented by a
// Minio client and by a testify mock in the mocks subpackage.
package storage
