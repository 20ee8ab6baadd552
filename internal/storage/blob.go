package storage

import "io"

// BlobStore archives score-report snapshots. The archive is a convenience
// copy for download surfaces; results stay recomputable from the answer map.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	PutBytes(key string, b []byte) (string, error)
	Get(key string) (io.ReadCloser, error)
	SignedURL(key string) (string, error) // fs returns "file://..." for dev
}

// ReportKey is the canonical archive key for a user's final CEPS report.
func ReportKey(userID string) string { return "reports/" + userID + ".json" }
