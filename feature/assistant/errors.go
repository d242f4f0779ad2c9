package assistant

import (
	"errors"

	"github.com/minio/minio-go/v7"
)

// Kind classifies a failed storage operation.
type Kind int

const (
	// KindRemote covers any rejection or failure reported by the backend.
	KindRemote Kind = iota
	// KindNotFound marks an absent bucket or object. The backend reports
	// these through dedicated error codes, so they can be told apart from
	// genuine failures.
	KindNotFound
)

// StorageError pairs the backend's error code and message with a structured
// kind. The model only ever sees the flattened textual form; the structured
// error exists for logging and tests.
type StorageError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *StorageError) Error() string {
	return "Code: " + e.Code + ", Message: " + e.Message
}

// classify converts a storage-layer error into a StorageError.
func classify(err error) *StorageError {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "" {
		return &StorageError{Kind: KindRemote, Code: "Unknown", Message: err.Error()}
	}

	kind := KindRemote
	switch resp.Code {
	case "NoSuchBucket", "NoSuchKey", "NotFound":
		kind = KindNotFound
	}
	message := resp.Message
	if message == "" {
		message = err.Error()
	}
	return &StorageError{Kind: kind, Code: resp.Code, Message: message}
}

// AsStorageError unwraps err into a StorageError when possible.
func AsStorageError(err error) (*StorageError, bool) {
	var serr *StorageError
	if errors.As(err, &serr) {
		return serr, true
	}
	return nil, false
}
