// Package file provides destinations for exported record snapshots.
//
// Storage is implemented by LocalStorage, which confines every path to a base
// directory and replaces files atomically, and by S3Storage, which uploads to
// an S3 or S3-compatible bucket through aws-sdk-go-v2. Paths are slash
// separated keys; any ".." segment is rejected with ErrInvalidPath.
//
//	store, err := file.NewLocalStorage("./exports")
//	if err != nil {
//	    return err
//	}
//	obj, err := store.Put(ctx, "records.csv", &buf, "")
//
// S3 failures are mapped to package errors (ErrAccessDenied,
// ErrBucketNotFound, ErrOperationTimeout, ...) so callers can use errors.Is.
package file
