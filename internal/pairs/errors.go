package pairs

import "errors"

// ErrBucketNotFound is returned when a start_ or end_ mode names a letter
// that has no bucket, e.g. "start_x".  Handlers translate it into 404.
var ErrBucketNotFound = errors.New("bucket not found")

// ErrInvalidKey is returned by Build when a sub-table holds a key that is
// not two characters long or does not start with the sub-table's letter.
var ErrInvalidKey = errors.New("invalid pair key")
