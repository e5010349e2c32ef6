package testutil

import "github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"

// Int64 returns a pointer to v.
func Int64(v int64) *int64 {
	return &v
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// Dir builds a directory descriptor with an optional parent.
func Dir(id int64, name string, parent *int64) crowdintypes.Directory {
	return crowdintypes.Directory{ID: id, Name: name, DirectoryID: parent}
}

// FileIn builds a file descriptor placed in directory dirID.
func FileIn(id int64, name string, dirID int64) crowdintypes.File {
	return crowdintypes.File{ID: id, Name: name, DirectoryID: Int64(dirID)}
}
