package strategy

import "errors"

// ErrClusteringFailed indicates that the clustering step could not produce labels.
var ErrClusteringFailed = errors.New("similarity clustering failed")
