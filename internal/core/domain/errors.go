package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrPostNotFound = errors.New("post not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrFeedInconsistent signals that a timeline referenced a post that no
// longer resolves in the post store. Timelines only ever receive IDs of
// created posts, so this is a fatal inconsistency, not a benign miss.
var ErrFeedInconsistent = errors.New("feed references missing post")
