package tag

import "errors"

// ErrUnrecognizedTag reports a surface string outside the tag vocabulary.
var ErrUnrecognizedTag = errors.New("unrecognized tag string")
