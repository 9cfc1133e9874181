package core

import "errors"

var ErrInvalidEncoding = errors.New("content is not valid UTF-8")
