package worklog

import "errors"

var ErrInvalidStatus = errors.New("invalid work log status")
