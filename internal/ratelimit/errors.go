package ratelimit

import "errors"

var ErrUnexpectedScriptResult = errors.New("unexpected rate limit script result")
