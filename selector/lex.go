package selector

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	indexBlockToken = iota + 1
	quotedToken
)

var (
	indexBlockMatcher = parsly.NewToken(indexBlockToken, "[ .... ]", matcher.NewBlock('[', ']', '\\'))
	quotedMatcher     = parsly.NewToken(quotedToken, "' .... '", matcher.NewQuote('\'', '\\'))
)
