package selector

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/parsly"
)

// Parse parses a path expression into container keys: dot separated names,
// [n] index blocks, and quoted keys (['a.b'] or 'a.b') for names holding
// separator characters.
func Parse(expr string) ([]interface{}, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("selector was empty")
	}
	cursor := parsly.NewCursor("", []byte(expr), 0)
	var result []interface{}
	for cursor.Pos < len(cursor.Input) {
		switch cursor.Input[cursor.Pos] {
		case '.':
			cursor.Pos++
		case '[':
			match := cursor.MatchAny(indexBlockMatcher)
			if match.Code != indexBlockToken {
				return nil, fmt.Errorf("unterminated block in selector: %s", expr)
			}
			key, err := blockKey(strings.Trim(match.Text(cursor), "[]"))
			if err != nil {
				return nil, err
			}
			result = append(result, key)
		case '\'':
			match := cursor.MatchAny(quotedMatcher)
			if match.Code != quotedToken {
				return nil, fmt.Errorf("unterminated quote in selector: %s", expr)
			}
			result = append(result, strings.Trim(match.Text(cursor), "'"))
		default:
			rest := cursor.Input[cursor.Pos:]
			end := bytes.IndexAny(rest, ".['")
			if end == -1 {
				end = len(rest)
			}
			result = append(result, string(rest[:end]))
			cursor.Pos += end
		}
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("invalid selector: %s", expr)
	}
	return result, nil
}

// blockKey interprets an index block body as an int index or a quoted key
func blockKey(body string) (interface{}, error) {
	if unquoted := strings.Trim(body, "'"); unquoted != body {
		return unquoted, nil
	}
	index, err := strconv.Atoi(strings.TrimSpace(body))
	if err != nil {
		return nil, fmt.Errorf("invalid selector index: %s", body)
	}
	return index, nil
}
