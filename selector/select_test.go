package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/treewalk/collection"
)

func TestSelect(t *testing.T) {
	type account struct {
		UserName string
		Balance  int
	}
	root := map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"name": "n0"},
			map[string]interface{}{"name": "n1"},
		},
		"account": &account{UserName: "u", Balance: 3},
		"meta":    collection.MapOf("k.x", "v"),
	}

	var testCases = []struct {
		description string
		expr        string
		expect      interface{}
		hasError    bool
	}{
		{
			description: "record and sequence hops",
			expr:        "items[1].name",
			expect:      "n1",
		},
		{
			description: "struct field",
			expr:        "account.UserName",
			expect:      "u",
		},
		{
			description: "case normalized struct field",
			expr:        "account.userName",
			expect:      "u",
		},
		{
			description: "quoted ordered map key",
			expr:        "meta['k.x']",
			expect:      "v",
		},
		{
			description: "missing terminal key",
			expr:        "account.Missing",
			expect:      nil,
		},
		{
			description: "hop through an opaque value",
			expr:        "account.Balance.x",
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		actual, err := Select(root, testCase.expr)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		require.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
