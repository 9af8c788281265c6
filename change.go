package treewalk

type (
	//Replacement represents an ordered list of replacement items for a single
	//container slot; zero items removes the slot, many items fan it out into
	//multiple entries.
	Replacement struct {
		Items []interface{}
	}

	//KeyValue retargets a replacement item to a different key than the slot
	//it came from; only meaningful inside a Replacement.
	KeyValue struct {
		Key   interface{}
		Value interface{}
	}

	//Outcome represents an enter callback decision
	Outcome int
)

const (
	//Continue descends into the node children
	Continue Outcome = iota
	//SkipChildren suppresses descent into the node children
	SkipChildren
)

// Remove is the canonical removal value, shorthand for Replace() with no items
var Remove = &Replacement{}

// Replace creates a replacement with supplied items
func Replace(items ...interface{}) *Replacement {
	return &Replacement{Items: items}
}

// Pair creates a key/value item for use inside a replacement
func Pair(key, value interface{}) *KeyValue {
	return &KeyValue{Key: key, Value: value}
}
