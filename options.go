package streamjson

// ParserOptionsFilter controls which parts of a document the Parser
// reports through the output sink and through the value buffer.
//
// A nil list means "no restriction" (everything matches). A non-nil,
// empty list means "nothing matches" — an explicit whitelist of
// zero patterns filters out the whole document.
type ParserOptionsFilter struct {
	OutputWhitelist []string
	BufferWhitelist []string
}

// ParserOptions configures a Parser's behavior. The zero value applies
// no filtering.
type ParserOptions struct {
	Filter ParserOptionsFilter
}

// allowsOutput reports whether path should be written to the output
// sink under these options.
func (o ParserOptions) allowsOutput(path *KeyPath) bool {
	return path.MatchAny(o.Filter.OutputWhitelist, true)
}

// allowsBuffer reports whether path should be mirrored into the value
// buffer under these options.
func (o ParserOptions) allowsBuffer(path *KeyPath) bool {
	return path.MatchAny(o.Filter.BufferWhitelist, true)
}
