package shared

import "github.com/bytedance/sonic"

// JSON is the codec for every persisted collection. NoNullSliceOrMap keeps
// empty membership sets as [] on disk so reloads round-trip exactly.
var JSON = sonic.Config{
	UseNumber:            true,
	EscapeHTML:           false,
	SortMapKeys:          false,
	CompactMarshaler:     true,
	NoQuoteTextMarshaler: true,
	NoNullSliceOrMap:     true,
}.Froze()
