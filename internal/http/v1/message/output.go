package message

// Output is the response wrapper for POST /. A []byte body is written
// verbatim by huma, bypassing JSON/CBOR negotiation.
type Output struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}
