package message

const (
	// ContentType is the media type of every message response.
	ContentType = "vmlx/data; charset=utf-8"
	// DefaultText is the body served by POST /.
	DefaultText = "Hello from MyResponse!"
)

// Message is the payload of the root route. It lives for one request.
type Message struct {
	Text string
}

// Output converts the message into the raw response huma writes: the vmlx
// content type and the text as the body, byte for byte.
func (m Message) Output() *Output {
	return &Output{
		ContentType: ContentType,
		Body:        []byte(m.Text),
	}
}
