package response

// Response is the envelope for message and error bodies. Raw documents
// and insert acknowledgements are rendered as-is, bypassing it.
type Response struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Message(text string) Response {
	return Response{Message: text}
}

func Error(text string) Response {
	return Response{Error: text}
}

// ErrorFrom keeps the caller-facing body generic: the error's message
// text when present, a fixed fallback otherwise.
func ErrorFrom(err error) Response {
	if err == nil || err.Error() == "" {
		return Error("Internal Server Error")
	}
	return Error(err.Error())
}
