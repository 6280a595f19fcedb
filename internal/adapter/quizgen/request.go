package quizgen

import "encoding/json"

type requestPart struct {
	Text string `json:"text"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type generateContentRequest struct {
	Contents []requestContent `json:"contents"`
}

// EncodeRequest wraps prompt in the generateContent request envelope:
// {"contents":[{"parts":[{"text":prompt}]}]}.
func EncodeRequest(prompt string) []byte {
	body, err := json.Marshal(generateContentRequest{
		Contents: []requestContent{{Parts: []requestPart{{Text: prompt}}}},
	})
	if err != nil {
		// A struct of strings always marshals; invalid UTF-8 is replaced, not rejected.
		panic("quizgen: encode request: " + err.Error())
	}
	return body
}
