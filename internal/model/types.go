package model

// Quiz is the unit exchanged with the quiz server. Answer stays nil until the
// client submits, Result stays nil until the server has checked an answer.
type Quiz struct {
	ID       string   `json:"id" binding:"required"`
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	ImageSrc string   `json:"image_src,omitempty"`
	Token    string   `json:"token" binding:"required"`
	Answer   *string  `json:"answer,omitempty" binding:"required"`
	Result   *bool    `json:"result,omitempty"`
}

// Clone returns a deep copy so callers can attach an answer without touching
// the original.
func (q Quiz) Clone() Quiz {
	c := q
	if q.Choices != nil {
		c.Choices = append([]string(nil), q.Choices...)
	}
	if q.Answer != nil {
		a := *q.Answer
		c.Answer = &a
	}
	if q.Result != nil {
		r := *q.Result
		c.Result = &r
	}
	return c
}

type DeckStats struct {
	Asked    int `json:"asked"`
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

type ErrorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}
