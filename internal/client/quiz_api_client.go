package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dod-quiz/internal/model"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"moul.io/http2curl"
)

var ErrUnexpectedStatus = errors.New("quiz server returned an unexpected status")

type QuizApiClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Debug      bool
	log        *zap.Logger
}

func NewQuizApiClient(baseURL string, timeoutSec int, log *zap.Logger) *QuizApiClient {
	return &QuizApiClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
		log: log.Named("client"),
	}
}

func (c *QuizApiClient) logRequest(req *http.Request, description string) {
	if !c.Debug {
		return
	}
	cmd, err := http2curl.GetCurlCommand(req)
	if err != nil {
		c.log.Warn("cannot dump request", zap.String("request", description), zap.Error(err))
		return
	}
	c.log.Debug("http request sent", zap.String("request", description), zap.String("curl", cmd.String()))
}

func setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Content-Type", "application/json")
}

// NewQuiz asks the server for a fresh quiz.
func (c *QuizApiClient) NewQuiz(ctx context.Context) (*model.Quiz, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/quiz", nil)
	if err != nil {
		return nil, errors.Wrap(err, "build new quiz request")
	}
	setCommonHeaders(req)
	c.logRequest(req, "New Quiz")

	return c.do(req, "new quiz")
}

// SubmitAnswer sends the quiz with its answer attached and returns the next
// quiz, which carries the result for the submitted one.
func (c *QuizApiClient) SubmitAnswer(ctx context.Context, quiz *model.Quiz) (*model.Quiz, error) {
	payload, err := json.Marshal(quiz)
	if err != nil {
		return nil, errors.Wrap(err, "encode quiz")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.BaseURL+"/quiz", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "build submit request")
	}
	setCommonHeaders(req)
	c.logRequest(req, "Submit Answer")

	return c.do(req, "submit answer")
}

func (c *QuizApiClient) do(req *http.Request, description string) (*model.Quiz, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s request failed", description)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s response", description)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeHTTPError(resp.StatusCode, body)
	}

	var quiz model.Quiz
	if err := json.Unmarshal(body, &quiz); err != nil {
		c.log.Warn("cannot decode quiz", zap.String("request", description), zap.ByteString("body", body))
		return nil, errors.Wrapf(err, "decode %s response", description)
	}
	return &quiz, nil
}

func decodeHTTPError(status int, body []byte) error {
	var errorResponse model.ErrorResponse
	if json.Unmarshal(body, &errorResponse) == nil && errorResponse.Msg != "" {
		return errors.Wrapf(ErrUnexpectedStatus, "%d %s: %s", status, http.StatusText(status), errorResponse.Msg)
	}
	return errors.Wrap(ErrUnexpectedStatus, fmt.Sprintf("%d %s", status, http.StatusText(status)))
}
