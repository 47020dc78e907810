package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"synapse-go/internal/logger"
)

// Transcriber drives an external speech-to-text service for recorded
// sessions: publish the recording, poll until the job finishes, download
// the text.
type Transcriber struct {
	Host         string
	CallType     string
	PollInterval time.Duration
	MaxPolls     int

	Client *http.Client
	Log    *logrus.Entry
}

func NewTranscriber(host string) *Transcriber {
	return &Transcriber{
		Host:         strings.TrimRight(host, "/"),
		CallType:     "PNS",
		PollInterval: 1500 * time.Millisecond,
		MaxPolls:     40,
		Client:       &http.Client{Timeout: 12 * time.Second},
		Log:          logger.New().WithComponent("transcriber"),
	}
}

type publishResponse struct {
	Code   int    `json:"Code"`
	Status string `json:"Status"`
	Data   struct {
		MediaID          string `json:"MediaId"`
		Status           string `json:"Status"`
		TranscriptionURL string `json:"TranscriptionURL"`
	} `json:"Data"`
	Reason string `json:"Reason,omitempty"`
}

type statusResponse struct {
	Code int `json:"Code"`
	Data struct {
		Status               string `json:"Status"` // Success, Queued, Processing, Failed
		TranscriptionTextURL string `json:"TranscriptionTextURL"`
	} `json:"Data"`
	Reason string `json:"Reason,omitempty"`
}

// Transcribe returns the transcript text of the recording at recordingURL.
func (t *Transcriber) Transcribe(ctx context.Context, recordingURL string) (string, error) {
	if t.Host == "" {
		return "", fmt.Errorf("transcriber host not set")
	}
	log := t.Log.WithField("recording_url", recordingURL)

	mediaID, ready, err := t.publish(ctx, recordingURL)
	if err != nil {
		return "", err
	}
	if ready != "" {
		log.WithField("text_url", ready).Info("transcription already exists, downloading text")
		return Fetch(ctx, t.Client, ready)
	}

	textURL, err := t.poll(ctx, mediaID)
	if err != nil {
		return "", err
	}
	log.WithField("text_url", textURL).Info("transcription completed, downloading text")
	return Fetch(ctx, t.Client, textURL)
}

func (t *Transcriber) publish(ctx context.Context, recordingURL string) (string, string, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	w.WriteField("callRecordingLink", recordingURL)
	w.WriteField("callType", t.CallType)
	if err := w.Close(); err != nil {
		return "", "", err
	}

	var resp publishResponse
	err := t.doJSON(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Host+"/transcribe", bytes.NewReader(b.Bytes()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", w.FormDataContentType())
		return req, nil
	}, &resp)
	if err != nil {
		return "", "", fmt.Errorf("transcribe publish: %w", err)
	}
	if resp.Code != http.StatusOK {
		return "", "", fmt.Errorf("transcribe publish error: code=%d reason=%s", resp.Code, resp.Reason)
	}
	if resp.Data.TranscriptionURL != "" && strings.EqualFold(resp.Data.Status, "success") {
		return "", resp.Data.TranscriptionURL, nil
	}
	return resp.Data.MediaID, "", nil
}

func (t *Transcriber) poll(ctx context.Context, mediaID string) (string, error) {
	u, err := url.Parse(t.Host + "/getstatus")
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("mediaId", mediaID)
	u.RawQuery = q.Encode()

	for i := 0; i < t.MaxPolls; i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(t.PollInterval):
		}

		var s statusResponse
		err := t.doJSON(ctx, func() (*http.Request, error) {
			return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		}, &s)
		if err != nil {
			t.Log.WithField("media_id", mediaID).WithField("error", err.Error()).Warn("transcription status check failed")
			continue
		}
		switch s.Data.Status {
		case "Success":
			return s.Data.TranscriptionTextURL, nil
		case "Failed":
			return "", fmt.Errorf("transcription failed: %s", s.Reason)
		}
	}
	return "", fmt.Errorf("transcription timeout after %d polls", t.MaxPolls)
}

func (t *Transcriber) doJSON(ctx context.Context, newReq func() (*http.Request, error), target interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = MaxFetchTime

	op := func() error {
		req, err := newReq()
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := t.Client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))
		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error %d: %s", resp.StatusCode, body)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("status %d: %s", resp.StatusCode, body))
		}
		if len(body) == 0 {
			return fmt.Errorf("empty body")
		}
		if err := json.Unmarshal(body, target); err != nil {
			return backoff.Permanent(fmt.Errorf("json decode error: %v body=%s", err, body))
		}
		return nil
	}
	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}
